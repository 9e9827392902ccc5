package include

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLocalRelativePath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "shared.dsl")
	if err := os.WriteFile(target, []byte("softwareSystem \"Shared\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	lines, origin, err := Resolve("shared.dsl", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if origin != target {
		t.Fatalf("origin = %q, want %q", origin, target)
	}
	if len(lines) != 1 || lines[0].Text != `softwareSystem "Shared"` {
		t.Fatalf("lines = %v", lines)
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, _, err := Resolve("does-not-exist.dsl", t.TempDir()); err == nil {
		t.Fatal("expected an error resolving a missing file")
	}
}

func TestResolverCycleDetection(t *testing.T) {
	r := New()
	leave, err := r.Enter("/a.dsl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer leave()

	if _, err := r.Enter("/a.dsl"); err == nil {
		t.Fatal("expected a cycle error re-entering the same file")
	}
}

func TestResolverLeaveAllowsReentry(t *testing.T) {
	r := New()
	leave, err := r.Enter("/a.dsl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leave()

	if _, err := r.Enter("/a.dsl"); err != nil {
		t.Fatalf("re-entering after leave should succeed, got %v", err)
	}
}
