package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadString(t *testing.T) {
	lines := ReadString("workspace {\n  model {\n  }\n}\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %v", len(lines), lines)
	}
	if lines[0].Number != 1 || lines[0].Text != "workspace {" {
		t.Fatalf("lines[0] = %+v", lines[0])
	}
}

func TestReadStringStripsCR(t *testing.T) {
	lines := ReadString("a\r\nb\r\n")
	if len(lines) != 2 || lines[0].Text != "a" || lines[1].Text != "b" {
		t.Fatalf("lines = %v", lines)
	}
}

func TestWalkDirStableOrderAndRecursion(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "b.dsl"), "")
	mustWrite(t, filepath.Join(dir, "a.dsl"), "")
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	mustWrite(t, filepath.Join(sub, "c.dsl"), "")

	files, err := WalkDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
