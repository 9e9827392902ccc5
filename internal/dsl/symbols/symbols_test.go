package symbols

import "testing"

func TestBindElementAndLookup(t *testing.T) {
	tab := New()
	if err := tab.BindElement("api", "element-handle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := tab.Element("api")
	if !ok || v != "element-handle" {
		t.Fatalf("Element(%q) = %v, %v", "api", v, ok)
	}
}

func TestBindDuplicateAcrossNamespaces(t *testing.T) {
	tab := New()
	if err := tab.BindElement("x", "e"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tab.BindRelationship("x", "r"); err == nil {
		t.Fatal("expected a duplicate-identifier error across namespaces")
	}
	if err := tab.BindElement("x", "e2"); err == nil {
		t.Fatal("expected a duplicate-identifier error within the same namespace")
	}
}

func TestTaken(t *testing.T) {
	tab := New()
	if tab.Taken("x") {
		t.Fatal("fresh table should report nothing taken")
	}
	_ = tab.BindElement("x", "e")
	if !tab.Taken("x") {
		t.Fatal("bound identifier should be reported as taken")
	}
}

func TestConstantRedefinitionLastWriteWins(t *testing.T) {
	tab := New()
	tab.SetConstant("env", "dev")
	tab.SetConstant("env", "prod")
	v, ok := tab.Constant("env")
	if !ok || v != "prod" {
		t.Fatalf("Constant(%q) = %q, %v; want %q, true", "env", v, ok, "prod")
	}
}

func TestConstantUndefined(t *testing.T) {
	tab := New()
	if _, ok := tab.Constant("missing"); ok {
		t.Fatal("undefined constant should report ok=false")
	}
}
