package model

import "testing"

type foreignElement struct{}

func (foreignElement) Identifier() string { return "foreign" }
func (foreignElement) Kind() string { return "Foreign" }
func (foreignElement) Name() string { return "Foreign" }

func TestAddPersonRequiresName(t *testing.T) {
	ws := New(false)
	_, err := ws.Model().AddPerson("", "", "", "", nil)
	if err == nil {
		t.Fatal("expected an error for an empty name")
	}
	var verr *ValidationError
	if !asValidationError(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestAddContainerRequiresParent(t *testing.T) {
	ws := New(false)
	_, err := ws.Model().AddContainer(nil, "", "", "W", "", "", nil)
	if err == nil {
		t.Fatal("expected an error for a missing parent")
	}
}

func TestAddContainerRejectsForeignParent(t *testing.T) {
	ws := New(false)
	_, err := ws.Model().AddContainer(foreignElement{}, "", "", "W", "", "", nil)
	if err == nil {
		t.Fatal("expected an error for a foreign element handle")
	}
}

func TestAddSoftwareSystemThenContainerComposesHierarchicalID(t *testing.T) {
	ws := New(true)
	sys, err := ws.Model().AddSoftwareSystem("s", "", "S", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctr, err := ws.Model().AddContainer(sys, "web", "", "W", "", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctr.Identifier() != "s.web" {
		t.Fatalf("got %q, want %q", ctr.Identifier(), "s.web")
	}
}

func TestAddRelationshipRequiresBothEnds(t *testing.T) {
	ws := New(false)
	sys, _ := ws.Model().AddSoftwareSystem("", "", "S", "", nil)
	_, err := ws.Model().AddRelationship("", sys, nil, "uses", "", nil)
	if err == nil {
		t.Fatal("expected an error for a missing destination")
	}
}

func TestAddSoftwareSystemInstanceCarriesInstanceOf(t *testing.T) {
	ws := New(false)
	sys, _ := ws.Model().AddSoftwareSystem("", "", "S", "", nil)
	env, _ := ws.Model().AddDeploymentEnvironment("Production")
	node, err := ws.Model().AddDeploymentNode(env, "", "Node", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst, err := ws.Model().AddSoftwareSystemInstance(node, sys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Name() != "S" {
		t.Fatalf("got %q, want %q", inst.Name(), "S")
	}
}

func asValidationError(err error, target **ValidationError) bool {
	verr, ok := err.(*ValidationError)
	if ok {
		*target = verr
	}
	return ok
}
