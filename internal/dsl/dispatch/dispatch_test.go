package dispatch

import (
	"testing"

	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
	"github.com/archdsl/wsdsl/internal/dsl/symbols"
	"github.com/archdsl/wsdsl/internal/model"
)

func newState() *State {
	return &State{
		Stack:     ctxstack.New(),
		Symbols:   symbols.New(),
		Workspace: model.New(true),
	}
}

func process(t *testing.T, st *State, d *Dispatcher, lines []string) error {
	t.Helper()
	for i, line := range lines {
		out, err := d.ProcessLine(st, i+1, line)
		if err != nil {
			return err
		}
		if out.Include != nil {
			t.Fatalf("unexpected include directive on line %d", i+1)
		}
	}
	return nil
}

func TestContainerOutsideSoftwareSystemIsIllegal(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  model {`,
		`    container "C"`,
	})
	if err == nil {
		t.Fatal("expected an error for a container outside a softwareSystem block")
	}
}

func TestStylePropertyOutsideStyleBlockIsIllegal(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  background #ffffff`,
	})
	if err == nil {
		t.Fatal("expected an error for background outside an element style block")
	}
}

func TestGenericStylePropertyCatchAll(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  styles {`,
		`    element "Foo" {`,
		`      opacity 50`,
		`    }`,
		`  }`,
		`}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGroupCannotNestInsideAnOpenGroup(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  model {`,
		`    group "Outer" {`,
		`      group "Inner" {`,
	})
	if err == nil {
		t.Fatal("expected an error: a group cannot be opened while one is already open")
	}
}

func TestImplicitRelationshipRequiresModelItemContext(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  model {`,
		`    u = person "User"`,
		`    s = softwareSystem "S"`,
		`    -> s "uses"`,
	})
	if err == nil {
		t.Fatal("expected an error: '-> s' outside an element's own block has no implicit source")
	}
}

func TestDuplicateIdentifierRejectedBeforeProductionRuns(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  model {`,
		`    u = person "User"`,
		`    u = person "Other"`,
	})
	if err == nil {
		t.Fatal("expected a duplicate-identifier error")
	}
	if _, ok := err.(*DuplicateIdentifierError); !ok {
		t.Fatalf("expected *DuplicateIdentifierError, got %T: %v", err, err)
	}
}

func TestUnexpectedTokensProduceAnError(t *testing.T) {
	d := New()
	st := newState()
	err := process(t, st, d, []string{
		`workspace {`,
		`  bogusKeyword "x"`,
	})
	if err == nil {
		t.Fatal("expected an error for an unrecognized keyword in workspace scope")
	}
}
