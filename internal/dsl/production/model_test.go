package production

import (
	"testing"

	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
	"github.com/archdsl/wsdsl/internal/dsl/lexer"
	"github.com/archdsl/wsdsl/internal/dsl/symbols"
	"github.com/archdsl/wsdsl/internal/dsl/token"
	"github.com/archdsl/wsdsl/internal/model"
)

func tokens(t *testing.T, text string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize %q: %v", text, err)
	}
	return toks
}

func TestContainerRejectsMissingParentElement(t *testing.T) {
	ws := model.New(true)
	req := Request{
		Ctx:     ctxstack.Context{Kind: ctxstack.KindModel, Workspace: ws},
		Tokens:  tokens(t, `"Web"`),
		Symbols: symbols.New(),
	}
	_, err := Container(req)
	if err == nil {
		t.Fatal("expected an error: container declared outside a softwareSystem block")
	}
}

func TestComponentRejectsMissingParentElement(t *testing.T) {
	ws := model.New(true)
	req := Request{
		Ctx:     ctxstack.Context{Kind: ctxstack.KindSoftwareSystem, Workspace: ws},
		Tokens:  tokens(t, `"API"`),
		Symbols: symbols.New(),
	}
	_, err := Component(req)
	if err == nil {
		t.Fatal("expected an error: component declared outside a container block")
	}
}

func TestResolveRefThisResolvesToEnclosingElement(t *testing.T) {
	ws := model.New(true)
	sys, err := ws.Model().AddSoftwareSystem("s", "", "S", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := Request{
		Ctx:     ctxstack.Context{Kind: ctxstack.KindSoftwareSystem, Workspace: ws, Element: sys},
		Symbols: symbols.New(),
	}
	got, err := resolveRef(req, "this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Identifier() != sys.Identifier() {
		t.Fatalf("got %q, want %q", got.Identifier(), sys.Identifier())
	}
}

func TestResolveRefThisOutsideElementContextIsAnError(t *testing.T) {
	ws := model.New(true)
	req := Request{
		Ctx:     ctxstack.Context{Kind: ctxstack.KindModel, Workspace: ws},
		Symbols: symbols.New(),
	}
	if _, err := resolveRef(req, "this"); err == nil {
		t.Fatal("expected an error: 'this' used outside an element context")
	}
}

func TestResolveRefUnknownIdentifierIsAnError(t *testing.T) {
	ws := model.New(true)
	req := Request{
		Ctx:     ctxstack.Context{Kind: ctxstack.KindModel, Workspace: ws},
		Symbols: symbols.New(),
	}
	if _, err := resolveRef(req, "nobody"); err == nil {
		t.Fatal("expected an error for an unbound identifier")
	}
}

func TestResolveRefRejectsRelationshipIdentifier(t *testing.T) {
	ws := model.New(true)
	sys1, _ := ws.Model().AddSoftwareSystem("", "", "A", "", nil)
	sys2, _ := ws.Model().AddSoftwareSystem("", "", "B", "", nil)
	rel, err := ws.Model().AddRelationship("", sys1, sys2, "uses", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table := symbols.New()
	if err := table.BindRelationship("r", rel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := Request{Ctx: ctxstack.Context{Kind: ctxstack.KindModel, Workspace: ws}, Symbols: table}
	if _, err := resolveRef(req, "r"); err == nil {
		t.Fatal("expected an error: 'r' names a relationship, not an element")
	}
}

func TestSplitTagsEmptyYieldsNil(t *testing.T) {
	if got := splitTags(""); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestSplitTagsTrimsAndDropsEmpties(t *testing.T) {
	got := splitTags("a, b ,, c")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
