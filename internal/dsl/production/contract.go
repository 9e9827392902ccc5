// Package production implements the production parsers dispatched to by
// internal/dsl/dispatch — one function per DSL construct (§4.5 "Production
// parser contract"). Each function accepts the current context and the
// token tail (trailing "{" already stripped) and returns either nothing,
// or a domain object for identifier-binding; it may return a domain error,
// which the dispatcher wraps with line number and source text (§4.7).
//
// Per spec.md §1 ("Out of scope: ... The individual per-keyword production
// parsers — their *interface* with the engine is specified (§4.5), but
// their internal field-parsing logic is not"), the field layouts below
// follow the well-known Structurizr DSL convention documented in
// SPEC_FULL.md §6, not a requirement spec.md itself pins down.
package production

import (
	"fmt"
	"strings"

	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
	"github.com/archdsl/wsdsl/internal/dsl/facade"
	"github.com/archdsl/wsdsl/internal/dsl/symbols"
	"github.com/archdsl/wsdsl/internal/dsl/token"
)

// DocsHandler loads documentation/ADR content for "!docs"/"!adrs" — an
// opaque external collaborator per spec.md §1 ("Out of scope: ... ADR/
// documentation ingestion — invoked through opaque handlers").
type DocsHandler interface {
	Load(path string) (string, error)
}

// Request is everything a production parser needs: the context it was
// dispatched in, the literal tail tokens, the binding hint extracted by
// §4.4 (empty if the line had none), the shared symbol table for
// identifier resolution, whether restricted mode is active, and an
// optional docs handler.
type Request struct {
	Ctx        ctxstack.Context
	Tokens     []token.Token
	BindingHint string
	Symbols    *symbols.Table
	Restricted bool
	Docs       DocsHandler
}

// Lits returns the tail tokens' literal values.
func (r Request) Lits() []string {
	out := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		out[i] = t.Literal
	}
	return out
}

// Arg returns the literal at index i, or "" if the tail is shorter.
func (r Request) Arg(i int) string {
	lits := r.Lits()
	if i < 0 || i >= len(lits) {
		return ""
	}
	return lits[i]
}

// Result is what a production parser hands back to the dispatcher: at
// most one of these is populated, matching whichever construct ran.
type Result struct {
	Element           facade.Element
	Relationship      facade.Relationship
	View              facade.View
	ElementStyle      facade.ElementStyle
	RelationshipStyle facade.RelationshipStyle
}

// splitTags parses a comma-separated tag list; "" yields nil, never [""].
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// resolveRef resolves an identifier reference to an element, honoring the
// virtual "this" symbol (§9 "Identifier scoping" — resolved at reference
// time, never stored in the symbol table).
func resolveRef(r Request, ref string) (facade.Element, error) {
	if strings.EqualFold(ref, "this") {
		if r.Ctx.Element == nil {
			return nil, fmt.Errorf("%q used outside an element context", ref)
		}
		return r.Ctx.Element, nil
	}
	v, ok := r.Symbols.Element(strings.ToLower(ref))
	if !ok {
		if _, isRel := r.Symbols.Relationship(strings.ToLower(ref)); isRel {
			return nil, fmt.Errorf("identifier %q names a relationship, not an element", ref)
		}
		return nil, fmt.Errorf("unknown identifier reference %q", ref)
	}
	elem, ok := v.(facade.Element)
	if !ok {
		return nil, fmt.Errorf("identifier %q does not refer to an element", ref)
	}
	return elem, nil
}
