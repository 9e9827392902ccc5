// Package dispatch implements the dispatcher (component D, §4.5) — the
// engine's core: for each line it decides which production parser (if
// any) is legal in the current context, invokes it, updates the symbol
// table and the context stack, and enforces block structure.
//
// The observed source is a long chain of guarded branches; per the design
// notes (§9) this is re-architected as a declarative, ordered rule table
// (rules.go), the direct generalization of the teacher's
// prefixParseFns/infixParseFns maps (internal/compiler/script/parser.go).
package dispatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
	"github.com/archdsl/wsdsl/internal/dsl/facade"
	"github.com/archdsl/wsdsl/internal/dsl/lexer"
	"github.com/archdsl/wsdsl/internal/dsl/production"
	"github.com/archdsl/wsdsl/internal/dsl/subst"
	"github.com/archdsl/wsdsl/internal/dsl/symbols"
	"github.com/archdsl/wsdsl/internal/dsl/token"
)

// identifierPattern is the identifier grammar from §3/§6.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// State is the mutable, instance-scoped state the dispatcher threads
// through every line of one parse (§5 "Shared state").
type State struct {
	Stack      *ctxstack.Stack
	Symbols    *symbols.Table
	Workspace  facade.Workspace
	Restricted bool
	Docs       production.DocsHandler
	File       string
}

// IncludeDirective signals that the line was "!include <target>"; the
// caller (internal/dsl/parser, component A) performs the actual file/HTTP
// read and recursion, then splices the result into the preserved source
// buffer in place of this line (§4.6).
type IncludeDirective struct {
	Target string
}

// Outcome reports what ProcessLine did with one raw line.
type Outcome struct {
	// Skip is true for blank lines, comments, and multi-line-comment body
	// lines — nothing was dispatched.
	Skip bool
	// Include is set when the line was "!include ...".
	Include *IncludeDirective
}

// Dispatcher holds the (stateless, built-once) rule table.
type Dispatcher struct {
	rules []Rule
}

// New builds a Dispatcher with the full keyword/context rule table.
func New() *Dispatcher {
	return &Dispatcher{rules: buildRules()}
}

// ProcessLine runs one raw source line through comment detection,
// tokenization (T), substitution (S), and dispatch (D) — the L→T→S→D
// pipeline's tail end for a single line (§2 "Data flow").
func (d *Dispatcher) ProcessLine(st *State, lineNumber int, rawText string) (Outcome, error) {
	trimmed := strings.TrimSpace(rawText)

	// §4.5 step 1: multi-line comments, handled at the raw-text level
	// because comment bodies are not guaranteed to be validly tokenizable.
	if top, ok := st.Stack.Peek(); ok && top.Kind == ctxstack.KindMultilineComment {
		if strings.HasSuffix(trimmed, "*/") {
			if _, err := st.Stack.Pop(); err != nil {
				return Outcome{}, err
			}
		}
		return Outcome{Skip: true}, nil
	}
	if strings.HasPrefix(trimmed, "/*") {
		if !strings.Contains(trimmed[2:], "*/") {
			st.Stack.Push(ctxstack.Context{Kind: ctxstack.KindMultilineComment, Workspace: st.Workspace})
		}
		return Outcome{Skip: true}, nil
	}

	tokens, err := lexer.Tokenize(rawText)
	if err != nil {
		return Outcome{}, err
	}

	for i := range tokens {
		tokens[i].Literal = subst.Expand(tokens[i].Literal, st.Symbols.Constant, st.Restricted)
		tokens[i].Pos.Line = lineNumber
	}
	line := token.Line{Tokens: tokens, Number: lineNumber, Text: rawText, File: st.File}
	if line.IsEmpty() {
		return Outcome{Skip: true}, nil
	}

	// §4.5 step 2: "}" pops one context.
	if line.IsContextEnd() {
		if _, err := st.Stack.Pop(); err != nil {
			return Outcome{}, fmt.Errorf("unexpected '}': %w", err)
		}
		return Outcome{}, nil
	}

	// "!include" is recognized before the generic rule table since it
	// hands control back to the caller rather than being dispatched here.
	if strings.EqualFold(line.First(), "!include") {
		if st.Restricted {
			return Outcome{Skip: true}, nil
		}
		tail := line.WithoutTrailingBrace()
		if len(tail) < 2 {
			return Outcome{}, fmt.Errorf("!include requires a path or URL")
		}
		return Outcome{Include: &IncludeDirective{Target: tail[1].Literal}}, nil
	}

	return Outcome{}, d.dispatchLine(st, line)
}

// dispatchLine applies §4.4 identifier-binding extraction, then the rule
// table (§4.5). A line carries at most one matching rule: rules are tried
// in order and the first applicable one wins.
func (d *Dispatcher) dispatchLine(st *State, line token.Line) error {
	top, ok := st.Stack.Peek()
	if !ok {
		// No context is open yet: the only legal line here is
		// "workspace { ... }", whose rule matches KindNone specifically so
		// that a bare model/views/styles block with no enclosing workspace
		// is rejected, and so a second, nested "workspace { }" (whose top
		// would be the real KindWorkspace pushed by the first) is too.
		top = ctxstack.Context{Kind: ctxstack.KindNone, Workspace: st.Workspace}
	}

	bare := line.WithoutTrailingBrace()
	opensBlock := line.ShouldStartContext()

	bindingHint := ""
	if len(bare) >= 4 && bare[1].Literal == "=" {
		ident := strings.ToLower(bare[0].Literal)
		if !identifierPattern.MatchString(ident) {
			return fmt.Errorf("invalid identifier %q: must match [A-Za-z0-9_]+", bare[0].Literal)
		}
		if st.Symbols.Taken(ident) {
			return &DuplicateIdentifierError{Identifier: ident}
		}
		bindingHint = ident
		bare = bare[2:]
	}

	for _, rule := range d.rules {
		if !rule.applies(top, bare) {
			continue
		}

		tokens := bare
		if rule.Keyword != "" {
			tokens = bare[1:]
		}

		req := production.Request{
			Ctx:         top,
			Tokens:      tokens,
			BindingHint: bindingHint,
			Symbols:     st.Symbols,
			Restricted:  st.Restricted,
			Docs:        st.Docs,
		}
		res, err := rule.Handle(req)
		if err != nil {
			return err
		}
		if err := bind(st.Symbols, bindingHint, res); err != nil {
			return err
		}

		switch {
		case opensBlock && rule.Push != nil:
			st.Stack.Push(rule.Push(top, tokens, res))
		case opensBlock:
			return fmt.Errorf("%q does not open a block", bare[0].Literal)
		}
		return nil
	}

	return fmt.Errorf("Unexpected tokens")
}

// bind records an identifier binding per §4.4: element, relationship, or
// silently unused if the production yielded neither.
func bind(table *symbols.Table, hint string, res production.Result) error {
	if hint == "" {
		return nil
	}
	switch {
	case res.Element != nil:
		return table.BindElement(hint, res.Element)
	case res.Relationship != nil:
		return table.BindRelationship(hint, res.Relationship)
	default:
		return nil
	}
}

// DuplicateIdentifierError mirrors symbols.ErrDuplicateIdentifier for the
// identifier-binding path, which rejects before a production parser runs.
type DuplicateIdentifierError struct{ Identifier string }

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q", e.Identifier)
}
