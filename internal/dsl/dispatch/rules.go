package dispatch

import (
	"strings"

	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
	"github.com/archdsl/wsdsl/internal/dsl/production"
	"github.com/archdsl/wsdsl/internal/dsl/token"
)

// Rule is one entry of the dispatch table: a keyword (or, for the
// relationship-arrow and catch-all rules, a custom pattern match), a
// context predicate, the production parser to invoke, and — for
// constructs that open a block — how to derive the child context.
//
// This is the generalization of the teacher's prefixParseFns/infixParseFns
// maps (internal/compiler/script/parser.go) called for by the design
// notes (§9 "re-architect the token-type dispatch as a declarative table").
type Rule struct {
	// Keyword, when non-empty, must equal tokens[0] (case-insensitively).
	// The production parser then receives tokens[1:] — the keyword itself
	// is never passed down.
	Keyword string

	// Legal further restricts the context the rule applies in. Nil means
	// "always legal" (used by !constant).
	Legal func(ctxstack.Context) bool

	// Match is used instead of Keyword for rules whose applicability is a
	// token pattern rather than a fixed leading word (the "->" relationship
	// forms, and the style/configuration/user generic-property catch-alls).
	Match func(ctxstack.Context, []token.Token) bool

	Handle func(production.Request) (production.Result, error)

	// Push builds the child context when the line ends in "{". tokens is
	// whatever was handed to Handle (i.e. already keyword-stripped when
	// Keyword is set). Nil means the rule never opens a block.
	Push func(parent ctxstack.Context, tokens []token.Token, res production.Result) ctxstack.Context
}

func (r Rule) applies(ctx ctxstack.Context, tokens []token.Token) bool {
	if len(tokens) == 0 {
		return false
	}
	if r.Keyword != "" {
		if !strings.EqualFold(tokens[0].Literal, r.Keyword) {
			return false
		}
		return r.Legal == nil || r.Legal(ctx)
	}
	return r.Match != nil && r.Match(ctx, tokens)
}

// child copies parent and swaps its Kind — the common case for a rule's
// Push closure, which then layers on the fields specific to the new block.
func child(parent ctxstack.Context, kind ctxstack.Kind) ctxstack.Context {
	c := parent
	c.Kind = kind
	return c
}

func atRoot(c ctxstack.Context) bool { return c.Kind == ctxstack.KindNone }

func inWorkspace(c ctxstack.Context) bool { return c.Kind == ctxstack.KindWorkspace }
func inModel(c ctxstack.Context) bool { return c.Kind == ctxstack.KindModel }
func inViews(c ctxstack.Context) bool { return c.Kind == ctxstack.KindViews }
func inStyles(c ctxstack.Context) bool { return c.Kind == ctxstack.KindStyles }
func inBranding(c ctxstack.Context) bool { return c.Kind == ctxstack.KindBranding }
func inTerm(c ctxstack.Context) bool { return c.Kind == ctxstack.KindTerminology }
func inConfig(c ctxstack.Context) bool { return c.Kind == ctxstack.KindConfiguration }
func inUsers(c ctxstack.Context) bool { return c.Kind == ctxstack.KindUsers }
func inEnterprise(c ctxstack.Context) bool { return c.Kind == ctxstack.KindEnterprise }

func personOrEnterpriseScope(c ctxstack.Context) bool { return inModel(c) || inEnterprise(c) }

func inElementStyle(c ctxstack.Context) bool { return c.ElementStyle != nil }
func inRelStyle(c ctxstack.Context) bool { return c.RelationshipStyle != nil }
func inAnyStyle(c ctxstack.Context) bool { return inElementStyle(c) || inRelStyle(c) }

func noop(production.Request) (production.Result, error) { return production.Result{}, nil }

// terminologyTerms are the fixed words a "terminology { }" block may
// rename (§6 Terminology façade — one setter per term).
var terminologyTerms = []string{
	"person", "softwareSystem", "container", "component",
	"deploymentNode", "infrastructureNode", "softwareSystemInstance",
	"containerInstance", "relationship", "enterprise",
}

// buildRules constructs the ordered dispatch table once, at Dispatcher
// construction time (§4.5 table, in full).
func buildRules() []Rule {
	var rules []Rule

	// --- Workspace root and top-level blocks ---

	rules = append(rules,
		Rule{
			Keyword: "workspace", Legal: atRoot, Handle: production.Workspace,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindWorkspace)
			},
		},
		Rule{
			Keyword: "model", Legal: inWorkspace, Handle: noop,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindModel)
			},
		},
		Rule{
			Keyword: "views", Legal: inWorkspace, Handle: noop,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindViews)
			},
		},
		Rule{
			Keyword: "styles", Legal: inWorkspace, Handle: noop,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindStyles)
			},
		},
		Rule{
			Keyword: "branding", Legal: inWorkspace, Handle: production.Branding,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindBranding)
			},
		},
		Rule{
			Keyword: "terminology", Legal: inWorkspace, Handle: production.Terminology,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindTerminology)
			},
		},
		Rule{
			Keyword: "users", Legal: inWorkspace, Handle: production.Users,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindUsers)
			},
		},
		Rule{
			Keyword: "configuration", Legal: inViews, Handle: production.Configuration,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindConfiguration)
			},
		},
	)

	// --- group (§9 Groupable capability; replaces the earlier draft's
	// context.Stack.Replace approach so that the generic "}" pop (§4.3)
	// continues to work uniformly across every block kind, group included) ---

	rules = append(rules, Rule{
		Keyword: "group",
		Legal:   func(c ctxstack.Context) bool { return c.IsGroupable() && c.Group == "" },
		Handle:  production.Group,
		Push: func(parent ctxstack.Context, tokens []token.Token, _ production.Result) ctxstack.Context {
			c := parent
			if len(tokens) > 0 {
				c.Group = tokens[0].Literal
			}
			return c
		},
	})

	// --- Model elements ---

	rules = append(rules,
		Rule{
			Keyword: "enterprise", Legal: inModel, Handle: production.Enterprise,
			Push: func(parent ctxstack.Context, _ []token.Token, _ production.Result) ctxstack.Context {
				return child(parent, ctxstack.KindEnterprise)
			},
		},
		Rule{
			Keyword: "person", Legal: personOrEnterpriseScope, Handle: production.Person,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindPerson)
				c.Element = res.Element
				return c
			},
		},
		Rule{
			Keyword: "softwareSystem", Legal: personOrEnterpriseScope, Handle: production.SoftwareSystem,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindSoftwareSystem)
				c.Element = res.Element
				return c
			},
		},
		Rule{
			Keyword: "container", Legal: func(c ctxstack.Context) bool { return c.Kind == ctxstack.KindSoftwareSystem },
			Handle: production.Container,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindContainer)
				c.Element = res.Element
				return c
			},
		},
		Rule{
			Keyword: "component", Legal: func(c ctxstack.Context) bool { return c.Kind == ctxstack.KindContainer },
			Handle: production.Component,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindComponent)
				c.Element = res.Element
				return c
			},
		},
		Rule{
			Keyword: "deploymentEnvironment", Legal: inModel, Handle: production.DeploymentEnvironment,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindDeploymentEnvironment)
				c.Env = res.Element
				return c
			},
		},
		Rule{
			Keyword: "deploymentNode", Legal: func(c ctxstack.Context) bool { return c.IsDeploymentScope() },
			Handle: production.DeploymentNode,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindDeploymentNode)
				c.Element = res.Element
				c.Env = parent.Env
				return c
			},
		},
		Rule{
			Keyword: "infrastructureNode", Legal: func(c ctxstack.Context) bool { return c.Kind == ctxstack.KindDeploymentNode },
			Handle: production.InfrastructureNode,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindInfrastructureNode)
				c.Element = res.Element
				c.Env = parent.Env
				return c
			},
		},
		Rule{
			Keyword: "softwareSystemInstance", Legal: func(c ctxstack.Context) bool { return c.Kind == ctxstack.KindDeploymentNode },
			Handle: production.SoftwareSystemInstance,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindSoftwareSystemInstance)
				c.Element = res.Element
				c.Env = parent.Env
				return c
			},
		},
		Rule{
			Keyword: "containerInstance", Legal: func(c ctxstack.Context) bool { return c.Kind == ctxstack.KindDeploymentNode },
			Handle: production.ContainerInstance,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindContainerInstance)
				c.Element = res.Element
				c.Env = parent.Env
				return c
			},
		},
	)

	// --- Relationships (§4.5 table: "-> as tokens[1]" / "-> as tokens[0]") ---

	rules = append(rules,
		Rule{
			Match: func(c ctxstack.Context, t []token.Token) bool {
				return c.Kind == ctxstack.KindDynamicView && len(t) >= 2 && t[1].Literal == "->"
			},
			Handle: production.DynamicRelationship,
		},
		Rule{
			Match: func(c ctxstack.Context, t []token.Token) bool {
				if len(t) < 3 || t[1].Literal != "->" {
					return false
				}
				return inModel(c) || inEnterprise(c) || c.IsModelItem() || c.IsDeploymentScope()
			},
			Handle: production.ExplicitRelationship,
		},
		Rule{
			Match: func(c ctxstack.Context, t []token.Token) bool {
				return len(t) >= 2 && t[0].Literal == "->" && c.IsModelItem()
			},
			Handle: production.ImplicitRelationship,
		},
	)

	// --- Views ---

	rules = append(rules,
		Rule{
			Keyword: "systemLandscape", Legal: inViews, Handle: production.SystemLandscapeView,
			Push: viewPush(ctxstack.KindSystemLandscapeView),
		},
		Rule{
			Keyword: "systemContext", Legal: inViews, Handle: production.SystemContextView,
			Push: viewPush(ctxstack.KindSystemContextView),
		},
		Rule{
			Keyword: "container", Legal: inViews, Handle: production.ContainerView,
			Push: viewPush(ctxstack.KindContainerView),
		},
		Rule{
			Keyword: "component", Legal: inViews, Handle: production.ComponentView,
			Push: viewPush(ctxstack.KindComponentView),
		},
		Rule{
			Keyword: "dynamic", Legal: inViews, Handle: production.DynamicView,
			Push: viewPush(ctxstack.KindDynamicView),
		},
		Rule{
			Keyword: "deployment", Legal: inViews, Handle: production.DeploymentView,
			Push: viewPush(ctxstack.KindDeploymentView),
		},
		Rule{
			Keyword: "filtered", Legal: inViews, Handle: production.FilteredView,
			Push: viewPush(ctxstack.KindSystemLandscapeView), // a filtered view behaves as a static view for nested content
		},
		Rule{Keyword: "title", Legal: func(c ctxstack.Context) bool { return c.IsAnyView() }, Handle: production.Title},
		Rule{Keyword: "include", Legal: func(c ctxstack.Context) bool { return c.IsAnyView() }, Handle: production.Include},
		Rule{Keyword: "exclude", Legal: func(c ctxstack.Context) bool { return c.IsAnyView() }, Handle: production.Exclude},
		Rule{Keyword: "autoLayout", Legal: func(c ctxstack.Context) bool { return c.IsAnyView() }, Handle: production.AutoLayout},
		Rule{Keyword: "animation", Legal: func(c ctxstack.Context) bool { return c.HasAnimation() }, Handle: production.Animation},
	)

	// --- Styles ---

	rules = append(rules,
		Rule{
			Keyword: "element", Legal: inStyles, Handle: production.ElementStyleBlock,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindElementStyle)
				c.ElementStyle = res.ElementStyle
				return c
			},
		},
		Rule{
			Keyword: "relationship", Legal: inStyles, Handle: production.RelationshipStyleBlock,
			Push: func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
				c := child(parent, ctxstack.KindRelationshipStyle)
				c.RelationshipStyle = res.RelationshipStyle
				return c
			},
		},
		Rule{Keyword: "background", Legal: inElementStyle, Handle: production.Background},
		Rule{Keyword: "color", Legal: inAnyStyle, Handle: production.Color},
		Rule{Keyword: "shape", Legal: inElementStyle, Handle: production.Shape},
		Rule{Keyword: "icon", Legal: inElementStyle, Handle: production.Icon},
		Rule{Keyword: "thickness", Legal: inRelStyle, Handle: production.Thickness},
		Rule{Keyword: "style", Legal: inRelStyle, Handle: production.StyleKeyword},
		Rule{
			// Catch-all for any style field spec.md leaves unspecified
			// (§1 "Out of scope: per-keyword field parsing"); must sort
			// after every named style rule above.
			Match:  func(c ctxstack.Context, t []token.Token) bool { return inAnyStyle(c) && len(t) >= 1 },
			Handle: production.GenericStyleProperty,
		},
	)

	// --- Branding / Terminology / Configuration / Users ---

	rules = append(rules,
		Rule{Keyword: "logo", Legal: inBranding, Handle: production.Logo},
		Rule{Keyword: "font", Legal: inBranding, Handle: production.Font},
	)
	for _, term := range terminologyTerms {
		term := term
		rules = append(rules, Rule{
			Keyword: term, Legal: inTerm,
			Handle: func(r production.Request) (production.Result, error) { return production.TerminologyTerm(r, term) },
		})
	}
	rules = append(rules,
		Rule{
			Match:  func(c ctxstack.Context, t []token.Token) bool { return inConfig(c) && len(t) >= 1 },
			Handle: production.ConfigurationProperty,
		},
		Rule{
			Match:  func(c ctxstack.Context, t []token.Token) bool { return inUsers(c) && len(t) >= 1 },
			Handle: production.User,
		},
	)

	// --- Directives (legal anywhere; §4.2/§4.6) ---

	rules = append(rules,
		Rule{Keyword: "!constant", Handle: production.Constant},
		Rule{Keyword: "!impliedRelationships", Legal: inModel, Handle: production.ImpliedRelationships},
		Rule{
			Keyword: "!docs",
			Legal:   func(c ctxstack.Context) bool { return inWorkspace(c) || c.Kind == ctxstack.KindSoftwareSystem },
			Handle:  production.Docs,
		},
		Rule{
			Keyword: "!adrs",
			Legal:   func(c ctxstack.Context) bool { return inWorkspace(c) || c.Kind == ctxstack.KindSoftwareSystem },
			Handle:  production.Adrs,
		},
	)

	return rules
}

// viewPush returns a Push closure for the seven view-opening keywords (the
// six view kinds plus filtered): same shape, differing only in which Kind
// the child context carries.
func viewPush(kind ctxstack.Kind) func(ctxstack.Context, []token.Token, production.Result) ctxstack.Context {
	return func(parent ctxstack.Context, _ []token.Token, res production.Result) ctxstack.Context {
		c := child(parent, kind)
		c.View = res.View
		c.ViewKind = kind
		return c
	}
}
