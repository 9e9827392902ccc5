// Package ctxstack implements the context stack (component C, §3/§4.3): a
// LIFO of typed contexts representing the currently open nested blocks.
//
// The source this engine is modeled on exhibits a deep inheritance hierarchy
// among context types. Per the design notes (§9) this is re-architected as
// capabilities: Context is a single struct tagged by Kind, and the
// dispatcher tests for a *capability* (Groupable, ModelItem, StaticView, …)
// rather than a concrete subclass. Every context carries the workspace
// handle, matching the teacher's shared.ParserCore pattern of a common
// struct threading state downward. A Context holds no symbol table: the
// dispatcher hands the shared table to production parsers separately, in
// production.Request.Symbols, next to the Context.
package ctxstack

import "github.com/archdsl/wsdsl/internal/dsl/facade"

// Kind is the fixed, finite tag set from spec.md §3.
type Kind int

const (
	// KindNone is the root sentinel: the context stack is empty, no
	// "workspace { }" has been opened yet. Only the "workspace" rule
	// matches it — every other rule requires a real, pushed context, so
	// this must not alias KindWorkspace even though it is the iota zero
	// value.
	KindNone Kind = iota
	KindWorkspace
	KindModel
	KindEnterprise
	KindPerson
	KindSoftwareSystem
	KindContainer
	KindComponent
	KindDeploymentEnvironment
	KindDeploymentNode
	KindInfrastructureNode
	KindSoftwareSystemInstance
	KindContainerInstance
	KindViews
	KindStyles
	KindElementStyle
	KindRelationshipStyle
	KindBranding
	KindTerminology
	KindConfiguration
	KindUsers
	KindSystemLandscapeView
	KindSystemContextView
	KindContainerView
	KindComponentView
	KindDynamicView
	KindDeploymentView
	KindStaticViewAnimation
	KindDeploymentViewAnimation
	KindModelItemProperties
	KindModelItemPerspectives
	KindRelationship
	KindMultilineComment
	KindIncluded
)

func (k Kind) String() string {
	names := map[Kind]string{
		KindNone:                    "None",
		KindWorkspace:               "Workspace",
		KindModel:                   "Model",
		KindEnterprise:              "Enterprise",
		KindPerson:                  "Person",
		KindSoftwareSystem:          "SoftwareSystem",
		KindContainer:               "Container",
		KindComponent:               "Component",
		KindDeploymentEnvironment:   "DeploymentEnvironment",
		KindDeploymentNode:          "DeploymentNode",
		KindInfrastructureNode:      "InfrastructureNode",
		KindSoftwareSystemInstance:  "SoftwareSystemInstance",
		KindContainerInstance:       "ContainerInstance",
		KindViews:                   "Views",
		KindStyles:                  "Styles",
		KindElementStyle:            "ElementStyle",
		KindRelationshipStyle:       "RelationshipStyle",
		KindBranding:                "Branding",
		KindTerminology:             "Terminology",
		KindConfiguration:           "Configuration",
		KindUsers:                   "Users",
		KindSystemLandscapeView:     "SystemLandscapeView",
		KindSystemContextView:       "SystemContextView",
		KindContainerView:           "ContainerView",
		KindComponentView:           "ComponentView",
		KindDynamicView:             "DynamicView",
		KindDeploymentView:          "DeploymentView",
		KindStaticViewAnimation:     "StaticViewAnimation",
		KindDeploymentViewAnimation: "DeploymentViewAnimation",
		KindModelItemProperties:     "ModelItemProperties",
		KindModelItemPerspectives:   "ModelItemPerspectives",
		KindRelationship:            "Relationship",
		KindMultilineComment:        "MultilineComment",
		KindIncluded:                "Included",
	}
	if n, ok := names[k]; ok {
		return n
	}
	return "Unknown"
}

// Context is one open nested block. Fields beyond Kind/Workspace are
// populated only for the kinds that need them; the capability predicates
// below are what the dispatcher actually queries.
type Context struct {
	Kind      Kind
	Workspace facade.Workspace

	// Group is set when this context (or its nearest Groupable ancestor)
	// has an open "group" block; it namespaces elements declared within.
	Group string

	// Element is the model item this context represents — the "this" a
	// nested "-> target" implicit relationship resolves to, and the
	// parent for a nested container/component/deploymentNode (§9).
	Element facade.Element

	// Env is the enclosing DeploymentEnvironment element, threaded through
	// nested DeploymentNode/InfrastructureNode contexts.
	Env facade.Element

	// View/ViewKind are set for any of the six view contexts.
	View     facade.View
	ViewKind Kind

	ElementStyle      facade.ElementStyle
	RelationshipStyle facade.RelationshipStyle
}

// --- Capability predicates (§9 "re-architect as capabilities") ---

// IsGroupable reports whether a "group" block may legally be opened here.
func (c Context) IsGroupable() bool {
	switch c.Kind {
	case KindModel, KindEnterprise, KindSoftwareSystem, KindContainer:
		return true
	default:
		return false
	}
}

// IsModelItem reports whether this context represents an element that can
// itself hold nested model-item children and implicit relationships.
func (c Context) IsModelItem() bool {
	switch c.Kind {
	case KindPerson, KindSoftwareSystem, KindContainer, KindComponent,
		KindDeploymentNode, KindInfrastructureNode,
		KindSoftwareSystemInstance, KindContainerInstance:
		return c.Element != nil
	default:
		return false
	}
}

// IsStaticView reports whether this context is one of the non-dynamic view
// kinds — the "StaticView" capability from §9.
func (c Context) IsStaticView() bool {
	switch c.Kind {
	case KindSystemLandscapeView, KindSystemContextView, KindContainerView,
		KindComponentView, KindDeploymentView:
		return true
	default:
		return false
	}
}

// IsAnyView reports whether this context is any of the six view kinds.
func (c Context) IsAnyView() bool {
	return c.IsStaticView() || c.Kind == KindDynamicView
}

// HasAnimation reports whether an "animation <identifiers...>" line is
// legal here (the "ViewWithAnimation" capability from §9): static views and
// deployment views support it, dynamic views use numbered steps instead.
// The line does not open a block.
func (c Context) HasAnimation() bool {
	return c.IsStaticView()
}

// IsDeploymentScope reports whether a nested "deploymentNode" is legal
// here — directly inside a DeploymentEnvironment or another DeploymentNode.
func (c Context) IsDeploymentScope() bool {
	return c.Kind == KindDeploymentEnvironment || c.Kind == KindDeploymentNode
}
