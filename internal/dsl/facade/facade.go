// Package facade defines the narrow interface the dispatcher and
// production parsers use to manipulate the workspace domain model
// (§6 "Workspace façade"). The domain model itself — elements,
// relationships, views, styles — is out of scope for this engine
// (spec.md §1 "Out of scope"); internal/model ships the one concrete
// implementation used by this repository.
package facade

// Element is an opaque handle to a created person/system/container/
// component/deployment node/infrastructure node/instance. Identifier is
// assigned by the model layer, independent of any DSL-supplied binding
// identifier (flat or hierarchical per workspace configuration, §6).
type Element interface {
	Identifier() string
	Kind() string
	Name() string
}

// Relationship is an opaque handle to a created relationship.
type Relationship interface {
	Identifier() string
}

// Workspace is the root façade handed to every Context (§3: "each context
// carries the workspace handle").
type Workspace interface {
	SetName(name, description string)
	Model() Model
	Views() Views
	Styles() Styles
	Branding() Branding
	Terminology() Terminology
	Configuration() Configuration
	Users() Users
	SetImpliedRelationships(strategy string)

	// HierarchicalIdentifiers reports whether the workspace is configured
	// for hierarchical identifier mode (§4.4).
	HierarchicalIdentifiers() bool
}

// Model is the model-block façade: element and relationship creation.
type Model interface {
	AddPerson(bindingHint, group, name, description string, tags []string) (Element, error)
	AddSoftwareSystem(bindingHint, group, name, description string, tags []string) (Element, error)
	AddContainer(parent Element, bindingHint, group, name, description, technology string, tags []string) (Element, error)
	AddComponent(parent Element, bindingHint, group, name, description, technology string, tags []string) (Element, error)
	AddDeploymentEnvironment(name string) (Element, error)
	AddDeploymentNode(parent Element, bindingHint, name, description, technology string) (Element, error)
	AddInfrastructureNode(parent Element, bindingHint, name, description, technology string) (Element, error)
	AddSoftwareSystemInstance(parent Element, system Element) (Element, error)
	AddContainerInstance(parent Element, container Element) (Element, error)

	// AddRelationship creates an explicit or implicit relationship (§4.5
	// "Explicit relationship" / "Implicit relationship").
	AddRelationship(sourceBindingHint string, source, dest Element, description, technology string, tags []string) (Relationship, error)
}

// View is the façade for one open view block's content.
type View interface {
	SetTitle(title string)
	Include(expr string)
	Exclude(expr string)
	AutoLayout(rankDirection string)
	Animation(identifiers []string)
	// AddRelationshipStep is used only by dynamic views (§4.5 table:
	// "Inside a view context: ... -> (dynamic only)").
	AddRelationshipStep(sourceBindingHint, destBindingHint, description string) error
}

// Views is the views-block façade: creation of the six view kinds plus
// filtered views (§6).
type Views interface {
	AddSystemLandscapeView(key string) View
	AddSystemContextView(system Element, key string) View
	AddContainerView(system Element, key string) View
	AddComponentView(container Element, key string) View
	AddDynamicView(scope Element, key string) View
	AddDeploymentView(env Element, key string) View
	AddFilteredView(baseViewKey, key, mode string, tags []string) View
}

// ElementStyle is the façade for one open "element <tag> { ... }" block.
type ElementStyle interface {
	SetBackground(color string)
	SetColor(color string)
	SetShape(shape string)
	SetIcon(path string)
	Set(property, value string)
}

// RelationshipStyle is the façade for one open "relationship <tag> { ... }" block.
type RelationshipStyle interface {
	SetColor(color string)
	SetThickness(n string)
	SetStyle(style string)
	Set(property, value string)
}

// Styles is the styles-block façade.
type Styles interface {
	AddElementStyle(tag string) ElementStyle
	AddRelationshipStyle(tag string) RelationshipStyle
}

// Branding is the branding-block façade.
type Branding interface {
	SetLogo(path string)
	SetFont(name, url string)
}

// Terminology is the terminology-block façade — one setter per renamed term.
type Terminology interface {
	Set(term, value string)
}

// Configuration is the configuration-block façade.
type Configuration interface {
	Set(key, value string)
}

// Users is the users-block façade.
type Users interface {
	AddUser(username, role string)
}
