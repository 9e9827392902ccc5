package model

// element is the one concrete type behind every facade.Element handle
// this model produces — person, software system, container, component,
// deployment node, infrastructure node, and the two instance kinds differ
// only in their Kind tag and which fields are populated, mirroring the
// C4 entity shapes in madstone-tech-loko's internal/core/entities (System/
// Container/Component) but collapsed into one struct since the façade
// contract (internal/dsl/facade) never needs type-specific behavior.
type element struct {
	id          string
	kind        string
	name        string
	description string
	technology  string
	tags        []string
	group       string

	parent   *element
	children []*element

	properties map[string]string
}

func (e *element) Identifier() string { return e.id }
func (e *element) Kind() string { return e.kind }
func (e *element) Name() string { return e.name }

// relationship is the one concrete type behind every facade.Relationship
// handle.
type relationship struct {
	id          string
	source      *element
	dest        *element
	description string
	technology  string
	tags        []string
}

func (r *relationship) Identifier() string { return r.id }
