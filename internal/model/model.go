package model

import (
	"github.com/archdsl/wsdsl/internal/dsl/facade"
)

// modelImpl is the model-block façade implementation (§6 Model interface).
type modelImpl struct {
	ws            *Workspace
	elements      []*element
	relationships []*relationship
}

func asElement(e facade.Element) (*element, error) {
	if e == nil {
		return nil, nil
	}
	concrete, ok := e.(*element)
	if !ok {
		return nil, newValidationError("Element", "", "element handle did not originate from this workspace")
	}
	return concrete, nil
}

func (m *modelImpl) add(parent *element, kind, bindingHint, group, name, description, technology string, tags []string) *element {
	parentID := ""
	if parent != nil {
		parentID = parent.id
	}
	e := &element{
		id:          m.ws.ids.assign(parentID, bindingHint, name),
		kind:        kind,
		name:        name,
		description: description,
		technology:  technology,
		tags:        tags,
		group:       group,
		parent:      parent,
		properties:  make(map[string]string),
	}
	if parent != nil {
		parent.children = append(parent.children, e)
	}
	m.elements = append(m.elements, e)
	return e
}

func (m *modelImpl) AddPerson(bindingHint, group, name, description string, tags []string) (facade.Element, error) {
	if name == "" {
		return nil, newValidationError("Person", "name", "name is required")
	}
	return m.add(nil, "Person", bindingHint, group, name, description, "", tags), nil
}

func (m *modelImpl) AddSoftwareSystem(bindingHint, group, name, description string, tags []string) (facade.Element, error) {
	if name == "" {
		return nil, newValidationError("SoftwareSystem", "name", "name is required")
	}
	return m.add(nil, "SoftwareSystem", bindingHint, group, name, description, "", tags), nil
}

func (m *modelImpl) AddContainer(parent facade.Element, bindingHint, group, name, description, technology string, tags []string) (facade.Element, error) {
	p, err := asElement(parent)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, newValidationError("Container", "parent", "container requires a parent software system")
	}
	return m.add(p, "Container", bindingHint, group, name, description, technology, tags), nil
}

func (m *modelImpl) AddComponent(parent facade.Element, bindingHint, group, name, description, technology string, tags []string) (facade.Element, error) {
	p, err := asElement(parent)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, newValidationError("Component", "parent", "component requires a parent container")
	}
	return m.add(p, "Component", bindingHint, group, name, description, technology, tags), nil
}

func (m *modelImpl) AddDeploymentEnvironment(name string) (facade.Element, error) {
	if name == "" {
		return nil, newValidationError("DeploymentEnvironment", "name", "name is required")
	}
	return m.add(nil, "DeploymentEnvironment", "", "", name, "", "", nil), nil
}

func (m *modelImpl) AddDeploymentNode(parent facade.Element, bindingHint, name, description, technology string) (facade.Element, error) {
	p, err := asElement(parent)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, newValidationError("DeploymentNode", "parent", "deploymentNode requires an enclosing deploymentEnvironment or deploymentNode")
	}
	return m.add(p, "DeploymentNode", bindingHint, "", name, description, technology, nil), nil
}

func (m *modelImpl) AddInfrastructureNode(parent facade.Element, bindingHint, name, description, technology string) (facade.Element, error) {
	p, err := asElement(parent)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, newValidationError("InfrastructureNode", "parent", "infrastructureNode requires a parent deploymentNode")
	}
	return m.add(p, "InfrastructureNode", bindingHint, "", name, description, technology, nil), nil
}

func (m *modelImpl) AddSoftwareSystemInstance(parent facade.Element, system facade.Element) (facade.Element, error) {
	p, err := asElement(parent)
	if err != nil {
		return nil, err
	}
	sys, err := asElement(system)
	if err != nil {
		return nil, err
	}
	if p == nil || sys == nil {
		return nil, newValidationError("SoftwareSystemInstance", "", "requires a parent deploymentNode and a software system reference")
	}
	inst := m.add(p, "SoftwareSystemInstance", "", "", sys.name, sys.description, sys.technology, sys.tags)
	inst.properties["instanceOf"] = sys.id
	return inst, nil
}

func (m *modelImpl) AddContainerInstance(parent facade.Element, container facade.Element) (facade.Element, error) {
	p, err := asElement(parent)
	if err != nil {
		return nil, err
	}
	ctr, err := asElement(container)
	if err != nil {
		return nil, err
	}
	if p == nil || ctr == nil {
		return nil, newValidationError("ContainerInstance", "", "requires a parent deploymentNode and a container reference")
	}
	inst := m.add(p, "ContainerInstance", "", "", ctr.name, ctr.description, ctr.technology, ctr.tags)
	inst.properties["instanceOf"] = ctr.id
	return inst, nil
}

func (m *modelImpl) AddRelationship(sourceBindingHint string, source, dest facade.Element, description, technology string, tags []string) (facade.Relationship, error) {
	src, err := asElement(source)
	if err != nil {
		return nil, err
	}
	dst, err := asElement(dest)
	if err != nil {
		return nil, err
	}
	if src == nil || dst == nil {
		return nil, newValidationError("Relationship", "", "both a source and a destination element are required")
	}
	rel := &relationship{
		id:          m.ws.ids.assign("", sourceBindingHint, src.name+"->"+dst.name),
		source:      src,
		dest:        dst,
		description: description,
		technology:  technology,
		tags:        tags,
	}
	m.relationships = append(m.relationships, rel)
	return rel, nil
}
