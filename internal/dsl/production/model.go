package production

import "fmt"

// Workspace parses: workspace "name" "description" (§4.5 table "workspace").
func Workspace(r Request) (Result, error) {
	r.Ctx.Workspace.SetName(r.Arg(0), r.Arg(1))
	return Result{}, nil
}

// Enterprise parses: enterprise "name".
func Enterprise(r Request) (Result, error) {
	return Result{}, nil
}

// Person parses: person "name" "description" "tags".
func Person(r Request) (Result, error) {
	elem, err := r.Ctx.Workspace.Model().AddPerson(r.BindingHint, r.Ctx.Group, r.Arg(0), r.Arg(1), splitTags(r.Arg(2)))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// SoftwareSystem parses: softwareSystem "name" "description" "tags".
func SoftwareSystem(r Request) (Result, error) {
	elem, err := r.Ctx.Workspace.Model().AddSoftwareSystem(r.BindingHint, r.Ctx.Group, r.Arg(0), r.Arg(1), splitTags(r.Arg(2)))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// Container parses: container "name" "description" "technology" "tags",
// legal only when the enclosing context is a SoftwareSystem (§4.5 table).
func Container(r Request) (Result, error) {
	if r.Ctx.Element == nil {
		return Result{}, fmt.Errorf("container declared outside a softwareSystem block")
	}
	elem, err := r.Ctx.Workspace.Model().AddContainer(r.Ctx.Element, r.BindingHint, r.Ctx.Group, r.Arg(0), r.Arg(1), r.Arg(2), splitTags(r.Arg(3)))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// Component parses: component "name" "description" "technology" "tags",
// legal only when the enclosing context is a Container.
func Component(r Request) (Result, error) {
	if r.Ctx.Element == nil {
		return Result{}, fmt.Errorf("component declared outside a container block")
	}
	elem, err := r.Ctx.Workspace.Model().AddComponent(r.Ctx.Element, r.BindingHint, r.Ctx.Group, r.Arg(0), r.Arg(1), r.Arg(2), splitTags(r.Arg(3)))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// DeploymentEnvironment parses: deploymentEnvironment "name", legal only
// directly inside Model (§4.5 table).
func DeploymentEnvironment(r Request) (Result, error) {
	elem, err := r.Ctx.Workspace.Model().AddDeploymentEnvironment(r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// DeploymentNode parses: deploymentNode "name" "description" "technology",
// legal inside a DeploymentEnvironment or another DeploymentNode.
func DeploymentNode(r Request) (Result, error) {
	if !r.Ctx.IsDeploymentScope() {
		return Result{}, fmt.Errorf("deploymentNode declared outside a deploymentEnvironment/deploymentNode block")
	}
	parent := r.Ctx.Element
	if parent == nil {
		parent = r.Ctx.Env
	}
	elem, err := r.Ctx.Workspace.Model().AddDeploymentNode(parent, r.BindingHint, r.Arg(0), r.Arg(1), r.Arg(2))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// InfrastructureNode parses: infrastructureNode "name" "description"
// "technology", legal only inside a DeploymentNode.
func InfrastructureNode(r Request) (Result, error) {
	if r.Ctx.Element == nil {
		return Result{}, fmt.Errorf("infrastructureNode declared outside a deploymentNode block")
	}
	elem, err := r.Ctx.Workspace.Model().AddInfrastructureNode(r.Ctx.Element, r.BindingHint, r.Arg(0), r.Arg(1), r.Arg(2))
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// SoftwareSystemInstance parses: softwareSystemInstance <identifier>,
// legal only inside a DeploymentNode.
func SoftwareSystemInstance(r Request) (Result, error) {
	if r.Ctx.Element == nil {
		return Result{}, fmt.Errorf("softwareSystemInstance declared outside a deploymentNode block")
	}
	sys, err := resolveRef(r, r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	elem, err := r.Ctx.Workspace.Model().AddSoftwareSystemInstance(r.Ctx.Element, sys)
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// ContainerInstance parses: containerInstance <identifier>, legal only
// inside a DeploymentNode.
func ContainerInstance(r Request) (Result, error) {
	if r.Ctx.Element == nil {
		return Result{}, fmt.Errorf("containerInstance declared outside a deploymentNode block")
	}
	ctr, err := resolveRef(r, r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	elem, err := r.Ctx.Workspace.Model().AddContainerInstance(r.Ctx.Element, ctr)
	if err != nil {
		return Result{}, err
	}
	return Result{Element: elem}, nil
}

// ExplicitRelationship parses: <identifier> -> <identifier> "description"
// "technology" "tags" (§4.5 table: "-> as tokens[1]").
func ExplicitRelationship(r Request) (Result, error) {
	source, err := resolveRef(r, r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	dest, err := resolveRef(r, r.Arg(2))
	if err != nil {
		return Result{}, err
	}
	rel, err := r.Ctx.Workspace.Model().AddRelationship(r.BindingHint, source, dest, r.Arg(3), r.Arg(4), splitTags(r.Arg(5)))
	if err != nil {
		return Result{}, err
	}
	return Result{Relationship: rel}, nil
}

// Group parses: group "name", legal wherever IsGroupable() holds (§9
// "Groupable" capability). It carries no facade call of its own — the
// dispatcher's Push closure threads the group name into the child
// context so elements declared within it are namespaced (§4.5 table:
// "group ... namespaces elements declared within").
func Group(r Request) (Result, error) {
	return Result{}, nil
}

// ImplicitRelationship parses: -> <identifier> "description" "technology"
// "tags", legal only inside a single model-item context; the source is
// the enclosing element (§4.5 table: "-> as tokens[0]").
func ImplicitRelationship(r Request) (Result, error) {
	if r.Ctx.Element == nil {
		return Result{}, fmt.Errorf("implicit relationship declared outside an element block")
	}
	dest, err := resolveRef(r, r.Arg(1))
	if err != nil {
		return Result{}, err
	}
	rel, err := r.Ctx.Workspace.Model().AddRelationship(r.BindingHint, r.Ctx.Element, dest, r.Arg(2), r.Arg(3), splitTags(r.Arg(4)))
	if err != nil {
		return Result{}, err
	}
	return Result{Relationship: rel}, nil
}
