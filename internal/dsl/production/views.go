package production

import (
	"fmt"

	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
)

// SystemLandscapeView parses: systemLandscape <key> (inside Views).
func SystemLandscapeView(r Request) (Result, error) {
	return Result{View: r.Ctx.Workspace.Views().AddSystemLandscapeView(r.Arg(0))}, nil
}

// SystemContextView parses: systemContext <identifier> <key>.
func SystemContextView(r Request) (Result, error) {
	sys, err := resolveRef(r, r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	return Result{View: r.Ctx.Workspace.Views().AddSystemContextView(sys, r.Arg(1))}, nil
}

// ContainerView parses: container <identifier> <key> (inside Views — the
// same keyword as the model-block "container", disambiguated by context).
func ContainerView(r Request) (Result, error) {
	sys, err := resolveRef(r, r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	return Result{View: r.Ctx.Workspace.Views().AddContainerView(sys, r.Arg(1))}, nil
}

// ComponentView parses: component <identifier> <key> (inside Views).
func ComponentView(r Request) (Result, error) {
	ctr, err := resolveRef(r, r.Arg(0))
	if err != nil {
		return Result{}, err
	}
	return Result{View: r.Ctx.Workspace.Views().AddComponentView(ctr, r.Arg(1))}, nil
}

// DynamicView parses: dynamic <identifier|"*"> <key>.
func DynamicView(r Request) (Result, error) {
	ref := r.Arg(0)
	if ref == "*" {
		return Result{View: r.Ctx.Workspace.Views().AddDynamicView(nil, r.Arg(1))}, nil
	}
	elem, err := resolveRef(r, ref)
	if err != nil {
		return Result{}, err
	}
	return Result{View: r.Ctx.Workspace.Views().AddDynamicView(elem, r.Arg(1))}, nil
}

// DeploymentView parses: deployment <identifier> <environment> <key>.
func DeploymentView(r Request) (Result, error) {
	env, err := resolveRef(r, r.Arg(1))
	if err != nil {
		return Result{}, err
	}
	return Result{View: r.Ctx.Workspace.Views().AddDeploymentView(env, r.Arg(2))}, nil
}

// FilteredView parses: filtered <baseViewKey> <include|exclude> "tags" <key>.
func FilteredView(r Request) (Result, error) {
	return Result{View: r.Ctx.Workspace.Views().AddFilteredView(r.Arg(0), r.Arg(3), r.Arg(1), splitTags(r.Arg(2)))}, nil
}

// Title parses: title "text", legal inside any view context.
func Title(r Request) (Result, error) {
	if r.Ctx.View == nil {
		return Result{}, fmt.Errorf("title declared outside a view block")
	}
	r.Ctx.View.SetTitle(r.Arg(0))
	return Result{}, nil
}

// Include parses: include <expr>, legal inside any view context.
func Include(r Request) (Result, error) {
	if r.Ctx.View == nil {
		return Result{}, fmt.Errorf("include declared outside a view block")
	}
	r.Ctx.View.Include(r.Arg(0))
	return Result{}, nil
}

// Exclude parses: exclude <expr>, legal inside any view context.
func Exclude(r Request) (Result, error) {
	if r.Ctx.View == nil {
		return Result{}, fmt.Errorf("exclude declared outside a view block")
	}
	r.Ctx.View.Exclude(r.Arg(0))
	return Result{}, nil
}

// AutoLayout parses: autoLayout [rankDirection], legal inside any view context.
func AutoLayout(r Request) (Result, error) {
	if r.Ctx.View == nil {
		return Result{}, fmt.Errorf("autoLayout declared outside a view block")
	}
	dir := r.Arg(0)
	if dir == "" {
		dir = "tb"
	}
	r.Ctx.View.AutoLayout(dir)
	return Result{}, nil
}

// Animation parses: animation <identifier>..., a single line legal only
// where HasAnimation() — static and deployment views (§9 "ViewWithAnimation").
func Animation(r Request) (Result, error) {
	if !r.Ctx.HasAnimation() || r.Ctx.View == nil {
		return Result{}, fmt.Errorf("animation declared outside a static/deployment view block")
	}
	r.Ctx.View.Animation(r.Lits())
	return Result{}, nil
}

// DynamicRelationship parses: <identifier> -> <identifier> "description",
// legal only inside a DynamicView (§4.5 table: "-> (dynamic only)").
func DynamicRelationship(r Request) (Result, error) {
	if r.Ctx.Kind != ctxstack.KindDynamicView || r.Ctx.View == nil {
		return Result{}, fmt.Errorf("relationship step declared outside a dynamic view block")
	}
	if err := r.Ctx.View.AddRelationshipStep(r.Arg(0), r.Arg(2), r.Arg(3)); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}
