// Package model is the one concrete implementation of internal/dsl/facade
// shipped in this repository (SPEC_FULL.md §1 "internal/model provides a
// deliberately narrow, concrete implementation of the façade interfaces").
// It exists to make the engine exercisable end-to-end; it is not a
// general-purpose architecture-modeling library — field validation,
// rendering, and export are all out of scope.
package model

import (
	"fmt"

	"github.com/archdsl/wsdsl/internal/dsl/facade"
)

// Workspace is the root façade implementation (§6).
type Workspace struct {
	name        string
	description string

	hierarchical bool
	ids          *idGenerator

	model       *modelImpl
	views       *viewsImpl
	styles      *stylesImpl
	branding    *brandingImpl
	terminology *terminologyImpl
	config      *configurationImpl
	users       *usersImpl

	impliedRelationships string
}

// New creates an empty Workspace. hierarchical selects flat ("el-<n>" from
// a seeded counter) or dot-composed hierarchical identifiers (§4.4, SPEC_FULL.md
// §3); it is fixed for the workspace's lifetime.
func New(hierarchical bool) *Workspace {
	w := &Workspace{
		hierarchical:         hierarchical,
		ids:                  newIDGenerator(hierarchical),
		impliedRelationships: "false",
	}
	w.model = &modelImpl{ws: w}
	w.views = &viewsImpl{}
	w.styles = &stylesImpl{}
	w.branding = &brandingImpl{}
	w.terminology = &terminologyImpl{terms: make(map[string]string)}
	w.config = &configurationImpl{properties: make(map[string]string)}
	w.users = &usersImpl{}
	return w
}

func (w *Workspace) SetName(name, description string) {
	w.name = name
	w.description = description
}

func (w *Workspace) Name() string { return w.name }
func (w *Workspace) Description() string { return w.description }

func (w *Workspace) Model() facade.Model { return w.model }
func (w *Workspace) Views() facade.Views { return w.views }
func (w *Workspace) Styles() facade.Styles { return w.styles }
func (w *Workspace) Branding() facade.Branding { return w.branding }
func (w *Workspace) Terminology() facade.Terminology { return w.terminology }
func (w *Workspace) Configuration() facade.Configuration { return w.config }
func (w *Workspace) Users() facade.Users { return w.users }

func (w *Workspace) SetImpliedRelationships(strategy string) {
	w.impliedRelationships = strategy
}

func (w *Workspace) ImpliedRelationships() string { return w.impliedRelationships }

func (w *Workspace) HierarchicalIdentifiers() bool { return w.hierarchical }

// ElementCount and RelationshipCount expose summary counts for the CLI's
// "parse" subcommand (SPEC_FULL.md §6 "print a summary").
func (w *Workspace) ElementCount() int { return len(w.model.elements) }
func (w *Workspace) RelationshipCount() int { return len(w.model.relationships) }
func (w *Workspace) ViewCount() int { return len(w.views.views) }

// Elements returns every element created so far, in creation order.
func (w *Workspace) Elements() []facade.Element {
	out := make([]facade.Element, len(w.model.elements))
	for i, e := range w.model.elements {
		out[i] = e
	}
	return out
}

func (w *Workspace) String() string {
	return fmt.Sprintf("workspace %q: %d elements, %d relationships, %d views",
		w.name, w.ElementCount(), w.RelationshipCount(), w.ViewCount())
}
