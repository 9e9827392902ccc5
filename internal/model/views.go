package model

import "github.com/archdsl/wsdsl/internal/dsl/facade"

// view is the concrete facade.View behind every view kind; the seven view
// constructors below differ in the "kind" tag and which scope element they
// record, and the filtered one also records its filter fields.
type view struct {
	kind  string
	key   string
	scope *element

	title          string
	includeExprs   []string
	excludeExprs   []string
	autoLayout     string
	animationSteps [][]string // one []identifier slice per "animation" call

	// dynamicSteps records "<source> -> <dest> "description"" lines inside
	// a dynamic view (§4.5 table "-> (dynamic only)").
	dynamicSteps []relationshipStep

	// filter fields, populated only when kind == "Filtered".
	baseViewKey string
	filterMode  string
	filterTags  []string
}

type relationshipStep struct {
	sourceBindingHint, destBindingHint, description string
}

func (v *view) SetTitle(title string)   { v.title = title }
func (v *view) Include(expr string)     { v.includeExprs = append(v.includeExprs, expr) }
func (v *view) Exclude(expr string)     { v.excludeExprs = append(v.excludeExprs, expr) }
func (v *view) AutoLayout(dir string)   { v.autoLayout = dir }
func (v *view) Animation(ids []string)  { v.animationSteps = append(v.animationSteps, ids) }

func (v *view) AddRelationshipStep(sourceBindingHint, destBindingHint, description string) error {
	v.dynamicSteps = append(v.dynamicSteps, relationshipStep{sourceBindingHint, destBindingHint, description})
	return nil
}

// viewsImpl is the views-block façade implementation.
type viewsImpl struct {
	views []*view
}

func (vs *viewsImpl) add(kind, key string, scope facade.Element) *view {
	el, _ := asElement(scope)
	v := &view{kind: kind, key: key, scope: el}
	vs.views = append(vs.views, v)
	return v
}

func (vs *viewsImpl) AddSystemLandscapeView(key string) facade.View {
	return vs.add("SystemLandscape", key, nil)
}

func (vs *viewsImpl) AddSystemContextView(system facade.Element, key string) facade.View {
	return vs.add("SystemContext", key, system)
}

func (vs *viewsImpl) AddContainerView(system facade.Element, key string) facade.View {
	return vs.add("Container", key, system)
}

func (vs *viewsImpl) AddComponentView(container facade.Element, key string) facade.View {
	return vs.add("Component", key, container)
}

func (vs *viewsImpl) AddDynamicView(scope facade.Element, key string) facade.View {
	return vs.add("Dynamic", key, scope)
}

func (vs *viewsImpl) AddDeploymentView(env facade.Element, key string) facade.View {
	return vs.add("Deployment", key, env)
}

func (vs *viewsImpl) AddFilteredView(baseViewKey, key, mode string, tags []string) facade.View {
	v := vs.add("Filtered", key, nil)
	v.baseViewKey = baseViewKey
	v.filterMode = mode
	v.filterTags = tags
	return v
}
