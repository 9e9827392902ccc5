package model

import "github.com/archdsl/wsdsl/internal/dsl/facade"

// elementStyle is the concrete facade.ElementStyle behind every
// "element <tag> { ... }" block.
type elementStyle struct {
	tag        string
	background string
	color      string
	shape      string
	icon       string
	properties map[string]string
}

func (s *elementStyle) SetBackground(c string)       { s.background = c }
func (s *elementStyle) SetColor(c string)            { s.color = c }
func (s *elementStyle) SetShape(shape string)        { s.shape = shape }
func (s *elementStyle) SetIcon(path string)          { s.icon = path }
func (s *elementStyle) Set(property, value string)   { s.properties[property] = value }

// relationshipStyle is the concrete facade.RelationshipStyle behind every
// "relationship <tag> { ... }" block.
type relationshipStyle struct {
	tag        string
	color      string
	thickness  string
	style      string
	properties map[string]string
}

func (s *relationshipStyle) SetColor(c string)          { s.color = c }
func (s *relationshipStyle) SetThickness(n string)      { s.thickness = n }
func (s *relationshipStyle) SetStyle(style string)      { s.style = style }
func (s *relationshipStyle) Set(property, value string) { s.properties[property] = value }

// stylesImpl is the styles-block façade implementation.
type stylesImpl struct {
	elementStyles      []*elementStyle
	relationshipStyles []*relationshipStyle
}

func (s *stylesImpl) AddElementStyle(tag string) facade.ElementStyle {
	es := &elementStyle{tag: tag, properties: make(map[string]string)}
	s.elementStyles = append(s.elementStyles, es)
	return es
}

func (s *stylesImpl) AddRelationshipStyle(tag string) facade.RelationshipStyle {
	rs := &relationshipStyle{tag: tag, properties: make(map[string]string)}
	s.relationshipStyles = append(s.relationshipStyles, rs)
	return rs
}
