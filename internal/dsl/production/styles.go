package production

import "fmt"

// ElementStyleBlock parses: element "tag" (inside Styles).
func ElementStyleBlock(r Request) (Result, error) {
	return Result{ElementStyle: r.Ctx.Workspace.Styles().AddElementStyle(r.Arg(0))}, nil
}

// RelationshipStyleBlock parses: relationship "tag" (inside Styles).
func RelationshipStyleBlock(r Request) (Result, error) {
	return Result{RelationshipStyle: r.Ctx.Workspace.Styles().AddRelationshipStyle(r.Arg(0))}, nil
}

// Background parses: background #hexcolor, legal only inside ElementStyle.
func Background(r Request) (Result, error) {
	if r.Ctx.ElementStyle == nil {
		return Result{}, fmt.Errorf("background declared outside an element style block")
	}
	r.Ctx.ElementStyle.SetBackground(r.Arg(0))
	return Result{}, nil
}

// Color parses: color #hexcolor, legal inside ElementStyle or
// RelationshipStyle (§4.5 table: "Style keywords ... delegate to style parsers").
func Color(r Request) (Result, error) {
	switch {
	case r.Ctx.ElementStyle != nil:
		r.Ctx.ElementStyle.SetColor(r.Arg(0))
	case r.Ctx.RelationshipStyle != nil:
		r.Ctx.RelationshipStyle.SetColor(r.Arg(0))
	default:
		return Result{}, fmt.Errorf("color declared outside a style block")
	}
	return Result{}, nil
}

// Shape parses: shape <name>, legal only inside ElementStyle.
func Shape(r Request) (Result, error) {
	if r.Ctx.ElementStyle == nil {
		return Result{}, fmt.Errorf("shape declared outside an element style block")
	}
	r.Ctx.ElementStyle.SetShape(r.Arg(0))
	return Result{}, nil
}

// Icon parses: icon <path>, legal only inside ElementStyle. Suppressed
// (silent no-op) in restricted mode (§4.5 "Restricted mode" — "icon
// references in element styles").
func Icon(r Request) (Result, error) {
	if r.Ctx.ElementStyle == nil {
		return Result{}, fmt.Errorf("icon declared outside an element style block")
	}
	if r.Restricted {
		return Result{}, nil
	}
	r.Ctx.ElementStyle.SetIcon(r.Arg(0))
	return Result{}, nil
}

// Thickness parses: thickness <n>, legal only inside RelationshipStyle.
func Thickness(r Request) (Result, error) {
	if r.Ctx.RelationshipStyle == nil {
		return Result{}, fmt.Errorf("thickness declared outside a relationship style block")
	}
	r.Ctx.RelationshipStyle.SetThickness(r.Arg(0))
	return Result{}, nil
}

// StyleKeyword parses: style <solid|dashed|dotted>, legal only inside
// RelationshipStyle. Named StyleKeyword (not Style) to avoid clashing with
// the "styles" block keyword.
func StyleKeyword(r Request) (Result, error) {
	if r.Ctx.RelationshipStyle == nil {
		return Result{}, fmt.Errorf("style declared outside a relationship style block")
	}
	r.Ctx.RelationshipStyle.SetStyle(r.Arg(0))
	return Result{}, nil
}

// GenericStyleProperty parses any other "<property> <value>" line found
// inside an ElementStyle/RelationshipStyle block — the catch-all the
// dispatch table falls back to for the long tail of style fields spec.md
// leaves as out-of-scope field parsing (§1).
func GenericStyleProperty(r Request) (Result, error) {
	property := ""
	if len(r.Tokens) > 0 {
		property = r.Tokens[0].Literal
	}
	switch {
	case r.Ctx.ElementStyle != nil:
		r.Ctx.ElementStyle.Set(property, r.Arg(1))
	case r.Ctx.RelationshipStyle != nil:
		r.Ctx.RelationshipStyle.Set(property, r.Arg(1))
	default:
		return Result{}, fmt.Errorf("style property declared outside a style block")
	}
	return Result{}, nil
}
