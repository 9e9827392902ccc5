package production

import "fmt"

// Branding parses: branding (pushes the Branding context; no fields of
// its own — logo/font are set by nested lines).
func Branding(r Request) (Result, error) {
	return Result{}, nil
}

// Logo parses: logo <path>, legal inside Branding. Suppressed in
// restricted mode (§4.5 "Restricted mode" — "background image for logos").
func Logo(r Request) (Result, error) {
	if r.Restricted {
		return Result{}, nil
	}
	r.Ctx.Workspace.Branding().SetLogo(r.Arg(0))
	return Result{}, nil
}

// Font parses: font <name> <url>, legal inside Branding.
func Font(r Request) (Result, error) {
	r.Ctx.Workspace.Branding().SetFont(r.Arg(0), r.Arg(1))
	return Result{}, nil
}

// Terminology pushes the Terminology context.
func Terminology(r Request) (Result, error) {
	return Result{}, nil
}

// TerminologyTerm parses: <term> "replacement", legal inside Terminology —
// term is one of the fixed words (person, softwareSystem, container, …).
func TerminologyTerm(r Request, term string) (Result, error) {
	r.Ctx.Workspace.Terminology().Set(term, r.Arg(0))
	return Result{}, nil
}

// Configuration pushes the Configuration context.
func Configuration(r Request) (Result, error) {
	return Result{}, nil
}

// ConfigurationProperty parses: <key> <value>, legal inside Configuration.
func ConfigurationProperty(r Request) (Result, error) {
	if len(r.Tokens) < 1 {
		return Result{}, fmt.Errorf("configuration property missing a key")
	}
	key := r.Tokens[0].Literal
	r.Ctx.Workspace.Configuration().Set(key, r.Arg(1))
	return Result{}, nil
}

// Users pushes the Users context.
func Users(r Request) (Result, error) {
	return Result{}, nil
}

// User parses: <username> <role>, legal inside Users.
func User(r Request) (Result, error) {
	if len(r.Tokens) < 1 {
		return Result{}, fmt.Errorf("user line missing a username")
	}
	r.Ctx.Workspace.Users().AddUser(r.Tokens[0].Literal, r.Arg(1))
	return Result{}, nil
}

// Constant parses: !constant NAME "value" — legal anywhere, and always
// recorded, even in restricted mode (constants are pure text substitution,
// not a filesystem/network/env operation).
func Constant(r Request) (Result, error) {
	if len(r.Tokens) < 2 {
		return Result{}, fmt.Errorf("!constant requires a name and a value")
	}
	r.Symbols.SetConstant(r.Tokens[0].Literal, r.Tokens[1].Literal)
	return Result{}, nil
}

// ImpliedRelationships parses: !impliedRelationships <true|false>, legal
// only inside Model.
func ImpliedRelationships(r Request) (Result, error) {
	r.Ctx.Workspace.SetImpliedRelationships(r.Arg(0))
	return Result{}, nil
}

// Docs parses: !docs <path>, legal inside Workspace or SoftwareSystem.
// Suppressed (silent no-op) in restricted mode.
func Docs(r Request) (Result, error) {
	if r.Restricted || r.Docs == nil || len(r.Tokens) == 0 {
		return Result{}, nil
	}
	_, err := r.Docs.Load(r.Tokens[0].Literal)
	return Result{}, err
}

// Adrs parses: !adrs <path>, same rules as Docs.
func Adrs(r Request) (Result, error) {
	return Docs(r)
}
