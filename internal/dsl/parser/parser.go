// Package parser implements Assembly (component A, §6): the public entry
// points that wire the line reader, lexer, substitutor, context stack,
// symbol table, include resolver and dispatcher into one engine instance,
// and drive the L→T→S→D loop — including the recursion "!include"
// requires. Grounded on the teacher's top-level compiler.Compile, which
// plays the same orchestrating role over its own lexer/parser/resolver
// trio (internal/compiler/compiler.go).
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	dslerrors "github.com/archdsl/wsdsl/internal/dsl/errors"
	"github.com/archdsl/wsdsl/internal/dsl/ctxstack"
	"github.com/archdsl/wsdsl/internal/dsl/dispatch"
	"github.com/archdsl/wsdsl/internal/dsl/facade"
	"github.com/archdsl/wsdsl/internal/dsl/include"
	"github.com/archdsl/wsdsl/internal/dsl/production"
	"github.com/archdsl/wsdsl/internal/dsl/source"
	"github.com/archdsl/wsdsl/internal/dsl/symbols"
)

// SourceLine is one entry of the preserved source buffer (§4.6): the
// verbatim text that was actually dispatched, with included content
// spliced in place of the "!include" line that pulled it in.
type SourceLine struct {
	File   string
	Number int
	Text   string
}

// Parser is one engine instance: its lifetime spans exactly one top-level
// Parse/ParseString call and everything that recurses from it (§3
// "Lifecycle" — one Parser, one symbol table, one context stack).
type Parser struct {
	workspace  facade.Workspace
	stack      *ctxstack.Stack
	symbols    *symbols.Table
	dispatcher *dispatch.Dispatcher
	includes   *include.Resolver
	docs       production.DocsHandler
	restricted bool
	preserved  []SourceLine
}

// New creates a Parser bound to ws — the workspace façade every Context
// threads downward (§3).
func New(ws facade.Workspace) *Parser {
	return &Parser{
		workspace:  ws,
		stack:      ctxstack.New(),
		symbols:    symbols.New(),
		dispatcher: dispatch.New(),
		includes:   include.New(),
	}
}

// SetRestricted toggles restricted mode: filesystem, network, and
// environment-touching operations become silent no-ops rather than
// errors (§4.5 "Restricted mode").
func (p *Parser) SetRestricted(restricted bool) { p.restricted = restricted }

// SetDocsHandler installs the collaborator "!docs"/"!adrs" delegate to.
// Nil (the default) makes both directives silent no-ops.
func (p *Parser) SetDocsHandler(h production.DocsHandler) { p.docs = h }

// Workspace returns the façade this Parser is populating.
func (p *Parser) Workspace() facade.Workspace { return p.workspace }

// PreservedSource returns the source-line buffer assembled so far, in
// dispatch order, with included content replacing its "!include" line
// (§4.6, §8 "Source reconstruction").
func (p *Parser) PreservedSource() []SourceLine {
	return append([]SourceLine(nil), p.preserved...)
}

// Parse parses a file or, recursively, every regular file beneath a
// directory (in stable filesystem order), per parse(path)'s
// directory-handling rule (§6).
func (p *Parser) Parse(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if !info.IsDir() {
		if err := p.parseFile(path); err != nil {
			return err
		}
		return p.finish()
	}

	files, err := source.WalkDir(path)
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, f := range files {
		if err := p.parseFile(f); err != nil {
			return err
		}
	}
	return p.finish()
}

// ParseString parses an in-memory fragment with no originating file (used
// by tests); relative includes resolve against the working directory.
func (p *Parser) ParseString(fragment string) error {
	lines := source.ReadString(fragment)
	if err := p.parseLines(lines, ""); err != nil {
		return err
	}
	return p.finish()
}

func (p *Parser) parseFile(path string) error {
	lines, err := source.ReadFile(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return p.parseLines(lines, path)
}

// finish enforces that every opened block was closed (§3 "SHOULD reject
// an unterminated context stack at end of input"; an Open Question
// resolved as: enforce it, per the recommendation).
func (p *Parser) finish() error {
	if p.stack.Len() != 0 {
		return fmt.Errorf("unterminated block: %d context(s) still open at end of input", p.stack.Len())
	}
	return nil
}

// parseLines drives the L→T→S→D loop over one already-read line sequence,
// recursing into include.Resolve for every "!include" it encounters.
func (p *Parser) parseLines(lines []source.RawLine, file string) error {
	leave, err := p.includes.Enter(file)
	if err != nil {
		return err
	}
	if leave != nil {
		defer leave()
	}

	state := &dispatch.State{
		Stack:      p.stack,
		Symbols:    p.symbols,
		Workspace:  p.workspace,
		Restricted: p.restricted,
		Docs:       p.docs,
		File:       file,
	}

	for _, raw := range lines {
		outcome, err := p.dispatcher.ProcessLine(state, raw.Number, raw.Text)
		if err != nil {
			return dslerrors.Wrap(err, file, raw.Number, raw.Text)
		}
		if outcome.Skip {
			continue
		}
		if outcome.Include != nil {
			dir := filepath.Dir(file)
			included, origin, err := include.Resolve(outcome.Include.Target, dir)
			if err != nil {
				return dslerrors.Wrap(err, file, raw.Number, raw.Text)
			}
			if err := p.parseLines(included, origin); err != nil {
				return err
			}
			continue
		}
		p.preserved = append(p.preserved, SourceLine{File: file, Number: raw.Number, Text: raw.Text})
	}
	return nil
}
