package model

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// idGenerator assigns an Element its façade identifier (§3, SPEC_FULL.md
// §3 "Concrete façade identifiers"): a flat, workspace-scoped counter, or
// a hierarchical dot-composed path built from the DSL-supplied binding
// identifier (falling back to a slugified name when there is none).
//
// The flat counter starts at an offset below 1,000,000 taken from a UUIDv7
// draw rather than at zero, so two independently-created workspaces
// usually number their elements from different points. The offsets are
// not guaranteed distinct, and the ranges two workspaces count through
// can overlap, so flat identifiers may repeat across workspaces.
type idGenerator struct {
	hierarchical bool
	next         uint64
}

func newIDGenerator(hierarchical bool) *idGenerator {
	seed, err := uuid.NewV7()
	var start uint64
	if err == nil {
		start = binary.BigEndian.Uint64(seed[:8]) % 1_000_000
	}
	return &idGenerator{hierarchical: hierarchical, next: start}
}

// flat returns the next "el-<n>" identifier.
func (g *idGenerator) flat() string {
	g.next++
	return fmt.Sprintf("el-%d", g.next)
}

// composeHierarchical composes parentID + "." + the binding identifier (or a
// slug of name when bindingHint is empty). parentID == "" for a root
// element.
func (g *idGenerator) composeHierarchical(parentID, bindingHint, name string) string {
	segment := bindingHint
	if segment == "" {
		segment = slugify(name)
	}
	if parentID == "" {
		return segment
	}
	return parentID + "." + segment
}

// assign is the single entry point element constructors call: it picks
// flat or hierarchical numbering per the generator's mode.
func (g *idGenerator) assign(parentID, bindingHint, name string) string {
	if g.hierarchical {
		return g.composeHierarchical(parentID, bindingHint, name)
	}
	return g.flat()
}

func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	prevDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
