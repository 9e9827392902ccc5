// Package subst implements the substitutor (component S, §4.2): it expands
// ${name} references in a token's literal against the constant table and,
// unless restricted, the process environment.
package subst

import (
	"os"
	"regexp"
	"strings"
)

// refPattern matches ${NAME} where NAME is [A-Za-z0-9._-]+ (§4.2/§6).
var refPattern = regexp.MustCompile(`\$\{([A-Za-z0-9._-]+)\}`)

// Lookup resolves a constant name to its value. Ok is false if undefined.
type Lookup func(name string) (value string, ok bool)

// Expand replaces every ${NAME} occurrence in s. Constants take priority
// over the environment; an unresolved reference (restricted mode, or name
// absent from both the constants table and the environment) is left
// intact rather than erroring (§4.2, §8 invariant 4 — "no error").
//
// Expansion is a single left-to-right pass over the original text — it
// does not re-scan substituted values for further ${...} occurrences
// (§4.2: "no fixed-point iteration over substituted results").
func Expand(s string, constants Lookup, restricted bool) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return refPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := refPattern.FindStringSubmatch(match)[1]
		if v, ok := constants(name); ok {
			return v
		}
		if !restricted {
			if v, ok := os.LookupEnv(name); ok {
				return v
			}
		}
		return match
	})
}
