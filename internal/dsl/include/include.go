// Package include implements the include resolver (component I, §4.6):
// "!include <path-or-URL>" produces a new ordered line sequence which the
// engine then recursively re-enters. Cycle detection and relative-path
// anchoring are grounded on the teacher's internal/compiler/resolver
// (loading map for circular-import detection, filepath.Dir/filepath.Join).
// Nothing is cached: every directive reads its target afresh.
package include

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/archdsl/wsdsl/internal/dsl/source"
)

// maxIncludeBody caps a fetched HTTPS include body (§5: "a complete body"
// is returned synchronously, but an engine must still bound memory use
// against a hostile or mistaken URL).
const maxIncludeBody = 10 << 20 // 10 MiB

// Resolver resolves "!include" directives, tracking in-flight files to
// detect cycles (§4.6 "Cycle detection is not specified by the source. An
// implementation MAY detect cycles and fail with a clear error").
type Resolver struct {
	loading map[string]bool
}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{loading: make(map[string]bool)}
}

// ErrCycle is returned when an include chain would revisit a file already
// being resolved.
type ErrCycle struct{ Path string }

func (e *ErrCycle) Error() string {
	return fmt.Sprintf("circular !include detected: %s", e.Path)
}

// Enter marks path as currently loading; the returned func must be called
// (typically via defer) once the include has been fully processed.
func (r *Resolver) Enter(path string) (leave func(), err error) {
	if r.loading[path] {
		return nil, &ErrCycle{Path: path}
	}
	r.loading[path] = true
	return func() { delete(r.loading, path) }, nil
}

// Resolve turns one "!include <path-or-URL>" directive into an ordered
// line sequence plus the resolved origin (a local path or a URL), relative
// to currentDir for non-absolute local paths (§4.6).
func Resolve(target, currentDir string) (lines []source.RawLine, origin string, err error) {
	if isURL(target) {
		lines, err = fetchHTTPS(target)
		return lines, target, err
	}

	full := target
	if !filepath.IsAbs(full) {
		full = filepath.Join(currentDir, target)
	}
	full = filepath.Clean(full)

	lines, err = source.ReadFile(full)
	if err != nil {
		return nil, full, err
	}
	return lines, full, nil
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "https://") || strings.HasPrefix(target, "http://")
}

func fetchHTTPS(url string) ([]source.RawLine, error) {
	resp, err := http.Get(url) //nolint:gosec // URL is DSL-author-supplied, same trust level as a local include path
	if err != nil {
		return nil, fmt.Errorf("fetching include %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching include %s: status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIncludeBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading include %s: %w", url, err)
	}
	if len(body) > maxIncludeBody {
		return nil, fmt.Errorf("include %s exceeds %d bytes", url, maxIncludeBody)
	}

	return source.ReadString(string(body)), nil
}
