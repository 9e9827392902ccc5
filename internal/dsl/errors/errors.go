// Package errors implements the single error kind the engine ever raises,
// DslParserError (§7). Grounded on the teacher's errors.CompileError
// (Position + Message + Phase), reduced to the three fields spec.md
// mandates plus the originating File and the underlying Cause, with an
// Unwrap so the original cause survives.
package errors

import "fmt"

// DslParserError wraps any failure arising from tokenization, substitution,
// dispatch, or a production parser with the 1-based line number and the
// verbatim offending source line (§4.7, §7).
type DslParserError struct {
	Message    string
	LineNumber int
	SourceLine string
	File       string
	Cause      error
}

func (e *DslParserError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s: %q", e.File, e.LineNumber, e.Message, e.SourceLine)
	}
	return fmt.Sprintf("%d: %s: %q", e.LineNumber, e.Message, e.SourceLine)
}

func (e *DslParserError) Unwrap() error { return e.Cause }

// Wrap produces a DslParserError for the current line, preserving cause
// as the underlying error (§4.7 "the dispatcher wraps that error").
func Wrap(cause error, file string, lineNumber int, sourceLine string) *DslParserError {
	return &DslParserError{
		Message:    cause.Error(),
		LineNumber: lineNumber,
		SourceLine: sourceLine,
		File:       file,
		Cause:      cause,
	}
}

// New constructs a DslParserError directly from a message, with no
// underlying Cause. The parser reports dispatcher faults (unexpected
// tokens, unexpected "}", …) through Wrap instead.
func New(message, file string, lineNumber int, sourceLine string) *DslParserError {
	return &DslParserError{Message: message, LineNumber: lineNumber, SourceLine: sourceLine, File: file}
}
