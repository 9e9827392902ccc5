// Package ui provides styled terminal output for cmd/wsdsl using
// lipgloss. Grounded on madstone-tech-loko's internal/ui/output.go —
// same color-role naming (primary/success/warning/error/muted), trimmed
// to the subset of message kinds the CLI actually emits.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#2563eb")
	colorSuccess = lipgloss.Color("#10b981")
	colorWarning = lipgloss.Color("#f59e0b")
	colorError   = lipgloss.Color("#ef4444")
	colorMuted   = lipgloss.Color("#6b7280")
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	ErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)
)

// Output handles styled terminal output for the wsdsl CLI.
type Output struct {
	writer    io.Writer
	errWriter io.Writer
}

// New creates an Output writing to stdout/stderr.
func New() *Output {
	return &Output{writer: os.Stdout, errWriter: os.Stderr}
}

func (o *Output) Title(msg string) {
	fmt.Fprintln(o.writer, TitleStyle.Render(msg))
}

func (o *Output) Success(msg string) {
	fmt.Fprintln(o.writer, SuccessStyle.Render("✓ "+msg))
}

func (o *Output) Warning(msg string) {
	fmt.Fprintln(o.errWriter, WarningStyle.Render("⚠ "+msg))
}

func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errWriter, ErrorStyle.Render("✗ "+msg))
}

// ErrorDetail prints a parse failure the way a DslParserError formats:
// the offending location in the error style, the source line muted below.
func (o *Output) ErrorDetail(msg string, sourceLine string) {
	fmt.Fprintln(o.errWriter, ErrorBox.Render(ErrorStyle.Render(msg)+"\n"+MutedStyle.Render(sourceLine)))
}

func (o *Output) KeyValue(key, value string) {
	fmt.Fprintf(o.writer, "%s: %s\n", MutedStyle.Render(key), value)
}

func (o *Output) Divider() {
	fmt.Fprintln(o.writer, MutedStyle.Render(strings.Repeat("─", 40)))
}
