package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dslerrors "github.com/archdsl/wsdsl/internal/dsl/errors"
	"github.com/archdsl/wsdsl/internal/dsl/parser"
	"github.com/archdsl/wsdsl/internal/model"
	"github.com/archdsl/wsdsl/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:     "validate <path>",
	Aliases: []string{"val"},
	Short:   "Parse a Workspace DSL file or directory without printing a summary",
	Long: `validate exits 0 on a successful parse. On failure it prints the
offending file, line and source text and exits 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := ui.New()

	ws := model.New(true)
	p := parser.New(ws)
	p.SetRestricted(cfg.Restricted)

	err := p.Parse(args[0])
	if err == nil {
		out.Success("valid")
		return nil
	}

	var perr *dslerrors.DslParserError
	if errors.As(err, &perr) {
		out.ErrorDetail(fmt.Sprintf("%s:%d: %s", perr.File, perr.LineNumber, perr.Message), perr.SourceLine)
	} else {
		out.Error(err.Error())
	}
	os.Exit(1)
	return nil
}
