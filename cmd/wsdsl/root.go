// Package main wires Assembly (internal/dsl/parser) into a cobra CLI
// (SPEC_FULL.md §6 "CLI surface"). Grounded on
// madstone-tech-loko/cmd/root.go's persistent-flag/PersistentPreRunE
// shape, trimmed to the config files internal/cliconfig reads (a fixed
// ~/.config/wsdsl/config.toml plus an optional --config path; no XDG
// search, no viper — BurntSushi/toml covers it).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/archdsl/wsdsl/internal/cliconfig"
)

var (
	cfgFile       string
	restrictedFlg bool

	cfg    *cliconfig.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wsdsl",
	Short: "Parse and validate Workspace DSL architecture documents",
	Long: `wsdsl is a parser for the Workspace DSL — a Structurizr-style
textual format for describing software architecture models: people,
systems, containers, components, deployment nodes, views and styles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cliconfig.NewLoader().Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if restrictedFlg {
			cfg.Restricted = true
		}

		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a wsdsl.toml config file")
	rootCmd.PersistentFlags().BoolVar(&restrictedFlg, "restricted", false, "run the engine in restricted mode (no filesystem/network/env access)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
