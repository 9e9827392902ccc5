// Package cliconfig loads cmd/wsdsl's optional TOML configuration file.
// Grounded on madstone-tech-loko's internal/adapters/config.Loader
// (BurntSushi/toml, project file overriding a set of defaults), trimmed
// to the handful of settings this CLI actually exposes.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of wsdsl.toml.
type Config struct {
	Restricted bool   `toml:"restricted"`
	DocsDir    string `toml:"docs_dir"`
}

// Default returns the zero-value configuration: unrestricted, no docs dir.
func Default() *Config {
	return &Config{}
}

// Loader reads wsdsl.toml, optionally merging a user-global file ahead of
// the one passed explicitly via --config.
type Loader struct {
	globalConfigPath string
}

// NewLoader locates the user-global config at ~/.config/wsdsl/config.toml.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	global := ""
	if home != "" {
		global = filepath.Join(home, ".config", "wsdsl", "config.toml")
	}
	return &Loader{globalConfigPath: global}
}

// Load returns the effective configuration: defaults, overridden by the
// global file if present, overridden by path if non-empty.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if l.globalConfigPath != "" {
		if _, err := os.Stat(l.globalConfigPath); err == nil {
			if _, err := toml.DecodeFile(l.globalConfigPath, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", l.globalConfigPath, err)
			}
		}
	}

	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
