// File: config.go
// Title: Shell Configuration
// Description: Loads ewsh shell configuration from a TOML file with
//              sensible defaults for the interactive session.
// Author: zhitkovns
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24

package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the shell's tunable settings.
type Config struct {
	// Prompt is the REPL prompt string.
	Prompt string `toml:"prompt"`

	// HistoryFile is the readline history path.
	HistoryFile string `toml:"history_file"`

	// Verbose enables debug-level logging of registry and dispatch
	// events.
	Verbose bool `toml:"verbose"`
}

// DefaultConfig returns the settings used when no config file is
// given.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Prompt:      "ewsh> ",
		HistoryFile: filepath.Join(home, ".ewsh_history"),
	}
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// An empty path yields the defaults without touching the filesystem.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("shell: failed to load config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	return cfg, nil
}
