// Package config loads asttreectl's process configuration: defaults read
// from a .env file via godotenv, overridden by ASTTREE_* environment
// variables, in turn overridden by command-line flags — matching the
// env-then-flags layering termfx-morfx's own internal/config builds.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds asttreectl's resolved defaults, before command-line flags
// are applied on top.
type Config struct {
	// Language is the default value of each subcommand's --lang flag.
	Language string

	// DotColorScheme holds ASTTREE_DOT_COLOR_SCHEME ("color" by default).
	// It is loaded but not read by any renderer: dot.Render always reads
	// both "color" and "bgcolor".
	DotColorScheme string

	// DiffContext is the number of context lines in rendered unified diffs.
	DiffContext int

	// Verbose gates internal/diagnostics' Debug-level output.
	Verbose bool
}

// Load reads a .env file at envPath if present (a missing file is not an
// error, matching godotenv's own CLI-tool convention), then applies
// ASTTREE_* environment overrides on top of a set of hardcoded defaults.
func Load(envPath string) *Config {
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Language:       "go",
		DotColorScheme: "color",
		DiffContext:    3,
		Verbose:        false,
	}

	if v := os.Getenv("ASTTREE_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("ASTTREE_DOT_COLOR_SCHEME"); v != "" {
		cfg.DotColorScheme = v
	}
	if v := os.Getenv("ASTTREE_DIFF_CONTEXT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.DiffContext = n
		}
	}
	if v := os.Getenv("ASTTREE_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}

	return cfg
}
