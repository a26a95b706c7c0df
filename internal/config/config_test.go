package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppliesDefaultsWithNoEnv(t *testing.T) {
	cfg := Load("")
	assert.Equal(t, "go", cfg.Language)
	assert.Equal(t, "color", cfg.DotColorScheme)
	assert.Equal(t, 3, cfg.DiffContext)
	assert.False(t, cfg.Verbose)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("ASTTREE_LANGUAGE", "python")
	t.Setenv("ASTTREE_DIFF_CONTEXT", "5")
	t.Setenv("ASTTREE_VERBOSE", "true")

	cfg := Load("")
	assert.Equal(t, "python", cfg.Language)
	assert.Equal(t, 5, cfg.DiffContext)
	assert.True(t, cfg.Verbose)
}

func TestLoadIgnoresMalformedIntOverride(t *testing.T) {
	t.Setenv("ASTTREE_DIFF_CONTEXT", "not-a-number")
	cfg := Load("")
	assert.Equal(t, 3, cfg.DiffContext)
}

func TestLoadMissingEnvFileIsNotFatal(t *testing.T) {
	cfg := Load("/nonexistent/path/.env")
	assert.Equal(t, "go", cfg.Language)
}
