package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CODEHEM_CACHE_DSN", "")
	t.Setenv("CODEHEM_EXCLUDE_GLOBS", "")
	t.Setenv("CODEHEM_MAX_FILE_BYTES", "")
	t.Setenv("CODEHEM_DEBUG", "")

	cfg := Load()
	assert.Equal(t, "codehem.db", cfg.CacheDSN)
	assert.Empty(t, cfg.ExcludeGlobs)
	assert.Equal(t, int64(0), cfg.MaxFileBytes)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CODEHEM_CACHE_DSN", "/tmp/custom.db")
	t.Setenv("CODEHEM_EXCLUDE_GLOBS", "**/vendor/**, **/*.min.js")
	t.Setenv("CODEHEM_MAX_FILE_BYTES", "2048")
	t.Setenv("CODEHEM_DEBUG", "1")

	cfg := Load()
	assert.Equal(t, "/tmp/custom.db", cfg.CacheDSN)
	assert.Equal(t, []string{"**/vendor/**", "**/*.min.js"}, cfg.ExcludeGlobs)
	assert.Equal(t, int64(2048), cfg.MaxFileBytes)
	assert.True(t, cfg.Debug)
}

func TestLoadIgnoresInvalidMaxBytes(t *testing.T) {
	t.Setenv("CODEHEM_MAX_FILE_BYTES", "not-a-number")
	cfg := Load()
	assert.Equal(t, int64(0), cfg.MaxFileBytes)
}
