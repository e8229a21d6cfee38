// Package config loads process configuration for the CLI and any other
// long-running collaborator from environment variables, after first
// loading a .env file if one is present.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the CLI's runtime configuration.
type Config struct {
	// CacheDSN is the sqlite DSN internal/store opens for the element-hash
	// cache and upsert/remove history.
	CacheDSN string
	// ExcludeGlobs are extra doublestar exclude patterns, comma-separated in
	// the env var. Nothing in this repository passes them to internal/walk.
	ExcludeGlobs []string
	// MaxFileBytes is a file-size cap; 0 means unlimited. internal/walk does
	// not read or enforce it.
	MaxFileBytes int64
	// Debug reports whether CODEHEM_DEBUG is set. logx reads that variable
	// itself at start-up and does not consult this field.
	Debug bool
}

// Load reads a .env file (if present) and then environment variables into
// a Config, applying defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		CacheDSN:     os.Getenv("CODEHEM_CACHE_DSN"),
		MaxFileBytes: 0,
		Debug:        os.Getenv("CODEHEM_DEBUG") != "",
	}

	if cfg.CacheDSN == "" {
		cfg.CacheDSN = "codehem.db"
	}

	if excludes := os.Getenv("CODEHEM_EXCLUDE_GLOBS"); excludes != "" {
		for _, pattern := range strings.Split(excludes, ",") {
			pattern = strings.TrimSpace(pattern)
			if pattern != "" {
				cfg.ExcludeGlobs = append(cfg.ExcludeGlobs, pattern)
			}
		}
	}

	if maxBytes := os.Getenv("CODEHEM_MAX_FILE_BYTES"); maxBytes != "" {
		if n, err := strconv.ParseInt(maxBytes, 10, 64); err == nil && n > 0 {
			cfg.MaxFileBytes = n
		}
	}

	return cfg
}
