package cli

import (
	"github.com/cybertec-postgresql/tokscan/pkg/types"
	"github.com/xyproto/env/v2"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Parallelism: 1,
	Format:      "json",
	ResultFile:  ".tokscan/result.json",
	Color:       "auto",
}

// LoadConfig returns the defaults overlaid with TOKSCAN_* environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig

	cfg.Language = env.Str("TOKSCAN_LANGUAGE", cfg.Language)
	cfg.ProfileDir = env.Str("TOKSCAN_PROFILES", cfg.ProfileDir)
	cfg.Parallelism = env.Int("TOKSCAN_PARALLEL", cfg.Parallelism)
	cfg.Format = env.Str("TOKSCAN_FORMAT", cfg.Format)
	cfg.ResultFile = env.Str("TOKSCAN_RESULT_FILE", cfg.ResultFile)
	cfg.Color = env.Str("TOKSCAN_COLOR", cfg.Color)
	cfg.DatabaseURL = env.Str("TOKSCAN_DATABASE_URL", cfg.DatabaseURL)
	if env.Has("TOKSCAN_VERBOSE") {
		cfg.Verbose = env.Bool("TOKSCAN_VERBOSE")
	}
	if env.Has("TOKSCAN_TOLERANT") {
		cfg.Tolerant = env.Bool("TOKSCAN_TOLERANT")
	}

	return &cfg
}

// Flags carries command-line values. Zero values leave the config untouched.
type Flags struct {
	Language    string
	ProfileDir  string
	Parallel    int
	Format      string
	ResultFile  string
	Color       string
	DatabaseURL string
	Verbose     bool
	Tolerant    bool
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, f Flags) {
	if f.Language != "" {
		c.Language = f.Language
	}
	if f.ProfileDir != "" {
		c.ProfileDir = f.ProfileDir
	}
	if f.Parallel != 0 {
		c.Parallelism = f.Parallel
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.ResultFile != "" {
		c.ResultFile = f.ResultFile
	}
	if f.Color != "" {
		c.Color = f.Color
	}
	if f.DatabaseURL != "" {
		c.DatabaseURL = f.DatabaseURL
	}
	if f.Verbose {
		c.Verbose = true
	}
	if f.Tolerant {
		c.Tolerant = true
	}
}
