package cli

import (
	"errors"
	"strings"
	"testing"
)

var tokscanEnvVars = []string{
	"TOKSCAN_LANGUAGE", "TOKSCAN_PROFILES", "TOKSCAN_PARALLEL", "TOKSCAN_FORMAT",
	"TOKSCAN_RESULT_FILE", "TOKSCAN_COLOR", "TOKSCAN_DATABASE_URL",
	"TOKSCAN_VERBOSE", "TOKSCAN_TOLERANT",
}

// clearEnv unsets every TOKSCAN_* variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range tokscanEnvVars {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	if cfg.Parallelism != 1 {
		t.Errorf("expected default parallelism 1, got %d", cfg.Parallelism)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.ResultFile != ".tokscan/result.json" {
		t.Errorf("expected default result file '.tokscan/result.json', got '%s'", cfg.ResultFile)
	}
	if cfg.Color != "auto" {
		t.Errorf("expected default color 'auto', got '%s'", cfg.Color)
	}
	if cfg.Verbose || cfg.Tolerant {
		t.Errorf("expected verbose and tolerant off, got %v/%v", cfg.Verbose, cfg.Tolerant)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKSCAN_LANGUAGE", "python")
	t.Setenv("TOKSCAN_PARALLEL", "4")
	t.Setenv("TOKSCAN_FORMAT", "text")
	t.Setenv("TOKSCAN_RESULT_FILE", "out/r.json")
	t.Setenv("TOKSCAN_VERBOSE", "true")
	t.Setenv("TOKSCAN_TOLERANT", "true")
	t.Setenv("TOKSCAN_DATABASE_URL", "postgres://localhost/db")

	cfg := LoadConfig()

	if cfg.Language != "python" {
		t.Errorf("expected language from env 'python', got '%s'", cfg.Language)
	}
	if cfg.Parallelism != 4 {
		t.Errorf("expected parallelism from env 4, got %d", cfg.Parallelism)
	}
	if cfg.Format != "text" {
		t.Errorf("expected format from env 'text', got '%s'", cfg.Format)
	}
	if cfg.ResultFile != "out/r.json" {
		t.Errorf("expected result file from env, got '%s'", cfg.ResultFile)
	}
	if !cfg.Verbose || !cfg.Tolerant {
		t.Errorf("expected verbose and tolerant from env, got %v/%v", cfg.Verbose, cfg.Tolerant)
	}
	if cfg.DatabaseURL != "postgres://localhost/db" {
		t.Errorf("expected database url from env, got '%s'", cfg.DatabaseURL)
	}
}

func TestLoadConfig_DoesNotMutateDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKSCAN_FORMAT", "html")

	_ = LoadConfig()

	if DefaultConfig.Format != "json" {
		t.Errorf("DefaultConfig was modified: format = %s", DefaultConfig.Format)
	}
}

func TestApplyFlagsToConfig_OverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKSCAN_FORMAT", "text")
	t.Setenv("TOKSCAN_PARALLEL", "2")

	cfg := LoadConfig()
	ApplyFlagsToConfig(cfg, Flags{
		Format:     "html",
		Parallel:   8,
		ResultFile: "custom.json",
		Verbose:    true,
	})

	if cfg.Format != "html" {
		t.Errorf("expected format from flag 'html', got '%s'", cfg.Format)
	}
	if cfg.Parallelism != 8 {
		t.Errorf("expected parallelism from flag 8, got %d", cfg.Parallelism)
	}
	if cfg.ResultFile != "custom.json" {
		t.Errorf("expected result file from flag, got '%s'", cfg.ResultFile)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from flag")
	}
}

func TestApplyFlagsToConfig_EmptyFlagsKeepValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKSCAN_LANGUAGE", "go")

	cfg := LoadConfig()
	ApplyFlagsToConfig(cfg, Flags{})

	if cfg.Language != "go" {
		t.Errorf("empty flag overwrote language: %q", cfg.Language)
	}
	if cfg.Parallelism != 1 {
		t.Errorf("zero flag overwrote parallelism: %d", cfg.Parallelism)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero parallelism", func(c *Config) { c.Parallelism = 0 }, "parallel"},
		{"too much parallelism", func(c *Config) { c.Parallelism = 101 }, "parallel"},
		{"bad format", func(c *Config) { c.Format = "lcov" }, "format"},
		{"empty result file", func(c *Config) { c.ResultFile = "" }, "result-file"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "color"},
		{"bad database url", func(c *Config) { c.DatabaseURL = "localhost" }, "database"},
		{"key value database url", func(c *Config) { c.DatabaseURL = "host=localhost port=5432" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.modify(&cfg)
			err := cfg.Validate()

			if tt.field == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %s, want %s", cfgErr.Field, tt.field)
			}
			if !strings.Contains(err.Error(), "Suggestion") {
				t.Errorf("error should carry a suggestion: %v", err)
			}
		})
	}
}
