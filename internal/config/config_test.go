package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// testing.T.Chdir is only available on Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestInitializeDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Initialize()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://localhost:3001", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, 0.4, cfg.Matcher.Threshold)
	assert.Equal(t, 10, cfg.Extractor.MaxItems)
}

func TestInitializeReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := []byte("log:\n  level: debug\n  format: json\nlocale: en-US\nmatcher:\n  threshold: 0.25\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0600))

	cfg, err := Initialize()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 0.25, cfg.Matcher.Threshold)
	// Untouched keys keep their defaults.
	assert.Equal(t, "http://localhost:3001", cfg.API.BaseURL)
}

func TestInitializeEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RECON_API_BASE_URL", "http://bank.internal:8080")
	t.Setenv("RECON_LOG_LEVEL", "warn")

	cfg, err := Initialize()

	require.NoError(t, err)
	assert.Equal(t, "http://bank.internal:8080", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.API.BaseURL = "http://localhost:3001"
		cfg.API.TimeoutSeconds = 30
		cfg.Locale = "pt-BR"
		cfg.Matcher.Threshold = 0.4
		cfg.Extractor.MaxItems = 10
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, "base_url"},
		{"timeout out of range", func(c *Config) { c.API.TimeoutSeconds = 301 }, "timeout_seconds"},
		{"negative timeout", func(c *Config) { c.API.TimeoutSeconds = -1 }, "timeout_seconds"},
		{"threshold above one", func(c *Config) { c.Matcher.Threshold = 1.5 }, "threshold"},
		{"zero max items", func(c *Config) { c.Extractor.MaxItems = 0 }, "max_items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
