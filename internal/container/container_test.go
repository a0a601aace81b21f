package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbarbosa/invest-recon/internal/config"
	"fbarbosa/invest-recon/internal/container"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.API.BaseURL = "http://localhost:3001"
	cfg.API.TimeoutSeconds = 30
	cfg.Locale = "pt-BR"
	cfg.Matcher.Threshold = 0.4
	cfg.Extractor.MaxItems = 10
	return cfg
}

func TestNewWiresAllDependencies(t *testing.T) {
	cfg := testConfig()

	c, err := container.New(cfg)
	require.NoError(t, err)

	assert.Same(t, cfg, c.Config())
	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.Repository())
	assert.NotNil(t, c.NumParser())
	assert.NotNil(t, c.Extractor())
	assert.NotNil(t, c.Matcher())
	assert.NotNil(t, c.Committer())
	assert.NotNil(t, c.AccountStore())
}

func TestNumParserFollowsConfiguredLocale(t *testing.T) {
	cfg := testConfig()
	cfg.Locale = "en-US"

	c, err := container.New(cfg)
	require.NoError(t, err)

	value, ok := c.NumParser().Parse("1,234.56")
	require.True(t, ok)
	assert.Equal(t, "1234.56", value.String())
}
