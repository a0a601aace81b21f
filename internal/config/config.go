// Package config provides Viper-based hierarchical configuration and .env
// loading for the CLI.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	API struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"api" yaml:"api"`

	// Locale drives separator detection in the numeric parser.
	Locale string `mapstructure:"locale" yaml:"locale"`

	Matcher struct {
		Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
	} `mapstructure:"matcher" yaml:"matcher"`

	Extractor struct {
		MaxItems int `mapstructure:"max_items" yaml:"max_items"`
	} `mapstructure:"extractor" yaml:"extractor"`
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() {
	envOnce.Do(func() {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return
		}
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
		}
	})
}

// Initialize loads the configuration: defaults, then an optional YAML
// config file, then RECON_-prefixed environment variables.
func Initialize() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.invest-recon")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not kill the CLI; defaults and
			// environment variables still apply.
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("api.base_url", "http://localhost:3001")
	v.SetDefault("api.timeout_seconds", 30)

	v.SetDefault("locale", "pt-BR")

	v.SetDefault("matcher.threshold", 0.4)
	v.SetDefault("extractor.max_items", 10)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}

	if config.API.TimeoutSeconds < 0 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 0 and 300, got: %d", config.API.TimeoutSeconds)
	}

	if config.Matcher.Threshold < 0.0 || config.Matcher.Threshold > 1.0 {
		return fmt.Errorf("matcher.threshold must be between 0.0 and 1.0, got: %f", config.Matcher.Threshold)
	}

	if config.Extractor.MaxItems < 1 {
		return fmt.Errorf("extractor.max_items must be at least 1, got: %d", config.Extractor.MaxItems)
	}

	return nil
}
