package config

import (
	"fmt"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Defaults    DefaultsConfig    `mapstructure:"defaults" yaml:"defaults"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
}

// DefaultsConfig holds the generation options a target falls back to
type DefaultsConfig struct {
	BasePath       string `mapstructure:"base_path" yaml:"base_path"`
	IgnoreManifest bool   `mapstructure:"ignore_manifest" yaml:"ignore_manifest"`
	PreferOnline   bool   `mapstructure:"prefer_online" yaml:"prefer_online"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"pretty", "json"}
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Concurrency.Workers < 1 {
		c.Concurrency.Workers = DefaultWorkers
	}
	if strings.TrimSpace(c.Defaults.BasePath) == "" {
		return fmt.Errorf("defaults.base_path cannot be empty")
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level %q (use %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if !contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format %q (use %s)", c.Logging.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
