package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Target defaults
	DefaultBasePath       = "."
	DefaultIgnoreManifest = true
	DefaultPreferOnline   = false

	// Concurrency defaults
	DefaultWorkers = 4

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".appcache"
	}
	return filepath.Join(home, ".appcache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			BasePath:       DefaultBasePath,
			IgnoreManifest: DefaultIgnoreManifest,
			PreferOnline:   DefaultPreferOnline,
		},
		Concurrency: ConcurrencyConfig{
			Workers: DefaultWorkers,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			DryRun: false,
		},
	}
}
