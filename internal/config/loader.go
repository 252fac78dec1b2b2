package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (APPCACHE_LOGGING_LEVEL, ...)
const EnvPrefix = "APPCACHE"

// LoadFrom loads configuration through v, which may already carry flag
// bindings or an explicit config file. Without an explicit file the
// config.yaml in ConfigDir or the working directory is used when present.
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (APPCACHE_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.base_path", DefaultBasePath)
	v.SetDefault("defaults.ignore_manifest", DefaultIgnoreManifest)
	v.SetDefault("defaults.prefer_online", DefaultPreferOnline)

	v.SetDefault("concurrency.workers", DefaultWorkers)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetDefault("output.dry_run", false)
}
