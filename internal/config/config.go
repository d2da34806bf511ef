// Package config loads the CLI's configuration from yaml files and VTC_
// environment variables, layering defaults underneath.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Output   OutputConfig   `mapstructure:"output"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`   // json or text
	Output     string `mapstructure:"output"`   // stdout, stderr, or file path
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// DefaultsConfig holds the values commands fall back to when the
// corresponding flag is not given.
type DefaultsConfig struct {
	Rate             string `mapstructure:"rate"`     // any rate grammar, e.g. "23.98" or "24000/1001"
	Rounding         string `mapstructure:"rounding"` // closest, floor, ceil, trunc, off
	RuntimePrecision int    `mapstructure:"runtime_precision"`
}

type OutputConfig struct {
	Style string `mapstructure:"style"` // table or plain
}

// Load reads configuration from the given path. An empty path searches the
// working directory and ~/.config/vtc for vtc.yaml and falls back to
// defaults when no file is found; an explicit path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Environment variable override
	v.SetEnvPrefix("VTC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("vtc")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vtc")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)

	// Command defaults
	v.SetDefault("defaults.rate", "24")
	v.SetDefault("defaults.rounding", "closest")
	v.SetDefault("defaults.runtime_precision", 9)

	// Output defaults
	v.SetDefault("output.style", "table")
}
