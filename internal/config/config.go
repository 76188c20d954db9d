// ABOUTME: Runtime configuration loading
// ABOUTME: Viper-backed backend selection with defaults and env overrides
package config

import (
	"errors"
	"fmt"

	"github.com/rawaudio/rawplay-go/internal/version"
	"github.com/rawaudio/rawplay-go/pkg/audio/output"
	"github.com/spf13/viper"
)

// Config holds the tool's runtime configuration. The command line stays a
// single positional argument; everything here comes from an optional
// rawplay.yaml or RAWPLAY_* environment variables.
type Config struct {
	Backend    string `mapstructure:"backend"`
	AppName    string `mapstructure:"app_name"`
	StreamName string `mapstructure:"stream_name"`
}

// Load reads configuration from the given file, or from an optional
// rawplay.yaml in the working directory when path is empty. A missing
// default file is not an error. Environment variables with the RAWPLAY
// prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("RAWPLAY")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("rawplay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults registers the default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", output.BackendMalgo)
	v.SetDefault("app_name", version.Product)
	v.SetDefault("stream_name", "raw-audio-player")
}

// validateConfig verifies the configuration is usable.
func validateConfig(config *Config) error {
	switch config.Backend {
	case output.BackendMalgo, output.BackendOto, output.BackendPortAudio:
	default:
		return fmt.Errorf("unknown audio backend: %q", config.Backend)
	}

	if config.AppName == "" {
		return fmt.Errorf("app_name must not be empty")
	}
	if config.StreamName == "" {
		return fmt.Errorf("stream_name must not be empty")
	}

	return nil
}
