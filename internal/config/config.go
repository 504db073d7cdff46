// Package config loads reelpath settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved settings for a run.
type Config struct {
	// DestinationTemplate is a template string, a preset name, or
	// a "preset:NAME" reference.
	DestinationTemplate string `mapstructure:"destination_template"`

	// Language is the metadata language code (ISO 639-1 or a friendly alias).
	Language string `mapstructure:"language"`

	// Region is an optional ISO 3166-1 region code.
	Region string `mapstructure:"region"`

	// HistoryDB is the path of the rename-history database.
	HistoryDB string `mapstructure:"history_db"`

	// LogLevel is the zerolog level name.
	LogLevel string `mapstructure:"log_level"`
}

const envPrefix = "REELPATH"

// DefaultDir returns the per-user configuration directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".reelpath"
	}
	return filepath.Join(home, ".config", "reelpath")
}

// Load reads configuration from the given file (or the default search
// path when empty), applies REELPATH_ environment overrides, and fills
// in defaults. A missing config file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("destination_template", "plex")
	v.SetDefault("language", "es")
	v.SetDefault("region", "")
	v.SetDefault("history_db", filepath.Join(DefaultDir(), "history.db"))
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
