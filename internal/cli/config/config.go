// Package config loads the optional ballast configuration. The exerciser
// is designed to run with no configuration at all; a ballast.yml only
// narrows or redirects the curated anchor set.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the ballast configuration.
type Config struct {
	Anchors AnchorConfig `mapstructure:"anchors"`
	Verbose bool         `mapstructure:"verbose"`
}

// AnchorConfig selects and targets the subsystem anchors.
type AnchorConfig struct {
	// Enabled lists anchor names to run. Empty means all.
	Enabled []string `mapstructure:"enabled"`
	// RedisAddr overrides the storage anchor's target address.
	RedisAddr string `mapstructure:"redis_addr"`
}

// Load loads the configuration from ballast.yml or ballast.yaml in the
// working directory. A missing file is not an error; the defaults run
// the full pass.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("anchors.enabled", []string{})
	v.SetDefault("anchors.redis_addr", "")
	v.SetDefault("verbose", false)

	v.SetConfigName("ballast")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support (BALLAST_VERBOSE etc.)
	v.SetEnvPrefix("ballast")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// AnchorEnabled reports whether the named anchor should run. An empty
// enabled list enables everything.
func (c *Config) AnchorEnabled(name string) bool {
	if len(c.Anchors.Enabled) == 0 {
		return true
	}
	for _, enabled := range c.Anchors.Enabled {
		if strings.EqualFold(enabled, name) {
			return true
		}
	}
	return false
}
