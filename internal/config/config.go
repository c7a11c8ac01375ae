// Package config loads the optional user configuration for the decomment
// CLI from a config file and DECOMMENT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are the user-configurable defaults. Command-line flags take
// precedence over these.
type Settings struct {
	RulesPath string `mapstructure:"rules_path"` // Custom rule file or directory.
	NoColor   bool   `mapstructure:"no_color"`
	Backups   bool   `mapstructure:"backups"` // Keep .bak files by default.
}

// Load reads configuration from cfgFile, or from the default locations when
// cfgFile is empty. A missing default config file is not an error.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("rules_path", "")
	v.SetDefault("no_color", false)
	v.SetDefault("backups", true)

	v.SetEnvPrefix("DECOMMENT")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(userConfigDir, "decomment"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &s, nil
}
