// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thatcatcamp/stylelab/internal/themes"
	"github.com/thatcatcamp/stylelab/internal/tokens"
)

// EnvConfigPath names the environment variable that overrides DefaultPath.
const EnvConfigPath = "STYLELAB_CONFIG"

var v *viper.Viper

// DefaultPath returns $STYLELAB_CONFIG or ~/.stylelab/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".stylelab", "config.yaml")
	}
	return filepath.Join(home, ".stylelab", "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// STYLELAB_SERVER_HTTP_PORT overrides server.http_port, and so on
	v.SetEnvPrefix("STYLELAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.bind", "127.0.0.1")
	v.SetDefault("server.rate_limit", 30) // mutating requests per minute per IP
	v.SetDefault("server.public_url", "http://localhost:8080/")
	v.SetDefault("server.hsts", false)
	v.SetDefault("server.blocked_ips", []string{})
	v.SetDefault("server.allowed_ips", []string{})

	// Database defaults
	dataDir := filepath.Dir(DefaultPath())
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(dataDir, "stylelab.db"))

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)

	// Initial selection
	d := tokens.DefaultSelection()
	v.SetDefault("defaults.theme", string(d.Theme))
	v.SetDefault("defaults.palette", string(d.Palette))
	v.SetDefault("defaults.font", string(d.Font))
	v.SetDefault("defaults.dark_mode", d.DarkMode)
	v.SetDefault("defaults.base_font_size", d.BaseFontSize)
	v.SetDefault("defaults.type_scale", d.TypeScale)
	v.SetDefault("defaults.spacing_unit", d.SpacingUnit)
	v.SetDefault("defaults.animation_speed", string(d.AnimationSpeed))

	// Export
	v.SetDefault("export.cache_ttl", "10m")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetStringSlice returns a config value as []string
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// DefaultSelection builds the initial selection from the defaults.* keys.
// It is not validated here; the session rejects bad values.
func DefaultSelection() tokens.Selection {
	if v == nil {
		return tokens.DefaultSelection()
	}
	return tokens.Selection{
		Theme:          themes.ThemeName(v.GetString("defaults.theme")),
		Palette:        themes.PaletteName(v.GetString("defaults.palette")),
		Font:           themes.FontName(v.GetString("defaults.font")),
		DarkMode:       v.GetBool("defaults.dark_mode"),
		BaseFontSize:   v.GetFloat64("defaults.base_font_size"),
		TypeScale:      v.GetFloat64("defaults.type_scale"),
		SpacingUnit:    v.GetFloat64("defaults.spacing_unit"),
		AnimationSpeed: themes.AnimationSpeed(v.GetString("defaults.animation_speed")),
	}
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
