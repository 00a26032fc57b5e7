package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()

	v.SetConfigType("yaml")

	// Explicitly locate config.yaml.
	// Precedence: ~/.config/kgrefine/config.yaml > ~/.kgrefine/config.yaml
	configFileSet := false

	if configDir, err := os.UserConfigDir(); err == nil {
		configPath := filepath.Join(configDir, "kgrefine", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			configFileSet = true
		}
	}
	if !configFileSet {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configPath := filepath.Join(homeDir, ".kgrefine", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Automatic environment variable binding.
	// Environment variables take precedence over config file.
	// E.g., GKG_API_KEY, GKG_MIN_SCORE, GKG_LOG_FILE
	v.SetEnvPrefix("GKG")

	// Replace hyphens and dots with underscores for env var mapping.
	// This lets GKG_API_KEY map to the "api-key" config key.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-key", "")
	v.SetDefault("min-score", 1000)
	v.SetDefault("verbose", false)
	v.SetDefault("log-file", "")

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// GetAPIKey resolves the Knowledge Graph API key.
// Priority chain:
//  1. flagValue (if non-empty, from --gkg-api-key flag)
//  2. GKG_API_KEY env var / config.yaml api-key field (via viper)
func GetAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetString("api-key")
}

// GetString retrieves a string configuration value
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool retrieves a boolean configuration value
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt retrieves an integer configuration value
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// Set sets a configuration value
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}
