package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Number of artists requested per run
	Limit int

	// Lookback window for the ranking query
	Period string

	// Last.fm API credentials and account
	LastFM LastFMConfig
}

// LastFMConfig holds Last.fm specific configuration
type LastFMConfig struct {
	APIKey   string
	Username string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("limit", 5)
	v.SetDefault("period", "7day")

	// Read config file. A missing file is fine, a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read from environment variables. The replacer makes nested keys
	// reachable, e.g. TOPFM_LASTFM_API_KEY for lastfm.api_key.
	v.SetEnvPrefix("TOPFM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Limit:  v.GetInt("limit"),
		Period: v.GetString("period"),
		LastFM: LastFMConfig{
			APIKey:   v.GetString("lastfm.api_key"),
			Username: v.GetString("lastfm.username"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	if dir := os.Getenv("TOPFM_CONFIG_DIR"); dir != "" {
		_ = os.MkdirAll(dir, 0755)
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "topfm")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("limit", c.Limit)
	v.Set("period", c.Period)
	v.Set("lastfm.api_key", c.LastFM.APIKey)
	v.Set("lastfm.username", c.LastFM.Username)

	// Write to file
	return v.WriteConfigAs(configFile)
}
