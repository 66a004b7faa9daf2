package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	GroqKey      string `mapstructure:"groq_key"`
	DefaultModel string `mapstructure:"default_model"`
	JobsAPIURL   string `mapstructure:"jobs_api_url"`
	AuthAPIURL   string `mapstructure:"auth_api_url"`
	EventsAPIURL string `mapstructure:"events_api_url"`
	// Gesture tuning
	SwipeThreshold float64 `mapstructure:"swipe_threshold"`
	TapDelta       float64 `mapstructure:"tap_delta"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".gigster")
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("groq_key", "")
	viper.SetDefault("default_model", "llama-3.3-70b-versatile")
	viper.SetDefault("jobs_api_url", "")
	viper.SetDefault("auth_api_url", "")
	viper.SetDefault("events_api_url", "")
	viper.SetDefault("swipe_threshold", 100.0)
	viper.SetDefault("tap_delta", 10.0)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Gigster Configuration
# Groq API key for conversational answers (keep this file secure!)
groq_key: ""
default_model: llama-3.3-70b-versatile

# Backend endpoints. Leave empty to run fully offline with the
# built-in job list.
jobs_api_url: ""
auth_api_url: ""
events_api_url: ""

# Gesture tuning for the drag command
swipe_threshold: 100
tap_delta: 10
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".gigster", "config.yaml")
}
