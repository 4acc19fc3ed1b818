package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".splashctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/splashctl/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Unsplash defaults
	v.SetDefault("unsplash.timeout_seconds", 30)

	// Output defaults
	v.SetDefault("output.show_details", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	switch {
	case cfg.Unsplash.AccessKey == "", cfg.Unsplash.AccessKey == "your-access-key-here":
		return fmt.Errorf("unsplash.access_key must be set to a valid access key")
	case cfg.Unsplash.TimeoutSeconds < 0:
		return fmt.Errorf("unsplash.timeout_seconds cannot be negative")
	case !slices.Contains(logLevels, cfg.Logging.Level):
		return fmt.Errorf("invalid logging level %q (valid: %s)", cfg.Logging.Level, strings.Join(logLevels, ", "))
	case !slices.Contains(logFormats, cfg.Logging.Format):
		return fmt.Errorf("invalid logging format %q (valid: %s)", cfg.Logging.Format, strings.Join(logFormats, ", "))
	}

	// Preset expressions are compiled lazily on use; catch empty ones here
	// so a typoed preset name in the config fails at startup.
	for name, expression := range cfg.Filter {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	return nil
}
