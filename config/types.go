package config

// Config represents the complete configuration structure
type Config struct {
	Unsplash UnsplashConfig `mapstructure:"unsplash"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// UnsplashConfig holds Unsplash API connection details
type UnsplashConfig struct {
	// APIURL overrides the API root; empty means the public API.
	APIURL string `mapstructure:"api_url"`
	// AccessKey is the application access key (Client-ID auth).
	AccessKey string `mapstructure:"access_key"`
	// BearerToken authenticates user endpoints (me, me update).
	BearerToken string `mapstructure:"bearer_token"`
	// TimeoutSeconds is the HTTP timeout for API requests.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// FilterConfig contains named filter expressions usable via --preset
type FilterConfig map[string]string

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
