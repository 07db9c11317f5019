package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/stravactl/strava"
)

// Load loads the configuration from file. An explicit configPath must exist;
// otherwise the standard locations are searched and a missing file means
// defaults plus environment.
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
			v.AddConfigPath(filepath.Join(home, ".stravactl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/stravactl/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Strava defaults
	v.SetDefault("strava.callback_url", "http://localhost:8089/callback")
	v.SetDefault("strava.scope", "read,activity:read_all")
	v.SetDefault("strava.base_url", strava.DefaultBaseURL)
	v.SetDefault("strava.timeout", "30s")

	v.SetDefault("token.path", "~/.stravactl/token.yaml")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("update.repository", "s0up4200/stravactl")
}

var validScopes = map[strava.AccessScope]bool{
	strava.ScopeRead:            true,
	strava.ScopeReadAll:         true,
	strava.ScopeProfileReadAll:  true,
	strava.ScopeProfileWrite:    true,
	strava.ScopeActivityRead:    true,
	strava.ScopeActivityReadAll: true,
	strava.ScopeActivityWrite:   true,
	strava.ScopePublic:          true,
	strava.ScopeWrite:           true,
	strava.ScopeViewPrivate:     true,
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Strava.ClientID < 0 {
		return fmt.Errorf("strava.client_id must be positive")
	}

	if cfg.Strava.CallbackURL != "" {
		if _, err := url.Parse(cfg.Strava.CallbackURL); err != nil {
			return fmt.Errorf("invalid strava.callback_url: %w", err)
		}
	}

	if cfg.Strava.BaseURL == "" {
		return fmt.Errorf("strava.base_url is required")
	}
	if u, err := url.Parse(cfg.Strava.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid strava.base_url: %s", cfg.Strava.BaseURL)
	}

	if cfg.Strava.Timeout < 0 {
		return fmt.Errorf("strava.timeout must not be negative")
	}

	if cfg.Strava.Scope != "" {
		for _, s := range strings.Split(cfg.Strava.Scope, ",") {
			if !validScopes[strava.AccessScope(strings.TrimSpace(s))] {
				return fmt.Errorf("invalid strava.scope entry: %s", s)
			}
		}
	}

	if cfg.Token.Path == "" && cfg.Strava.AccessToken == "" {
		return fmt.Errorf("token.path is required")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// StravaCredentials converts the file settings into SDK credentials.
func (c *Config) StravaCredentials() strava.Config {
	return strava.Config{
		ClientID:     c.Strava.ClientID,
		ClientSecret: c.Strava.ClientSecret,
		CallbackURL:  c.Strava.CallbackURL,
		Scope:        strava.AccessScope(c.Strava.Scope),
	}
}
