package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Strava  StravaConfig  `mapstructure:"strava"`
	Token   TokenConfig   `mapstructure:"token"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`

	// Source is the file the settings were read from, empty when none was found.
	Source string `mapstructure:"-"`
}

// StravaConfig holds the registered application and API connection details
type StravaConfig struct {
	ClientID     int64         `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	CallbackURL  string        `mapstructure:"callback_url"`
	Scope        string        `mapstructure:"scope"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`

	// AccessToken bypasses the token file when set, usually from the environment.
	AccessToken string `mapstructure:"access_token"`
}

// TokenConfig says where the OAuth token is kept between runs
type TokenConfig struct {
	Path string `mapstructure:"path"`
}

// FilterConfig contains activity filter expressions
type FilterConfig struct {
	DefaultExpression string            `mapstructure:"default_expression"`
	Presets           map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig controls self-update
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
