package config

import (
	"github.com/kelseyhightower/envconfig"
)

// envOverlay lists the settings that may come from STRAVA_* variables.
// Empty values leave the file settings alone.
type envOverlay struct {
	ClientID     int64  `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	CallbackURL  string `envconfig:"CALLBACK_URL"`
	AccessToken  string `envconfig:"ACCESS_TOKEN"`
}

func applyEnv(cfg *Config) error {
	var env envOverlay
	if err := envconfig.Process("strava", &env); err != nil {
		return err
	}

	if env.ClientID != 0 {
		cfg.Strava.ClientID = env.ClientID
	}
	if env.ClientSecret != "" {
		cfg.Strava.ClientSecret = env.ClientSecret
	}
	if env.CallbackURL != "" {
		cfg.Strava.CallbackURL = env.CallbackURL
	}
	if env.AccessToken != "" {
		cfg.Strava.AccessToken = env.AccessToken
	}
	return nil
}
