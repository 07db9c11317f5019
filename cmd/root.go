package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/stravactl/config"
	"github.com/s0up4200/stravactl/strava"
	"github.com/s0up4200/stravactl/tokenstore"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *strava.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stravactl",
	Short: "A command line client for the Strava API",
	Long: `stravactl talks to the Strava v3 API on behalf of an athlete: it handles
the OAuth authorization flow, lists and filters activities, uploads activity
files and shows clubs, segments and athlete statistics.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.stravactl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
}

// initializeApp initializes the configuration, logger and Strava client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger = setupLogger(cfg.Logging)
	if cfg.Source != "" {
		logger.Debug().Str("file", cfg.Source).Msg("Loaded configuration")
	}

	return buildClient()
}

// buildClient (re)creates the Strava client from the current configuration
func buildClient() error {
	store, err := newTokenStore()
	if err != nil {
		return err
	}

	client = strava.NewClient(cfg.StravaCredentials(), logger,
		strava.WithBaseURL(cfg.Strava.BaseURL),
		strava.WithTimeout(cfg.Strava.Timeout),
		strava.WithUserAgent("stravactl/"+appVersion),
		strava.WithTokenStore(store),
	)
	return nil
}

// newTokenStore keeps an access token from the environment in memory and
// everything else in the configured token file.
func newTokenStore() (strava.TokenStore, error) {
	if cfg.Strava.AccessToken != "" {
		store := strava.NewMemoryTokenStore()
		if err := store.Save(strava.Token{AccessToken: cfg.Strava.AccessToken}); err != nil {
			return nil, err
		}
		logger.Debug().Msg("Using access token from environment")
		return store, nil
	}

	store, err := tokenstore.NewFile(cfg.Token.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}
	return store, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// requireAuth makes sure a usable access token is present, refreshing an
// expired one first.
func requireAuth(ctx context.Context) error {
	tok, ok := client.Token()
	if !ok {
		return errors.New("not logged in, run 'stravactl auth login' first")
	}
	if !tok.Expired() {
		return nil
	}
	if tok.RefreshToken == "" {
		return errors.New("access token expired, run 'stravactl auth login' again")
	}

	logger.Debug().Time("expired_at", tok.ExpiresAt).Msg("Refreshing expired access token")
	if _, err := client.RefreshToken(ctx); err != nil {
		return fmt.Errorf("failed to refresh access token: %w", err)
	}
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression(filterExpr, preset string) (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[strings.ToLower(preset)]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
