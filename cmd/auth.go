package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/s0up4200/stravactl/callback"
	"github.com/s0up4200/stravactl/strava"
)

var loginTimeout time.Duration

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize stravactl with Strava",
	Long: `Run the OAuth authorization flow and manage the stored access token.

The client id and secret come from the config file or the STRAVA_CLIENT_ID
and STRAVA_CLIENT_SECRET environment variables.`,
}

var authURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the Strava authorization URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := client.BuildAuthorizationURL()
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize in the browser and store the token",
	Long: `Start a local server on the configured callback URL, print the authorization
URL and wait for Strava to redirect back after you approve access.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var authExchangeCmd = &cobra.Command{
	Use:   "exchange <redirect-url>",
	Short: "Exchange a redirect URL copied from the browser for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureClientSecret(); err != nil {
			return err
		}
		return exchange(cmd.Context(), args[0])
	},
}

var authRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored access token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := client.RefreshToken(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("✓ Token refreshed, valid until %s\n", tok.ExpiresAt.Local().Format(dateFormat))
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke access and forget the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := client.Deauthorize(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("✓ Access revoked")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a token is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, ok := client.Token()
		if !ok {
			fmt.Println("Not logged in")
			return nil
		}
		switch {
		case tok.ExpiresAt.IsZero():
			fmt.Println("Logged in (no expiry recorded)")
		case tok.Expired():
			fmt.Printf("Logged in, token expired at %s", tok.ExpiresAt.Local().Format(dateFormat))
			if tok.RefreshToken != "" {
				fmt.Print(" (will refresh on next request)")
			}
			fmt.Println()
		default:
			fmt.Printf("Logged in, token valid until %s\n", tok.ExpiresAt.Local().Format(dateFormat))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authURLCmd, authLoginCmd, authExchangeCmd, authRefreshCmd, authLogoutCmd, authStatusCmd)

	authLoginCmd.Flags().DurationVar(&loginTimeout, "timeout", 5*time.Minute, "how long to wait for the browser redirect")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if err := ensureClientSecret(); err != nil {
		return err
	}

	authURL, err := client.BuildAuthorizationURL()
	if err != nil {
		return err
	}

	server, err := callback.New(cfg.Strava.CallbackURL, logger)
	if err != nil {
		return err
	}
	if err := server.Start(); err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Warn().Err(err).Msg("Failed to stop callback server")
		}
	}()

	fmt.Printf("Open this URL in your browser to authorize stravactl:\n\n  %s\n\n", authURL)
	fmt.Printf("Waiting for the redirect to %s ...\n", cfg.Strava.CallbackURL)

	ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
	defer cancel()
	redirect, err := server.Wait(ctx)
	if err != nil {
		return err
	}

	return exchange(cmd.Context(), redirect)
}

func exchange(ctx context.Context, redirect string) error {
	creds, err := client.ExtractCredentials(redirect)
	if err != nil {
		return err
	}
	if creds.Scope != "" {
		logger.Debug().Str("scope", creds.Scope).Msg("Granted scope")
	}

	resp, err := client.Authorize(ctx, creds)
	if err != nil {
		return err
	}

	name := "athlete"
	if resp.Athlete != nil {
		name = resp.Athlete.FullName()
	}
	fmt.Printf("✓ Logged in as %s\n", name)
	return nil
}

// ensureClientSecret asks for the client secret on the terminal when it is
// not configured, then rebuilds the client with it.
func ensureClientSecret() error {
	if cfg.Strava.ClientSecret != "" {
		return nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("strava.client_secret is not configured; set it in the config file or STRAVA_CLIENT_SECRET")
	}

	fmt.Print("Strava client secret: ")
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read client secret: %w", err)
	}
	cfg.Strava.ClientSecret = strings.TrimSpace(string(secret))
	if cfg.Strava.ClientSecret == "" {
		return fmt.Errorf("client secret is required: %w", strava.ErrParameterMissing)
	}
	return buildClient()
}
