package strava

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// OAuth endpoints.
const (
	AuthorizeURL   = "https://www.strava.com/oauth/authorize"
	TokenURL       = "https://www.strava.com/oauth/token"
	DeauthorizeURL = "https://www.strava.com/oauth/deauthorize"
)

// AccessCredentials is what a redirect yields: enough to exchange for a token once.
type AccessCredentials struct {
	ClientID     int64
	ClientSecret string
	Code         string
	// Scope is the scope the athlete actually granted, if reported.
	Scope string
}

// AuthResponse is the token exchange response.
type AuthResponse struct {
	TokenType    string   `json:"token_type,omitempty"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	ExpiresAt    int64    `json:"expires_at,omitempty"`
	ExpiresIn    int      `json:"expires_in,omitempty"`
	Athlete      *Athlete `json:"athlete,omitempty"`
}

// Token converts the response into the stored token form.
func (r *AuthResponse) Token() Token {
	t := Token{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
	if r.ExpiresAt > 0 {
		t.ExpiresAt = time.Unix(r.ExpiresAt, 0)
	}
	return t
}

// DeauthResponse is returned when access is revoked.
type DeauthResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) oauthConfig() *oauth2.Config {
	oc := &oauth2.Config{
		ClientID:     strconv.FormatInt(c.cfg.ClientID, 10),
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  c.cfg.CallbackURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.authorizeURL,
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	if c.cfg.Scope != "" {
		oc.Scopes = []string{string(c.cfg.Scope)}
	}
	return oc
}

// BuildAuthorizationURL returns the page the athlete is sent to to grant access.
func (c *Client) BuildAuthorizationURL() (string, error) {
	if c.cfg.ClientID == 0 {
		return "", missingParameter("client id")
	}
	if c.cfg.CallbackURL == "" {
		return "", missingParameter("callback URL")
	}
	return c.oauthConfig().AuthCodeURL("", oauth2.SetAuthURLParam("approval_prompt", "force")), nil
}

// ExtractCredentials pulls the authorization code out of the redirect URL.
// It performs no network I/O.
func (c *Client) ExtractCredentials(redirectURL string) (AccessCredentials, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return AccessCredentials{}, notAuthorized("invalid redirect URL: " + err.Error())
	}
	if c.cfg.ClientID == 0 {
		return AccessCredentials{}, missingParameter("client id")
	}
	if c.cfg.ClientSecret == "" {
		return AccessCredentials{}, missingParameter("client secret")
	}

	q := u.Query()
	if reason := q.Get("error"); reason != "" {
		return AccessCredentials{}, notAuthorized("authorization denied: " + reason)
	}
	code := q.Get("code")
	if code == "" {
		return AccessCredentials{}, notAuthorized("redirect carries no authorization code")
	}

	return AccessCredentials{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Code:         code,
		Scope:        q.Get("scope"),
	}, nil
}

// Authorize exchanges credentials for a token. The token is stored on
// success and cleared on failure.
func (c *Client) Authorize(ctx context.Context, creds AccessCredentials) (*AuthResponse, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	req := NewRequest(http.MethodPost, "")
	req.URL = c.tokenURL
	req.AddParam("client_id", creds.ClientID).
		AddParam("client_secret", creds.ClientSecret).
		AddParam("code", creds.Code).
		AddParam("grant_type", "authorization_code")

	resp, err := Object[AuthResponse](ctx, c.dispatcher, req).Get()
	if err != nil {
		if clearErr := c.ClearToken(); clearErr != nil {
			c.logger.Warn().Err(clearErr).Msg("Failed to clear stored token")
		}
		return nil, err
	}
	if resp.AccessToken == "" {
		if clearErr := c.ClearToken(); clearErr != nil {
			c.logger.Warn().Err(clearErr).Msg("Failed to clear stored token")
		}
		return nil, &Error{Kind: KindDecode, Message: "token response carries no access token"}
	}

	if err := c.SetToken(resp.Token()); err != nil {
		return resp, &Error{Kind: KindTransport, Message: "failed to persist token: " + err.Error(), Err: err}
	}

	ev := c.logger.Info()
	if resp.Athlete != nil {
		ev = ev.Int64("athlete_id", resp.Athlete.ID)
	}
	ev.Msg("Authorized with Strava")
	return resp, nil
}

// Deauthorize revokes access. On success the token is cleared whatever its state.
func (c *Client) Deauthorize(ctx context.Context) (*DeauthResponse, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	token, err := c.AccessToken()
	if err != nil {
		return nil, err
	}

	req := NewRequest(http.MethodPost, "").AddToken(token)
	req.URL = c.deauthURL
	req.AddParam("access_token", token)

	resp, err := Object[DeauthResponse](ctx, c.dispatcher, req).Get()
	if err != nil {
		return nil, err
	}
	if err := c.ClearToken(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to clear stored token")
	}
	c.logger.Info().Msg("Deauthorized from Strava")
	return resp, nil
}

// RefreshToken trades the stored refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context) (Token, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	current, ok := c.Token()
	if !ok || current.RefreshToken == "" {
		return Token{}, notAuthenticated()
	}
	if c.cfg.ClientID == 0 {
		return Token{}, missingParameter("client id")
	}
	if c.cfg.ClientSecret == "" {
		return Token{}, missingParameter("client secret")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	src := c.oauthConfig().TokenSource(ctx, &oauth2.Token{
		RefreshToken: current.RefreshToken,
		Expiry:       time.Unix(1, 0),
	})
	ot, err := src.Token()
	if err != nil {
		return Token{}, refreshError(err)
	}

	next := Token{
		AccessToken:  ot.AccessToken,
		RefreshToken: ot.RefreshToken,
		ExpiresAt:    ot.Expiry,
	}
	if next.RefreshToken == "" {
		next.RefreshToken = current.RefreshToken
	}
	if err := c.SetToken(next); err != nil {
		return next, &Error{Kind: KindTransport, Message: "failed to persist token: " + err.Error(), Err: err}
	}
	c.logger.Info().Time("expires_at", next.ExpiresAt).Msg("Refreshed Strava token")
	return next, nil
}

func refreshError(err error) *Error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return &Error{
			Kind:       KindValidation,
			StatusCode: re.Response.StatusCode,
			Message:    "token refresh rejected: " + string(re.Body),
			Body:       string(re.Body),
			Err:        err,
		}
	}
	return &Error{Kind: KindTransport, Message: "token refresh failed: " + err.Error(), Err: err}
}
