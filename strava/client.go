package strava

import (
	"errors"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
)

// Config holds the application credentials registered with Strava.
type Config struct {
	ClientID     int64
	ClientSecret string
	CallbackURL  string
	Scope        AccessScope
}

// Client represents a Strava API client
type Client struct {
	cfg        Config
	dispatcher *Dispatcher
	httpClient *http.Client
	store      TokenStore
	logger     zerolog.Logger

	authorizeURL string
	tokenURL     string
	deauthURL    string

	mu    sync.RWMutex
	token Token

	// authMu serializes authorize, refresh and deauthorize.
	authMu sync.Mutex
}

// NewClient creates a new Strava client. Missing credentials are not an
// error here; the operations that need them report it.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := &http.Client{}
	if o.httpClient != nil {
		// the timeout goes on a copy, never on the caller's client
		cp := *o.httpClient
		httpClient = &cp
	}
	if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}

	d := NewDispatcher(o.baseURL, httpClient, logger)
	d.userAgent = o.userAgent

	c := &Client{
		cfg:          cfg,
		dispatcher:   d,
		httpClient:   httpClient,
		store:        o.store,
		logger:       logger,
		authorizeURL: o.authorizeURL,
		tokenURL:     o.tokenURL,
		deauthURL:    o.deauthURL,
	}

	if c.store != nil {
		tok, err := c.store.Load()
		switch {
		case err == nil:
			c.token = tok
		case !errors.Is(err, ErrNoToken):
			logger.Warn().Err(err).Msg("Failed to load stored Strava token")
		}
	}

	return c
}

// Dispatcher exposes the underlying dispatcher for endpoints the client does not wrap.
func (c *Client) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// Config returns the client's credentials.
func (c *Client) Config() Config {
	return c.cfg
}

// AccessToken returns the current access token or ErrNotAuthenticated.
func (c *Client) AccessToken() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.token.Valid() {
		return "", notAuthenticated()
	}
	return c.token.AccessToken, nil
}

// Token returns the current token and whether one is set.
func (c *Client) Token() (Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token.Valid()
}

// SetToken replaces the current token and persists it.
func (c *Client) SetToken(t Token) error {
	c.mu.Lock()
	c.token = t
	c.mu.Unlock()
	if c.store != nil {
		return c.store.Save(t)
	}
	return nil
}

// ClearToken forgets the current token in memory and in the store.
func (c *Client) ClearToken() error {
	c.mu.Lock()
	c.token = Token{}
	c.mu.Unlock()
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}

// authed builds a request carrying the bearer token.
func (c *Client) authed(method, path string) (*Request, error) {
	token, err := c.AccessToken()
	if err != nil {
		return nil, err
	}
	return NewRequest(method, path).AddToken(token), nil
}
