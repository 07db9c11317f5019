package strava

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient   *http.Client
	timeout      time.Duration
	baseURL      string
	authorizeURL string
	tokenURL     string
	deauthURL    string
	userAgent    string
	store        TokenStore
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:      DefaultBaseURL,
		authorizeURL: AuthorizeURL,
		tokenURL:     TokenURL,
		deauthURL:    DeauthorizeURL,
		userAgent:    "stravactl",
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithOAuthEndpoints overrides the authorize, token and deauthorize URLs.
// Empty arguments keep the defaults.
func WithOAuthEndpoints(authorizeURL, tokenURL, deauthorizeURL string) Option {
	return func(o *clientOptions) {
		if authorizeURL != "" {
			o.authorizeURL = authorizeURL
		}
		if tokenURL != "" {
			o.tokenURL = tokenURL
		}
		if deauthorizeURL != "" {
			o.deauthURL = deauthorizeURL
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTokenStore persists tokens to store and loads any saved token on construction.
func WithTokenStore(store TokenStore) Option {
	return func(o *clientOptions) {
		o.store = store
	}
}
