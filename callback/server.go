// Package callback runs a short-lived local HTTP server that catches the
// OAuth redirect Strava sends after the athlete approves access.
package callback

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

var page = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><title>stravactl</title></head>
<body>
{{if .Error}}<h1>Authorization failed</h1><p>{{.Error}}</p>{{else}}<h1>Authorization received</h1>{{end}}
<p>You can close this window and return to the terminal.</p>
</body>
</html>
`))

// Server captures the first redirect that arrives on the callback path.
type Server struct {
	callback *url.URL
	logger   zerolog.Logger
	router   *chi.Mux
	srv      *http.Server
	listener net.Listener

	once     sync.Once
	redirect chan string
}

// New prepares a server for callbackURL. Only plain http callbacks on a
// local address can be served.
func New(callbackURL string, logger zerolog.Logger) (*Server, error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return nil, fmt.Errorf("invalid callback URL: %w", err)
	}
	if u.Scheme != "http" {
		return nil, fmt.Errorf("callback URL must use http, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("callback URL has no host")
	}

	s := &Server{
		callback: u,
		logger:   logger.With().Str("component", "callback").Logger(),
		router:   chi.NewRouter(),
		redirect: make(chan string, 1),
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	s.router.Use(chimw.Recoverer)
	s.router.Get(path, s.handleRedirect)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug().Str("path", r.URL.Path).Msg("Ignoring request outside callback path")
		http.NotFound(w, r)
	})

	s.srv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start binds the callback host and port and serves in the background.
func (s *Server) Start() error {
	addr := s.callback.Host
	if s.callback.Port() == "" {
		addr = net.JoinHostPort(s.callback.Hostname(), "80")
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", addr, err)
	}
	s.listener = ln

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Callback server stopped")
		}
	}()

	s.logger.Debug().Str("addr", ln.Addr().String()).Msg("Waiting for OAuth redirect")
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Wait blocks until a redirect arrives or ctx is done. The returned string
// is the full redirect URL, ready for Client.ExtractCredentials.
func (s *Server) Wait(ctx context.Context) (string, error) {
	select {
	case u := <-s.redirect:
		return u, nil
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for authorization: %w", ctx.Err())
	}
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	full := url.URL{
		Scheme:   s.callback.Scheme,
		Host:     s.callback.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}

	s.once.Do(func() {
		s.logger.Info().Msg("OAuth redirect received")
		s.redirect <- full.String()
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Error string }{Error: r.URL.Query().Get("error")}
	if err := page.Execute(w, data); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to render callback page")
	}
}
