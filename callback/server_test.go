package callback

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	s, err := New("http://127.0.0.1:0/callback", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "local http", url: "http://localhost:8089/callback"},
		{name: "no path", url: "http://localhost:8089"},
		{name: "https", url: "https://localhost:8089/callback", wantErr: true},
		{name: "no host", url: "http:///callback", wantErr: true},
		{name: "garbage", url: "://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.url, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCapturesRedirect(t *testing.T) {
	s := startServer(t)
	base := "http://" + s.Addr()

	resp, err := http.Get(base + "/callback?state=&code=abc123&scope=read")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Authorization received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := s.Wait(ctx)
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/callback", u.Path)
	assert.Equal(t, "abc123", u.Query().Get("code"))

	// later redirects are answered but not queued
	resp, err = http.Get(base + "/callback?code=second")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeniedRedirect(t *testing.T) {
	s := startServer(t)

	resp, err := http.Get("http://" + s.Addr() + "/callback?error=access_denied")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "access_denied")

	got, err := s.Wait(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got, "error=access_denied")
}

func TestOtherPathsIgnored(t *testing.T) {
	s := startServer(t)

	resp, err := http.Get("http://" + s.Addr() + "/favicon.ico")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = s.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
