package tokenstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/stravactl/strava"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.yaml")
	store, err := NewFile(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.True(t, errors.Is(err, strava.ErrNoToken))

	expires := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(strava.Token{AccessToken: "a", RefreshToken: "r", ExpiresAt: expires}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
	assert.True(t, expires.Equal(got.ExpiresAt))

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.True(t, errors.Is(err, strava.ErrNoToken))

	assert.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.yaml")
	require.NoError(t, os.WriteFile(path, []byte("access_token: [unterminated"), 0o600))

	store, err := NewFile(path)
	require.NoError(t, err)
	_, err = store.Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, strava.ErrNoToken))
}

func TestFileEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_token: r\n"), 0o600))

	store, err := NewFile(path)
	require.NoError(t, err)
	_, err = store.Load()
	assert.True(t, errors.Is(err, strava.ErrNoToken))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{in: "~/.stravactl/token.yaml", want: filepath.Join(home, ".stravactl", "token.yaml")},
		{in: "~", want: home},
		{in: "/etc/token.yaml", want: "/etc/token.yaml"},
		{in: "relative/token.yaml", want: "relative/token.yaml"},
		{in: "~other/token.yaml", want: "~other/token.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientUsesFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.yaml")
	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(strava.Token{AccessToken: "persisted"}))

	c := strava.NewClient(strava.Config{}, zerolog.Nop(), strava.WithTokenStore(store))
	token, err := c.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
}
