package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/stravactl/config"
	"github.com/s0up4200/stravactl/strava"
)

func TestGetFilterExpression(t *testing.T) {
	cfg = &config.Config{Filter: config.FilterConfig{
		DefaultExpression: "Distance > 0",
		Presets:           map[string]string{"long_rides": `Type == "Ride" && DistanceKm > 100`},
	}}
	t.Cleanup(func() { cfg = nil })

	tests := []struct {
		name    string
		flag    string
		preset  string
		want    string
		wantErr bool
	}{
		{name: "flag wins", flag: "Commute", preset: "long_rides", want: "Commute"},
		{name: "preset", preset: "long_rides", want: `Type == "Ride" && DistanceKm > 100`},
		{name: "preset is case insensitive", preset: "Long_Rides", want: `Type == "Ride" && DistanceKm > 100`},
		{name: "unknown preset", preset: "nope", wantErr: true},
		{name: "default", want: "Distance > 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getFilterExpression(tt.flag, tt.preset)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("after", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDateFlag("after", "2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), *got)

	got, err = parseDateFlag("before", "2026-10-01T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)))

	_, err = parseDateFlag("before", "last week")
	assert.ErrorContains(t, err, "--before")
}

func TestParseID(t *testing.T) {
	id, err := parseID("12345")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)

	for _, bad := range []string{"", "abc", "0", "-4"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestFetchDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/activities/")
		if id == "2" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Record Not Found", "errors": [{"resource": "Activity", "field": "id", "code": "invalid"}]}`))
			return
		}
		fmt.Fprintf(w, `{"id": %s, "name": "activity %s", "calories": 500}`, id, id)
	}))
	defer server.Close()

	logger = zerolog.Nop()
	client = strava.NewClient(strava.Config{}, logger, strava.WithHTTPClient(server.Client()), strava.WithBaseURL(server.URL))
	require.NoError(t, client.SetToken(strava.Token{AccessToken: "tok"}))
	t.Cleanup(func() { client = nil })

	var list []strava.ActivitySummary
	for i := int64(1); i <= 25; i++ {
		list = append(list, strava.ActivitySummary{Resource: strava.Resource{ID: i}})
	}

	details := fetchDetails(context.Background(), list)
	require.Len(t, details, 24)
	assert.Equal(t, int64(1), details[0].ID)
	assert.Equal(t, int64(3), details[1].ID, "failed activity is skipped, order kept")
	assert.Equal(t, int64(25), details[23].ID)
	require.NotNil(t, details[0].Calories)
}

func TestRequireAuth(t *testing.T) {
	logger = zerolog.Nop()
	client = strava.NewClient(strava.Config{}, logger)
	t.Cleanup(func() { client = nil })

	assert.ErrorContains(t, requireAuth(context.Background()), "not logged in")

	require.NoError(t, client.SetToken(strava.Token{AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.NoError(t, requireAuth(context.Background()))

	require.NoError(t, client.SetToken(strava.Token{AccessToken: "t", ExpiresAt: time.Now().Add(-time.Hour)}))
	assert.ErrorContains(t, requireAuth(context.Background()), "expired")
}
