package strava

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddParam(t *testing.T) {
	var nilString *string
	var nilInt *int
	empty := ""
	seven := 7
	cat := ClimbCategory2

	tests := []struct {
		name    string
		value   any
		want    string
		present bool
	}{
		{name: "untyped nil is omitted", value: nil, present: false},
		{name: "nil string pointer is omitted", value: nilString, present: false},
		{name: "nil int pointer is omitted", value: nilInt, present: false},
		{name: "empty string is sent", value: "", want: "", present: true},
		{name: "pointer to empty string is sent", value: &empty, want: "", present: true},
		{name: "int", value: 42, want: "42", present: true},
		{name: "int pointer", value: &seven, want: "7", present: true},
		{name: "int64", value: int64(1234567890123), want: "1234567890123", present: true},
		{name: "bool", value: true, want: "true", present: true},
		{name: "float", value: 1000.5, want: "1000.5", present: true},
		{name: "string enum", value: ActivityTypeRide, want: "Ride", present: true},
		{name: "int enum pointer", value: &cat, want: "3", present: true},
		{
			name:    "time uses the date codec",
			value:   time.Date(2018, 2, 16, 14, 52, 54, 0, time.FixedZone("", 3600)),
			want:    "2018-02-16T14:52:54+01:00",
			present: true,
		},
		{name: "bounds", value: Bounds{1, 2, 3, 4, 5, 6, 7, 8.5}, want: "1,2,3,4,5,6,7,8.5", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(http.MethodGet, "/x").AddParam("key", tt.value)
			params := req.Params()
			_, ok := params["key"]
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, params.Get("key"))
			} else {
				assert.Equal(t, []string{"key"}, req.Omitted())
			}
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    Page
		present bool
	}{
		{name: "both positive", page: Page{Page: 2, PerPage: 50}, present: true},
		{name: "zero page", page: Page{Page: 0, PerPage: 50}, present: false},
		{name: "zero per page", page: Page{Page: 2, PerPage: 0}, present: false},
		{name: "negative", page: Page{Page: -1, PerPage: -1}, present: false},
		{name: "unset", page: Page{}, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(http.MethodGet, "/athlete/activities")
			tt.page.apply(req)
			params := req.Params()
			_, hasPage := params["page"]
			_, hasPerPage := params["per_page"]
			assert.Equal(t, tt.present, hasPage)
			assert.Equal(t, tt.present, hasPerPage)
			if tt.present {
				assert.Equal(t, "2", params.Get("page"))
				assert.Equal(t, "50", params.Get("per_page"))
			}
		})
	}
}

func TestAddToken(t *testing.T) {
	req := NewRequest(http.MethodGet, "/athlete").AddToken("abc")
	assert.Equal(t, "Bearer abc", req.Header("Authorization"))
}

func TestParamPlacement(t *testing.T) {
	type seen struct {
		query       string
		body        string
		contentType string
	}
	var got seen
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = seen{query: r.URL.RawQuery, body: string(b), contentType: r.Header.Get("Content-Type")}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.URL, server.Client(), zerolog.Nop())
	ctx := context.Background()

	t.Run("GET sends a query string", func(t *testing.T) {
		req := NewRequest(http.MethodGet, "/athlete/activities").AddParam("before", 10).AddParam("after", nil)
		require.True(t, d.Confirm(ctx, req).Ok())
		assert.Equal(t, "before=10", got.query)
		assert.Empty(t, got.body)
	})

	t.Run("PUT sends a form body", func(t *testing.T) {
		req := NewRequest(http.MethodPut, "/segments/1/starred").AddParam("starred", true)
		require.True(t, d.Confirm(ctx, req).Ok())
		assert.Empty(t, got.query)
		assert.Equal(t, "starred=true", got.body)
		assert.Equal(t, "application/x-www-form-urlencoded", got.contentType)
	})

	t.Run("DELETE sends a query string", func(t *testing.T) {
		req := NewRequest(http.MethodDelete, "/activities/1").AddParam("reason", "dup")
		require.True(t, d.Confirm(ctx, req).Ok())
		assert.Equal(t, "reason=dup", got.query)
	})
}

func TestMultipartUpload(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte("<gpx></gpx>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	payload := gz.Bytes()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "gpx.gz", r.FormValue("data_type"))
		assert.Equal(t, "ext-1", r.FormValue("external_id"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "ride.gpx.gz", header.Filename)
		assert.Equal(t, "application/gzip", header.Header.Get("Content-Type"))
		data, _ := io.ReadAll(f)
		assert.Equal(t, payload, data)

		w.Write([]byte(`{"id": 99, "status": "Your activity is still being processed."}`))
	}))
	defer server.Close()

	d := NewDispatcher(server.URL, server.Client(), zerolog.Nop())
	req := NewRequest(http.MethodPost, "/uploads").
		AddParam("data_type", UploadGPXGz).
		AddParam("external_id", "ext-1").
		AttachFile("file", "ride.gpx.gz", UploadGPXGz.ContentType(), bytes.NewReader(payload))
	require.True(t, req.Multipart())

	status, err := Object[UploadStatus](context.Background(), d, req).Get()
	require.NoError(t, err)
	assert.Equal(t, int64(99), status.ID)
	assert.True(t, status.Processing())
}
