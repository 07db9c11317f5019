package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Stream is one series of raw samples. Data holds numbers, [lat, lng] pairs
// or booleans depending on Type; use the typed accessors to read it.
type Stream struct {
	Type         StreamType      `json:"type"`
	Data         json.RawMessage `json:"data"`
	SeriesType   SeriesType      `json:"series_type"`
	OriginalSize int             `json:"original_size"`
	Resolution   *Resolution     `json:"resolution,omitempty"`
}

// Floats decodes numeric data such as time, distance or heartrate.
func (s Stream) Floats() ([]float64, error) {
	var out []float64
	if err := json.Unmarshal(s.Data, &out); err != nil {
		return nil, fmt.Errorf("stream %s is not numeric: %w", s.Type, err)
	}
	return out, nil
}

// LatLngs decodes a latlng stream.
func (s Stream) LatLngs() ([]LatLng, error) {
	var out []LatLng
	if err := json.Unmarshal(s.Data, &out); err != nil {
		return nil, fmt.Errorf("stream %s is not a latlng series: %w", s.Type, err)
	}
	return out, nil
}

// Bools decodes a moving stream.
func (s Stream) Bools() ([]bool, error) {
	var out []bool
	if err := json.Unmarshal(s.Data, &out); err != nil {
		return nil, fmt.Errorf("stream %s is not boolean: %w", s.Type, err)
	}
	return out, nil
}

// StreamParams chooses which streams to fetch and at what resolution.
type StreamParams struct {
	Types      []StreamType
	Resolution *Resolution
	SeriesType *SeriesType
}

func streamPath(prefix string, id int64, types []StreamType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return fmt.Sprintf("/%s/%d/streams/%s", prefix, id, strings.Join(names, ","))
}

func (c *Client) retrieveStreams(ctx context.Context, prefix string, id int64, params StreamParams) ([]Stream, error) {
	req, err := c.authed(http.MethodGet, streamPath(prefix, id, params.Types))
	if err != nil {
		return nil, err
	}
	if len(params.Types) == 0 {
		return nil, missingParameter("at least one stream type")
	}
	// series_type only means something together with a resolution
	if params.Resolution != nil {
		req.AddParam("resolution", params.Resolution).
			AddParam("series_type", params.SeriesType)
	}
	return Array[Stream](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveActivityStreams(ctx context.Context, activityID int64, params StreamParams) ([]Stream, error) {
	return c.retrieveStreams(ctx, "activities", activityID, params)
}

func (c *Client) RetrieveEffortStreams(ctx context.Context, effortID int64, params StreamParams) ([]Stream, error) {
	return c.retrieveStreams(ctx, "segment_efforts", effortID, params)
}

func (c *Client) RetrieveSegmentStreams(ctx context.Context, segmentID int64, params StreamParams) ([]Stream, error) {
	return c.retrieveStreams(ctx, "segments", segmentID, params)
}

// RetrieveRouteStreams returns every stream of a route.
func (c *Client) RetrieveRouteStreams(ctx context.Context, routeID int64) ([]Stream, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/routes/%d/streams", routeID))
	if err != nil {
		return nil, err
	}
	return Array[Stream](ctx, c.dispatcher, req).Get()
}
