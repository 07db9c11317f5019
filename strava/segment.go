package strava

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SegmentSummary is a segment as it appears in lists and efforts.
type SegmentSummary struct {
	Resource
	Name          string         `json:"name"`
	ActivityType  ActivityType   `json:"activity_type"`
	Distance      float64        `json:"distance"`
	AverageGrade  float64        `json:"average_grade"`
	MaximumGrade  float64        `json:"maximum_grade"`
	ElevationHigh float64        `json:"elevation_high"`
	ElevationLow  float64        `json:"elevation_low"`
	StartLatLng   *Coordinate    `json:"start_latlng,omitempty"`
	EndLatLng     *Coordinate    `json:"end_latlng,omitempty"`
	ClimbCategory *ClimbCategory `json:"climb_category,omitempty"`
	City          *string        `json:"city,omitempty"`
	State         *string        `json:"state,omitempty"`
	Country       *string        `json:"country,omitempty"`
	Private       bool           `json:"private"`
	Starred       bool           `json:"starred"`
	Hazardous     bool           `json:"hazardous"`
}

// Segment is the detailed view of a segment.
type Segment struct {
	SegmentSummary
	CreatedAt          *Time        `json:"created_at,omitempty"`
	UpdatedAt          *Time        `json:"updated_at,omitempty"`
	TotalElevationGain float64      `json:"total_elevation_gain"`
	Map                *PolylineMap `json:"map,omitempty"`
	EffortCount        int          `json:"effort_count"`
	AthleteCount       int          `json:"athlete_count"`
	StarCount          int          `json:"star_count"`
}

// SegmentEffort is one attempt at a segment.
type SegmentEffort struct {
	Resource
	Name             *string         `json:"name,omitempty"`
	Activity         *Resource       `json:"activity,omitempty"`
	Athlete          *Resource       `json:"athlete,omitempty"`
	ElapsedTime      int             `json:"elapsed_time"`
	MovingTime       int             `json:"moving_time"`
	StartDate        *Time           `json:"start_date,omitempty"`
	StartDateLocal   *Time           `json:"start_date_local,omitempty"`
	Distance         float64         `json:"distance"`
	StartIndex       int             `json:"start_index"`
	EndIndex         int             `json:"end_index"`
	AverageCadence   *float64        `json:"average_cadence,omitempty"`
	AverageWatts     *float64        `json:"average_watts,omitempty"`
	DeviceWatts      *bool           `json:"device_watts,omitempty"`
	AverageHeartrate *float64        `json:"average_heartrate,omitempty"`
	MaxHeartrate     *float64        `json:"max_heartrate,omitempty"`
	Segment          *SegmentSummary `json:"segment,omitempty"`
	KOMRank          *int            `json:"kom_rank,omitempty"`
	PRRank           *int            `json:"pr_rank,omitempty"`
	Hidden           bool            `json:"hidden"`
}

// LeaderboardEntry is one ranked effort on a leaderboard.
type LeaderboardEntry struct {
	AthleteName    *string  `json:"athlete_name,omitempty"`
	AthleteID      int64    `json:"athlete_id"`
	AthleteGender  *Gender  `json:"athlete_gender,omitempty"`
	AverageHR      *float64 `json:"average_hr,omitempty"`
	AverageWatts   *float64 `json:"average_watts,omitempty"`
	Distance       *float64 `json:"distance,omitempty"`
	ElapsedTime    int      `json:"elapsed_time"`
	MovingTime     int      `json:"moving_time"`
	StartDate      *Time    `json:"start_date,omitempty"`
	StartDateLocal *Time    `json:"start_date_local,omitempty"`
	ActivityID     int64    `json:"activity_id"`
	EffortID       int64    `json:"effort_id"`
	Rank           int      `json:"rank"`
	AthleteProfile *string  `json:"athlete_profile,omitempty"`
}

// Leaderboard of a segment.
type Leaderboard struct {
	EntryCount int                `json:"entry_count"`
	Entries    []LeaderboardEntry `json:"entries"`
}

// ExplorerResponse wraps the segments found by ExploreSegments.
type ExplorerResponse struct {
	Segments []ExplorerSegment `json:"segments"`
}

// ExplorerSegment is the compact segment form returned by the explorer.
type ExplorerSegment struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	ClimbCategory     *ClimbCategory `json:"climb_category,omitempty"`
	ClimbCategoryDesc string         `json:"climb_category_desc"`
	AverageGrade      float64        `json:"avg_grade"`
	StartLatLng       *Coordinate    `json:"start_latlng,omitempty"`
	EndLatLng         *Coordinate    `json:"end_latlng,omitempty"`
	ElevationDiff     float64        `json:"elev_difference"`
	Distance          float64        `json:"distance"`
	Points            string         `json:"points"`
	Starred           bool           `json:"starred"`
}

// Bounds is the area searched by ExploreSegments, sent as eight
// comma-separated coordinates.
type Bounds [8]float64

func (b Bounds) String() string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// ParseBounds reads eight comma-separated numbers.
func ParseBounds(s string) (Bounds, error) {
	var b Bounds
	parts := strings.Split(s, ",")
	if len(parts) != len(b) {
		return b, fmt.Errorf("bounds need %d comma-separated values, got %d", len(b), len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return b, fmt.Errorf("invalid bound %q: %w", p, err)
		}
		b[i] = v
	}
	return b, nil
}

// ExploreActivityType selects riding or running segments in the explorer.
type ExploreActivityType string

const (
	ExploreRiding  ExploreActivityType = "riding"
	ExploreRunning ExploreActivityType = "running"
)

type ExploreParams struct {
	Bounds       Bounds
	ActivityType ExploreActivityType
	MinCat       *ClimbCategory
	MaxCat       *ClimbCategory
}

type SegmentEffortsParams struct {
	AthleteID      *int64
	StartDateLocal *time.Time
	EndDateLocal   *time.Time
	Page
}

type LeaderboardParams struct {
	Gender         *Gender
	AgeGroup       *AgeGroup
	WeightClass    *WeightClass
	Following      *bool
	ClubID         *int64
	DateRange      *DateRange
	ContextEntries *int
	Page
}

func (c *Client) RetrieveSegment(ctx context.Context, id int64) (*Segment, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/segments/%d", id))
	if err != nil {
		return nil, err
	}
	return Object[Segment](ctx, c.dispatcher, req).Get()
}

// ListStarredSegments lists segments starred by the authenticated athlete.
func (c *Client) ListStarredSegments(ctx context.Context, page Page) ([]SegmentSummary, error) {
	req, err := c.authed(http.MethodGet, "/segments/starred")
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[SegmentSummary](ctx, c.dispatcher, req).Get()
}

// StarSegment stars or unstars a segment.
func (c *Client) StarSegment(ctx context.Context, id int64, starred bool) (*Segment, error) {
	req, err := c.authed(http.MethodPut, fmt.Sprintf("/segments/%d/starred", id))
	if err != nil {
		return nil, err
	}
	req.AddParam("starred", starred)
	return Object[Segment](ctx, c.dispatcher, req).Get()
}

// ListSegmentEfforts lists efforts on a segment, optionally for one athlete
// and a date window.
func (c *Client) ListSegmentEfforts(ctx context.Context, segmentID int64, params SegmentEffortsParams) ([]SegmentEffort, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/segments/%d/all_efforts", segmentID))
	if err != nil {
		return nil, err
	}
	req.AddParam("athlete_id", params.AthleteID).
		AddParam("start_date_local", params.StartDateLocal).
		AddParam("end_date_local", params.EndDateLocal)
	params.Page.apply(req)
	return Array[SegmentEffort](ctx, c.dispatcher, req).Get()
}

func (c *Client) SegmentLeaderboard(ctx context.Context, segmentID int64, params LeaderboardParams) (*Leaderboard, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/segments/%d/leaderboard", segmentID))
	if err != nil {
		return nil, err
	}
	req.AddParam("gender", params.Gender).
		AddParam("age_group", params.AgeGroup).
		AddParam("weight_class", params.WeightClass).
		AddParam("following", params.Following).
		AddParam("club_id", params.ClubID).
		AddParam("date_range", params.DateRange).
		AddParam("context_entries", params.ContextEntries)
	params.Page.apply(req)
	return Object[Leaderboard](ctx, c.dispatcher, req).Get()
}

// ExploreSegments finds popular segments inside the given bounds.
func (c *Client) ExploreSegments(ctx context.Context, params ExploreParams) (*ExplorerResponse, error) {
	req, err := c.authed(http.MethodGet, "/segments/explore")
	if err != nil {
		return nil, err
	}
	if params.Bounds == (Bounds{}) {
		return nil, missingParameter("bounds")
	}
	req.AddParam("bounds", params.Bounds).
		AddParam("min_cat", params.MinCat).
		AddParam("max_cat", params.MaxCat)
	if params.ActivityType != "" {
		req.AddParam("activity_type", params.ActivityType)
	}
	return Object[ExplorerResponse](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveSegmentEffort(ctx context.Context, id int64) (*SegmentEffort, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/segment_efforts/%d", id))
	if err != nil {
		return nil, err
	}
	return Object[SegmentEffort](ctx, c.dispatcher, req).Get()
}
