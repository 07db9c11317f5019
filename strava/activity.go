package strava

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ActivitySummary is an activity as it appears in lists.
type ActivitySummary struct {
	Resource
	ExternalID           *string         `json:"external_id,omitempty"`
	UploadID             *int64          `json:"upload_id,omitempty"`
	Athlete              *AthleteSummary `json:"athlete,omitempty"`
	Name                 *string         `json:"name,omitempty"`
	Distance             float64         `json:"distance"`
	MovingTime           int             `json:"moving_time"`
	ElapsedTime          int             `json:"elapsed_time"`
	TotalElevationGain   float64         `json:"total_elevation_gain"`
	ElevationHigh        *float64        `json:"elev_high,omitempty"`
	ElevationLow         *float64        `json:"elev_low,omitempty"`
	Type                 ActivityType    `json:"type"`
	SportType            SportType       `json:"sport_type"`
	StartDate            *Time           `json:"start_date,omitempty"`
	StartDateLocal       *Time           `json:"start_date_local,omitempty"`
	Timezone             *string         `json:"timezone,omitempty"`
	StartLatLng          *Coordinate     `json:"start_latlng,omitempty"`
	EndLatLng            *Coordinate     `json:"end_latlng,omitempty"`
	AchievementCount     int             `json:"achievement_count"`
	KudosCount           int             `json:"kudos_count"`
	CommentCount         int             `json:"comment_count"`
	AthleteCount         int             `json:"athlete_count"`
	PhotoCount           int             `json:"photo_count"`
	TotalPhotoCount      int             `json:"total_photo_count"`
	Map                  *PolylineMap    `json:"map,omitempty"`
	Trainer              bool            `json:"trainer"`
	Commute              bool            `json:"commute"`
	Manual               bool            `json:"manual"`
	Private              bool            `json:"private"`
	Flagged              bool            `json:"flagged"`
	WorkoutType          *WorkoutType    `json:"workout_type,omitempty"`
	GearID               *string         `json:"gear_id,omitempty"`
	AverageSpeed         float64         `json:"average_speed"`
	MaxSpeed             float64         `json:"max_speed"`
	AverageCadence       *float64        `json:"average_cadence,omitempty"`
	AverageTemp          *float64        `json:"average_temp,omitempty"`
	AverageWatts         *float64        `json:"average_watts,omitempty"`
	MaxWatts             *int            `json:"max_watts,omitempty"`
	WeightedAverageWatts *int            `json:"weighted_average_watts,omitempty"`
	Kilojoules           *float64        `json:"kilojoules,omitempty"`
	DeviceWatts          bool            `json:"device_watts"`
	HasHeartrate         bool            `json:"has_heartrate"`
	AverageHeartrate     *float64        `json:"average_heartrate,omitempty"`
	MaxHeartrate         *float64        `json:"max_heartrate,omitempty"`
	SufferScore          *int            `json:"suffer_score,omitempty"`
	HasKudoed            bool            `json:"has_kudoed"`
}

// Activity is the detailed view of an activity.
type Activity struct {
	ActivitySummary
	Description    *string         `json:"description,omitempty"`
	Calories       *float64        `json:"calories,omitempty"`
	Gear           *GearSummary    `json:"gear,omitempty"`
	SegmentEfforts []SegmentEffort `json:"segment_efforts,omitempty"`
	BestEfforts    []SegmentEffort `json:"best_efforts,omitempty"`
	SplitsMetric   []Split         `json:"splits_metric,omitempty"`
	SplitsStandard []Split         `json:"splits_standard,omitempty"`
	Laps           []Lap           `json:"laps,omitempty"`
	Photos         *PhotoSummary   `json:"photos,omitempty"`
	DeviceName     *string         `json:"device_name,omitempty"`
	EmbedToken     *string         `json:"embed_token,omitempty"`
}

// Lap is one lap of an activity.
type Lap struct {
	Resource
	Activity           *Resource `json:"activity,omitempty"`
	Athlete            *Resource `json:"athlete,omitempty"`
	Name               *string   `json:"name,omitempty"`
	AverageCadence     *float64  `json:"average_cadence,omitempty"`
	AverageSpeed       float64   `json:"average_speed"`
	MaxSpeed           float64   `json:"max_speed"`
	Distance           float64   `json:"distance"`
	ElapsedTime        int       `json:"elapsed_time"`
	MovingTime         int       `json:"moving_time"`
	StartIndex         int       `json:"start_index"`
	EndIndex           int       `json:"end_index"`
	LapIndex           int       `json:"lap_index"`
	Split              int       `json:"split"`
	StartDate          *Time     `json:"start_date,omitempty"`
	StartDateLocal     *Time     `json:"start_date_local,omitempty"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
}

// Split is a per-kilometre or per-mile split.
type Split struct {
	AverageSpeed        float64 `json:"average_speed"`
	Distance            float64 `json:"distance"`
	ElapsedTime         int     `json:"elapsed_time"`
	ElevationDifference float64 `json:"elevation_difference"`
	PaceZone            *int    `json:"pace_zone,omitempty"`
	MovingTime          int     `json:"moving_time"`
	Split               int     `json:"split"`
}

// DistributionBucket is time spent in one zone range.
type DistributionBucket struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Time float64 `json:"time"`
}

// ActivityZone is the heart rate or power distribution of an activity.
type ActivityZone struct {
	Score               *int                 `json:"score,omitempty"`
	Type                *ActivityZoneType    `json:"type,omitempty"`
	SensorBased         bool                 `json:"sensor_based"`
	Points              *int                 `json:"points,omitempty"`
	CustomZones         *bool                `json:"custom_zones,omitempty"`
	Max                 *int                 `json:"max,omitempty"`
	ResourceState       ResourceState        `json:"resource_state"`
	DistributionBuckets []DistributionBucket `json:"distribution_buckets,omitempty"`
}

// Comment on an activity.
type Comment struct {
	Resource
	ActivityID int64           `json:"activity_id"`
	Text       *string         `json:"text,omitempty"`
	Athlete    *AthleteSummary `json:"athlete,omitempty"`
	CreatedAt  *Time           `json:"created_at,omitempty"`
}

// CreateActivityParams describes a manually entered activity.
type CreateActivityParams struct {
	Name           string
	Type           ActivityType
	SportType      SportType
	StartDateLocal time.Time
	ElapsedTime    int
	Description    *string
	Distance       *float64
	Private        *bool
	Trainer        *bool
	Commute        *bool
}

// UpdateActivityParams are the writable activity fields. Nil fields are left unchanged.
type UpdateActivityParams struct {
	Name        *string
	Type        *ActivityType
	SportType   *SportType
	Description *string
	GearID      *string
	Private     *bool
	Trainer     *bool
	Commute     *bool
}

// ListActivitiesParams filters the authenticated athlete's activities.
type ListActivitiesParams struct {
	Before *time.Time
	After  *time.Time
	Page
}

// flag renders an optional bool the way the create endpoint expects it: 1 or 0.
func flag(b *bool) *int {
	if b == nil {
		return nil
	}
	n := 0
	if *b {
		n = 1
	}
	return &n
}

func (c *Client) CreateActivity(ctx context.Context, params CreateActivityParams) (*Activity, error) {
	req, err := c.authed(http.MethodPost, "/activities")
	if err != nil {
		return nil, err
	}
	req.AddParam("name", params.Name).
		AddParam("start_date_local", params.StartDateLocal).
		AddParam("elapsed_time", params.ElapsedTime).
		AddParam("description", params.Description).
		AddParam("distance", params.Distance).
		AddParam("private", flag(params.Private)).
		AddParam("trainer", flag(params.Trainer)).
		AddParam("commute", flag(params.Commute))
	if params.Type != "" {
		req.AddParam("type", params.Type)
	}
	if params.SportType != "" {
		req.AddParam("sport_type", params.SportType)
	}
	return Object[Activity](ctx, c.dispatcher, req).Get()
}

// RetrieveActivity returns one activity in detail.
func (c *Client) RetrieveActivity(ctx context.Context, id int64, includeAllEfforts bool) (*Activity, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d", id))
	if err != nil {
		return nil, err
	}
	if includeAllEfforts {
		req.AddParam("include_all_efforts", true)
	}
	return Object[Activity](ctx, c.dispatcher, req).Get()
}

func (c *Client) UpdateActivity(ctx context.Context, id int64, params UpdateActivityParams) (*Activity, error) {
	req, err := c.authed(http.MethodPut, fmt.Sprintf("/activities/%d", id))
	if err != nil {
		return nil, err
	}
	req.AddParam("name", params.Name).
		AddParam("type", params.Type).
		AddParam("sport_type", params.SportType).
		AddParam("description", params.Description).
		AddParam("gear_id", params.GearID).
		AddParam("private", params.Private).
		AddParam("trainer", params.Trainer).
		AddParam("commute", params.Commute)
	return Object[Activity](ctx, c.dispatcher, req).Get()
}

// DeleteActivity deletes an activity. Only success or failure is reported.
func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	req, err := c.authed(http.MethodDelete, fmt.Sprintf("/activities/%d", id))
	if err != nil {
		return err
	}
	return c.dispatcher.Confirm(ctx, req).Err()
}

// ListAthleteActivities lists the authenticated athlete's activities.
func (c *Client) ListAthleteActivities(ctx context.Context, params ListActivitiesParams) ([]ActivitySummary, error) {
	req, err := c.authed(http.MethodGet, "/athlete/activities")
	if err != nil {
		return nil, err
	}
	req.AddParam("before", epoch(params.Before)).
		AddParam("after", epoch(params.After))
	params.Page.apply(req)
	return Array[ActivitySummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListRelatedActivities(ctx context.Context, id int64, page Page) ([]ActivitySummary, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d/related", id))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[ActivitySummary](ctx, c.dispatcher, req).Get()
}

// ListFriendsActivities lists recent activities of athletes the authenticated athlete follows.
func (c *Client) ListFriendsActivities(ctx context.Context, before *time.Time, page Page) ([]ActivitySummary, error) {
	req, err := c.authed(http.MethodGet, "/activities/following")
	if err != nil {
		return nil, err
	}
	req.AddParam("before", epoch(before))
	page.apply(req)
	return Array[ActivitySummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListActivityComments(ctx context.Context, id int64, page Page) ([]Comment, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d/comments", id))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[Comment](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListActivityKudoers(ctx context.Context, id int64, page Page) ([]AthleteSummary, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d/kudos", id))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[AthleteSummary](ctx, c.dispatcher, req).Get()
}

// ListActivityPhotos lists photos of an activity from every source.
func (c *Client) ListActivityPhotos(ctx context.Context, id int64) ([]Photo, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d/photos", id))
	if err != nil {
		return nil, err
	}
	req.AddParam("photo_sources", true)
	return Array[Photo](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListActivityZones(ctx context.Context, id int64) ([]ActivityZone, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d/zones", id))
	if err != nil {
		return nil, err
	}
	return Array[ActivityZone](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListActivityLaps(ctx context.Context, id int64) ([]Lap, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/activities/%d/laps", id))
	if err != nil {
		return nil, err
	}
	return Array[Lap](ctx, c.dispatcher, req).Get()
}
