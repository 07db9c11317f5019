package strava

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RouteSummary is a route as it appears in lists.
type RouteSummary struct {
	Resource
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Athlete       *AthleteSummary `json:"athlete,omitempty"`
	Distance      float64         `json:"distance"`
	ElevationGain float64         `json:"elevation_gain"`
	Map           *PolylineMap    `json:"map,omitempty"`
	Type          *RouteType      `json:"type,omitempty"`
	SubType       *RouteSubType   `json:"sub_type,omitempty"`
	Private       bool            `json:"private"`
	Starred       bool            `json:"starred"`
	Timestamp     *int64          `json:"timestamp,omitempty"`
}

// Route is the detailed view of a route.
type Route struct {
	RouteSummary
	Segments []SegmentSummary `json:"segments,omitempty"`
}

// RunningRaceSummary is a race as listed in the race calendar.
type RunningRaceSummary struct {
	Resource
	Name                  string                `json:"name"`
	RunningRaceType       *RunningRaceType      `json:"running_race_type,omitempty"`
	Distance              float64               `json:"distance"`
	StartDateLocal        *Time                 `json:"start_date_local,omitempty"`
	City                  *string               `json:"city,omitempty"`
	State                 *string               `json:"state,omitempty"`
	Country               *string               `json:"country,omitempty"`
	MeasurementPreference MeasurementPreference `json:"measurement_preference"`
	URL                   *string               `json:"url,omitempty"`
}

// RunningRace is the detailed view of a race.
type RunningRace struct {
	RunningRaceSummary
	RouteIDs   []int64 `json:"route_ids,omitempty"`
	WebsiteURL *string `json:"website_url,omitempty"`
}

// GearSummary is a bike or pair of shoes as listed on the athlete.
type GearSummary struct {
	ID            string        `json:"id"`
	ResourceState ResourceState `json:"resource_state"`
	Primary       bool          `json:"primary"`
	Name          string        `json:"name"`
	Distance      float64       `json:"distance"`
}

// Gear is the detailed view of a bike or pair of shoes. FrameType is only
// set for bikes.
type Gear struct {
	GearSummary
	BrandName   *string    `json:"brand_name,omitempty"`
	ModelName   *string    `json:"model_name,omitempty"`
	FrameType   *FrameType `json:"frame_type,omitempty"`
	Description *string    `json:"description,omitempty"`
}

func (c *Client) RetrieveRoute(ctx context.Context, id int64) (*Route, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/routes/%d", id))
	if err != nil {
		return nil, err
	}
	return Object[Route](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListAthleteRoutes(ctx context.Context, athleteID int64, page Page) ([]RouteSummary, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/athletes/%d/routes", athleteID))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[RouteSummary](ctx, c.dispatcher, req).Get()
}

// ListRunningRaces lists races, for the given year when year is set.
func (c *Client) ListRunningRaces(ctx context.Context, year *int) ([]RunningRaceSummary, error) {
	req, err := c.authed(http.MethodGet, "/running_races")
	if err != nil {
		return nil, err
	}
	req.AddParam("year", year)
	return Array[RunningRaceSummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveRunningRace(ctx context.Context, id int64) (*RunningRace, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/running_races/%d", id))
	if err != nil {
		return nil, err
	}
	return Object[RunningRace](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveGear(ctx context.Context, gearID string) (*Gear, error) {
	req, err := c.authed(http.MethodGet, "/gear/"+url.PathEscape(gearID))
	if err != nil {
		return nil, err
	}
	return Object[Gear](ctx, c.dispatcher, req).Get()
}
