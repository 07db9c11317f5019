package strava

import (
	"context"
	"fmt"
	"net/http"
)

// AthleteSummary is the public view of an athlete.
type AthleteSummary struct {
	Resource
	FirstName     string           `json:"firstname"`
	LastName      string           `json:"lastname"`
	ProfileMedium *string          `json:"profile_medium,omitempty"`
	Profile       *string          `json:"profile,omitempty"`
	City          *string          `json:"city,omitempty"`
	State         *string          `json:"state,omitempty"`
	Country       *string          `json:"country,omitempty"`
	Sex           *Gender          `json:"sex,omitempty"`
	Friend        *FollowingStatus `json:"friend,omitempty"`
	Follower      *FollowingStatus `json:"follower,omitempty"`
	Premium       bool             `json:"premium"`
	Summit        bool             `json:"summit"`
	CreatedAt     *Time            `json:"created_at,omitempty"`
	UpdatedAt     *Time            `json:"updated_at,omitempty"`
}

// FullName joins first and last name.
func (a AthleteSummary) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Athlete is the detailed view, returned for the authenticated athlete.
type Athlete struct {
	AthleteSummary
	FollowerCount         int                   `json:"follower_count"`
	FriendCount           int                   `json:"friend_count"`
	MutualFriendCount     int                   `json:"mutual_friend_count"`
	AthleteType           *AthleteType          `json:"athlete_type,omitempty"`
	DatePreference        *string               `json:"date_preference,omitempty"`
	MeasurementPreference MeasurementPreference `json:"measurement_preference"`
	Email                 *string               `json:"email,omitempty"`
	FTP                   *int                  `json:"ftp,omitempty"`
	Weight                *float64              `json:"weight,omitempty"`
	Clubs                 []ClubSummary         `json:"clubs,omitempty"`
	Bikes                 []GearSummary         `json:"bikes,omitempty"`
	Shoes                 []GearSummary         `json:"shoes,omitempty"`
}

// Totals aggregates a group of activities.
type Totals struct {
	Count            int     `json:"count"`
	Distance         float64 `json:"distance"`
	MovingTime       int     `json:"moving_time"`
	ElapsedTime      int     `json:"elapsed_time"`
	ElevationGain    float64 `json:"elevation_gain"`
	AchievementCount int     `json:"achievement_count"`
}

// AthleteStats are rolled-up totals for an athlete.
type AthleteStats struct {
	BiggestRideDistance       float64 `json:"biggest_ride_distance"`
	BiggestClimbElevationGain float64 `json:"biggest_climb_elevation_gain"`
	RecentRideTotals          *Totals `json:"recent_ride_totals,omitempty"`
	RecentRunTotals           *Totals `json:"recent_run_totals,omitempty"`
	RecentSwimTotals          *Totals `json:"recent_swim_totals,omitempty"`
	YTDRideTotals             *Totals `json:"ytd_ride_totals,omitempty"`
	YTDRunTotals              *Totals `json:"ytd_run_totals,omitempty"`
	YTDSwimTotals             *Totals `json:"ytd_swim_totals,omitempty"`
	AllRideTotals             *Totals `json:"all_ride_totals,omitempty"`
	AllRunTotals              *Totals `json:"all_run_totals,omitempty"`
	AllSwimTotals             *Totals `json:"all_swim_totals,omitempty"`
}

// ZoneRange is one bucket of a heart rate or power zone set.
type ZoneRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type HeartRateZones struct {
	CustomZones bool        `json:"custom_zones"`
	Zones       []ZoneRange `json:"zones"`
}

type PowerZones struct {
	Zones []ZoneRange `json:"zones"`
}

// Zones are the authenticated athlete's training zones.
type Zones struct {
	HeartRate *HeartRateZones `json:"heart_rate,omitempty"`
	Power     *PowerZones     `json:"power,omitempty"`
}

// UpdateAthleteParams are the writable athlete fields. Nil fields are left unchanged.
type UpdateAthleteParams struct {
	City    *string
	State   *string
	Country *string
	Sex     *Gender
	Weight  *float64
}

func athletePath(athleteID *int64, suffix string) string {
	if athleteID == nil {
		return "/athlete" + suffix
	}
	return fmt.Sprintf("/athletes/%d%s", *athleteID, suffix)
}

// RetrieveAthlete returns the authenticated athlete when athleteID is nil,
// otherwise the given athlete.
func (c *Client) RetrieveAthlete(ctx context.Context, athleteID *int64) (*Athlete, error) {
	req, err := c.authed(http.MethodGet, athletePath(athleteID, ""))
	if err != nil {
		return nil, err
	}
	return Object[Athlete](ctx, c.dispatcher, req).Get()
}

// ListAthleteFriends lists athletes the given (or authenticated) athlete follows.
func (c *Client) ListAthleteFriends(ctx context.Context, athleteID *int64, page Page) ([]AthleteSummary, error) {
	req, err := c.authed(http.MethodGet, athletePath(athleteID, "/friends"))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[AthleteSummary](ctx, c.dispatcher, req).Get()
}

// ListAthleteFollowers lists athletes following the given (or authenticated) athlete.
func (c *Client) ListAthleteFollowers(ctx context.Context, athleteID *int64, page Page) ([]AthleteSummary, error) {
	req, err := c.authed(http.MethodGet, athletePath(athleteID, "/followers"))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[AthleteSummary](ctx, c.dispatcher, req).Get()
}

// ListBothFollowing lists athletes both the authenticated athlete and athleteID follow.
func (c *Client) ListBothFollowing(ctx context.Context, athleteID int64, page Page) ([]AthleteSummary, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/athletes/%d/both-following", athleteID))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[AthleteSummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveAthleteZones(ctx context.Context) (*Zones, error) {
	req, err := c.authed(http.MethodGet, "/athlete/zones")
	if err != nil {
		return nil, err
	}
	return Object[Zones](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveAthleteStats(ctx context.Context, athleteID int64) (*AthleteStats, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/athletes/%d/stats", athleteID))
	if err != nil {
		return nil, err
	}
	return Object[AthleteStats](ctx, c.dispatcher, req).Get()
}

// ListAthleteKOMs lists the athlete's KOM/QOM efforts.
func (c *Client) ListAthleteKOMs(ctx context.Context, athleteID int64, page Page) ([]SegmentEffort, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/athletes/%d/koms", athleteID))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[SegmentEffort](ctx, c.dispatcher, req).Get()
}

// UpdateAthlete changes the authenticated athlete's profile.
func (c *Client) UpdateAthlete(ctx context.Context, params UpdateAthleteParams) (*Athlete, error) {
	req, err := c.authed(http.MethodPut, "/athlete")
	if err != nil {
		return nil, err
	}
	req.AddParam("city", params.City).
		AddParam("state", params.State).
		AddParam("country", params.Country).
		AddParam("sex", params.Sex).
		AddParam("weight", params.Weight)
	return Object[Athlete](ctx, c.dispatcher, req).Get()
}
