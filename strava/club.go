package strava

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ClubSummary is a club as it appears in lists.
type ClubSummary struct {
	Resource
	Name            *string       `json:"name,omitempty"`
	ProfileMedium   *string       `json:"profile_medium,omitempty"`
	Profile         *string       `json:"profile,omitempty"`
	CoverPhoto      *string       `json:"cover_photo,omitempty"`
	CoverPhotoSmall *string       `json:"cover_photo_small,omitempty"`
	SportType       ClubSportType `json:"sport_type"`
	City            *string       `json:"city,omitempty"`
	State           *string       `json:"state,omitempty"`
	Country         *string       `json:"country,omitempty"`
	Private         bool          `json:"private"`
	MemberCount     int           `json:"member_count"`
	Featured        bool          `json:"featured"`
	Verified        bool          `json:"verified"`
	URL             *string       `json:"url,omitempty"`
}

// Club is the detailed view of a club.
type Club struct {
	ClubSummary
	Description    *string           `json:"description,omitempty"`
	ClubType       ClubType          `json:"club_type"`
	Membership     *MembershipStatus `json:"membership,omitempty"`
	Admin          bool              `json:"admin"`
	Owner          bool              `json:"owner"`
	FollowingCount *int              `json:"following_count,omitempty"`
}

// ClubMembership is the outcome of joining or leaving a club.
type ClubMembership struct {
	Success    bool              `json:"success"`
	Active     bool              `json:"active"`
	Membership *MembershipStatus `json:"membership,omitempty"`
}

// Announcement posted to a club.
type Announcement struct {
	Resource
	ClubID    int64           `json:"club_id"`
	CreatedAt *Time           `json:"created_at,omitempty"`
	Athlete   *AthleteSummary `json:"athlete,omitempty"`
	Message   string          `json:"message"`
}

// RouteMeta is the compact route reference embedded in a group event.
type RouteMeta struct {
	Resource
	Name string       `json:"name"`
	Map  *PolylineMap `json:"map,omitempty"`
}

// GroupEventSummary is a club event as listed under the club.
type GroupEventSummary struct {
	Resource
	Title               *string         `json:"title,omitempty"`
	Description         *string         `json:"description,omitempty"`
	Club                *ClubSummary    `json:"club,omitempty"`
	OrganizingAthlete   *AthleteSummary `json:"organizing_athlete,omitempty"`
	ActivityType        ActivityType    `json:"activity_type"`
	CreatedAt           *Time           `json:"created_at,omitempty"`
	Route               *RouteMeta      `json:"route,omitempty"`
	WomenOnly           bool            `json:"women_only"`
	Private             bool            `json:"private"`
	SkillLevels         *SkillLevel     `json:"skill_levels,omitempty"`
	Terrain             *Terrain        `json:"terrain,omitempty"`
	UpcomingOccurrences []Time          `json:"upcoming_occurrences,omitempty"`
	Address             *string         `json:"address,omitempty"`
	Zone                *string         `json:"zone,omitempty"`
	Joined              bool            `json:"joined"`
}

// GroupEvent is the detailed view of a club event.
type GroupEvent struct {
	GroupEventSummary
	ClubID      *int64      `json:"club_id,omitempty"`
	RouteID     *int64      `json:"route_id,omitempty"`
	StartLatLng *Coordinate `json:"start_latlng,omitempty"`
}

// NextOccurrence returns the first upcoming occurrence after now.
func (e GroupEventSummary) NextOccurrence(now time.Time) (time.Time, bool) {
	for _, t := range e.UpcomingOccurrences {
		if t.After(now) {
			return t.Time, true
		}
	}
	return time.Time{}, false
}

func clubPath(clubID, suffix string) string {
	return "/clubs/" + url.PathEscape(clubID) + suffix
}

// RetrieveClub returns one club. clubID may be numeric or a vanity slug.
func (c *Client) RetrieveClub(ctx context.Context, clubID string) (*Club, error) {
	req, err := c.authed(http.MethodGet, clubPath(clubID, ""))
	if err != nil {
		return nil, err
	}
	return Object[Club](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListClubAnnouncements(ctx context.Context, clubID string) ([]Announcement, error) {
	req, err := c.authed(http.MethodGet, clubPath(clubID, "/announcements"))
	if err != nil {
		return nil, err
	}
	return Array[Announcement](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListClubGroupEvents(ctx context.Context, clubID string) ([]GroupEventSummary, error) {
	req, err := c.authed(http.MethodGet, clubPath(clubID, "/group_events"))
	if err != nil {
		return nil, err
	}
	return Array[GroupEventSummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) RetrieveGroupEvent(ctx context.Context, id int64) (*GroupEvent, error) {
	req, err := c.authed(http.MethodGet, fmt.Sprintf("/group_events/%d", id))
	if err != nil {
		return nil, err
	}
	return Object[GroupEvent](ctx, c.dispatcher, req).Get()
}

// ListAthleteClubs lists clubs the authenticated athlete belongs to.
func (c *Client) ListAthleteClubs(ctx context.Context) ([]ClubSummary, error) {
	req, err := c.authed(http.MethodGet, "/athlete/clubs")
	if err != nil {
		return nil, err
	}
	return Array[ClubSummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListClubMembers(ctx context.Context, clubID string, page Page) ([]AthleteSummary, error) {
	req, err := c.authed(http.MethodGet, clubPath(clubID, "/members"))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[AthleteSummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) ListClubAdmins(ctx context.Context, clubID string, page Page) ([]AthleteSummary, error) {
	req, err := c.authed(http.MethodGet, clubPath(clubID, "/admins"))
	if err != nil {
		return nil, err
	}
	page.apply(req)
	return Array[AthleteSummary](ctx, c.dispatcher, req).Get()
}

// ListClubActivities lists recent activities of club members.
func (c *Client) ListClubActivities(ctx context.Context, clubID string, before *time.Time, page Page) ([]ActivitySummary, error) {
	req, err := c.authed(http.MethodGet, clubPath(clubID, "/activities"))
	if err != nil {
		return nil, err
	}
	req.AddParam("before", epoch(before))
	page.apply(req)
	return Array[ActivitySummary](ctx, c.dispatcher, req).Get()
}

func (c *Client) JoinClub(ctx context.Context, clubID string) (*ClubMembership, error) {
	req, err := c.authed(http.MethodPost, clubPath(clubID, "/join"))
	if err != nil {
		return nil, err
	}
	return Object[ClubMembership](ctx, c.dispatcher, req).Get()
}

func (c *Client) LeaveClub(ctx context.Context, clubID string) (*ClubMembership, error) {
	req, err := c.authed(http.MethodPost, clubPath(clubID, "/leave"))
	if err != nil {
		return nil, err
	}
	return Object[ClubMembership](ctx, c.dispatcher, req).Get()
}
