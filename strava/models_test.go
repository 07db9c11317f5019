package strava

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activityJSON = `{
	"id": 154504250376823,
	"resource_state": 3,
	"external_id": "garmin_push_12345678987654321",
	"upload_id": 987654321234567900,
	"athlete": {"id": 134815, "resource_state": 1},
	"name": "Happy Friday",
	"distance": 28099,
	"moving_time": 4207,
	"elapsed_time": 4410,
	"total_elevation_gain": 516,
	"type": "Ride",
	"sport_type": "MountainBikeRide",
	"start_date": "2018-05-02T12:15:09Z",
	"start_date_local": "2018-05-02T05:15:09-07:00",
	"timezone": "(GMT-08:00) America/Los_Angeles",
	"start_latlng": [37.83, -122.26],
	"end_latlng": [],
	"achievement_count": 0,
	"kudos_count": 19,
	"map": {"id": "a1410355832", "polyline": "ki{eFvqfiVqAWQIGEEKAYJgBVqDJ", "resource_state": 3},
	"trainer": false,
	"commute": true,
	"workout_type": 10,
	"gear_id": "b12345678987654321",
	"average_speed": 6.679,
	"max_speed": 18.5,
	"average_watts": 185.5,
	"device_watts": true,
	"has_heartrate": false,
	"description": "",
	"calories": 870.2,
	"photos": {"count": 2, "primary": {"id": null, "unique_id": "3FDGKL3-204E-4867-9E8D-89FC79EAAE17", "source": 1}},
	"gear": {"id": "b12345678987654321", "primary": true, "name": "Tarmac", "resource_state": 2, "distance": 32547610},
	"segment_efforts": [{
		"id": 2801,
		"resource_state": 2,
		"name": "Dash for the Ferry",
		"activity": {"id": 1410355832, "resource_state": 1},
		"elapsed_time": 1657,
		"start_date": "2018-02-12T16:12:41Z",
		"segment": {"id": 673683, "name": "Dash for the Ferry", "activity_type": "Ride", "climb_category": 0},
		"kom_rank": null,
		"pr_rank": 1
	}],
	"laps": [{"id": 4479306946, "resource_state": 2, "name": "Lap 1", "lap_index": 1, "distance": 28099}],
	"device_name": "Garmin Edge 1030"
}`

func TestActivityDecode(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(activityJSON), &a))

	assert.Equal(t, int64(154504250376823), a.ID)
	assert.Equal(t, ResourceStateDetail, a.ResourceState)
	assert.Equal(t, "Happy Friday", *a.Name)
	assert.Equal(t, ActivityTypeRide, a.Type)
	assert.Equal(t, SportTypeMountainBikeRide, a.SportType)
	require.NotNil(t, a.Athlete)
	assert.Equal(t, int64(134815), a.Athlete.ID)
	require.NotNil(t, a.StartDate)
	assert.True(t, a.StartDate.Equal(time.Date(2018, 5, 2, 12, 15, 9, 0, time.UTC)))
	require.NotNil(t, a.StartDateLocal)
	_, offset := a.StartDateLocal.Zone()
	assert.Equal(t, -7*3600, offset)
	start, ok := a.StartLatLng.Point()
	require.True(t, ok)
	assert.Equal(t, 37.83, start.Lat())
	require.NotNil(t, a.EndLatLng)
	_, ok = a.EndLatLng.Point()
	assert.False(t, ok, "empty latlng has no point")
	require.NotNil(t, a.WorkoutType)
	assert.Equal(t, WorkoutTypeRideDefault, *a.WorkoutType)
	assert.True(t, a.Commute)
	require.NotNil(t, a.AverageWatts)
	assert.Nil(t, a.AverageHeartrate)
	require.NotNil(t, a.Description)
	assert.Equal(t, "", *a.Description)
	require.NotNil(t, a.Photos)
	assert.Equal(t, 2, a.Photos.Count)
	require.NotNil(t, a.Photos.Primary)
	assert.Nil(t, a.Photos.Primary.ID)
	require.NotNil(t, a.Gear)
	assert.Equal(t, "Tarmac", a.Gear.Name)
	require.Len(t, a.SegmentEfforts, 1)
	assert.Nil(t, a.SegmentEfforts[0].KOMRank)
	require.NotNil(t, a.SegmentEfforts[0].PRRank)
	require.NotNil(t, a.SegmentEfforts[0].Segment.ClimbCategory)
	assert.Equal(t, ClimbCategoryNone, *a.SegmentEfforts[0].Segment.ClimbCategory)
	require.Len(t, a.Laps, 1)
	assert.Equal(t, "Garmin Edge 1030", *a.DeviceName)
}

// assertKeysKept checks that every key of want survives in got with the same
// value. Null in want may come back absent, dates may change their offset
// notation.
func assertKeysKept(t *testing.T, path string, want, got any) {
	t.Helper()
	switch w := want.(type) {
	case map[string]any:
		g, ok := got.(map[string]any)
		require.True(t, ok, "%s: got %T, want an object", path, got)
		for k, wv := range w {
			gv, present := g[k]
			if wv == nil {
				assert.Nil(t, gv, "%s.%s", path, k)
				continue
			}
			if assert.True(t, present, "%s.%s was dropped", path, k) {
				assertKeysKept(t, path+"."+k, wv, gv)
			}
		}
	case []any:
		g, ok := got.([]any)
		require.True(t, ok, "%s: got %T, want an array", path, got)
		require.Len(t, g, len(w), path)
		for i := range w {
			assertKeysKept(t, fmt.Sprintf("%s[%d]", path, i), w[i], g[i])
		}
	case string:
		wt, werr := ParseDate(w)
		gs, _ := got.(string)
		if gt, gerr := ParseDate(gs); werr == nil && gerr == nil {
			assert.True(t, wt.Equal(gt), "%s: %s != %s", path, w, gs)
			return
		}
		assert.Equal(t, w, got, path)
	default:
		assert.Equal(t, want, got, path)
	}
}

func roundTrip[T any](t *testing.T, raw string) (want, got any) {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	encoded, err := json.Marshal(v)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	require.NoError(t, json.Unmarshal(encoded, &got))
	return want, got
}

func TestActivityRoundTrip(t *testing.T) {
	want, got := roundTrip[Activity](t, activityJSON)
	assertKeysKept(t, "activity", want, got)
}

func TestZeroValuesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		run  func(t *testing.T, raw string) (any, any)
	}{
		{
			name: "activity summary",
			raw:  `{"id": 42, "resource_state": 2, "name": "", "distance": 0, "kudos_count": 0, "trainer": false, "private": false, "commute": false, "start_latlng": [], "end_latlng": []}`,
			run:  roundTrip[ActivitySummary],
		},
		{
			name: "athlete",
			raw:  `{"id": 5, "firstname": "", "premium": false, "follower_count": 0, "measurement_preference": "feet"}`,
			run:  roundTrip[Athlete],
		},
		{
			name: "segment effort",
			raw:  `{"id": 1, "name": "", "elapsed_time": 0, "distance": 0, "hidden": false, "segment": {"id": 2, "private": false, "starred": false, "distance": 0, "start_latlng": []}}`,
			run:  roundTrip[SegmentEffort],
		},
		{
			name: "leaderboard entry",
			raw:  `{"athlete_name": "", "athlete_id": 0, "rank": 0, "distance": 0, "elapsed_time": 0}`,
			run:  roundTrip[LeaderboardEntry],
		},
		{
			name: "club",
			raw:  `{"id": 3, "name": "", "private": false, "member_count": 0, "admin": false, "owner": false}`,
			run:  roundTrip[Club],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, got := tt.run(t, tt.raw)
			assertKeysKept(t, tt.name, want, got)
		})
	}
}

func TestOptionalFieldsStayUnset(t *testing.T) {
	var a ActivitySummary
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "distance": 1000}`), &a))
	assert.Nil(t, a.Name)
	assert.Nil(t, a.Timezone)
	assert.Nil(t, a.StartLatLng)

	encoded, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), `"name"`)
	assert.NotContains(t, string(encoded), `"start_latlng"`)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": ""}`), &a))
	require.NotNil(t, a.Name)
	assert.Equal(t, "", *a.Name)
}

func TestCoordinate(t *testing.T) {
	var holder struct {
		Empty  *Coordinate `json:"empty,omitempty"`
		Point  *Coordinate `json:"point,omitempty"`
		Null   *Coordinate `json:"null,omitempty"`
		Absent *Coordinate `json:"absent,omitempty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"empty": [], "point": [37.83, -122.26], "null": null}`), &holder))

	_, ok := holder.Empty.Point()
	assert.False(t, ok)
	p, ok := holder.Point.Point()
	require.True(t, ok)
	assert.Equal(t, LatLng{37.83, -122.26}, p)
	assert.Nil(t, holder.Null)
	_, ok = holder.Absent.Point()
	assert.False(t, ok)

	out, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"empty": [], "point": [37.83, -122.26]}`, string(out))

	out, err = json.Marshal(NewCoordinate(1.5, 2))
	require.NoError(t, err)
	assert.Equal(t, `[1.5,2]`, string(out))

	var c Coordinate
	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &c))
	var l LatLng
	assert.Error(t, json.Unmarshal([]byte(`[]`), &l))
}

func TestUnknownEnumValues(t *testing.T) {
	raw := `{
		"id": 1,
		"type": "Teleport",
		"sport_type": 12,
		"workout_type": 99,
		"athlete": {"id": 2, "sex": "X", "friend": "maybe"}
	}`

	var a ActivitySummary
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, ActivityType(""), a.Type)
	assert.False(t, a.Type.Known())
	assert.Equal(t, SportType(""), a.SportType)
	require.NotNil(t, a.WorkoutType)
	assert.Equal(t, WorkoutTypeUnknown, *a.WorkoutType)
	require.NotNil(t, a.Athlete.Sex)
	assert.False(t, a.Athlete.Sex.Known())
	require.NotNil(t, a.Athlete.Friend)
	assert.Equal(t, FollowingStatus(""), *a.Athlete.Friend)
}

func TestAbsentAndNullOptionals(t *testing.T) {
	var a Athlete
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "city": null, "ftp": null, "weight": 68.5}`), &a))

	assert.Nil(t, a.City)
	assert.Nil(t, a.State)
	assert.Nil(t, a.FTP)
	require.NotNil(t, a.Weight)
	assert.Equal(t, 68.5, *a.Weight)
	assert.Nil(t, a.Sex)
	assert.Nil(t, a.AthleteType)
}

func TestAthleteDetailKeys(t *testing.T) {
	raw := `{
		"id": 227615,
		"resource_state": 3,
		"firstname": "John",
		"lastname": "Applestrava",
		"sex": "M",
		"athlete_type": 1,
		"measurement_preference": "meters",
		"ftp": 250,
		"weight": 70,
		"clubs": [{"id": 1, "name": "Club", "sport_type": "running"}],
		"bikes": [{"id": "b1", "primary": true, "name": "Bike", "distance": 100}],
		"shoes": [{"id": "g1", "primary": false, "name": "Shoe", "distance": 10}]
	}`

	var a Athlete
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, "John Applestrava", a.FullName())
	assert.Equal(t, GenderMale, *a.Sex)
	assert.Equal(t, AthleteTypeRunner, *a.AthleteType)
	assert.Equal(t, MeasurementMeters, a.MeasurementPreference)
	assert.Equal(t, 250, *a.FTP)
	assert.Equal(t, 70.0, *a.Weight)
	require.Len(t, a.Clubs, 1)
	assert.Equal(t, ClubSportRunning, a.Clubs[0].SportType)
	require.Len(t, a.Bikes, 1)
	assert.Equal(t, "b1", a.Bikes[0].ID)
	require.Len(t, a.Shoes, 1)
	assert.Equal(t, "g1", a.Shoes[0].ID)
}

func TestGroupEventDecode(t *testing.T) {
	raw := `{
		"id": 1,
		"title": "Saturday Ride",
		"club_id": 99,
		"skill_levels": 4,
		"terrain": 2,
		"women_only": true,
		"upcoming_occurrences": ["2026-10-24T07:00:00Z", "2026-10-31T07:00:00Z"]
	}`

	var e GroupEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &e))

	assert.Equal(t, SkillLevelHammerfest, *e.SkillLevels)
	assert.Equal(t, TerrainKillerClimbs, *e.Terrain)
	assert.True(t, e.WomenOnly)
	assert.Equal(t, int64(99), *e.ClubID)

	next, ok := e.NextOccurrence(time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 31, next.Day())
}

func TestStreamAccessors(t *testing.T) {
	raw := `[
		{"type": "latlng", "data": [[37.1, -122.1], [37.2, -122.2]], "series_type": "distance", "original_size": 2, "resolution": "high"},
		{"type": "heartrate", "data": [120, 121.5], "series_type": "distance", "original_size": 2, "resolution": "high"},
		{"type": "moving", "data": [true, false], "series_type": "distance", "original_size": 2, "resolution": "high"}
	]`

	var streams []Stream
	require.NoError(t, json.Unmarshal([]byte(raw), &streams))
	require.Len(t, streams, 3)

	points, err := streams[0].LatLngs()
	require.NoError(t, err)
	assert.Equal(t, LatLng{37.2, -122.2}, points[1])

	hr, err := streams[1].Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{120, 121.5}, hr)

	moving, err := streams[2].Bools()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, moving)

	_, err = streams[0].Floats()
	assert.Error(t, err)
	assert.Equal(t, ResolutionHigh, *streams[0].Resolution)
}

func TestBounds(t *testing.T) {
	b, err := ParseBounds("37.82, -122.55, 37.84, -122.45, 1, 2, 3, 4")
	require.NoError(t, err)
	assert.Equal(t, "37.82,-122.55,37.84,-122.45,1,2,3,4", b.String())

	_, err = ParseBounds("1,2,3,4")
	assert.Error(t, err)
}

func TestDataTypeFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want UploadDataType
		err  bool
	}{
		{name: "ride.gpx", want: UploadGPX},
		{name: "/tmp/Ride.FIT", want: UploadFIT},
		{name: "run.tcx.gz", want: UploadTCXGz},
		{name: "notes.txt", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DataTypeFromFilename(tt.name)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUploadStatusStates(t *testing.T) {
	id := int64(5)
	msg := "duplicate of activity 4"

	assert.True(t, UploadStatus{Status: UploadStatusProcessing}.Processing())
	assert.True(t, UploadStatus{Status: UploadStatusReady, ActivityID: &id}.Ready())
	assert.True(t, UploadStatus{Error: &msg, Status: UploadStatusError}.Failed())
	assert.False(t, UploadStatus{Error: &msg}.Processing())
}
