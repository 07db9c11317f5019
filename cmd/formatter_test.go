package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/stravactl/strava"
)

func TestFormatActivityList(t *testing.T) {
	f := newConsoleFormatter()
	assert.Equal(t, "No activities found", f.FormatActivityList(nil))

	hr := 150.0
	out := f.FormatActivityList([]strava.ActivitySummary{
		{
			Resource:       strava.Resource{ID: 1},
			Name:           strava.Ptr("Morning Ride"),
			SportType:      strava.SportTypeGravelRide,
			Distance:       42200,
			MovingTime:     5025,
			StartDateLocal: strava.NewTime(time.Date(2026, 10, 18, 7, 30, 0, 0, time.UTC)),
			Commute:        true,
		},
		{
			Resource:         strava.Resource{ID: 2},
			Name:             strava.Ptr("Lunch Run"),
			Type:             strava.ActivityTypeRun,
			Distance:         800,
			MovingTime:       240,
			AverageHeartrate: &hr,
		},
	})

	assert.Contains(t, out, "Activities (2):")
	assert.Contains(t, out, "├── Morning Ride [1]")
	assert.Contains(t, out, "│   GravelRide | 2026-10-18 07:30")
	assert.Contains(t, out, "42.20 km | 1:23:45")
	assert.Contains(t, out, "commute")
	assert.Contains(t, out, "╰── Lunch Run [2]")
	assert.Contains(t, out, "    Run")
	assert.Contains(t, out, "800 m | 4:00")
	assert.Contains(t, out, "150 bpm")
}

func TestFormatSingleItemHeader(t *testing.T) {
	out := newConsoleFormatter().FormatClubList([]strava.ClubSummary{{Resource: strava.Resource{ID: 7}, Name: strava.Ptr("Strava"), MemberCount: 3}})
	assert.Contains(t, out, "Club (1):")
	assert.Contains(t, out, "╰── Strava [7]")
	assert.NotContains(t, out, "├")
}

func TestFormatGroupEvents(t *testing.T) {
	f := newConsoleFormatter()
	f.now = func() time.Time { return time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC) }

	out := f.FormatGroupEvents([]strava.GroupEventSummary{
		{
			Resource:     strava.Resource{ID: 1},
			Title:        strava.Ptr("Saturday Ride"),
			ActivityType: strava.ActivityTypeRide,
			WomenOnly:    true,
			UpcomingOccurrences: []strava.Time{
				{Time: time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC)},
				{Time: time.Date(2026, 10, 24, 7, 0, 0, 0, time.UTC)},
			},
		},
		{Resource: strava.Resource{ID: 2}, Title: strava.Ptr("Retired")},
	})

	assert.Contains(t, out, "Saturday Ride [1]")
	assert.Contains(t, out, "next: 2026-10-24")
	assert.Contains(t, out, "women only")
	assert.Contains(t, out, "no upcoming occurrence")
}

func TestFormatAthlete(t *testing.T) {
	ftp := 250
	a := &strava.Athlete{
		AthleteSummary: strava.AthleteSummary{Resource: strava.Resource{ID: 9}, FirstName: "Marianne", LastName: "V"},
		FTP:            &ftp,
		Bikes:          []strava.GearSummary{{ID: "b1", Name: "Tarmac", Distance: 1234567, Primary: true}},
	}
	stats := &strava.AthleteStats{
		YTDRideTotals: &strava.Totals{Count: 12, Distance: 800000, MovingTime: 108000},
		AllRunTotals:  &strava.Totals{},
	}
	zones := &strava.Zones{HeartRate: &strava.HeartRateZones{Zones: []strava.ZoneRange{{Min: 0, Max: 120}, {Min: 120, Max: -1}}}}

	out := newConsoleFormatter().FormatAthlete(a, stats, zones)
	assert.Contains(t, out, "Marianne V [9]")
	assert.Contains(t, out, "FTP: 250 W")
	assert.Contains(t, out, "Gear: Tarmac (1234.57 km) [primary]")
	assert.Contains(t, out, "Year-to-date rides: 12, 800.00 km, 30:00:00")
	assert.NotContains(t, out, "All-time runs")
	assert.Contains(t, out, "Heart rate: 0-120 | 120+")
	assert.True(t, strings.Contains(out, "╰── Zones"))
}

func TestFormatUploadStatus(t *testing.T) {
	f := newConsoleFormatter()
	activityID := int64(99)
	msg := "duplicate of activity 98"

	assert.Equal(t, "Upload 1: Your activity is still being processed.",
		f.FormatUploadStatus(&strava.UploadStatus{ID: 1, Status: strava.UploadStatusProcessing}))
	assert.Equal(t, "Upload 1 ready: activity 99",
		f.FormatUploadStatus(&strava.UploadStatus{ID: 1, Status: strava.UploadStatusReady, ActivityID: &activityID}))
	assert.Equal(t, "Upload 1 failed: duplicate of activity 98",
		f.FormatUploadStatus(&strava.UploadStatus{ID: 1, Status: strava.UploadStatusError, Error: &msg}))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "0:59", formatDuration(59))
	assert.Equal(t, "1:00:00", formatDuration(3600))
	assert.Equal(t, "999 m", formatDistance(999))
	assert.Equal(t, "1.00 km", formatDistance(1000))
	assert.Equal(t, "a | c", joinParts("a", "", "c"))
	assert.Equal(t, "", joinParts())

	hc := strava.ClimbCategoryHC
	assert.Equal(t, "HC", climbLabel(&hc))
	assert.Equal(t, "", climbLabel(nil))
}
