package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/stravactl/strava"
)

func ride() strava.ActivitySummary {
	hr := 142.0
	gear := "b1234"
	wt := strava.WorkoutTypeRideRace
	return strava.ActivitySummary{
		Resource:           strava.Resource{ID: 1},
		Name:               strava.Ptr("Saturday Hill Repeats"),
		Type:               strava.ActivityTypeRide,
		SportType:          strava.SportTypeRide,
		Distance:           62500,
		MovingTime:         7200,
		TotalElevationGain: 1250,
		StartDate:          strava.NewTime(time.Now().AddDate(0, 0, -3)),
		AverageHeartrate:   &hr,
		KudosCount:         12,
		GearID:             &gear,
		WorkoutType:        &wt,
	}
}

func run() strava.ActivitySummary {
	return strava.ActivitySummary{
		Resource:   strava.Resource{ID: 2},
		Name:       strava.Ptr("Commute run"),
		Type:       strava.ActivityTypeRun,
		Distance:   10000,
		MovingTime: 3000,
		Commute:    true,
		StartDate:  strava.NewTime(time.Date(2018, 5, 2, 12, 0, 0, 0, time.UTC)),
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: `Type == "Ride"`},
		{name: "helpers", expression: `km(Distance) > 50 && StartDate > daysAgo(30)`},
		{name: "empty", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `Type == "Ride" &&`, wantErr: true},
		{name: "unknown field", expression: `Distnce > 10`, wantErr: true},
		{name: "not a predicate", expression: `Distance + 1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var cerr *CompilationError
				assert.True(t, errors.As(err, &cerr))
				assert.Contains(t, err.Error(), "compilation error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		expression string
		ride       bool
		run        bool
	}{
		{expression: `Type == "Ride"`, ride: true},
		{expression: `DistanceKm > 50`, ride: true},
		{expression: `Commute`, run: true},
		{expression: `Elevation >= 1000 && AverageHeartrate > 140`, ride: true},
		{expression: `AverageHeartrate == 0`, run: true},
		{expression: `contains(Name, "hill")`, ride: true},
		{expression: `startsWith(Name, "commute")`, run: true},
		{expression: `StartDate > daysAgo(30)`, ride: true},
		{expression: `StartDate < parseDate("2019-01-01")`, run: true},
		{expression: `hours(MovingTime) >= 2`, ride: true},
		{expression: `pace() > 4`, run: true},
		{expression: `GearID == "b1234"`, ride: true},
		{expression: `WorkoutType == 11`, ride: true},
		{expression: `WorkoutType == -1`, run: true},
		{expression: `Activity.KudosCount > 10`, ride: true},
		{expression: `Distance > 0`, ride: true, run: true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(ride())
			require.NoError(t, err)
			assert.Equal(t, tt.ride, got, "ride")

			got, err = f.Match(run())
			require.NoError(t, err)
			assert.Equal(t, tt.run, got, "run")
		})
	}
}

func TestEvaluationError(t *testing.T) {
	f, err := Compile(`KudosCount % (KudosCount - KudosCount) == 0`)
	require.NoError(t, err)

	_, err = f.Match(ride())
	require.Error(t, err)
	var eerr *EvaluationError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, int64(1), eerr.ActivityID)
	assert.Equal(t, "Saturday Hill Repeats", eerr.ActivityName)
}

func TestSelect(t *testing.T) {
	f, err := Compile(`Type == "Run"`)
	require.NoError(t, err)

	got := f.Select([]strava.ActivitySummary{ride(), run(), ride()}, zerolog.Nop())
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	bad, err := Compile(`KudosCount % KudosCount == 0`)
	require.NoError(t, err)
	got = bad.Select([]strava.ActivitySummary{ride(), run()}, zerolog.Nop())
	require.Len(t, got, 1, "the run has no kudos and is skipped")
	assert.Equal(t, int64(1), got[0].ID)
}

func TestCompileUsesCache(t *testing.T) {
	expression := `Trainer && MovingTime > 600`
	first, err := Compile(expression)
	require.NoError(t, err)
	size := programs.Len()

	second, err := Compile("  " + expression + "  ")
	require.NoError(t, err)
	assert.Same(t, first.program, second.program)
	assert.Equal(t, size, programs.Len())
}
