// Package filter selects activities with expr-lang expressions such as
// `Type == "Ride" && DistanceKm > 50 && StartDate > daysAgo(30)`.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog"

	"github.com/s0up4200/stravactl/strava"
)

// programs caches compiled expressions; the same preset is often compiled
// on every invocation of a long-running command.
var programs = newLRUCache[*vm.Program](64)

// Filter is a compiled activity filter.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles an expression against the activity environment.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression", Position: -1}
	}

	if cached, ok := programs.Get(expression); ok {
		return &Filter{program: cached, expr: expression}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(strava.ActivitySummary{})),
		expr.AsBool(),
	)
	if err != nil {
		cerr := &CompilationError{Expression: expression, Reason: err.Error(), Position: -1, Err: err}
		var ferr *file.Error
		if errors.As(err, &ferr) {
			cerr.Reason = ferr.Message
			cerr.Position = ferr.Column
		}
		return nil, cerr
	}

	programs.Put(expression, program)
	return &Filter{program: program, expr: expression}, nil
}

// Match evaluates the filter against one activity.
func (f *Filter) Match(a strava.ActivitySummary) (bool, error) {
	out, err := expr.Run(f.program, environment(a))
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, ActivityID: a.ID, ActivityName: derefString(a.Name), Reason: err.Error(), Err: err}
	}
	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expr, ActivityID: a.ID, ActivityName: derefString(a.Name), Reason: fmt.Sprintf("result is %T, not bool", out)}
	}
	return matched, nil
}

// Select returns the activities the filter matches. Activities that fail to
// evaluate are logged and skipped.
func (f *Filter) Select(activities []strava.ActivitySummary, logger zerolog.Logger) []strava.ActivitySummary {
	out := make([]strava.ActivitySummary, 0, len(activities))
	for _, a := range activities {
		ok, err := f.Match(a)
		if err != nil {
			logger.Warn().Err(err).Int64("activity_id", a.ID).Msg("Skipping activity")
			continue
		}
		if ok {
			out = append(out, a)
		}
	}
	return out
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}

func environment(a strava.ActivitySummary) map[string]any {
	var start, startLocal time.Time
	if a.StartDate != nil {
		start = a.StartDate.Time
	}
	if a.StartDateLocal != nil {
		startLocal = a.StartDateLocal.Time
	}
	workout := -1
	if a.WorkoutType != nil {
		workout = int(*a.WorkoutType)
	}

	return map[string]any{
		"Activity": a,

		// Direct activity properties for convenience
		"ID":                 a.ID,
		"Name":               derefString(a.Name),
		"Type":               string(a.Type),
		"SportType":          string(a.SportType),
		"Distance":           a.Distance,
		"DistanceKm":         a.Distance / 1000,
		"MovingTime":         a.MovingTime,
		"ElapsedTime":        a.ElapsedTime,
		"Elevation":          a.TotalElevationGain,
		"StartDate":          start,
		"StartDateLocal":     startLocal,
		"AverageSpeed":       a.AverageSpeed,
		"MaxSpeed":           a.MaxSpeed,
		"AverageHeartrate":   deref(a.AverageHeartrate),
		"AverageWatts":       deref(a.AverageWatts),
		"KudosCount":         a.KudosCount,
		"CommentCount":       a.CommentCount,
		"AchievementCount":   a.AchievementCount,
		"Commute":            a.Commute,
		"Trainer":            a.Trainer,
		"Manual":             a.Manual,
		"Private":            a.Private,
		"HasHeartrate":       a.HasHeartrate,
		"GearID":             derefString(a.GearID),
		"WorkoutType":        workout,

		// Unit helpers
		"km":      func(meters float64) float64 { return meters / 1000 },
		"miles":   func(meters float64) float64 { return meters / 1609.344 },
		"minutes": func(seconds int) float64 { return float64(seconds) / 60 },
		"hours":   func(seconds int) float64 { return float64(seconds) / 3600 },
		"pace": func() float64 {
			if a.Distance == 0 {
				return 0
			}
			return float64(a.MovingTime) / 60 / (a.Distance / 1000)
		},

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Current time
		"now": time.Now,
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
