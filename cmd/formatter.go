package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/s0up4200/stravactl/strava"
)

const dateFormat = "2006-01-02 15:04"

// consoleFormatter renders API results as indented trees for the terminal
type consoleFormatter struct {
	now func() time.Time
}

func newConsoleFormatter() *consoleFormatter {
	return &consoleFormatter{now: time.Now}
}

// tree writes one entry of a list: a branch line followed by detail lines
type tree struct {
	sb *strings.Builder
}

func (t tree) item(title string, lines []string, isLast bool) {
	prefix, indent := "├", "│   "
	if isLast {
		prefix, indent = "╰", "    "
	}
	fmt.Fprintf(t.sb, "%s── %s\n", prefix, title)
	for _, l := range lines {
		if l == "" {
			continue
		}
		fmt.Fprintf(t.sb, "%s%s\n", indent, l)
	}
	if !isLast {
		t.sb.WriteString("│\n")
	}
}

func header(sb *strings.Builder, singular, plural string, n int) {
	noun := plural
	if n == 1 {
		noun = singular
	}
	fmt.Fprintf(sb, "\n%s (%d):\n\n", noun, n)
}

// FormatActivityList formats activities for console display
func (f *consoleFormatter) FormatActivityList(activities []strava.ActivitySummary) string {
	if len(activities) == 0 {
		return "No activities found"
	}

	var sb strings.Builder
	header(&sb, "Activity", "Activities", len(activities))
	t := tree{&sb}

	for i, a := range activities {
		title := fmt.Sprintf("%s [%d]", deref(a.Name), a.ID)
		lines := []string{
			joinParts(activityKind(a), formatTime(a.StartDateLocal)),
			joinParts(
				formatDistance(a.Distance),
				formatDuration(a.MovingTime),
				fmt.Sprintf("%.0f m climbed", a.TotalElevationGain),
			),
		}
		if a.AverageHeartrate != nil || a.AverageWatts != nil {
			var effort []string
			if a.AverageHeartrate != nil {
				effort = append(effort, fmt.Sprintf("%.0f bpm", *a.AverageHeartrate))
			}
			if a.AverageWatts != nil {
				effort = append(effort, fmt.Sprintf("%.0f W", *a.AverageWatts))
			}
			lines = append(lines, joinParts(effort...))
		}
		lines = append(lines, flags(a))
		t.item(title, lines, i == len(activities)-1)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatActivity formats a detailed activity
func (f *consoleFormatter) FormatActivity(a *strava.Activity) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%d]\n", deref(a.Name), a.ID)
	fmt.Fprintf(&sb, "%s\n", joinParts(activityKind(a.ActivitySummary), formatTime(a.StartDateLocal), deref(a.Timezone)))
	if a.Description != nil && *a.Description != "" {
		fmt.Fprintf(&sb, "%s\n", *a.Description)
	}
	sb.WriteString("\n")

	t := tree{&sb}
	summary := []string{
		fmt.Sprintf("Distance: %s", formatDistance(a.Distance)),
		fmt.Sprintf("Moving time: %s (elapsed %s)", formatDuration(a.MovingTime), formatDuration(a.ElapsedTime)),
		fmt.Sprintf("Elevation: %.0f m", a.TotalElevationGain),
		fmt.Sprintf("Speed: %.1f km/h avg, %.1f km/h max", a.AverageSpeed*3.6, a.MaxSpeed*3.6),
	}
	if a.Calories != nil {
		summary = append(summary, fmt.Sprintf("Calories: %.0f", *a.Calories))
	}
	if a.Gear != nil {
		summary = append(summary, fmt.Sprintf("Gear: %s", a.Gear.Name))
	}
	if a.DeviceName != nil {
		summary = append(summary, fmt.Sprintf("Device: %s", *a.DeviceName))
	}
	summary = append(summary, flags(a.ActivitySummary))

	hasEfforts := len(a.SegmentEfforts) > 0
	hasLaps := len(a.Laps) > 1
	t.item("Summary", summary, !hasEfforts && !hasLaps)

	if hasLaps {
		var lines []string
		for _, l := range a.Laps {
			lines = append(lines, fmt.Sprintf("%s: %s in %s", deref(l.Name), formatDistance(l.Distance), formatDuration(l.MovingTime)))
		}
		t.item(fmt.Sprintf("Laps (%d)", len(a.Laps)), lines, !hasEfforts)
	}

	if hasEfforts {
		var lines []string
		for _, e := range a.SegmentEfforts {
			line := fmt.Sprintf("%s: %s", deref(e.Name), formatDuration(e.ElapsedTime))
			if e.PRRank != nil {
				line += fmt.Sprintf(" (PR #%d)", *e.PRRank)
			}
			if e.KOMRank != nil {
				line += fmt.Sprintf(" (KOM #%d)", *e.KOMRank)
			}
			lines = append(lines, line)
		}
		t.item(fmt.Sprintf("Segment efforts (%d)", len(a.SegmentEfforts)), lines, true)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatAthlete formats the athlete profile with optional stats and zones
func (f *consoleFormatter) FormatAthlete(a *strava.Athlete, stats *strava.AthleteStats, zones *strava.Zones) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%d]\n", a.FullName(), a.ID)
	if loc := joinParts(deref(a.City), deref(a.State), deref(a.Country)); loc != "" {
		fmt.Fprintf(&sb, "%s\n", loc)
	}
	sb.WriteString("\n")

	t := tree{&sb}
	profile := []string{
		fmt.Sprintf("Followers: %d, following: %d", a.FollowerCount, a.FriendCount),
	}
	if a.FTP != nil {
		profile = append(profile, fmt.Sprintf("FTP: %d W", *a.FTP))
	}
	if a.Weight != nil {
		profile = append(profile, fmt.Sprintf("Weight: %.1f kg", *a.Weight))
	}
	for _, g := range append(append([]strava.GearSummary{}, a.Bikes...), a.Shoes...) {
		line := fmt.Sprintf("Gear: %s (%s)", g.Name, formatDistance(g.Distance))
		if g.Primary {
			line += " [primary]"
		}
		profile = append(profile, line)
	}
	t.item("Profile", profile, stats == nil && zones == nil)

	if stats != nil {
		var lines []string
		for _, row := range []struct {
			label  string
			totals *strava.Totals
		}{
			{"Recent rides", stats.RecentRideTotals},
			{"Recent runs", stats.RecentRunTotals},
			{"Year-to-date rides", stats.YTDRideTotals},
			{"Year-to-date runs", stats.YTDRunTotals},
			{"All-time rides", stats.AllRideTotals},
			{"All-time runs", stats.AllRunTotals},
		} {
			if row.totals == nil || row.totals.Count == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %d, %s, %s", row.label, row.totals.Count,
				formatDistance(row.totals.Distance), formatDuration(row.totals.MovingTime)))
		}
		if stats.BiggestRideDistance > 0 {
			lines = append(lines, fmt.Sprintf("Longest ride: %s", formatDistance(stats.BiggestRideDistance)))
		}
		t.item("Stats", lines, zones == nil)
	}

	if zones != nil {
		var lines []string
		if zones.HeartRate != nil {
			lines = append(lines, "Heart rate: "+formatZones(zones.HeartRate.Zones))
		}
		if zones.Power != nil {
			lines = append(lines, "Power: "+formatZones(zones.Power.Zones))
		}
		t.item("Zones", lines, true)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatClubList formats the athlete's clubs
func (f *consoleFormatter) FormatClubList(clubs []strava.ClubSummary) string {
	if len(clubs) == 0 {
		return "No clubs found"
	}

	var sb strings.Builder
	header(&sb, "Club", "Clubs", len(clubs))
	t := tree{&sb}
	for i, c := range clubs {
		t.item(fmt.Sprintf("%s [%d]", deref(c.Name), c.ID), []string{
			joinParts(string(c.SportType), fmt.Sprintf("%d members", c.MemberCount), deref(c.City)),
		}, i == len(clubs)-1)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatClub formats a detailed club
func (f *consoleFormatter) FormatClub(c *strava.Club) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s [%d]\n", deref(c.Name), c.ID)
	fmt.Fprintf(&sb, "%s\n", joinParts(string(c.SportType), string(c.ClubType), fmt.Sprintf("%d members", c.MemberCount)))
	if loc := joinParts(deref(c.City), deref(c.State), deref(c.Country)); loc != "" {
		fmt.Fprintf(&sb, "%s\n", loc)
	}
	if c.Membership != nil {
		fmt.Fprintf(&sb, "Membership: %s\n", *c.Membership)
	}
	if c.Description != nil && *c.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", *c.Description)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatGroupEvents formats a club's events with their next occurrence
func (f *consoleFormatter) FormatGroupEvents(events []strava.GroupEventSummary) string {
	if len(events) == 0 {
		return "No group events found"
	}

	var sb strings.Builder
	header(&sb, "Event", "Events", len(events))
	t := tree{&sb}
	now := f.now()
	for i, e := range events {
		next := "no upcoming occurrence"
		if at, ok := e.NextOccurrence(now); ok {
			next = "next: " + at.Format(dateFormat)
		}
		var audience []string
		if e.WomenOnly {
			audience = append(audience, "women only")
		}
		if e.Private {
			audience = append(audience, "private")
		}
		if e.Joined {
			audience = append(audience, "joined")
		}
		t.item(fmt.Sprintf("%s [%d]", deref(e.Title), e.ID), []string{
			joinParts(string(e.ActivityType), next),
			deref(e.Address),
			joinParts(audience...),
		}, i == len(events)-1)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatSegmentList formats starred segments
func (f *consoleFormatter) FormatSegmentList(segments []strava.SegmentSummary) string {
	if len(segments) == 0 {
		return "No segments found"
	}

	var sb strings.Builder
	header(&sb, "Segment", "Segments", len(segments))
	t := tree{&sb}
	for i, s := range segments {
		t.item(fmt.Sprintf("%s [%d]", s.Name, s.ID), []string{
			joinParts(string(s.ActivityType), formatDistance(s.Distance), fmt.Sprintf("%.1f%% avg", s.AverageGrade), climbLabel(s.ClimbCategory)),
			joinParts(deref(s.City), deref(s.Country)),
		}, i == len(segments)-1)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatExplorer formats segment explorer results
func (f *consoleFormatter) FormatExplorer(resp *strava.ExplorerResponse) string {
	if resp == nil || len(resp.Segments) == 0 {
		return "No segments found in the given bounds"
	}

	var sb strings.Builder
	header(&sb, "Segment", "Segments", len(resp.Segments))
	t := tree{&sb}
	for i, s := range resp.Segments {
		t.item(fmt.Sprintf("%s [%d]", s.Name, s.ID), []string{
			joinParts(formatDistance(s.Distance), fmt.Sprintf("%.1f%% avg", s.AverageGrade), fmt.Sprintf("%.0f m gain", s.ElevationDiff), climbLabel(s.ClimbCategory)),
		}, i == len(resp.Segments)-1)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatStreams summarizes each stream with its sample count and range
func (f *consoleFormatter) FormatStreams(streams []strava.Stream) string {
	if len(streams) == 0 {
		return "No streams returned"
	}

	var sb strings.Builder
	header(&sb, "Stream", "Streams", len(streams))
	t := tree{&sb}
	for i, s := range streams {
		line := fmt.Sprintf("%d samples", s.OriginalSize)
		if values, err := s.Floats(); err == nil && len(values) > 0 {
			lo, hi := values[0], values[0]
			for _, v := range values {
				lo, hi = min(lo, v), max(hi, v)
			}
			line = joinParts(fmt.Sprintf("%d samples", len(values)), fmt.Sprintf("min %.1f", lo), fmt.Sprintf("max %.1f", hi))
		}
		t.item(string(s.Type), []string{line}, i == len(streams)-1)
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatUploadStatus formats the state of an upload
func (f *consoleFormatter) FormatUploadStatus(u *strava.UploadStatus) string {
	switch {
	case u.Failed():
		return fmt.Sprintf("Upload %d failed: %s", u.ID, deref(u.Error))
	case u.Ready():
		return fmt.Sprintf("Upload %d ready: activity %d", u.ID, deref(u.ActivityID))
	default:
		return fmt.Sprintf("Upload %d: %s", u.ID, u.Status)
	}
}

func activityKind(a strava.ActivitySummary) string {
	if a.SportType != "" {
		return string(a.SportType)
	}
	if a.Type != "" {
		return string(a.Type)
	}
	return "Unknown"
}

func flags(a strava.ActivitySummary) string {
	var parts []string
	if a.Commute {
		parts = append(parts, "commute")
	}
	if a.Trainer {
		parts = append(parts, "trainer")
	}
	if a.Manual {
		parts = append(parts, "manual")
	}
	if a.Private {
		parts = append(parts, "private")
	}
	if a.KudosCount > 0 {
		parts = append(parts, fmt.Sprintf("%d kudos", a.KudosCount))
	}
	return joinParts(parts...)
}

func formatZones(zones []strava.ZoneRange) string {
	parts := make([]string, len(zones))
	for i, z := range zones {
		if z.Max < 0 {
			parts[i] = fmt.Sprintf("%d+", z.Min)
			continue
		}
		parts[i] = fmt.Sprintf("%d-%d", z.Min, z.Max)
	}
	return strings.Join(parts, " | ")
}

func climbLabel(c *strava.ClimbCategory) string {
	if c == nil {
		return ""
	}
	switch *c {
	case strava.ClimbCategory4:
		return "Cat 4"
	case strava.ClimbCategory3:
		return "Cat 3"
	case strava.ClimbCategory2:
		return "Cat 2"
	case strava.ClimbCategory1:
		return "Cat 1"
	case strava.ClimbCategoryHC:
		return "HC"
	}
	return ""
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

func formatDuration(seconds int) string {
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatTime(t *strava.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

// joinParts joins the non-empty parts with " | "
func joinParts(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
