package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/stravactl/filter"
	"github.com/s0up4200/stravactl/strava"
)

// detailConcurrency bounds parallel activity detail requests
const detailConcurrency = 10

var (
	listAfter   string
	listBefore  string
	listPage    int
	listPerPage int
	filterExpr  string
	preset      string
	withDetail  bool
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Work with the authenticated athlete's activities",
}

var activitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities, optionally filtered",
	Long: `List the authenticated athlete's activities.

Filters are expr expressions evaluated against each activity, for example:

  Type == "Ride" && DistanceKm > 50
  StartDate > daysAgo(14) && !Commute
  contains(Name, "race") || WorkoutType == 1

Dates for --after and --before are YYYY-MM-DD or RFC 3339.`,
	Args: cobra.NoArgs,
	RunE: runActivitiesList,
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
	activitiesCmd.AddCommand(activitiesListCmd)

	activitiesListCmd.Flags().StringVar(&listAfter, "after", "", "only activities that started after this date")
	activitiesListCmd.Flags().StringVar(&listBefore, "before", "", "only activities that started before this date")
	activitiesListCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	activitiesListCmd.Flags().IntVar(&listPerPage, "per-page", 30, "activities per page")
	activitiesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	activitiesListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	activitiesListCmd.Flags().BoolVar(&withDetail, "detail", false, "fetch the detailed view of every listed activity")
}

func runActivitiesList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireAuth(ctx); err != nil {
		return err
	}

	params := strava.ListActivitiesParams{Page: strava.Page{Page: listPage, PerPage: listPerPage}}
	var err error
	if params.After, err = parseDateFlag("after", listAfter); err != nil {
		return err
	}
	if params.Before, err = parseDateFlag("before", listBefore); err != nil {
		return err
	}

	expression, err := getFilterExpression(filterExpr, preset)
	if err != nil {
		return err
	}

	activities, err := client.ListAthleteActivities(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}
	logger.Debug().Int("count", len(activities)).Msg("Fetched activities")

	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", f.String()).Msg("Filtering activities")
		activities = f.Select(activities, logger)
	}

	formatter := newConsoleFormatter()
	if !withDetail {
		fmt.Print(formatter.FormatActivityList(activities))
		return nil
	}

	for _, a := range fetchDetails(ctx, activities) {
		fmt.Print(formatter.FormatActivity(a))
	}
	return nil
}

// fetchDetails retrieves the detailed view of each activity concurrently,
// keeping the input order. Activities that fail are logged and left out.
func fetchDetails(ctx context.Context, activities []strava.ActivitySummary) []*strava.Activity {
	details := make([]*strava.Activity, len(activities))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	for i, a := range activities {
		g.Go(func() error {
			detail, err := client.RetrieveActivity(ctx, a.ID, false)
			if err != nil {
				logger.Warn().
					Err(err).
					Int64("activity_id", a.ID).
					Str("activity", deref(a.Name)).
					Msg("Failed to get activity details")
				return nil
			}
			details[i] = detail
			return nil
		})
	}
	_ = g.Wait()

	out := details[:0]
	for _, d := range details {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return &t, nil
	}
	t, err := strava.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q: use YYYY-MM-DD or RFC 3339", name, value)
	}
	return &t, nil
}
