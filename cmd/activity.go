package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/stravactl/strava"
)

var (
	allEfforts   bool
	noConfirm    bool
	streamTypes  []string
	streamRes    string
	streamSeries string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show, delete or inspect a single activity",
}

var activityShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an activity in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := requireAuth(cmd.Context()); err != nil {
			return err
		}
		a, err := client.RetrieveActivity(cmd.Context(), id, allEfforts)
		if err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}
		fmt.Print(newConsoleFormatter().FormatActivity(a))
		return nil
	},
}

var activityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityDelete,
}

var activityStreamsCmd = &cobra.Command{
	Use:   "streams <id>",
	Short: "Summarize the raw data streams of an activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityStreams,
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityShowCmd, activityDeleteCmd, activityStreamsCmd)

	activityShowCmd.Flags().BoolVar(&allEfforts, "all-efforts", false, "include all segment efforts")
	activityDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
	activityStreamsCmd.Flags().StringSliceVar(&streamTypes, "types", []string{"time", "distance", "altitude", "heartrate"}, "stream types to fetch")
	activityStreamsCmd.Flags().StringVar(&streamRes, "resolution", "", "low, medium or high (default: all points)")
	activityStreamsCmd.Flags().StringVar(&streamSeries, "series-type", "distance", "time or distance, used with --resolution")
}

func runActivityDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := requireAuth(ctx); err != nil {
		return err
	}

	if !noConfirm {
		a, err := client.RetrieveActivity(ctx, id, false)
		if err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}
		fmt.Printf("Delete %q from %s? [y/N]: ", deref(a.Name), formatTime(a.StartDateLocal))
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	if err := client.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	fmt.Printf("✓ Activity %d deleted\n", id)
	return nil
}

func runActivityStreams(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	types, err := strava.ParseStreamTypes(streamTypes)
	if err != nil {
		return err
	}
	params := strava.StreamParams{Types: types}
	if streamRes != "" {
		res := strava.Resolution(streamRes)
		if !res.Known() {
			return fmt.Errorf("invalid resolution %q", streamRes)
		}
		series := strava.SeriesType(streamSeries)
		if !series.Known() {
			return fmt.Errorf("invalid series type %q", streamSeries)
		}
		params.Resolution, params.SeriesType = &res, &series
	}

	ctx := cmd.Context()
	if err := requireAuth(ctx); err != nil {
		return err
	}
	streams, err := client.RetrieveActivityStreams(ctx, id, params)
	if err != nil {
		return fmt.Errorf("failed to get streams: %w", err)
	}
	fmt.Print(newConsoleFormatter().FormatStreams(streams))
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
