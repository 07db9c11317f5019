package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/stravactl/strava"
)

var (
	exploreBounds string
	exploreType   string
	segmentsPage  int
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Browse starred and popular segments",
}

var segmentsStarredCmd = &cobra.Command{
	Use:   "starred",
	Short: "List starred segments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(cmd.Context()); err != nil {
			return err
		}
		segments, err := client.ListStarredSegments(cmd.Context(), strava.Page{Page: segmentsPage, PerPage: 50})
		if err != nil {
			return fmt.Errorf("failed to list starred segments: %w", err)
		}
		fmt.Print(newConsoleFormatter().FormatSegmentList(segments))
		return nil
	},
}

var segmentsExploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Find popular segments in an area",
	Long: `Find popular segments inside --bounds, given as eight comma-separated
coordinates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds, err := strava.ParseBounds(exploreBounds)
		if err != nil {
			return err
		}
		activityType := strava.ExploreActivityType(exploreType)
		if activityType != strava.ExploreRiding && activityType != strava.ExploreRunning {
			return fmt.Errorf("invalid --type %q (must be 'riding' or 'running')", exploreType)
		}

		if err := requireAuth(cmd.Context()); err != nil {
			return err
		}
		resp, err := client.ExploreSegments(cmd.Context(), strava.ExploreParams{Bounds: bounds, ActivityType: activityType})
		if err != nil {
			return fmt.Errorf("failed to explore segments: %w", err)
		}
		fmt.Print(newConsoleFormatter().FormatExplorer(resp))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
	segmentsCmd.AddCommand(segmentsStarredCmd, segmentsExploreCmd)

	segmentsStarredCmd.Flags().IntVar(&segmentsPage, "page", 1, "page number")
	segmentsExploreCmd.Flags().StringVar(&exploreBounds, "bounds", "", "eight comma-separated coordinates")
	segmentsExploreCmd.Flags().StringVar(&exploreType, "type", "riding", "riding or running")
	_ = segmentsExploreCmd.MarkFlagRequired("bounds")
}
