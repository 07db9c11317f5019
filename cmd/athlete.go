package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/stravactl/strava"
)

var athleteID int64

var athleteCmd = &cobra.Command{
	Use:   "athlete",
	Short: "Show an athlete's profile, stats and zones",
	Long: `Show the authenticated athlete, or another athlete with --id. Profile,
statistics and training zones are fetched concurrently; zones are only
available for the authenticated athlete.`,
	Args: cobra.NoArgs,
	RunE: runAthlete,
}

func init() {
	rootCmd.AddCommand(athleteCmd)
	athleteCmd.Flags().Int64Var(&athleteID, "id", 0, "athlete id (default: the authenticated athlete)")
}

func runAthlete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireAuth(ctx); err != nil {
		return err
	}

	var id *int64
	if athleteID > 0 {
		id = &athleteID
	}

	athlete, err := client.RetrieveAthlete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get athlete: %w", err)
	}

	var (
		mu    sync.Mutex
		stats *strava.AthleteStats
		zones *strava.Zones
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := client.RetrieveAthleteStats(gctx, athlete.ID)
		if err != nil {
			logger.Warn().Err(err).Int64("athlete_id", athlete.ID).Msg("Failed to get athlete stats")
			return nil
		}
		mu.Lock()
		stats = s
		mu.Unlock()
		return nil
	})

	if id == nil {
		g.Go(func() error {
			z, err := client.RetrieveAthleteZones(gctx)
			if err != nil {
				logger.Warn().Err(err).Msg("Failed to get athlete zones")
				return nil
			}
			mu.Lock()
			zones = z
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Print(newConsoleFormatter().FormatAthlete(athlete, stats, zones))
	return nil
}
