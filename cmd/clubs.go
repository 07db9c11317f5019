package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "Work with the athlete's clubs",
}

var clubsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the clubs the athlete belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(cmd.Context()); err != nil {
			return err
		}
		clubs, err := client.ListAthleteClubs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list clubs: %w", err)
		}
		fmt.Print(newConsoleFormatter().FormatClubList(clubs))
		return nil
	},
}

var clubCmd = &cobra.Command{
	Use:   "club",
	Short: "Show a club or its events",
}

var clubShowCmd = &cobra.Command{
	Use:   "show <id-or-slug>",
	Short: "Show a club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(cmd.Context()); err != nil {
			return err
		}
		club, err := client.RetrieveClub(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get club: %w", err)
		}
		fmt.Print(newConsoleFormatter().FormatClub(club))
		return nil
	},
}

var clubEventsCmd = &cobra.Command{
	Use:   "events <id-or-slug>",
	Short: "List a club's group events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(cmd.Context()); err != nil {
			return err
		}
		events, err := client.ListClubGroupEvents(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list group events: %w", err)
		}
		fmt.Print(newConsoleFormatter().FormatGroupEvents(events))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clubsCmd, clubCmd)
	clubsCmd.AddCommand(clubsListCmd)
	clubCmd.AddCommand(clubShowCmd, clubEventsCmd)
}
