package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MagicAardvark/race-results-sub000/pkg/awards"
	"github.com/MagicAardvark/race-results-sub000/pkg/ingest"
	"github.com/MagicAardvark/race-results-sub000/pkg/notification"
	"github.com/MagicAardvark/race-results-sub000/pkg/render"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

var awardsCmd = &cobra.Command{
	Use:   "awards <snapshot.json>",
	Short: "Compute the special awards for a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classes, err := loadClassConfig()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		snap, err := ingest.ParseSnapshot(data)
		if err != nil {
			return err
		}

		rs := results.NewLiveResultsParser(classes, eventConfigFromFlags()).Parse(snap)
		aw := awards.Compute(rs.Raw)
		render.Awards(os.Stdout, aw)

		if webhook, _ := cmd.Flags().GetString("webhook"); webhook != "" {
			mgr := notification.NewManager(notification.NewWebhook(webhook))
			return mgr.AnnounceAwards(cmd.Context(), rs.EventName, aw)
		}
		return nil
	},
}

func init() {
	awardsCmd.Flags().String("webhook", "", "Webhook URL to announce the awards to")
	rootCmd.AddCommand(awardsCmd)
}
