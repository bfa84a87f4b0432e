package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MagicAardvark/race-results-sub000/pkg/ingest"
	"github.com/MagicAardvark/race-results-sub000/pkg/rallycross"
	"github.com/MagicAardvark/race-results-sub000/pkg/render"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

var rallycrossCmd = &cobra.Command{
	Use:   "rallycross <snapshot.json>",
	Short: "Rescore a snapshot under cumulative rallycross rules",
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
		expectedRuns, _ := cmd.Flags().GetInt("runs")
		for _, cr := range rs.Class {
			entries := rallycross.Transform(rallycross.FromClassResult(cr), expectedRuns)
			render.Rallycross(os.Stdout, cr.ShortName, entries)
		}
		return nil
	},
}

func init() {
	rallycrossCmd.Flags().Int("runs", 4, "Expected run count per driver; missing runs are padded")
	rootCmd.AddCommand(rallycrossCmd)
}
