package cmd

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MagicAardvark/race-results-sub000/pkg/ingest"
	"github.com/MagicAardvark/race-results-sub000/pkg/render"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

var resultsCmd = &cobra.Command{
	Use:   "results <snapshot.json> [more snapshots...]",
	Short: "Compute ranked class, PAX and raw results from snapshot files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classes, err := loadClassConfig()
		if err != nil {
			return err
		}
		parser := results.NewLiveResultsParser(classes, eventConfigFromFlags())

		// Snapshots are independent event contexts, so they can be scored
		// in parallel.
		sets := make([]results.ResultSet, len(args))
		g := new(errgroup.Group)
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				snap, err := ingest.ParseSnapshot(data)
				if err != nil {
					return err
				}
				sets[i] = parser.Parse(snap)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		for i, rs := range sets {
			log.Debugf("rendering results for %s", args[i])
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rs); err != nil {
					return err
				}
				continue
			}
			render.ClassResults(os.Stdout, rs)
			render.FlatResults(os.Stdout, "PAX Results", rs.Indexed, true)
			render.FlatResults(os.Stdout, "Raw Results", rs.Raw, false)
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().Bool("json", false, "Emit the result set as JSON instead of tables")
	rootCmd.AddCommand(resultsCmd)
}
