package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MagicAardvark/race-results-sub000/pkg/awards"
	"github.com/MagicAardvark/race-results-sub000/pkg/ingest"
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/notification"
	"github.com/MagicAardvark/race-results-sub000/pkg/pubsub"
	"github.com/MagicAardvark/race-results-sub000/pkg/render"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

const reconnectDelay = 5 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch <feed-url>",
	Short: "Follow a live timing feed and re-render results on every snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classes, err := loadClassConfig()
		if err != nil {
			return err
		}
		parser := results.NewLiveResultsParser(classes, eventConfigFromFlags())

		event, _ := cmd.Flags().GetString("event")
		snapshots := pubsub.NewPubSub[model.Snapshot]()
		resultSets := pubsub.NewPubSub[results.ResultSet]()
		reader := ingest.NewReader(args[0], event, snapshots)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigs
			cancel()
		}()

		// Subscribe before the reader connects; snapshots published to a
		// topic with no subscribers are dropped.
		updates := snapshots.Subscribe(pubsub.TopicSnapshotPrefix + event)
		rendered := resultSets.Subscribe(pubsub.TopicResultsPrefix + event)

		go func() {
			for snap := range updates {
				resultSets.Publish(pubsub.TopicResultsPrefix+event, parser.Parse(snap))
			}
		}()
		go func() {
			for rs := range rendered {
				render.ClassResults(os.Stdout, rs)
				render.FlatResults(os.Stdout, "PAX Results", rs.Indexed, true)
			}
		}()

		for {
			if err := reader.Listen(ctx); err != nil && ctx.Err() == nil {
				log.Warnf("feed dropped, reconnecting in %s", reconnectDelay)
			}
			select {
			case <-ctx.Done():
				return announceFinal(reader, parser, cmd)
			case <-time.After(reconnectDelay):
			}
		}
	},
}

// announceFinal pushes the last seen standings to the configured webhook
// once the watch ends.
func announceFinal(reader *ingest.Reader, parser *results.LiveResultsParser, cmd *cobra.Command) error {
	webhook, _ := cmd.Flags().GetString("webhook")
	if webhook == "" {
		return nil
	}
	snap, ok := reader.Last()
	if !ok {
		return nil
	}

	rs := parser.Parse(snap)
	mgr := notification.NewManager(notification.NewWebhook(webhook))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mgr.AnnounceResults(ctx, rs); err != nil {
		return err
	}
	return mgr.AnnounceAwards(ctx, rs.EventName, awards.Compute(rs.Raw))
}

func init() {
	watchCmd.Flags().String("event", "event", "Event name used for pubsub topics")
	watchCmd.Flags().String("webhook", "", "Webhook URL to announce final standings to")
	rootCmd.AddCommand(watchCmd)
}
