package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/pubsub"
)

// testFeedServer streams snapshot frames until the client disconnects.
func testFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	frame := []byte(`{"type":"snapshot","body":{"eventName":"live","entries":[]}}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != websocketPath {
			http.NotFound(w, r)
			return
		}
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close()
		for {
			if err := c.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListenPublishesSnapshots(t *testing.T) {
	srv := testFeedServer(t)

	snapshots := pubsub.NewPubSub[model.Snapshot]()
	updates := snapshots.Subscribe(pubsub.TopicSnapshotPrefix + "live")
	reader := NewReader(srv.URL, "live", snapshots)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reader.Listen(ctx)

	select {
	case snap := <-updates:
		if snap.EventName != "live" {
			t.Errorf("unexpected event name %q", snap.EventName)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published within 2s")
	}
	if !reader.Receiving() {
		t.Error("reader must report receiving after a snapshot")
	}
}

func TestListenReturnsOnContextCancel(t *testing.T) {
	srv := testFeedServer(t)

	snapshots := pubsub.NewPubSub[model.Snapshot]()
	updates := snapshots.Subscribe(pubsub.TopicSnapshotPrefix + "live")
	reader := NewReader(srv.URL, "live", snapshots)

	received := make(chan struct{}, 1)
	go func() {
		for range updates {
			select {
			case received <- struct{}{}:
			default:
			}
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- reader.Listen(ctx) }()

	// wait until the feed is flowing, then shut down mid-stream
	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received within 2s")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after context cancellation")
	}

	if _, ok := reader.Last(); !ok {
		t.Error("expected a last snapshot to be retained for final announcements")
	}
}
