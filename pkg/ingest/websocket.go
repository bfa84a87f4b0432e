package ingest

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/MagicAardvark/race-results-sub000/pkg/model"
	"github.com/MagicAardvark/race-results-sub000/pkg/pubsub"
)

const (
	mtSnapshot = "snapshot"

	websocketPath    = "/websocket/live"
	handshakeTimeout = 10 * time.Second
	feedTimeout      = 30 * time.Second
)

// Message is one frame from the timing provider's live feed.
type Message struct {
	MessageType string          `json:"type"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// Reader subscribes to a timing provider's live websocket feed and
// publishes every snapshot it receives.
type Reader struct {
	URL       string
	EventName string

	snapshots *pubsub.PubSub[model.Snapshot]

	mu        sync.Mutex
	running   bool
	receiving bool
	last      *model.Snapshot
}

func NewReader(rawURL, eventName string, snapshots *pubsub.PubSub[model.Snapshot]) *Reader {
	return &Reader{
		URL:       rawURL,
		EventName: eventName,
		snapshots: snapshots,
	}
}

// Receiving reports whether the feed has delivered a snapshot recently.
func (r *Reader) Receiving() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.receiving
}

// Last returns the most recent snapshot seen, if any.
func (r *Reader) Last() (model.Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return model.Snapshot{}, false
	}
	return *r.last, true
}

// Listen connects and reads until the feed drops or the context is
// cancelled. The caller decides whether to reconnect.
func (r *Reader) Listen(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.receiving = false
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.receiving = false
		r.mu.Unlock()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	host := strings.TrimPrefix(strings.TrimPrefix(r.URL, "https://"), "http://")
	u := url.URL{Scheme: "ws", Host: host, Path: websocketPath}

	dialer := &websocket.Dialer{
		HandshakeTimeout:  handshakeTimeout,
		EnableCompression: true,
	}
	c, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		log.Errorf("error connecting to %s: %s", u.String(), err)
		return err
	}
	defer c.Close()
	log.Infof("connected to %s", u.String())

	// Closing the connection is the only way to unblock a pending read
	// once the caller shuts down.
	go func() {
		<-ctx.Done()
		c.Close()
	}()

	doneErr := make(chan error)
	messageChan := make(chan Message)
	go r.dispatchMessage(ctx, messageChan, doneErr)

	go func() {
		defer close(doneErr)
		for {
			var m Message
			if err := c.ReadJSON(&m); err != nil {
				if ctx.Err() == nil {
					log.Errorf("read error: %s", err)
					doneErr <- err
				}
				return
			}
			select {
			case messageChan <- m:
			case <-ctx.Done():
				return
			}
		}
	}()
	return <-doneErr
}

func (r *Reader) dispatchMessage(ctx context.Context, messageChan <-chan Message, doneChan <-chan error) {
	timeout := time.After(feedTimeout)

	for {
		select {
		case <-ctx.Done():
			return
		case <-doneChan:
			return
		case <-timeout:
			r.mu.Lock()
			r.receiving = false
			r.mu.Unlock()
			timeout = time.After(feedTimeout)
		case m := <-messageChan:
			timeout = time.After(feedTimeout)
			if m.MessageType != mtSnapshot {
				continue
			}

			snap, err := ParseSnapshot(m.Body)
			if err != nil {
				log.Errorf("error parsing snapshot message: %s", err)
				continue
			}
			if snap.EventName == "" {
				snap.EventName = r.EventName
			}

			r.mu.Lock()
			r.receiving = true
			r.last = &snap
			r.mu.Unlock()

			r.snapshots.Publish(pubsub.TopicSnapshotPrefix+r.EventName, snap)
		}
	}
}
