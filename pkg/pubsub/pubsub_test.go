package pubsub

import (
	"testing"
	"time"
)

func TestPublishReachesEverySubscriber(t *testing.T) {
	ps := NewPubSub[int]()
	topic := TopicResultsPrefix + "test"
	first := ps.Subscribe(topic)
	second := ps.Subscribe(topic)

	go ps.Publish(topic, 7)

	for _, ch := range []<-chan int{first, second} {
		select {
		case v := <-ch:
			if v != 7 {
				t.Fatalf("got %d, want 7", v)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber never received the published value")
		}
	}
}

func TestPublishWithoutSubscribersIsDropped(t *testing.T) {
	ps := NewPubSub[string]()
	topic := TopicSnapshotPrefix + "test"

	done := make(chan struct{})
	go func() {
		ps.Publish(topic, "lost")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish to an empty topic must not block")
	}

	ch := ps.Subscribe(topic)
	select {
	case v := <-ch:
		t.Fatalf("late subscriber received %q, want nothing", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTopicsAreIndependent(t *testing.T) {
	ps := NewPubSub[int]()
	other := ps.Subscribe(TopicSnapshotPrefix + "other")

	go ps.Publish(TopicSnapshotPrefix+"event", 1)

	select {
	case v := <-other:
		t.Fatalf("subscriber on another topic received %d", v)
	case <-time.After(50 * time.Millisecond):
	}
}
