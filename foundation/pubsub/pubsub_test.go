package pubsub_test

import (
	"testing"

	"github.com/superfeelapi/goEngageMeter/foundation/pubsub"
)

func TestBroker(t *testing.T) {
	t.Run("fan-out to every subscriber", func(t *testing.T) {
		t.Parallel()
		b := pubsub.NewBroker()
		s1 := pubsub.NewSubscriber(1)
		s2 := pubsub.NewSubscriber(1)

		b.Subscribe("engagement", s1)
		b.Subscribe("engagement", s2)

		if err := b.Publish("engagement", "snapshot"); err != nil {
			t.Fatal(err)
		}

		for i, s := range []*pubsub.Subscriber{s1, s2} {
			select {
			case got := <-s.Channel():
				if got != "snapshot" {
					t.Fatalf("subscriber %d: got %v", i, got)
				}
			default:
				t.Fatalf("subscriber %d: nothing delivered", i)
			}
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		t.Parallel()
		b := pubsub.NewBroker()
		if err := b.Publish("nowhere", 1); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("full subscriber misses the message", func(t *testing.T) {
		t.Parallel()
		b := pubsub.NewBroker()
		s := pubsub.NewSubscriber(1)
		b.Subscribe("engagement", s)

		if err := b.Publish("engagement", 1); err != nil {
			t.Fatal(err)
		}
		if err := b.Publish("engagement", 2); err != nil {
			t.Fatal(err)
		}

		if got := <-s.Channel(); got != 1 {
			t.Fatalf("got %v", got)
		}
		select {
		case got := <-s.Channel():
			t.Fatalf("unexpected second delivery: %v", got)
		default:
		}
	})

	t.Run("unsubscribe closes the channel", func(t *testing.T) {
		t.Parallel()
		b := pubsub.NewBroker()
		s := pubsub.NewSubscriber(1)
		b.Subscribe("engagement", s)

		if err := b.Unsubscribe("engagement", s); err != nil {
			t.Fatal(err)
		}

		if _, open := <-s.Channel(); open {
			t.Fatal("channel still open")
		}

		if err := b.Publish("engagement", 1); err != nil {
			t.Fatal(err)
		}
	})
}
