package pubsub

import (
	"fmt"
	"sync"
)

type Broker struct {
	topics map[string][]*Subscriber
	sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		topics: make(map[string][]*Subscriber),
	}
}

// Publish delivers data to every subscriber of the topic. Delivery never
// blocks: a subscriber whose buffer is full misses the message.
func (b *Broker) Publish(topic string, data any) error {
	b.RLock()
	defer b.RUnlock()

	subs, exists := b.topics[topic]
	if !exists {
		return fmt.Errorf("topic[%s] does not exist", topic)
	}

	for _, sub := range subs {
		sub.Signal(data)
	}

	return nil
}

func (b *Broker) Subscribe(topic string, s *Subscriber) {
	b.Lock()
	defer b.Unlock()
	{
		b.topics[topic] = append(b.topics[topic], s)
	}
}

func (b *Broker) Unsubscribe(topic string, s *Subscriber) error {
	b.Lock()
	defer b.Unlock()
	{
		subs, exists := b.topics[topic]
		if !exists {
			return fmt.Errorf("topic[%s] does not exist", topic)
		}

		b.topics[topic] = removeFromSlice(subs, s)
		s.Close()
	}

	return nil
}

// =================================================================================================================

func removeFromSlice[T comparable](s []T, d T) []T {
	for i := range s {
		if s[i] == d {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}
