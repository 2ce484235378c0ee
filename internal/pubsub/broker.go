// Package pubsub provides a small generic publish/subscribe broker used to
// fan out dataset and log events to the TUI.
package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBuffer = 32

// EventType labels an event.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Broker fans events out to every subscriber. Publishing never blocks: a
// subscriber that falls behind drops events rather than stalling publishers.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]struct{}
	closed bool
}

// NewBroker creates an empty broker.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{subs: make(map[chan Event[T]]struct{})}
}

// Subscribe registers a new subscriber. The channel is removed and closed
// when ctx is cancelled, or when the broker itself closes.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], defaultBuffer)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed {
			return
		}
		if _, ok := b.subs[sub]; ok {
			delete(b.subs, sub)
			close(sub)
		}
	}()

	return sub
}

// Publish delivers an event to every subscriber that has room for it.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	event := Event[T]{Type: eventType, Payload: payload, Timestamp: time.Now()}
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			// Subscriber buffer full, drop.
		}
	}
}

// Close shuts down the broker and every subscriber channel.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount reports the number of live subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
