package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishSubscribe(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Publish(UpdatedEvent, "dataset changed")

	select {
	case event := <-ch:
		assert.Equal(t, UpdatedEvent, event.Type)
		assert.Equal(t, "dataset changed", event.Payload)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestBroker_MultipleSubscribers(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(CreatedEvent, 7)

	for _, ch := range []<-chan Event[int]{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, 7, event.Payload)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed event")
		}
	}
}

func TestBroker_ContextCancelRemovesSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return b.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)

	_, open := <-ch
	assert.False(t, open, "channel closed after cancel")
}

func TestBroker_SubscribeAfterClose(t *testing.T) {
	b := NewBroker[string]()
	b.Close()

	ch := b.Subscribe(context.Background())
	_, open := <-ch
	assert.False(t, open)

	// Publishing after close must not panic.
	b.Publish(UpdatedEvent, "late")
	b.Close()
}

func TestBroker_FullSubscriberDropsEvents(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	for i := 0; i < defaultBuffer+10; i++ {
		b.Publish(CreatedEvent, i)
	}

	// The buffer holds the first defaultBuffer events; the rest were dropped
	// without blocking Publish.
	assert.Len(t, ch, defaultBuffer)
}
