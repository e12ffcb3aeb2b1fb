package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/pkg/broadcast"
)

func TestBroadcast_DeliversToAllSubscribers(t *testing.T) {
	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[int](4)
	defer b.Close()

	s1 := b.Subscribe(ctx)
	s2 := b.Subscribe(ctx)

	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 42}))

	select {
	case msg := <-s1.Receive(ctx):
		assert.Equal(t, 42, msg.Data)
	case <-time.After(time.Second):
		t.Fatal("subscriber 1 did not receive message")
	}
	select {
	case msg := <-s2.Receive(ctx):
		assert.Equal(t, 42, msg.Data)
	case <-time.After(time.Second):
		t.Fatal("subscriber 2 did not receive message")
	}
}

func TestBroadcast_SlowConsumerDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[int](1)
	defer b.Close()

	sub := b.Subscribe(ctx)

	// Fill the buffer and keep going; none of these may block.
	for i := 0; i < 10; i++ {
		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: i}))
	}

	msg := <-sub.Receive(ctx)
	assert.Equal(t, 0, msg.Data)
}

func TestBroadcast_SubscriberCloseRemovesIt(t *testing.T) {
	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[string](4)
	defer b.Close()

	sub := b.Subscribe(ctx)
	require.NoError(t, sub.Close())

	_, open := <-sub.Receive(ctx)
	assert.False(t, open)

	// Broadcasting after unsubscribe must not panic.
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "x"}))
}

func TestBroadcast_ContextCancelUnsubscribes(t *testing.T) {
	b := broadcast.NewMemoryBroadcaster[string](4)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	select {
	case _, open := <-sub.Receive(ctx):
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription was not cleaned up after cancel")
	}
}

func TestBroadcast_ClosedBroadcaster(t *testing.T) {
	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[int](4)
	require.NoError(t, b.Close())

	err := b.Broadcast(ctx, broadcast.Message[int]{Data: 1})
	assert.ErrorIs(t, err, broadcast.ErrBroadcasterClosed)

	sub := b.Subscribe(ctx)
	_, open := <-sub.Receive(ctx)
	assert.False(t, open)
}
