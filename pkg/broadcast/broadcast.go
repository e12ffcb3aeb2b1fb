package broadcast

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrBroadcasterClosed is returned when broadcasting on a closed broadcaster.
	ErrBroadcasterClosed = errors.New("broadcaster is closed")
)

// Message wraps a broadcast payload.
type Message[T any] struct {
	Data T
}

// Broadcaster sends messages to all active subscribers.
type Broadcaster[T any] interface {
	Broadcast(ctx context.Context, msg Message[T]) error
	Subscribe(ctx context.Context) Subscriber[T]
	Close() error
}

// Subscriber receives broadcast messages until closed or its context is done.
type Subscriber[T any] interface {
	Receive(ctx context.Context) <-chan Message[T]
	Close() error
}

// MemoryBroadcaster is an in-memory Broadcaster implementation.
// Delivery is non-blocking: if a subscriber's buffer is full, the message is
// dropped for that subscriber instead of stalling the broadcast.
type MemoryBroadcaster[T any] struct {
	mu      sync.RWMutex
	subs    map[*memorySubscriber[T]]struct{}
	bufSize int
	closed  bool
}

// NewMemoryBroadcaster creates a broadcaster with the given per-subscriber
// buffer size.
func NewMemoryBroadcaster[T any](bufSize int) *MemoryBroadcaster[T] {
	if bufSize < 1 {
		bufSize = 1
	}
	return &MemoryBroadcaster[T]{
		subs:    make(map[*memorySubscriber[T]]struct{}),
		bufSize: bufSize,
	}
}

// Broadcast delivers msg to every active subscriber.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBroadcasterClosed
	}

	for sub := range b.subs {
		select {
		case sub.ch <- msg:
		default:
			// Slow consumer; drop rather than block the broadcast.
		}
	}
	return nil
}

// Subscribe registers a new subscriber. The subscription is removed when the
// given context is canceled or the subscriber is closed.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &memorySubscriber[T]{
		ch:     make(chan Message[T], b.bufSize),
		parent: b,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		sub.closed = true
		return sub
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	if ctx != nil {
		go func() {
			<-ctx.Done()
			_ = sub.Close()
		}()
	}

	return sub
}

// Close shuts down the broadcaster and all subscribers.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for sub := range b.subs {
		sub.mu.Lock()
		if !sub.closed {
			sub.closed = true
			close(sub.ch)
		}
		sub.mu.Unlock()
		delete(b.subs, sub)
	}
	return nil
}

type memorySubscriber[T any] struct {
	ch     chan Message[T]
	parent *MemoryBroadcaster[T]
	mu     sync.Mutex
	closed bool
}

// Receive returns the subscriber's message channel. The channel is closed when
// the subscription ends.
func (s *memorySubscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

// Close unsubscribes and closes the message channel. Safe to call repeatedly.
func (s *memorySubscriber[T]) Close() error {
	s.parent.mu.Lock()
	delete(s.parent.subs, s)
	s.parent.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	return nil
}
