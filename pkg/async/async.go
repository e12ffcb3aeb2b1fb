package async

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout is returned when awaiting a future exceeds the given timeout.
	ErrTimeout = errors.New("async: await timed out")
)

// Future represents the eventual result of a single-shot asynchronous
// operation, such as a network request.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Run executes fn in a new goroutine and returns a Future for its result.
// If ctx is already canceled the future resolves immediately with ctx.Err().
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already-completed future carrying the given result.
func Resolved[T any](value T, err error) *Future[T] {
	f := &Future[T]{value: value, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the operation completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout blocks until completion or the timeout elapses.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the operation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the operation completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
