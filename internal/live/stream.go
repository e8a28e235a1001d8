package live

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is reported by Stream.Err after Close was called.
var ErrClosed = errors.New("stream closed")

// Query produces one snapshot of a result set.
type Query[T any] func(ctx context.Context) (T, error)

// Stream delivers the result of a query every time its table changes.
//
// Delivery is conflated: the channel holds at most one pending value and a
// newer result replaces an unread older one, so a slow reader always sees the
// latest snapshot. The channel is closed when the stream ends.
type Stream[T any] struct {
	out    chan T
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Observe starts a Stream that runs query now and again after every
// Notify on table. It ends when ctx is cancelled, Close is called, or the
// query fails.
func Observe[T any](ctx context.Context, hub *Hub, table string, query Query[T]) *Stream[T] {
	ctx, cancel := context.WithCancel(ctx)
	s := &Stream[T]{
		out:    make(chan T, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	// Subscribe before the first run so a write racing with it is not lost.
	id, signals := hub.subscribe(table)

	go func() {
		defer close(s.done)
		defer close(s.out)
		defer hub.unsubscribe(table, id)
		defer func() {
			if err := ctx.Err(); err != nil {
				s.setErr(err)
			}
		}()

		for {
			v, err := query(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.setErr(err)
				}
				return
			}
			s.publish(v)

			select {
			case <-ctx.Done():
				return
			case <-signals:
			}
		}
	}()

	return s
}

// Updates returns the channel results are delivered on.
func (s *Stream[T]) Updates() <-chan T {
	return s.out
}

// Close stops the stream and waits for its goroutine to exit.
func (s *Stream[T]) Close() {
	s.mu.Lock()
	if s.err == nil {
		s.err = ErrClosed
	}
	s.mu.Unlock()

	s.cancel()
	<-s.done
}

// Done is closed once the stream has fully stopped.
func (s *Stream[T]) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that ended the stream: the query failure, ErrClosed,
// the context error, or nil while the stream is running.
func (s *Stream[T]) Err() error {
	select {
	case <-s.done:
	default:
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream[T]) setErr(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// publish hands v to the reader, dropping an unread older value.
func (s *Stream[T]) publish(v T) {
	offer(s.out, v)
}
