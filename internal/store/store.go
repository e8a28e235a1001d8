// Package store is the Record Store: a backend table plus live result
// streams that re-run whenever a write goes through the store.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

// backend is implemented by the sqlite and postgres record repositories.
type backend interface {
	ListAll(ctx context.Context) ([]domain.Record, error)
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	Search(ctx context.Context, query string) ([]domain.Record, error)
	ListByEquipment(ctx context.Context, name string) ([]domain.Record, error)
	EquipmentNames(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, rec domain.Record) (int64, error)
	Update(ctx context.Context, rec domain.Record) error
	DeleteByID(ctx context.Context, id int64) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for insert defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store exposes the record table. Reads that return a *live.Stream keep
// emitting fresh results until the stream is closed, its context ends or the
// store is closed.
type Store struct {
	records backend
	hub     *live.Hub
	log     *slog.Logger
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New creates a Store over records. Writes notify hub.
func New(log *slog.Logger, records backend, hub *live.Hub, opts ...Option) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		records: records,
		hub:     hub,
		log:     log.With("component", "store"),
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close ends every open stream and waits for them to finish. Streams opened
// after Close end immediately.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// observe ties a stream to both the caller's ctx and the store lifetime.
func observe[T any](ctx context.Context, s *Store, name string, query live.Query[T]) *live.Stream[T] {
	ctx, stop := context.WithCancel(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		stop()
		return live.Observe(ctx, s.hub, domain.RecordsTable, query)
	}
	s.wg.Add(1)
	s.mu.Unlock()

	unregister := context.AfterFunc(s.ctx, stop)
	stream := live.Observe(ctx, s.hub, domain.RecordsTable, query)

	go func() {
		defer s.wg.Done()
		<-stream.Done()
		cancelled := ctx.Err() != nil
		unregister()
		stop()
		if err := stream.Err(); err != nil && !cancelled && !errors.Is(err, live.ErrClosed) {
			s.log.Error("live query failed", slog.String("query", name), slog.String("error", err.Error()))
		}
	}()

	return stream
}
