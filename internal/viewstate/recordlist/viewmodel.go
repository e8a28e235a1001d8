// Package recordlist holds the list screen state: every record narrowed by a
// search query or an equipment filter, plus the equipment names to pick from.
package recordlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

type recordRepository interface {
	GetAllRecords(ctx context.Context) *live.Stream[[]domain.Record]
	GetAllEquipmentNames(ctx context.Context) *live.Stream[[]string]
	DeleteRecord(ctx context.Context, rec domain.Record) error
}

// State is what the list screen renders. Records keeps the store order
// (most recently updated first).
type State struct {
	Records           []domain.Record
	SearchQuery       string
	SelectedEquipment *string
	EquipmentNames    []string
	IsLoading         bool
}

// inputs are the four values State is derived from.
type inputs struct {
	records     []domain.Record
	names       []string
	haveRecords bool
	haveNames   bool
	loaded      bool

	query     string
	equipment *string
}

// ViewModel recomputes State whenever a live input or a filter changes.
// One instance serves one screen visit.
type ViewModel struct {
	repo  recordRepository
	log   *slog.Logger
	state *live.Value[State]

	mu     sync.Mutex
	in     inputs
	cancel context.CancelFunc
	closed bool
}

// New creates a ViewModel in the loading state.
func New(log *slog.Logger, repo recordRepository) *ViewModel {
	vm := &ViewModel{
		repo: repo,
		log:  log.With("component", "record_list"),
	}
	vm.state = live.NewValue(vm.in.derive())
	return vm
}

// Start observes the record and equipment-name streams and blocks until ctx
// ends, Close is called or a stream fails. Only a stream failure is returned.
func (vm *ViewModel) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return nil
	}
	vm.cancel = cancel
	vm.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)

	records := vm.repo.GetAllRecords(gctx)
	names := vm.repo.GetAllEquipmentNames(gctx)
	defer records.Close()
	defer names.Close()

	g.Go(func() error {
		return pump(gctx, records, func(v []domain.Record) {
			vm.apply(func(in *inputs) {
				in.records = v
				in.haveRecords = true
			})
		})
	})
	g.Go(func() error {
		return pump(gctx, names, func(v []string) {
			vm.apply(func(in *inputs) {
				in.names = v
				in.haveNames = true
			})
		})
	})

	if err := g.Wait(); err != nil {
		vm.log.ErrorContext(ctx, "record list stream failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Close stops a running Start. A Start called after Close returns at once.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	vm.closed = true
	cancel := vm.cancel
	vm.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// State returns the current state.
func (vm *ViewModel) State() State {
	return vm.state.Load()
}

// Subscribe delivers the current state and then every change, conflated to
// the latest. cancel closes the channel.
func (vm *ViewModel) Subscribe() (updates <-chan State, cancel func()) {
	return vm.state.Subscribe()
}

// SetSearchQuery replaces the search text. A non-empty query takes
// precedence over the equipment filter.
func (vm *ViewModel) SetSearchQuery(query string) {
	vm.apply(func(in *inputs) { in.query = query })
}

// SelectEquipment filters by exact equipment name; nil clears the filter.
func (vm *ViewModel) SelectEquipment(name *string) {
	if name != nil {
		n := *name
		name = &n
	}
	vm.apply(func(in *inputs) { in.equipment = name })
}

// DeleteRecord deletes rec. The list changes only once the record stream
// re-emits.
func (vm *ViewModel) DeleteRecord(ctx context.Context, rec domain.Record) error {
	if err := vm.repo.DeleteRecord(ctx, rec); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (vm *ViewModel) apply(fn func(in *inputs)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	fn(&vm.in)
	if vm.in.haveRecords && vm.in.haveNames {
		vm.in.loaded = true
	}
	vm.state.Store(vm.in.derive())
}

func (in inputs) derive() State {
	st := State{
		Records:           []domain.Record{},
		SearchQuery:       in.query,
		SelectedEquipment: in.equipment,
		EquipmentNames:    []string{},
		IsLoading:         !in.loaded,
	}
	if !in.loaded {
		return st
	}

	st.EquipmentNames = in.names
	st.Records = filter(in.records, in.query, in.equipment)
	return st
}

// filter never reorders: the input is already sorted by the store.
func filter(records []domain.Record, query string, equipment *string) []domain.Record {
	switch {
	case query != "":
		out := make([]domain.Record, 0, len(records))
		for _, r := range records {
			if r.MatchesQuery(query) {
				out = append(out, r)
			}
		}
		return out
	case equipment != nil:
		out := make([]domain.Record, 0, len(records))
		for _, r := range records {
			if r.EquipmentName == *equipment {
				out = append(out, r)
			}
		}
		return out
	default:
		return records
	}
}

// pump feeds every emission of s to fn until the stream ends. A stream ended
// by cancellation is not an error.
func pump[T any](ctx context.Context, s *live.Stream[T], fn func(T)) error {
	for v := range s.Updates() {
		fn(v)
	}
	<-s.Done()

	err := s.Err()
	if err == nil || ctx.Err() != nil ||
		errors.Is(err, context.Canceled) || errors.Is(err, live.ErrClosed) {
		return nil
	}
	return err
}
