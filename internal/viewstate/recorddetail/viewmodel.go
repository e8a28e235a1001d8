// Package recorddetail holds the draft of one record while it is created or
// edited. Nothing reaches the store until Save.
package recorddetail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

type recordRepository interface {
	GetRecordByID(ctx context.Context, id int64) (*domain.Record, error)
	InsertRecord(ctx context.Context, rec domain.Record) (int64, error)
	UpdateRecord(ctx context.Context, rec domain.Record) error
}

// Clock supplies the save timestamp.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// State is what the detail screen renders.
type State struct {
	ID            int64
	Title         string
	Content       string
	EquipmentName string
	ImagePaths    []string
	IsNewRecord   bool
	IsSaving      bool
	// SaveComplete turns true once after a successful save and is never reset.
	SaveComplete bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func newDraft() State {
	return State{ImagePaths: []string{}, IsNewRecord: true}
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithClock overrides the wall clock used for save timestamps.
func WithClock(c Clock) Option {
	return func(vm *ViewModel) { vm.clock = c }
}

// ViewModel owns one draft. One instance serves one screen visit.
type ViewModel struct {
	repo  recordRepository
	clock Clock
	log   *slog.Logger
	state *live.Value[State]
}

// New creates a ViewModel holding an empty new-record draft.
func New(log *slog.Logger, repo recordRepository, opts ...Option) *ViewModel {
	vm := &ViewModel{
		repo:  repo,
		clock: systemClock{},
		log:   log.With("component", "record_detail"),
		state: live.NewValue(newDraft()),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
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

// Load fills the draft from the record with id. Id 0 resets to an empty new
// draft. A missing record leaves the state unchanged and is not an error.
func (vm *ViewModel) Load(ctx context.Context, id int64) error {
	if id == 0 {
		vm.state.Store(newDraft())
		return nil
	}

	rec, err := vm.repo.GetRecordByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		vm.log.DebugContext(ctx, "record to edit not found", slog.Int64("record_id", id))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}

	vm.state.Update(func(st State) State {
		st.ID = rec.ID
		st.Title = rec.Title
		st.Content = rec.Content
		st.EquipmentName = rec.EquipmentName
		st.ImagePaths = rec.Images()
		st.IsNewRecord = false
		st.CreatedAt = rec.CreatedAt
		st.UpdatedAt = rec.UpdatedAt
		return st
	})
	return nil
}

func (vm *ViewModel) SetTitle(title string) {
	vm.state.Update(func(st State) State {
		st.Title = title
		return st
	})
}

func (vm *ViewModel) SetContent(content string) {
	vm.state.Update(func(st State) State {
		st.Content = content
		return st
	})
}

func (vm *ViewModel) SetEquipmentName(name string) {
	vm.state.Update(func(st State) State {
		st.EquipmentName = name
		return st
	})
}

// AddImage appends path. Duplicates are kept.
func (vm *ViewModel) AddImage(path string) {
	vm.state.Update(func(st State) State {
		st.ImagePaths = append(slices.Clip(st.ImagePaths), path)
		return st
	})
}

// RemoveImage drops the first entry equal to path.
func (vm *ViewModel) RemoveImage(path string) {
	vm.state.Update(func(st State) State {
		if i := slices.Index(st.ImagePaths, path); i >= 0 {
			st.ImagePaths = slices.Delete(slices.Clone(st.ImagePaths), i, i+1)
		}
		return st
	})
}

// Save writes the draft: insert for a new record, full update otherwise.
// A blank title makes Save a no-op that reports false. A Save issued while
// another is in flight is ignored the same way. On failure IsSaving is
// cleared and the error returned; SaveComplete stays false.
func (vm *ViewModel) Save(ctx context.Context) (bool, error) {
	var (
		draft   State
		started bool
	)
	vm.state.Update(func(st State) State {
		if strings.TrimSpace(st.Title) == "" || st.IsSaving {
			return st
		}
		started = true
		st.IsSaving = true
		draft = st
		return st
	})
	if !started {
		return false, nil
	}

	now := domain.TruncateMillis(vm.clock.Now())
	rec := domain.Record{
		ID:            draft.ID,
		Title:         draft.Title,
		Content:       draft.Content,
		EquipmentName: draft.EquipmentName,
		ImagePaths:    domain.JoinImagePaths(draft.ImagePaths),
		CreatedAt:     draft.CreatedAt,
		UpdatedAt:     now,
	}

	var err error
	if draft.IsNewRecord {
		rec.ID = 0
		rec.CreatedAt = now
		rec.ID, err = vm.repo.InsertRecord(ctx, rec)
	} else {
		err = vm.repo.UpdateRecord(ctx, rec)
	}
	if err != nil {
		vm.state.Update(func(st State) State {
			st.IsSaving = false
			return st
		})
		return false, fmt.Errorf("save record: %w", err)
	}

	vm.state.Update(func(st State) State {
		st.ID = rec.ID
		st.IsNewRecord = false
		st.CreatedAt = rec.CreatedAt
		st.UpdatedAt = rec.UpdatedAt
		st.IsSaving = false
		st.SaveComplete = true
		return st
	})

	vm.log.DebugContext(ctx, "draft saved", slog.Int64("record_id", rec.ID), slog.Bool("created", draft.IsNewRecord))
	return true, nil
}
