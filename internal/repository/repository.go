// Package repository is the seam between the view-state reducers and the
// record store. It forwards every call unchanged so the storage technology
// can be swapped without touching its consumers.
package repository

import (
	"context"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

type recordStore interface {
	GetAllRecords(ctx context.Context) *live.Stream[[]domain.Record]
	GetRecordByID(ctx context.Context, id int64) (*domain.Record, error)
	SearchRecords(ctx context.Context, query string) *live.Stream[[]domain.Record]
	GetRecordsByEquipment(ctx context.Context, name string) *live.Stream[[]domain.Record]
	GetAllEquipmentNames(ctx context.Context) *live.Stream[[]string]
	InsertRecord(ctx context.Context, rec domain.Record) (int64, error)
	UpdateRecord(ctx context.Context, rec domain.Record) error
	DeleteRecord(ctx context.Context, rec domain.Record) error
	DeleteRecordByID(ctx context.Context, id int64) error
}

// Repository relays record operations to a store.
type Repository struct {
	store recordStore
}

// New creates a Repository over store.
func New(store recordStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) GetAllRecords(ctx context.Context) *live.Stream[[]domain.Record] {
	return r.store.GetAllRecords(ctx)
}

func (r *Repository) GetRecordByID(ctx context.Context, id int64) (*domain.Record, error) {
	return r.store.GetRecordByID(ctx, id)
}

func (r *Repository) SearchRecords(ctx context.Context, query string) *live.Stream[[]domain.Record] {
	return r.store.SearchRecords(ctx, query)
}

func (r *Repository) GetRecordsByEquipment(ctx context.Context, name string) *live.Stream[[]domain.Record] {
	return r.store.GetRecordsByEquipment(ctx, name)
}

func (r *Repository) GetAllEquipmentNames(ctx context.Context) *live.Stream[[]string] {
	return r.store.GetAllEquipmentNames(ctx)
}

func (r *Repository) InsertRecord(ctx context.Context, rec domain.Record) (int64, error) {
	return r.store.InsertRecord(ctx, rec)
}

func (r *Repository) UpdateRecord(ctx context.Context, rec domain.Record) error {
	return r.store.UpdateRecord(ctx, rec)
}

func (r *Repository) DeleteRecord(ctx context.Context, rec domain.Record) error {
	return r.store.DeleteRecord(ctx, rec)
}

func (r *Repository) DeleteRecordByID(ctx context.Context, id int64) error {
	return r.store.DeleteRecordByID(ctx, id)
}
