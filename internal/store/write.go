package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/papermill/maintenance-log/internal/domain"
)

// InsertRecord creates rec when rec.ID is 0 and returns the new id. A nonzero
// id replaces the whole row with that id, creating it if absent.
// A zero CreatedAt becomes now and a zero UpdatedAt becomes CreatedAt.
func (s *Store) InsertRecord(ctx context.Context, rec domain.Record) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = domain.TruncateMillis(s.now())
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}

	id, err := s.records.Insert(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	s.hub.Notify(domain.RecordsTable)

	s.log.InfoContext(ctx, "record saved",
		slog.Int64("record_id", id),
		slog.Bool("created", rec.ID == 0),
	)

	return id, nil
}

// UpdateRecord overwrites the row with rec.ID. CreatedAt is never changed.
// Returns domain.ErrNotFound if no row has rec.ID.
func (s *Store) UpdateRecord(ctx context.Context, rec domain.Record) error {
	if err := s.records.Update(ctx, rec); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	s.hub.Notify(domain.RecordsTable)

	s.log.InfoContext(ctx, "record saved",
		slog.Int64("record_id", rec.ID),
		slog.Bool("created", false),
	)

	return nil
}

// DeleteRecord removes the row with rec.ID.
func (s *Store) DeleteRecord(ctx context.Context, rec domain.Record) error {
	return s.DeleteRecordByID(ctx, rec.ID)
}

// DeleteRecordByID removes the row with id. A missing id is a no-op.
func (s *Store) DeleteRecordByID(ctx context.Context, id int64) error {
	if err := s.records.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	s.hub.Notify(domain.RecordsTable)

	s.log.InfoContext(ctx, "record deleted", slog.Int64("record_id", id))

	return nil
}
