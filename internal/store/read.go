package store

import (
	"context"
	"fmt"

	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/live"
)

// GetAllRecords streams every record, most recently updated first.
func (s *Store) GetAllRecords(ctx context.Context) *live.Stream[[]domain.Record] {
	return observe(ctx, s, "all_records", s.records.ListAll)
}

// GetRecordByID looks up one record. Not live.
// Returns domain.ErrNotFound if no record has id.
func (s *Store) GetRecordByID(ctx context.Context, id int64) (*domain.Record, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// SearchRecords streams records whose title, content or equipment name
// contains query, ignoring case. An empty query matches every record.
func (s *Store) SearchRecords(ctx context.Context, query string) *live.Stream[[]domain.Record] {
	return observe(ctx, s, "search_records", func(ctx context.Context) ([]domain.Record, error) {
		return s.records.Search(ctx, query)
	})
}

// GetRecordsByEquipment streams records whose equipment name equals name.
func (s *Store) GetRecordsByEquipment(ctx context.Context, name string) *live.Stream[[]domain.Record] {
	return observe(ctx, s, "records_by_equipment", func(ctx context.Context) ([]domain.Record, error) {
		return s.records.ListByEquipment(ctx, name)
	})
}

// GetAllEquipmentNames streams the distinct equipment names in ascending order.
func (s *Store) GetAllEquipmentNames(ctx context.Context) *live.Stream[[]string] {
	return observe(ctx, s, "equipment_names", s.records.EquipmentNames)
}
