package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/papermill/maintenance-log/internal/domain"
)

// SeedRecord inserts a record with explicit timestamps and returns it with its
// assigned id.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, title, equipment string, updatedAt time.Time) domain.Record {
	t.Helper()

	rec := domain.Record{
		Title:         title,
		Content:       "content of " + title,
		EquipmentName: equipment,
		CreatedAt:     domain.TruncateMillis(updatedAt),
		UpdatedAt:     domain.TruncateMillis(updatedAt),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO maintenance_records (title, content, equipment_name, image_paths, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		rec.Title, rec.Content, rec.EquipmentName, rec.ImagePaths,
		domain.ToMillis(rec.CreatedAt), domain.ToMillis(rec.UpdatedAt),
	).Scan(&rec.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}

// RecordExists reports whether a row with id is present.
func RecordExists(t *testing.T, pool *pgxpool.Pool, id int64) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM maintenance_records WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: RecordExists query: %v", err)
	}
	return exists
}
