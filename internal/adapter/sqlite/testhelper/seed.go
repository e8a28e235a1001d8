package testhelper

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/papermill/maintenance-log/internal/domain"
)

// SeedRecord inserts a record with explicit timestamps and returns it with its
// assigned id.
func SeedRecord(t *testing.T, db *sql.DB, title, equipment string, updatedAt time.Time) domain.Record {
	t.Helper()

	rec := domain.Record{
		Title:         title,
		Content:       "content of " + title,
		EquipmentName: equipment,
		CreatedAt:     domain.TruncateMillis(updatedAt),
		UpdatedAt:     domain.TruncateMillis(updatedAt),
	}

	res, err := db.ExecContext(context.Background(),
		`INSERT INTO maintenance_records (title, content, equipment_name, image_paths, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Title, rec.Content, rec.EquipmentName, rec.ImagePaths,
		domain.ToMillis(rec.CreatedAt), domain.ToMillis(rec.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		t.Fatalf("testhelper: SeedRecord last insert id: %v", err)
	}

	return rec
}
