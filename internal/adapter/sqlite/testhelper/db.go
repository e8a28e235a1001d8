package testhelper

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/papermill/maintenance-log/internal/adapter/sqlite"
	"github.com/papermill/maintenance-log/internal/config"
)

// SetupTestDB opens a fresh migrated database file inside t.TempDir().
// Every call gets its own file, so tests may run in parallel and rely on
// exact row counts. The handle is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "records.db"),
		BusyTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: failed to open sqlite DB: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
