// Package sqlite opens the embedded on-device database that backs the
// record store by default.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	msqlite "modernc.org/sqlite"

	"github.com/papermill/maintenance-log/internal/config"
	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/migrations"
)

// FoldFunc is the SQL function that case-folds text with full Unicode rules.
// The built-in LIKE only folds ASCII letters.
const FoldFunc = "fold"

func init() {
	msqlite.MustRegisterDeterministicScalarFunction(FoldFunc, 1, fold)
}

func fold(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return domain.Fold(v), nil
	case []byte:
		return domain.Fold(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", FoldFunc, v)
	}
}

// Open creates the database file (and its directory) if needed, applies the
// schema migrations and returns the ready handle.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies every pending schema migration.
func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.SQLite())
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// dsn builds the modernc.org/sqlite connection string. Every pooled
// connection gets the busy timeout so concurrent writers wait instead of
// failing with SQLITE_BUSY.
func dsn(cfg config.SQLiteConfig) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
}
