package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/papermill/maintenance-log/internal/adapter/postgres"
	pgrecord "github.com/papermill/maintenance-log/internal/adapter/postgres/record"
	"github.com/papermill/maintenance-log/internal/adapter/sqlite"
	sqliterecord "github.com/papermill/maintenance-log/internal/adapter/sqlite/record"
	"github.com/papermill/maintenance-log/internal/config"
	"github.com/papermill/maintenance-log/internal/live"
	"github.com/papermill/maintenance-log/internal/repository"
	"github.com/papermill/maintenance-log/internal/store"
	"github.com/papermill/maintenance-log/internal/viewstate/recorddetail"
	"github.com/papermill/maintenance-log/internal/viewstate/recordlist"
)

// App holds every long-lived component, constructed once at process start
// and passed down explicitly.
type App struct {
	Log        *slog.Logger
	Store      *store.Store
	Repository *repository.Repository

	closeDB func()
}

// New opens the configured database and builds the store and repository on
// top of it. The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	hub := live.NewHub(log)

	var (
		st      *store.Store
		closeDB func()
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Database.SQLite)
		if err != nil {
			return nil, err
		}
		st = store.New(log, sqliterecord.New(db), hub)
		closeDB = func() { _ = db.Close() }

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		st = store.New(log, pgrecord.New(pool), hub)
		closeDB = pool.Close

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	log.Info("record store ready", slog.String("driver", cfg.Database.Driver))

	return &App{
		Log:        log,
		Store:      st,
		Repository: repository.New(st),
		closeDB:    closeDB,
	}, nil
}

// NewRecordList creates the state holder for one visit of the list screen.
func (a *App) NewRecordList() *recordlist.ViewModel {
	return recordlist.New(a.Log, a.Repository)
}

// NewRecordDetail creates the state holder for one visit of the detail screen.
func (a *App) NewRecordDetail() *recorddetail.ViewModel {
	return recorddetail.New(a.Log, a.Repository)
}

// Close ends all live streams and releases the database.
func (a *App) Close() {
	a.Store.Close()
	a.closeDB()
}
