package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papermill/maintenance-log/internal/app"
	"github.com/papermill/maintenance-log/internal/config"
	"github.com/papermill/maintenance-log/internal/domain"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			SQLite: config.SQLiteConfig{
				Path:        filepath.Join(t.TempDir(), "maintenance.db"),
				BusyTimeout: time.Second,
			},
		},
	}
	a, err := app.New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := runCommand(context.Background(), a, args, &out)
	return out.String(), err
}

func mustRun(t *testing.T, a *app.App, args ...string) string {
	t.Helper()
	out, err := run(t, a, args...)
	require.NoError(t, err, "maintlog %s", strings.Join(args, " "))
	return out
}

func TestCommands_SaveListShowDelete(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	assert.Equal(t, "saved record 1\n",
		mustRun(t, a, "save", "-title", "Pump check", "-content", "ok", "-equipment", "Pump-1", "-image", "/p/1.jpg", "-image", "/p/2.jpg"))
	assert.Equal(t, "saved record 2\n",
		mustRun(t, a, "save", "-title", "Belt", "-equipment", "Pump-1"))
	mustRun(t, a, "save", "-title", "Chuck", "-equipment", "Lathe")

	list := mustRun(t, a, "list", "-equipment", "Pump-1")
	lines := strings.Split(strings.TrimSpace(list), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2\t"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "\tPump check"), lines[1])

	search := mustRun(t, a, "list", "-q", "PUMP", "-equipment", "Lathe")
	assert.Len(t, strings.Split(strings.TrimSpace(search), "\n"), 2, "search ignores the equipment filter")

	show := mustRun(t, a, "show", "-id", "1")
	assert.Contains(t, show, "title:     Pump check")
	assert.Contains(t, show, "image:     /p/2.jpg")
	assert.Contains(t, show, "\nok\n")

	assert.Equal(t, "Lathe\nPump-1\n", mustRun(t, a, "equipment"))

	assert.Equal(t, "deleted record 1\n", mustRun(t, a, "delete", "-id", "1"))
	_, err := run(t, a, "show", "-id", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommands_SaveEditsExistingRecord(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	mustRun(t, a, "save", "-title", "Seal", "-image", "/a.jpg", "-image", "/b.jpg")
	mustRun(t, a, "save", "-id", "1", "-content", "second pass", "-remove-image", "/a.jpg")

	rec, err := a.Repository.GetRecordByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Seal", rec.Title)
	assert.Equal(t, "second pass", rec.Content)
	assert.Equal(t, "/b.jpg", rec.ImagePaths)
}

func TestCommands_SaveRejectsInvalidDrafts(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	_, err := run(t, a, "save", "-title", "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = run(t, a, "save", "-title", "Ok", "-image", "/a,b.jpg")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = run(t, a, "save", "-id", "42", "-title", "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, "no records\n", mustRun(t, a, "list"))
}

func TestCommands_DeleteMissingIsNoop(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	assert.Equal(t, "deleted record 9\n", mustRun(t, a, "delete", "-id", "9"))
}

func TestCommands_UnknownAndMissing(t *testing.T) {
	t.Parallel()
	a := newTestApp(t)

	_, err := run(t, a, "frobnicate")
	assert.ErrorContains(t, err, "unknown command")

	_, err = run(t, a)
	assert.Error(t, err)

	_, err = run(t, a, "show")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
