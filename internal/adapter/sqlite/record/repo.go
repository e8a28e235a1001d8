// Package record implements the maintenance record queries on SQLite.
// Every read is a one-shot snapshot; live refresh is layered on top by the
// store package.
package record

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/papermill/maintenance-log/internal/adapter/sqlite"
	"github.com/papermill/maintenance-log/internal/domain"
)

const table = domain.RecordsTable

var (
	columns = []string{
		"id", "title", "content", "equipment_name", "image_paths", "created_at", "updated_at",
	}
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// Repo provides record persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new record repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListAll returns every record, most recently updated first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Record, error) {
	records, err := r.list(ctx, selectRecords())
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// GetByID returns the record with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	query, args, err := selectRecords().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, "record", id)
	}
	return &rec, nil
}

// Search returns records whose title, content or equipment name contains
// query under Unicode case folding. The query is matched literally; LIKE
// wildcards in it are escaped.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.Record, error) {
	pattern := "%" + escapeLike(domain.Fold(query)) + "%"

	records, err := r.list(ctx, selectRecords().Where(sq.Or{
		foldedLike("title", pattern),
		foldedLike("content", pattern),
		foldedLike("equipment_name", pattern),
	}))
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}
	return records, nil
}

func foldedLike(column, pattern string) sq.Sqlizer {
	return sq.Expr(sqlite.FoldFunc+"("+column+`) LIKE ? ESCAPE '\'`, pattern)
}

// ListByEquipment returns records whose equipment name equals name exactly.
func (r *Repo) ListByEquipment(ctx context.Context, name string) ([]domain.Record, error) {
	records, err := r.list(ctx, selectRecords().Where(sq.Eq{"equipment_name": name}))
	if err != nil {
		return nil, fmt.Errorf("list records by equipment: %w", err)
	}
	return records, nil
}

// EquipmentNames returns the distinct equipment names in ascending byte order.
// Returns an empty slice (not nil) when there are no records.
func (r *Repo) EquipmentNames(ctx context.Context) ([]string, error) {
	query, args, err := builder.
		Select("equipment_name").
		Distinct().
		From(table).
		OrderBy("equipment_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build equipment names query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan equipment name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list equipment names: %w", err)
	}

	return names, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores rec and returns its id. With ID 0 a new id is assigned;
// otherwise the row with that id is replaced entirely or created.
func (r *Repo) Insert(ctx context.Context, rec domain.Record) (int64, error) {
	if rec.ID == 0 {
		query, args, err := builder.
			Insert(table).
			Columns(columns[1:]...).
			Values(rec.Title, rec.Content, rec.EquipmentName, rec.ImagePaths,
				domain.ToMillis(rec.CreatedAt), domain.ToMillis(rec.UpdatedAt)).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert record query: %w", err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, sqlite.MapError(err, "record", 0)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("record last insert id: %w", err)
		}
		return id, nil
	}

	// REPLACE deletes the conflicting row and inserts the new one.
	query, args, err := builder.
		Replace(table).
		Columns(columns...).
		Values(rec.ID, rec.Title, rec.Content, rec.EquipmentName, rec.ImagePaths,
			domain.ToMillis(rec.CreatedAt), domain.ToMillis(rec.UpdatedAt)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build replace record query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, sqlite.MapError(err, "record", rec.ID)
	}
	return rec.ID, nil
}

// Update overwrites every column of an existing row except created_at.
// Returns domain.ErrNotFound if no row has rec.ID.
func (r *Repo) Update(ctx context.Context, rec domain.Record) error {
	query, args, err := builder.
		Update(table).
		Set("title", rec.Title).
		Set("content", rec.Content).
		Set("equipment_name", rec.EquipmentName).
		Set("image_paths", rec.ImagePaths).
		Set("updated_at", domain.ToMillis(rec.UpdatedAt)).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update record query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "record", rec.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record %d rows affected: %w", rec.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("record %d: %w", rec.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByID removes the row. Deleting a missing id is not an error.
func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete record query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "record", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectRecords() sq.SelectBuilder {
	return builder.
		Select(columns...).
		From(table).
		OrderBy("updated_at DESC", "id DESC")
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Record, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.Record, error) {
	var (
		rec                  domain.Record
		createdAt, updatedAt int64
	)
	if err := s.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.EquipmentName, &rec.ImagePaths, &createdAt, &updatedAt); err != nil {
		return domain.Record{}, err
	}
	rec.CreatedAt = domain.FromMillis(createdAt)
	rec.UpdatedAt = domain.FromMillis(updatedAt)
	return rec, nil
}

// escapeLike makes the LIKE wildcards in s match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
