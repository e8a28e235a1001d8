// Package record implements the maintenance record queries on PostgreSQL.
package record

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/papermill/maintenance-log/internal/adapter/postgres"
	"github.com/papermill/maintenance-log/internal/domain"
)

const table = domain.RecordsTable

var (
	columns = []string{
		"id", "title", "content", "equipment_name", "image_paths", "created_at", "updated_at",
	}
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

// Moves the identity sequence past explicitly inserted ids so later
// default-id inserts do not collide with them. The sequence never moves
// backward, so ids of deleted rows are not handed out again.
const syncSequenceSQL = `
WITH seq AS (SELECT pg_get_serial_sequence('maintenance_records', 'id') AS name)
SELECT setval(
    seq.name,
    GREATEST(
        (SELECT MAX(id) FROM maintenance_records),
        pg_sequence_last_value(seq.name::regclass),
        1
    )
)
FROM seq`

const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
    title          = EXCLUDED.title,
    content        = EXCLUDED.content,
    equipment_name = EXCLUDED.equipment_name,
    image_paths    = EXCLUDED.image_paths,
    created_at     = EXCLUDED.created_at,
    updated_at     = EXCLUDED.updated_at`

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
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

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return &rec, nil
}

// Search returns records whose title, content or equipment name contains
// query, case-insensitively. LIKE wildcards in query match literally.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.Record, error) {
	pattern := "%" + escapeLike(query) + "%"

	records, err := r.list(ctx, selectRecords().Where(sq.Or{
		sq.ILike{"title": pattern},
		sq.ILike{"content": pattern},
		sq.ILike{"equipment_name": pattern},
	}))
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}
	return records, nil
}

// ListByEquipment returns records whose equipment name equals name exactly.
func (r *Repo) ListByEquipment(ctx context.Context, name string) ([]domain.Record, error) {
	records, err := r.list(ctx, selectRecords().Where(sq.Eq{"equipment_name": name}))
	if err != nil {
		return nil, fmt.Errorf("list records by equipment: %w", err)
	}
	return records, nil
}

// EquipmentNames returns the distinct equipment names in ascending byte
// order regardless of the database collation.
func (r *Repo) EquipmentNames(ctx context.Context) ([]string, error) {
	query, args, err := builder.
		Select("equipment_name").
		From(table).
		GroupBy("equipment_name").
		OrderBy(`equipment_name COLLATE "C" ASC`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build equipment names query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment names: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan equipment names: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores rec and returns its id. With ID 0 the identity column assigns
// one; otherwise the row with that id is overwritten entirely or created.
func (r *Repo) Insert(ctx context.Context, rec domain.Record) (int64, error) {
	values := []any{
		rec.Title, rec.Content, rec.EquipmentName, rec.ImagePaths,
		domain.ToMillis(rec.CreatedAt), domain.ToMillis(rec.UpdatedAt),
	}

	if rec.ID == 0 {
		query, args, err := builder.
			Insert(table).
			Columns(columns[1:]...).
			Values(values...).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert record query: %w", err)
		}

		var id int64
		if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return 0, postgres.MapError(err, "record", 0)
		}
		return id, nil
	}

	query, args, err := builder.
		Insert(table).
		Columns(columns...).
		Values(append([]any{rec.ID}, values...)...).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert record query: %w", err)
	}

	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "record", rec.ID)
		}
		if _, err := q.Exec(ctx, syncSequenceSQL); err != nil {
			return fmt.Errorf("sync record id sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
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

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
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

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "record", id)
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

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Record, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.Record, error) {
	var (
		rec                  domain.Record
		createdAt, updatedAt int64
	)
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.EquipmentName, &rec.ImagePaths, &createdAt, &updatedAt); err != nil {
		return domain.Record{}, err
	}
	rec.CreatedAt = domain.FromMillis(createdAt)
	rec.UpdatedAt = domain.FromMillis(updatedAt)
	return rec, nil
}

// escapeLike makes LIKE wildcards in s match literally under the default
// backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
