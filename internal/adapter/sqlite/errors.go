package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/papermill/maintenance-log/internal/domain"
)

// MapError converts database/sql errors to domain errors.
// context.DeadlineExceeded and context.Canceled are not mapped; they pass through.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	// sql.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %d: %w", entity, id, err)
}
