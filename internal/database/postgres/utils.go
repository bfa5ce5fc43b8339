package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// scanJSON unmarshals a JSONB column (scanned as []byte) into dst, treating
// NULL as the zero value.
func scanJSON(raw []byte, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode jsonb column: %w", err)
	}
	return nil
}

// marshalJSON encodes v for a JSONB parameter.
func marshalJSON(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb parameter: %w", err)
	}
	return raw, nil
}

// collectRows drains rows with scan, returning the collected slice.
func collectRows[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// isInvalidTextRepresentation reports Postgres SQLSTATE 22P02, raised when a
// value fails to cast to a column type (a malformed uuid in an id parameter).
func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// execAffectingOne runs a statement that must touch at least one row,
// returning notFound when it touches none. A malformed id parameter maps to
// notFound too: a uuid that cannot parse cannot match a row.
func execAffectingOne(ctx context.Context, db *pgxpool.Pool, notFound error, sql string, args ...interface{}) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return notFound
		}
		return fmt.Errorf("exec failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
