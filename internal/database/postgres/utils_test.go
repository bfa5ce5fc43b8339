package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// A malformed uuid in an id parameter raises SQLSTATE 22P02 instead of
// returning zero rows; repositories must treat both as not found so the
// handlers answer 404 rather than 500.
func TestIsInvalidTextRepresentation(t *testing.T) {
	t.Run("matches 22P02", func(t *testing.T) {
		err := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "not-a-uuid"`}
		assert.True(t, isInvalidTextRepresentation(err))
	})

	t.Run("matches wrapped 22P02", func(t *testing.T) {
		err := fmt.Errorf("failed to scan row: %w", &pgconn.PgError{Code: "22P02"})
		assert.True(t, isInvalidTextRepresentation(err))
	})

	t.Run("ignores other sqlstates", func(t *testing.T) {
		assert.False(t, isInvalidTextRepresentation(&pgconn.PgError{Code: "23505"}))
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		assert.False(t, isInvalidTextRepresentation(errors.New("connection refused")))
	})
}
