package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// DareRepository implements the dare repository for PostgreSQL.
type DareRepository struct {
	db *pgxpool.Pool
}

// NewDareRepository creates a new DareRepository.
func NewDareRepository(db *pgxpool.Pool) *DareRepository {
	return &DareRepository{db: db}
}

// ListDares returns all dares, newest first.
func (r *DareRepository) ListDares(ctx context.Context) ([]domain.Dare, error) {
	query := `
		SELECT id, dare_text, category, is_active, created_at
		FROM dares
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dares: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.Dare, error) {
		var d domain.Dare
		err := rows.Scan(&d.ID, &d.DareText, &d.Category, &d.IsActive, &d.CreatedAt)
		return d, err
	})
}

// InsertDare stores a new dare and fills in its generated id and created_at.
func (r *DareRepository) InsertDare(ctx context.Context, dare *domain.Dare) error {
	query := `
		INSERT INTO dares (dare_text, category, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, dare.DareText, dare.Category, dare.IsActive).
		Scan(&dare.ID, &dare.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert dare: %w", err)
	}
	return nil
}

// UpdateDare rewrites a dare's text, category and active flag.
func (r *DareRepository) UpdateDare(ctx context.Context, dare *domain.Dare) (*domain.Dare, error) {
	query := `
		UPDATE dares
		SET dare_text = $2, category = $3, is_active = $4
		WHERE id = $1
		RETURNING id, dare_text, category, is_active, created_at`

	var updated domain.Dare
	err := r.db.QueryRow(ctx, query, dare.ID, dare.DareText, dare.Category, dare.IsActive).
		Scan(&updated.ID, &updated.DareText, &updated.Category, &updated.IsActive, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrDareNotFound
		}
		return nil, fmt.Errorf("failed to update dare: %w", err)
	}
	return &updated, nil
}

// DeleteDare removes a dare by id.
func (r *DareRepository) DeleteDare(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, domain.ErrDareNotFound,
		`DELETE FROM dares WHERE id = $1`, id)
}
