package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// AdminAccountRepository implements admin credential lookup for PostgreSQL.
type AdminAccountRepository struct {
	db *pgxpool.Pool
}

// NewAdminAccountRepository creates a new AdminAccountRepository.
func NewAdminAccountRepository(db *pgxpool.Pool) *AdminAccountRepository {
	return &AdminAccountRepository{db: db}
}

// GetPasswordHash returns the bcrypt hash for an admin email. Unknown emails
// map to ErrInvalidCredentials so callers cannot distinguish them from a bad
// password.
func (r *AdminAccountRepository) GetPasswordHash(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT password_hash FROM admin_accounts WHERE email = $1`, email).
		Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get admin account: %w", err)
	}
	return hash, nil
}
