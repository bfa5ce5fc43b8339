package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Dare defines the interface for dare prompt persistence.
type Dare interface {
	ListDares(ctx context.Context) ([]domain.Dare, error)
	InsertDare(ctx context.Context, dare *domain.Dare) error
	UpdateDare(ctx context.Context, dare *domain.Dare) (*domain.Dare, error)
	DeleteDare(ctx context.Context, id string) error
}
