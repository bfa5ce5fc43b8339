package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Notification defines the interface for notification persistence.
type Notification interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Notification, error)

	// InsertBatch inserts one row per notification in a single round trip.
	InsertBatch(ctx context.Context, notifications []domain.Notification) error
}
