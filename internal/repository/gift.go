package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// GiftHistory defines the interface for the append-only gift audit log.
type GiftHistory interface {
	InsertRecord(ctx context.Context, record *domain.GiftRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.GiftRecord, error)
}
