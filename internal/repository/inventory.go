package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Inventory defines the interface for inventory item persistence.
type Inventory interface {
	ListItems(ctx context.Context, itemType domain.ItemType) ([]domain.InventoryItem, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	InsertItem(ctx context.Context, item *domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID string) error
}
