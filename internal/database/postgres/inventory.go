package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL.
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository.
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var (
		item      domain.InventoryItem
		imagesRaw []byte
	)
	err := row.Scan(&item.ItemID, &item.ItemName, &item.ItemType, &imagesRaw,
		&item.ItemPrice, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.ItemImages = map[string]string{}
	if err := scanJSON(imagesRaw, &item.ItemImages); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns inventory items newest first, optionally filtered by type.
func (r *InventoryRepository) ListItems(ctx context.Context, itemType domain.ItemType) ([]domain.InventoryItem, error) {
	query := `
		SELECT item_id, item_name, item_type, item_images, item_price, created_at
		FROM inventory_items
		WHERE $1 = '' OR item_type = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, string(itemType))
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.InventoryItem, error) {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return domain.InventoryItem{}, err
		}
		return *item, nil
	})
}

// GetItemByID returns one inventory item.
func (r *InventoryRepository) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `
		SELECT item_id, item_name, item_type, item_images, item_price, created_at
		FROM inventory_items
		WHERE item_id = $1`

	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// InsertItem stores a new inventory item and fills in its created_at.
func (r *InventoryRepository) InsertItem(ctx context.Context, item *domain.InventoryItem) error {
	raw, err := marshalJSON(item.ItemImages)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO inventory_items (item_id, item_name, item_type, item_images, item_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err = r.db.QueryRow(ctx, query, item.ItemID, item.ItemName, item.ItemType, raw, item.ItemPrice).
		Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return nil
}

// DeleteItem removes an inventory item by item_id.
func (r *InventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	return execAffectingOne(ctx, r.db, domain.ErrItemNotFound,
		`DELETE FROM inventory_items WHERE item_id = $1`, itemID)
}
