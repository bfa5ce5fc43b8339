package inventory

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/metrics"
	"github.com/reverseludo/admin-api/internal/repository"
	"github.com/reverseludo/admin-api/internal/storage"
)

// Upload is one image file from a multipart item creation request, keyed by
// the form field name it arrived under.
type Upload struct {
	Slot     string
	Filename string
	Data     io.Reader
}

// Service defines the interface for inventory item management.
type Service interface {
	ListItems(ctx context.Context, itemType string) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// CreateItem stores the uploaded images and inserts the item row.
	// Uploads whose slot is not recognized for the item type are ignored;
	// at least one recognized slot must remain or the request fails.
	CreateItem(ctx context.Context, name string, itemType domain.ItemType, price int, uploads []Upload) (*domain.InventoryItem, error)

	// DeleteItem removes the row, then best-effort deletes stored images.
	DeleteItem(ctx context.Context, itemID string) error
}

type service struct {
	repo  repository.Inventory
	store storage.Store
}

// NewService creates a new inventory service.
func NewService(repo repository.Inventory, store storage.Store) Service {
	return &service{repo: repo, store: store}
}

func (s *service) ListItems(ctx context.Context, itemType string) ([]domain.InventoryItem, error) {
	if itemType != "" && !domain.ItemType(itemType).Valid() {
		return nil, domain.ErrInvalidItemType
	}
	return s.repo.ListItems(ctx, domain.ItemType(itemType))
}

func (s *service) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	return s.repo.GetItemByID(ctx, itemID)
}

// newItemID builds a unique item id of the form {type}_{unixMillis}_{4hex}.
func newItemID(itemType domain.ItemType) string {
	suffix := make([]byte, 2)
	if _, err := rand.Read(suffix); err != nil {
		// math/rand quality is fine for an id suffix; millis already order it
		suffix = []byte{byte(time.Now().UnixNano()), byte(time.Now().UnixNano() >> 8)}
	}
	return fmt.Sprintf("%s_%d_%s", itemType, time.Now().UnixMilli(), hex.EncodeToString(suffix))
}

func (s *service) CreateItem(ctx context.Context, name string, itemType domain.ItemType, price int, uploads []Upload) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)

	if !itemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}

	recognized := make(map[string]bool, len(domain.SlotKeys(itemType)))
	for _, key := range domain.SlotKeys(itemType) {
		recognized[key] = true
	}

	itemID := newItemID(itemType)
	prefix := domain.StoragePrefix(itemType)
	images := make(map[string]string)

	for _, up := range uploads {
		if !recognized[up.Slot] {
			log.Debug("ignoring unrecognized image slot", "slot", up.Slot, "item_type", itemType)
			continue
		}

		ext := path.Ext(up.Filename)
		if ext == "" {
			ext = ".png"
		}

		key := fmt.Sprintf("items/%s/%s/%s%s", prefix, itemID, up.Slot, ext)
		url, err := s.store.Save(ctx, key, up.Data)
		if err != nil {
			s.cleanupImages(ctx, itemType, itemID, images)
			return nil, fmt.Errorf("failed to store %s image: %w", up.Slot, err)
		}
		images[up.Slot] = url
		metrics.RecordMediaUpload(string(itemType))
	}

	if len(images) == 0 {
		return nil, domain.ErrNoSlotsProvided
	}

	item := &domain.InventoryItem{
		ItemID:     itemID,
		ItemName:   name,
		ItemType:   itemType,
		ItemImages: images,
		ItemPrice:  price,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.InsertItem(ctx, item); err != nil {
		s.cleanupImages(ctx, itemType, itemID, images)
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	log.Info("inventory item created",
		"item_id", itemID, "item_type", itemType, "images", len(images))
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, itemID string) error {
	log := logger.FromContext(ctx)

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	// Image deletion is best-effort: the row is already gone and orphaned
	// files only waste disk.
	s.cleanupImages(ctx, item.ItemType, itemID, item.ItemImages)

	log.Info("inventory item deleted", "item_id", itemID)
	return nil
}

func (s *service) cleanupImages(ctx context.Context, itemType domain.ItemType, itemID string, images map[string]string) {
	log := logger.FromContext(ctx)
	prefix := domain.StoragePrefix(itemType)
	for slot, url := range images {
		ext := path.Ext(url)
		if ext == "" {
			ext = ".png"
		}
		key := fmt.Sprintf("items/%s/%s/%s%s", prefix, itemID, slot, ext)
		if err := s.store.Delete(ctx, key); err != nil {
			log.Warn("failed to delete stored image", "key", key, "error", err)
		}
	}
}
