package promotion

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
	"github.com/reverseludo/admin-api/internal/storage"
)

// Input carries the editable fields of a promoted app. An optional image is
// uploaded alongside; on update a missing image keeps the existing one.
type Input struct {
	AppName      string
	Description  string
	StoreURL     string
	IsActive     bool
	DisplayOrder int

	ImageFilename string
	Image         io.Reader
}

// Service defines the interface for cross-promotion management.
type Service interface {
	ListPromotions(ctx context.Context) ([]domain.PromotionApp, error)
	CreatePromotion(ctx context.Context, input Input) (*domain.PromotionApp, error)
	UpdatePromotion(ctx context.Context, id int64, input Input) (*domain.PromotionApp, error)
	DeletePromotion(ctx context.Context, id int64) error
}

type service struct {
	repo  repository.Promotion
	store storage.Store
	now   func() time.Time
}

// NewService creates a new promotion service.
func NewService(repo repository.Promotion, store storage.Store) Service {
	return &service{repo: repo, store: store, now: time.Now}
}

func (s *service) ListPromotions(ctx context.Context) ([]domain.PromotionApp, error) {
	return s.repo.ListPromotions(ctx)
}

func (s *service) saveImage(ctx context.Context, input Input) (string, error) {
	ext := path.Ext(input.ImageFilename)
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("promotion-images/%d%s", s.now().UnixMilli(), ext)
	url, err := s.store.Save(ctx, key, input.Image)
	if err != nil {
		return "", fmt.Errorf("failed to store promotion image: %w", err)
	}
	return url, nil
}

func (s *service) CreatePromotion(ctx context.Context, input Input) (*domain.PromotionApp, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(input.AppName)
	if name == "" {
		return nil, domain.ErrInvalidPromotion
	}

	promo := &domain.PromotionApp{
		AppName:      name,
		Description:  input.Description,
		StoreURL:     input.StoreURL,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
	}

	if input.Image != nil {
		url, err := s.saveImage(ctx, input)
		if err != nil {
			return nil, err
		}
		promo.MainImage = url
	}

	if err := s.repo.InsertPromotion(ctx, promo); err != nil {
		return nil, err
	}

	log.Info("promotion created", "id", promo.ID, "app_name", promo.AppName)
	return promo, nil
}

func (s *service) UpdatePromotion(ctx context.Context, id int64, input Input) (*domain.PromotionApp, error) {
	log := logger.FromContext(ctx)

	promo := &domain.PromotionApp{
		ID:           id,
		AppName:      strings.TrimSpace(input.AppName),
		Description:  input.Description,
		StoreURL:     input.StoreURL,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
	}

	if input.Image != nil {
		url, err := s.saveImage(ctx, input)
		if err != nil {
			return nil, err
		}
		promo.MainImage = url
	}

	updated, err := s.repo.UpdatePromotion(ctx, promo)
	if err != nil {
		return nil, err
	}

	log.Info("promotion updated", "id", id, "is_active", updated.IsActive)
	return updated, nil
}

func (s *service) DeletePromotion(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeletePromotion(ctx, id); err != nil {
		return err
	}

	log.Info("promotion deleted", "id", id)
	return nil
}
