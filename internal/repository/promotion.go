package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Promotion defines the interface for promoted app persistence.
type Promotion interface {
	ListPromotions(ctx context.Context) ([]domain.PromotionApp, error)
	InsertPromotion(ctx context.Context, p *domain.PromotionApp) error
	UpdatePromotion(ctx context.Context, p *domain.PromotionApp) (*domain.PromotionApp, error)
	DeletePromotion(ctx context.Context, id int64) error
}
