package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// DailyBonus defines the interface for daily bonus reward persistence.
type DailyBonus interface {
	ListRewards(ctx context.Context) ([]domain.DailyBonusReward, error)
	GetRewardByID(ctx context.Context, id int64) (*domain.DailyBonusReward, error)

	// InsertReward fails with domain.ErrDayTaken when a reward already
	// exists for the same day number.
	InsertReward(ctx context.Context, reward *domain.DailyBonusReward) error
	UpdateReward(ctx context.Context, reward *domain.DailyBonusReward) error
	DeleteReward(ctx context.Context, id int64) error
}
