package dailybonus

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
	"github.com/reverseludo/admin-api/internal/storage"
)

// RewardInput carries the fields of a create or update request. An optional
// Image upload backs non-item rewards; item rewards derive their preview
// from the referenced inventory item instead.
type RewardInput struct {
	DayNumber    int
	BonusType    domain.BonusType
	Quantity     int
	TokenStyle   string
	DurationDays *int
	IsActive     bool

	ImageFilename string
	Image         io.Reader
}

// Service defines the interface for the 7-day reward calendar.
type Service interface {
	ListRewards(ctx context.Context) ([]domain.DailyBonusReward, error)
	CreateReward(ctx context.Context, input RewardInput) (*domain.DailyBonusReward, error)
	UpdateReward(ctx context.Context, id int64, input RewardInput) (*domain.DailyBonusReward, error)
	DeleteReward(ctx context.Context, id int64) error
}

type service struct {
	repo      repository.DailyBonus
	inventory repository.Inventory
	store     storage.Store
}

// NewService creates a new daily bonus service.
func NewService(repo repository.DailyBonus, inventory repository.Inventory, store storage.Store) Service {
	return &service{repo: repo, inventory: inventory, store: store}
}

func (s *service) ListRewards(ctx context.Context) ([]domain.DailyBonusReward, error) {
	return s.repo.ListRewards(ctx)
}

// resolveReward validates the input and fills in the derived fields,
// returning the reward row ready to persist.
func (s *service) resolveReward(ctx context.Context, input RewardInput) (*domain.DailyBonusReward, error) {
	if input.DayNumber < 1 || input.DayNumber > 7 {
		return nil, domain.ErrDayOutOfRange
	}
	if !input.BonusType.Valid() {
		return nil, fmt.Errorf("%w: unknown bonus type %q", domain.ErrRewardNotFound, input.BonusType)
	}

	reward := &domain.DailyBonusReward{
		DayNumber:    input.DayNumber,
		BonusType:    input.BonusType,
		Quantity:     input.Quantity,
		DurationDays: input.DurationDays,
		IsActive:     input.IsActive,
	}

	if input.BonusType.IsItemReward() {
		if input.TokenStyle == "" {
			return nil, domain.ErrStyleRequired
		}

		item, err := s.inventory.GetItemByID(ctx, input.TokenStyle)
		if err != nil {
			return nil, err
		}

		// Item rewards grant the item itself; a quantity is meaningless.
		reward.Quantity = 0
		reward.TokenStyle = input.TokenStyle
		reward.ItemImageURL = domain.PreviewImage(input.BonusType, item.ItemImages)
		return reward, nil
	}

	if input.Image != nil {
		ext := path.Ext(input.ImageFilename)
		if ext == "" {
			ext = ".png"
		}
		key := fmt.Sprintf("daily-bonus-images/day%d_%d%s", input.DayNumber, time.Now().UnixMilli(), ext)
		url, err := s.store.Save(ctx, key, input.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to store reward image: %w", err)
		}
		reward.ItemImageURL = url
	}

	return reward, nil
}

func (s *service) CreateReward(ctx context.Context, input RewardInput) (*domain.DailyBonusReward, error) {
	log := logger.FromContext(ctx)

	reward, err := s.resolveReward(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertReward(ctx, reward); err != nil {
		return nil, err
	}

	log.Info("daily bonus reward created",
		"day", reward.DayNumber, "bonus_type", reward.BonusType)
	return reward, nil
}

func (s *service) UpdateReward(ctx context.Context, id int64, input RewardInput) (*domain.DailyBonusReward, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetRewardByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reward, err := s.resolveReward(ctx, input)
	if err != nil {
		return nil, err
	}
	reward.ID = id
	reward.CreatedAt = existing.CreatedAt

	// Keep the stored image when the update carries neither a new upload
	// nor an item reference to derive from.
	if reward.ItemImageURL == "" && !reward.BonusType.IsItemReward() {
		reward.ItemImageURL = existing.ItemImageURL
	}

	if err := s.repo.UpdateReward(ctx, reward); err != nil {
		return nil, err
	}

	log.Info("daily bonus reward updated", "id", id, "day", reward.DayNumber)
	return reward, nil
}

func (s *service) DeleteReward(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteReward(ctx, id); err != nil {
		return err
	}

	log.Info("daily bonus reward deleted", "id", id)
	return nil
}
