package user

import (
	"context"
	"sort"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
)

// BalanceUpdate carries the optional absolute balances of a PATCH. A nil
// pointer leaves that balance untouched.
type BalanceUpdate struct {
	Coins    *int64
	Diamonds *int64
}

// Service defines the interface for admin user management. Users are
// created by the game backend; the admin API reads and adjusts them but
// never deletes.
type Service interface {
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	GetUser(ctx context.Context, uid string) (*domain.User, error)
	UpdateBalances(ctx context.Context, uid string, update BalanceUpdate) (*domain.UserSummary, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service.
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}

	// Newest accounts first.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (s *service) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	return s.repo.GetUserByUID(ctx, uid)
}

func (s *service) UpdateBalances(ctx context.Context, uid string, update BalanceUpdate) (*domain.UserSummary, error) {
	log := logger.FromContext(ctx)

	if update.Coins == nil && update.Diamonds == nil {
		user, err := s.repo.GetUserByUID(ctx, uid)
		if err != nil {
			return nil, err
		}
		summary := user.Summary()
		return &summary, nil
	}

	if (update.Coins != nil && *update.Coins < 0) ||
		(update.Diamonds != nil && *update.Diamonds < 0) {
		return nil, domain.ErrInvalidAmount
	}

	user, err := s.repo.SetBalances(ctx, uid, update.Coins, update.Diamonds)
	if err != nil {
		return nil, err
	}

	log.Info("user balances updated",
		"uid", uid, "coins", user.TotalCoins, "diamonds", user.TotalDiamonds)
	summary := user.Summary()
	return &summary, nil
}
