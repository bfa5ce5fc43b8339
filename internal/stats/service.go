package stats

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/repository"
)

// Service defines the interface for dashboard statistics.
type Service interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type service struct {
	repo repository.Stats
}

// NewService creates a new stats service.
func NewService(repo repository.Stats) Service {
	return &service{repo: repo}
}

func (s *service) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	users, err := s.repo.GetUserStats(ctx)
	if err != nil {
		return nil, err
	}

	tournaments, err := s.repo.GetTournamentStats(ctx)
	if err != nil {
		return nil, err
	}

	games, err := s.repo.GetGameStats(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		Users:       *users,
		Tournaments: *tournaments,
		Games:       *games,
	}, nil
}
