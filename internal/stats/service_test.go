package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reverseludo/admin-api/internal/domain"
)

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *mockStatsRepo) GetTournamentStats(ctx context.Context) (*domain.TournamentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TournamentStats), args.Error(1)
}

func (m *mockStatsRepo) GetGameStats(ctx context.Context) (*domain.GameStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameStats), args.Error(1)
}

func TestGetDashboardStats(t *testing.T) {
	t.Run("assembles all three aggregates", func(t *testing.T) {
		repo := new(mockStatsRepo)
		repo.On("GetUserStats", mock.Anything).Return(&domain.UserStats{
			Total: 1200, TotalCoins: 500000, TotalDiamonds: 9000, ActiveToday: 85,
		}, nil)
		repo.On("GetTournamentStats", mock.Anything).Return(&domain.TournamentStats{
			Total: 12, Upcoming: 3, Running: 2, Completed: 7,
		}, nil)
		repo.On("GetGameStats", mock.Anything).Return(&domain.GameStats{
			TotalRooms: 40, ActiveGames: 15, CompletedGames: 25,
		}, nil)

		svc := NewService(repo)
		stats, err := svc.GetDashboardStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(1200), stats.Users.Total)
		assert.Equal(t, int64(2), stats.Tournaments.Running)
		assert.Equal(t, int64(15), stats.Games.ActiveGames)
		repo.AssertExpectations(t)
	})

	t.Run("propagates query failure", func(t *testing.T) {
		repo := new(mockStatsRepo)
		repo.On("GetUserStats", mock.Anything).Return(nil, errors.New("connection reset"))

		svc := NewService(repo)
		_, err := svc.GetDashboardStats(context.Background())

		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetTournamentStats", mock.Anything)
	})
}
