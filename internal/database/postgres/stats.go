package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// StatsRepository implements dashboard aggregates for PostgreSQL. All counts
// and sums are computed by the database rather than by loading whole tables.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetUserStats aggregates the player base.
func (r *StatsRepository) GetUserStats(ctx context.Context) (*domain.UserStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_coins), 0),
		       COALESCE(SUM(total_diamonds), 0),
		       COUNT(*) FILTER (WHERE updated_at::date = CURRENT_DATE)
		FROM users`

	var stats domain.UserStats
	err := r.db.QueryRow(ctx, query).
		Scan(&stats.Total, &stats.TotalCoins, &stats.TotalDiamonds, &stats.ActiveToday)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user stats: %w", err)
	}
	return &stats, nil
}

// GetTournamentStats aggregates tournaments by lifecycle bucket.
func (r *StatsRepository) GetTournamentStats(ctx context.Context) (*domain.TournamentStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status IN ('upcoming', 'registration')),
		       COUNT(*) FILTER (WHERE status IN ('in_progress', 'finals')),
		       COUNT(*) FILTER (WHERE status = 'completed'),
		       COALESCE(SUM(reward_amount), 0),
		       COALESCE(SUM(current_players), 0)
		FROM tournaments`

	var stats domain.TournamentStats
	err := r.db.QueryRow(ctx, query).
		Scan(&stats.Total, &stats.Upcoming, &stats.Running, &stats.Completed,
			&stats.TotalPrizePool, &stats.TotalParticipants)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tournament stats: %w", err)
	}
	return &stats, nil
}

// GetGameStats aggregates live game rooms.
func (r *StatsRepository) GetGameStats(ctx context.Context) (*domain.GameStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE game_state = 'playing'),
		       COUNT(*) FILTER (WHERE game_state = 'finished')
		FROM game_rooms`

	var stats domain.GameStats
	err := r.db.QueryRow(ctx, query).
		Scan(&stats.TotalRooms, &stats.ActiveGames, &stats.CompletedGames)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate game stats: %w", err)
	}
	return &stats, nil
}
