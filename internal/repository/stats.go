package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Stats defines the interface for dashboard aggregate queries. Counts and
// sums are computed in SQL, not by fetching whole tables.
type Stats interface {
	GetUserStats(ctx context.Context) (*domain.UserStats, error)
	GetTournamentStats(ctx context.Context) (*domain.TournamentStats, error)
	GetGameStats(ctx context.Context) (*domain.GameStats, error)
}
