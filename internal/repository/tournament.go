package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Tournament defines the interface for tournament persistence.
type Tournament interface {
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	GetTournamentByID(ctx context.Context, id string) (*domain.Tournament, error)
	InsertTournament(ctx context.Context, t *domain.Tournament) error

	// UpdateTournament applies the non-nil fields of updates to the row.
	UpdateTournament(ctx context.Context, id string, updates TournamentUpdate) (*domain.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

// TournamentUpdate carries the optional fields of a PATCH. Nil pointers are
// left unchanged.
type TournamentUpdate struct {
	Name                   *string
	Status                 *domain.TournamentStatus
	EntryFee               *int
	RewardAmount           *int
	RewardType             *string
	MaxPlayers             *int
	TournamentStartingTime *string // RFC3339; parsed by the repository
	BannerURL              *string
}
