package room

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
)

// RoomList groups live rooms by kind for the dashboard.
type RoomList struct {
	GameRooms       []domain.GameRoom `json:"game_rooms"`
	TournamentRooms []domain.GameRoom `json:"tournament_rooms"`
}

// Service defines the interface for live room oversight. Rooms are created
// and advanced by the game servers; the admin API only observes and cleans
// up.
type Service interface {
	ListRooms(ctx context.Context) (*RoomList, error)
	DeleteRoom(ctx context.Context, kind domain.RoomKind, id int64) error
}

type service struct {
	repo repository.Room
}

// NewService creates a new room service.
func NewService(repo repository.Room) Service {
	return &service{repo: repo}
}

func (s *service) ListRooms(ctx context.Context) (*RoomList, error) {
	games, err := s.repo.ListRooms(ctx, domain.RoomKindGame)
	if err != nil {
		return nil, err
	}

	tournaments, err := s.repo.ListRooms(ctx, domain.RoomKindTournament)
	if err != nil {
		return nil, err
	}

	return &RoomList{GameRooms: games, TournamentRooms: tournaments}, nil
}

func (s *service) DeleteRoom(ctx context.Context, kind domain.RoomKind, id int64) error {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return domain.ErrRoomNotFound
	}

	if err := s.repo.DeleteRoom(ctx, kind, id); err != nil {
		return err
	}

	log.Info("room deleted", "kind", kind, "id", id)
	return nil
}
