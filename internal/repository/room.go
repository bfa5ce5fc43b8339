package repository

import (
	"context"

	"github.com/reverseludo/admin-api/internal/domain"
)

// Room defines the interface for live game room reads and cleanup. Rooms are
// created by the game servers, never by the admin API.
type Room interface {
	ListRooms(ctx context.Context, kind domain.RoomKind) ([]domain.GameRoom, error)
	DeleteRoom(ctx context.Context, kind domain.RoomKind, id int64) error
}
