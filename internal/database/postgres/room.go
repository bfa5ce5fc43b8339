package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
)

// RoomRepository implements room reads and cleanup for PostgreSQL. Game and
// tournament rooms live in twin tables with identical shapes.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new RoomRepository.
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

func roomTable(kind domain.RoomKind) string {
	if kind == domain.RoomKindTournament {
		return "tournament_rooms"
	}
	return "game_rooms"
}

// ListRooms returns rooms of one kind, newest first.
func (r *RoomRepository) ListRooms(ctx context.Context, kind domain.RoomKind) ([]domain.GameRoom, error) {
	query := fmt.Sprintf(`
		SELECT id, room_id, game_state, current_players, max_players, created_at
		FROM %s
		ORDER BY created_at DESC`, roomTable(kind))

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s rooms: %w", kind, err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.GameRoom, error) {
		var room domain.GameRoom
		err := rows.Scan(&room.ID, &room.RoomID, &room.GameState,
			&room.CurrentPlayers, &room.MaxPlayers, &room.CreatedAt)
		return room, err
	})
}

// DeleteRoom removes one room row.
func (r *RoomRepository) DeleteRoom(ctx context.Context, kind domain.RoomKind, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, roomTable(kind))
	return execAffectingOne(ctx, r.db, domain.ErrRoomNotFound, query, id)
}
