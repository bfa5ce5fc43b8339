package domain

import "time"

// GameState is the lifecycle of a live game room.
type GameState string

const (
	GameWaiting  GameState = "waiting"
	GamePlaying  GameState = "playing"
	GameFinished GameState = "finished"
)

// RoomKind distinguishes casual game rooms from tournament rooms. They live
// in separate tables but share a shape.
type RoomKind string

const (
	RoomKindGame       RoomKind = "game"
	RoomKindTournament RoomKind = "tournament"
)

// Valid reports whether k is a known room kind.
func (k RoomKind) Valid() bool {
	return k == RoomKindGame || k == RoomKindTournament
}

// GameRoom is an ephemeral live session row created by the game servers.
// The admin API only lists and deletes rooms.
type GameRoom struct {
	ID             int64     `json:"id"`
	RoomID         string    `json:"room_id"`
	GameState      GameState `json:"game_state"`
	CurrentPlayers int       `json:"current_players"`
	MaxPlayers     int       `json:"max_players"`
	CreatedAt      time.Time `json:"created_at"`
}
