package domain

import "time"

// TournamentStatus is the flat lifecycle state of a tournament. Transitions
// after creation are made by explicit admin action; the only automatic check
// is the start-time comparison performed at creation.
type TournamentStatus string

const (
	TournamentUpcoming     TournamentStatus = "upcoming"
	TournamentRegistration TournamentStatus = "registration"
	TournamentInProgress   TournamentStatus = "in_progress"
	TournamentFinals       TournamentStatus = "finals"
	TournamentCompleted    TournamentStatus = "completed"
	TournamentCancelled    TournamentStatus = "cancelled"
)

// Valid reports whether s is one of the known tournament statuses.
func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentUpcoming, TournamentRegistration, TournamentInProgress,
		TournamentFinals, TournamentCompleted, TournamentCancelled:
		return true
	}
	return false
}

// StatusForStartTime derives the initial status of a new tournament from its
// starting time: already started means registration is open, otherwise it is
// upcoming.
func StatusForStartTime(start, now time.Time) TournamentStatus {
	if start.After(now) {
		return TournamentUpcoming
	}
	return TournamentRegistration
}

// Tournament is a single-elimination bracket event with four semifinal rooms
// feeding a final room.
type Tournament struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Status                TournamentStatus `json:"status"`
	EntryFee              int              `json:"entry_fee"`
	RewardAmount          int              `json:"reward_amount"`
	RewardType            string           `json:"reward_type"`
	MaxPlayers            int              `json:"max_players"`
	CurrentPlayers        int              `json:"current_players"`
	RegisteredPlayers     []string         `json:"registered_players"`
	TournamentStartingTime time.Time       `json:"tournament_starting_time"`
	BannerURL             string           `json:"banner_url,omitempty"`
	State                 *BracketState    `json:"tournament_state,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// RoomState is the lifecycle of a bracket match slot.
type RoomState string

const (
	RoomWaiting  RoomState = "waiting"
	RoomPlaying  RoomState = "playing"
	RoomFinished RoomState = "finished"
)

// MatchSlot is one match in the bracket: its assigned players, live state,
// and winner once finished.
type MatchSlot struct {
	Players []string  `json:"players"`
	State   RoomState `json:"state"`
	Winner  string    `json:"winner"`
}

// BracketState is the full bracket for a four-room tournament: four
// semifinal rooms, the map of promoted winners, and the final room. This
// service seeds the skeleton at creation and never advances it; match
// progression is driven by the game servers.
type BracketState struct {
	Rooms            map[string]MatchSlot `json:"rooms"`
	SemifinalWinners map[string]string    `json:"semifinalWinners"`
	FinalRoom        MatchSlot            `json:"finalRoom"`
}

// SemifinalRoomKeys are the fixed keys of the four semifinal rooms.
var SemifinalRoomKeys = []string{"room1", "room2", "room3", "room4"}

// NewBracketSkeleton builds the empty bracket written at tournament
// creation: every room waiting, no players, no winners.
func NewBracketSkeleton() *BracketState {
	rooms := make(map[string]MatchSlot, len(SemifinalRoomKeys))
	for _, key := range SemifinalRoomKeys {
		rooms[key] = MatchSlot{Players: []string{}, State: RoomWaiting}
	}
	return &BracketState{
		Rooms:            rooms,
		SemifinalWinners: map[string]string{},
		FinalRoom:        MatchSlot{Players: []string{}, State: RoomWaiting},
	}
}
