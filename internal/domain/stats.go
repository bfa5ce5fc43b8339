package domain

// UserStats aggregates the player base for the dashboard overview.
type UserStats struct {
	Total         int64 `json:"total"`
	TotalCoins    int64 `json:"totalCoins"`
	TotalDiamonds int64 `json:"totalDiamonds"`
	ActiveToday   int64 `json:"activeToday"`
}

// TournamentStats aggregates tournaments by lifecycle bucket. Upcoming
// includes registration; Running includes finals.
type TournamentStats struct {
	Total             int64 `json:"total"`
	Upcoming          int64 `json:"upcoming"`
	Running           int64 `json:"running"`
	Completed         int64 `json:"completed"`
	TotalPrizePool    int64 `json:"totalPrizePool"`
	TotalParticipants int64 `json:"totalParticipants"`
}

// GameStats aggregates live game rooms.
type GameStats struct {
	TotalRooms     int64 `json:"totalRooms"`
	ActiveGames    int64 `json:"activeGames"`
	CompletedGames int64 `json:"completedGames"`
}

// DashboardStats is the full stats payload returned by GET /stats.
type DashboardStats struct {
	Users       UserStats       `json:"users"`
	Tournaments TournamentStats `json:"tournaments"`
	Games       GameStats       `json:"games"`
}
