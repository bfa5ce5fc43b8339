package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/database/postgres"
	"github.com/reverseludo/admin-api/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	AdminAccount repository.AdminAccount
	User         repository.User
	Inventory    repository.Inventory
	DailyBonus   repository.DailyBonus
	GiftHistory  repository.GiftHistory
	Notification repository.Notification
	Tournament   repository.Tournament
	Room         repository.Room
	Dare         repository.Dare
	Chat         repository.Chat
	Promotion    repository.Promotion
	Stats        repository.Stats
}

// InitializeRepositories creates all repository implementations. Every
// repository shares the same pgx pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminAccount: postgres.NewAdminAccountRepository(dbPool),
		User:         postgres.NewUserRepository(dbPool),
		Inventory:    postgres.NewInventoryRepository(dbPool),
		DailyBonus:   postgres.NewDailyBonusRepository(dbPool),
		GiftHistory:  postgres.NewGiftHistoryRepository(dbPool),
		Notification: postgres.NewNotificationRepository(dbPool),
		Tournament:   postgres.NewTournamentRepository(dbPool),
		Room:         postgres.NewRoomRepository(dbPool),
		Dare:         postgres.NewDareRepository(dbPool),
		Chat:         postgres.NewChatRepository(dbPool),
		Promotion:    postgres.NewPromotionRepository(dbPool),
		Stats:        postgres.NewStatsRepository(dbPool),
	}
}
