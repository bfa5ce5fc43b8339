package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reverseludo/admin-api/internal/auth"
	"github.com/reverseludo/admin-api/internal/bootstrap"
	"github.com/reverseludo/admin-api/internal/chat"
	"github.com/reverseludo/admin-api/internal/config"
	"github.com/reverseludo/admin-api/internal/dailybonus"
	"github.com/reverseludo/admin-api/internal/dare"
	"github.com/reverseludo/admin-api/internal/database"
	"github.com/reverseludo/admin-api/internal/gift"
	"github.com/reverseludo/admin-api/internal/inventory"
	"github.com/reverseludo/admin-api/internal/notification"
	"github.com/reverseludo/admin-api/internal/promotion"
	"github.com/reverseludo/admin-api/internal/room"
	"github.com/reverseludo/admin-api/internal/server"
	"github.com/reverseludo/admin-api/internal/sse"
	"github.com/reverseludo/admin-api/internal/stats"
	"github.com/reverseludo/admin-api/internal/storage"
	"github.com/reverseludo/admin-api/internal/tournament"
	"github.com/reverseludo/admin-api/internal/user"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingAdminAPI, "version", cfg.Version, "environment", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.RunMigrations(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Migration run failed", "error", err)
		os.Exit(1)
	}
	slog.Info(bootstrap.LogMsgMigrationsApplied)

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}

	// The store appends the /media segment itself; baseURL is the bare origin.
	store, err := storage.NewFileStore(cfg.MediaDir, cfg.PublicBaseURL)
	if err != nil {
		slog.Error("Failed to initialize media store", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	hub := sse.NewHub()
	hub.Start()

	svcs := server.Services{
		Auth:         auth.NewService(repos.AdminAccount, cfg, cfg.JWTSecret, cfg.JWTTTL),
		User:         user.NewService(repos.User),
		Inventory:    inventory.NewService(repos.Inventory, store),
		DailyBonus:   dailybonus.NewService(repos.DailyBonus, repos.Inventory, store),
		Gift:         gift.NewService(repos.User, repos.Inventory, repos.GiftHistory),
		Notification: notification.NewService(repos.Notification, repos.User, repos.Tournament),
		Tournament:   tournament.NewService(repos.Tournament, store),
		Room:         room.NewService(repos.Room),
		Dare:         dare.NewService(repos.Dare),
		Chat:         chat.NewService(repos.Chat, hub),
		Promotion:    promotion.NewService(repos.Promotion, store),
		Stats:        stats.NewService(repos.Stats),
	}

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool, hub, cfg.MediaDir, svcs)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
