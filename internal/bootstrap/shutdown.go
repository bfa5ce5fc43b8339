package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	DBPool *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests, drain SSE clients)
// 2. Database pool (close once no handler can touch it)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
