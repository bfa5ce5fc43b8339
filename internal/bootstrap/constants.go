package bootstrap

// Log messages for application startup
const (
	LogMsgStartingAdminAPI    = "Starting Reverse Ludo admin API"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgMigrationsApplied   = "Database migrations applied"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
