package bootstrap

import "time"

// Log messages
const (
	LogMsgStarting            = "Starting FichasBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgStorageReady        = "Ledger storage ready"
	LogMsgFlavorRemote        = "Flavor text uses remote completion"
	LogMsgFlavorFallbackOnly  = "Flavor text uses local templates only"
	LogMsgShuttingDownServer  = "Shutting down server..."
	LogMsgServerForcedStop    = "Server forced to shutdown"
	LogMsgStorageCloseFailed  = "Storage close failed"
	LogMsgServerStopped       = "Server stopped"
)

// Error messages
const (
	ErrMsgUnknownBackend     = "unknown storage backend"
	ErrMsgFailedRedisClient  = "failed to create redis client"
	ErrMsgFailedStorePing    = "failed to reach ledger store"
	ErrMsgFailedPostgresPool = "failed to connect to postgres"
	ErrMsgFailedMigrations   = "failed to apply migrations"
	ErrMsgFailedLoadCatalog  = "failed to load item catalog"
)

// StartupPingTimeout bounds the initial store reachability check
const StartupPingTimeout = 5 * time.Second
