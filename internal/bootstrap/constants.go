package bootstrap

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStarting             = "Starting HeroVerse session daemon"
	LogMsgConfigLoaded         = "Configuration loaded"
	LogMsgEventSystemReady     = "Event system initialized"
	LogMsgSchedulerReady       = "Session jobs scheduled"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
	LogMsgServiceShutdownFail  = "service shutdown failed"
	LogMsgWorkerShutdownFailed = "Wheel reset worker shutdown failed"
)

// =============================================================================
// Service Names (for shutdown logging)
// =============================================================================

const (
	ServiceNameGame = "game"
)
