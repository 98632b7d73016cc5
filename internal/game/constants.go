package game

// Lock key prefixes for in-flight command tracking
const (
	lockKeyInstance = "instance:"
	lockKeyHero     = "hero:"
	lockKeyAccount  = "account"
)

// Log messages
const (
	LogMsgRefreshFailed       = "Instance refresh failed"
	LogMsgRefreshCompleted    = "Instance snapshot refreshed"
	LogMsgIntegrityIssue      = "Instance skipped from derived state"
	LogMsgCommandFailed       = "Command failed"
	LogMsgCommandSucceeded    = "Command succeeded"
	LogMsgCommandStale        = "Command succeeded but follow-up refresh failed"
	LogMsgCatalogUnavailable  = "Catalog unavailable, derived state skipped"
	LogMsgShutdownWaiting     = "Game service shutting down, waiting for in-flight commands..."
	LogMsgCollectMirrored     = "Collect mirrored into local snapshot"
	LogMsgEventPublishFailure = "Failed to publish session event"
)
