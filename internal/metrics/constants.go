package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
	MetricNameSSEClients         = "heroverse_sse_clients"
)

// Session metric names
const (
	MetricNamePendingBalance       = "heroverse_pending_balance"
	MetricNameHourlyRate           = "heroverse_hourly_rate"
	MetricNameInstances            = "heroverse_instances"
	MetricNameActiveInstances      = "heroverse_active_instances"
	MetricNameStacks               = "heroverse_stacks"
	MetricNameRefreshDuration      = "heroverse_refresh_duration_seconds"
	MetricNameRefreshErrors        = "heroverse_refresh_errors_total"
	MetricNameCommands             = "heroverse_commands_total"
	MetricNameMysteryBoxDraws      = "heroverse_mystery_box_draws_total"
	MetricNameIntegrityIssues      = "heroverse_integrity_issues_total"
	MetricNameSuperCashCollected   = "heroverse_supercash_collected_total"
	MetricNameLeaderboardCacheHits = "heroverse_leaderboard_cache_hits_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
	HelpTextSSEClients         = "Current number of connected SSE clients"
)

// Session metric help text
const (
	HelpTextPendingBalance       = "Pending SuperCash at the last tick"
	HelpTextHourlyRate           = "Combined hourly earning rate of all eligible instances"
	HelpTextInstances            = "Owned hero instances in the current snapshot"
	HelpTextActiveInstances      = "Active hero instances in the current snapshot"
	HelpTextStacks               = "Hero stacks in the current snapshot"
	HelpTextRefreshDuration      = "Duration of instance snapshot refreshes in seconds"
	HelpTextRefreshErrors        = "Total number of failed snapshot refreshes"
	HelpTextCommands             = "Total number of commands by name and result"
	HelpTextMysteryBoxDraws      = "Total number of mystery box draws by rarity tier"
	HelpTextIntegrityIssues      = "Total number of instances skipped for integrity issues"
	HelpTextSuperCashCollected   = "Total SuperCash swept by collect"
	HelpTextLeaderboardCacheHits = "Total number of leaderboard reads served from cache"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCommand = "command"
	LabelResult  = "result"
	LabelTier    = "tier"
	LabelReason  = "reason"
)

// Label values for LabelResult
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Histogram buckets
var (
	HTTPLatencyBuckets    = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
	RefreshLatencyBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

// Log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
