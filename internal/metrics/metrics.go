package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)

// Session Metrics
var (
	PendingBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePendingBalance,
			Help: HelpTextPendingBalance,
		},
	)

	HourlyRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHourlyRate,
			Help: HelpTextHourlyRate,
		},
	)

	Instances = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInstances,
			Help: HelpTextInstances,
		},
	)

	ActiveInstances = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveInstances,
			Help: HelpTextActiveInstances,
		},
	)

	Stacks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStacks,
			Help: HelpTextStacks,
		},
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRefreshDuration,
			Help:    HelpTextRefreshDuration,
			Buckets: RefreshLatencyBuckets,
		},
	)

	RefreshErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRefreshErrors,
			Help: HelpTextRefreshErrors,
		},
	)

	Commands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommands,
			Help: HelpTextCommands,
		},
		[]string{LabelCommand, LabelResult},
	)

	MysteryBoxDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMysteryBoxDraws,
			Help: HelpTextMysteryBoxDraws,
		},
		[]string{LabelTier},
	)

	IntegrityIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntegrityIssues,
			Help: HelpTextIntegrityIssues,
		},
		[]string{LabelReason},
	)

	SuperCashCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSuperCashCollected,
			Help: HelpTextSuperCashCollected,
		},
	)

	LeaderboardCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardCacheHits,
			Help: HelpTextLeaderboardCacheHits,
		},
	)
)
