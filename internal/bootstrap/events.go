package bootstrap

import (
	"context"

	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/leaderboard"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/metrics"
	"github.com/osse101/HeroVerse_Go/internal/sse"
)

// InitializeEventSystem creates the in-process session event bus.
func InitializeEventSystem(ctx context.Context) event.Bus {
	bus := event.NewMemoryBus()
	logger.FromContext(ctx).Info(LogMsgEventSystemReady)
	return bus
}

// EventHandlerDeps lists the consumers subscribed to the session bus.
type EventHandlerDeps struct {
	Bus         event.Bus
	SSEHub      *sse.Hub
	Leaderboard leaderboard.Service
}

// RegisterEventHandlers subscribes the metrics collector, the SSE bridge and
// the leaderboard cache invalidation to the bus.
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDeps) {
	metrics.NewEventMetricsCollector().Register(deps.Bus)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.Bus).Subscribe(ctx)
	}

	if deps.Leaderboard != nil {
		leaderboard.RegisterInvalidation(deps.Bus, deps.Leaderboard)
	}
}
