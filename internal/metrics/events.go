package metrics

import (
	"context"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/logger"
)

// EventMetricsCollector subscribes to session events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all session events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.PendingUpdated,
		event.StoreRefreshed,
		event.CommandCompleted,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics from one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PendingUpdated:
		p, err := event.DecodePayload[event.PendingUpdatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PendingBalance.Set(float64(p.Pending))
		HourlyRate.Set(p.HourlyRate)

	case event.StoreRefreshed:
		p, err := event.DecodePayload[event.StoreRefreshedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		Instances.Set(float64(p.Instances))
		ActiveInstances.Set(float64(p.ActiveInstances))
		Stacks.Set(float64(p.Stacks))

	case event.CommandCompleted:
		p, err := event.DecodePayload[event.CommandCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		result := ResultSuccess
		if !p.Success {
			result = ResultFailure
		}
		Commands.WithLabelValues(p.Command, result).Inc()
		if p.Success && p.Command == domain.CommandCollect && p.Amount > 0 {
			SuperCashCollected.Add(float64(p.Amount))
		}
	}

	return nil
}
