package sse

import (
	"context"

	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

var bridgedTypes = []event.Type{
	event.PendingUpdated,
	event.StoreRefreshed,
	event.CommandCompleted,
	event.WheelReady,
}

// Subscribe registers the forwarding handler for every session event type
func (s *Subscriber) Subscribe(ctx context.Context) {
	types := make([]string, 0, len(bridgedTypes))
	for _, t := range bridgedTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	logger.FromContext(ctx).Info(LogMsgSubscriberReady, "types", types)
}

// forward passes the payload through unchanged; clients read the same
// versioned payload structs the bus carries.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}
