package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Session event types
const (
	PendingUpdated   Type = "pending.updated"
	StoreRefreshed   Type = "store.refreshed"
	CommandCompleted Type = "command.completed"
	WheelReady       Type = "wheel.ready"
)

// PendingUpdatedPayloadV1 carries the live pending counter
type PendingUpdatedPayloadV1 struct {
	Pending    int64     `json:"pending"`
	HourlyRate float64   `json:"hourly_rate"`
	At         time.Time `json:"at"`
}

// StoreRefreshedPayloadV1 summarizes a freshly fetched snapshot
type StoreRefreshedPayloadV1 struct {
	Instances       int       `json:"instances"`
	ActiveInstances int       `json:"active_instances"`
	Stacks          int       `json:"stacks"`
	Issues          int       `json:"issues"`
	RefreshedAt     time.Time `json:"refreshed_at"`
}

// CommandCompletedPayloadV1 reports the outcome of a mutating command
type CommandCompletedPayloadV1 struct {
	Command string `json:"command"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Amount  int64  `json:"amount,omitempty"`
	Stale   bool   `json:"stale,omitempty"`
}

// WheelReadyPayloadV1 announces that a new wheel day has started
type WheelReadyPayloadV1 struct {
	At time.Time `json:"at"`
}

// NewPendingUpdatedEvent creates a pending counter event
func NewPendingUpdatedEvent(pending int64, hourlyRate float64, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PendingUpdated,
		Payload: PendingUpdatedPayloadV1{
			Pending:    pending,
			HourlyRate: hourlyRate,
			At:         at,
		},
	}
}

// NewStoreRefreshedEvent creates a snapshot refreshed event
func NewStoreRefreshedEvent(payload StoreRefreshedPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StoreRefreshed,
		Payload: payload,
	}
}

// NewCommandCompletedEvent creates a command outcome event
func NewCommandCompletedEvent(command string, success bool, message string, amount int64, stale bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CommandCompleted,
		Payload: CommandCompletedPayloadV1{
			Command: command,
			Success: success,
			Message: message,
			Amount:  amount,
			Stale:   stale,
		},
	}
}

// NewWheelReadyEvent creates a wheel day rollover event
func NewWheelReadyEvent(at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WheelReady,
		Payload: WheelReadyPayloadV1{At: at},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
