package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE. Session events reuse the bus type names.
const (
	EventTypePendingUpdated   = "pending.updated"
	EventTypeStoreRefreshed   = "store.refreshed"
	EventTypeCommandCompleted = "command.completed"
	EventTypeWheelReady       = "wheel.ready"

	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, dropping event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
