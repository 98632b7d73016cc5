package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(PendingUpdated, func(ctx context.Context, evt Event) error {
		assert.Equal(t, PendingUpdated, evt.Type)
		payload, ok := evt.Payload.(PendingUpdatedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, int64(25), payload.Pending)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewPendingUpdatedEvent(25, 10, time.Now()))

	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}
	bus.Subscribe(CommandCompleted, handler)
	bus.Subscribe(CommandCompleted, handler)

	err := bus.Publish(context.Background(), NewCommandCompletedEvent("collect", true, "ok", 10, false))

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewStoreRefreshedEvent(StoreRefreshedPayloadV1{})))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(StoreRefreshed, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), NewStoreRefreshedEvent(StoreRefreshedPayloadV1{Instances: 3}))
	assert.Error(t, err)
}

func TestDecodePayload(t *testing.T) {
	direct, err := DecodePayload[CommandCompletedPayloadV1](CommandCompletedPayloadV1{Command: "collect"})
	require.NoError(t, err)
	assert.Equal(t, "collect", direct.Command)

	fromMap, err := DecodePayload[CommandCompletedPayloadV1](map[string]interface{}{
		"command": "activate",
		"success": true,
		"amount":  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "activate", fromMap.Command)
	assert.True(t, fromMap.Success)
	assert.Equal(t, int64(7), fromMap.Amount)
}
