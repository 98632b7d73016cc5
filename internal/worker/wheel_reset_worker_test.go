package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroVerse_Go/internal/event"
)

// MockBus for testing
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestTimeUntilNextWheelReset(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"just after midnight", time.Date(2026, 2, 2, 0, 0, 1, 0, time.UTC), 24*time.Hour - time.Second},
		{"one minute before", time.Date(2026, 2, 2, 23, 59, 0, 0, time.UTC), time.Minute},
		{"exactly midnight", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), 24 * time.Hour},
		{"other zone", time.Date(2026, 2, 2, 6, 30, 0, 0, time.FixedZone("UTC+7", 7*3600)), 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeUntilNextWheelReset(tt.now))
		})
	}
}

func TestWheelResetWorker_StartAndShutdown(t *testing.T) {
	bus := new(MockBus)
	w := NewWheelResetWorker(bus)

	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
	// second shutdown is safe
	assert.NoError(t, w.Shutdown(ctx))
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestWheelResetWorker_AnnouncesAtMidnight(t *testing.T) {
	bus := new(MockBus)
	published := make(chan event.Event, 1)
	bus.On("Publish", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		select {
		case published <- args.Get(1).(event.Event):
		default:
		}
	}).Return(nil)

	w := NewWheelResetWorker(bus)
	base := time.Date(2026, 2, 2, 23, 59, 59, 950_000_000, time.UTC)
	start := time.Now()
	w.now = func() time.Time { return base.Add(time.Since(start)) }
	w.Start()

	select {
	case evt := <-published:
		assert.Equal(t, event.WheelReady, evt.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("wheel reset was not announced")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
}
