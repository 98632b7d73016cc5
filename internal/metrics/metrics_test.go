package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroVerse_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewPendingUpdatedEvent(42, 12.5, time.Now())))
	assert.Equal(t, 42.0, testutil.ToFloat64(PendingBalance))
	assert.Equal(t, 12.5, testutil.ToFloat64(HourlyRate))

	require.NoError(t, bus.Publish(ctx, event.NewStoreRefreshedEvent(event.StoreRefreshedPayloadV1{
		Instances:       7,
		ActiveInstances: 3,
		Stacks:          4,
	})))
	assert.Equal(t, 7.0, testutil.ToFloat64(Instances))
	assert.Equal(t, 3.0, testutil.ToFloat64(ActiveInstances))
	assert.Equal(t, 4.0, testutil.ToFloat64(Stacks))

	before := testutil.ToFloat64(Commands.WithLabelValues("activate", ResultFailure))
	require.NoError(t, bus.Publish(ctx, event.NewCommandCompletedEvent("activate", false, "nope", 0, false)))
	assert.Equal(t, before+1, testutil.ToFloat64(Commands.WithLabelValues("activate", ResultFailure)))

	collected := testutil.ToFloat64(SuperCashCollected)
	require.NoError(t, bus.Publish(ctx, event.NewCommandCompletedEvent("collect", true, "ok", 30, false)))
	assert.Equal(t, collected+30, testutil.ToFloat64(SuperCashCollected))
}

func TestMiddleware_RecordsStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "418"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics-test", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
