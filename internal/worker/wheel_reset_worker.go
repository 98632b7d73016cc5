package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/logger"
)

// WheelResetWorker announces the daily prize wheel rollover at 00:00 UTC
type WheelResetWorker struct {
	bus      event.Bus
	now      func() time.Time
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewWheelResetWorker creates a new WheelResetWorker
func NewWheelResetWorker(bus event.Bus) *WheelResetWorker {
	return &WheelResetWorker{
		bus:      bus,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first announcement
func (w *WheelResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext sleeps in two stages so a long timer never fires far from midnight
func (w *WheelResetWorker) scheduleNext() {
	duration := timeUntilNextWheelReset(w.now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > wheelResetStandbyThreshold {
		wait := duration - wheelResetWakeBefore
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgWheelResetStandby, "next_check_at", w.now().UTC().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Early wake-up: reschedule for the remainder
		rem := timeUntilNextWheelReset(w.now())
		if rem > wheelResetJitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.announce()
		w.scheduleNext()
	})
	log.Info(LogMsgWheelResetApproach, "next_reset_at", w.now().UTC().Add(duration))
}

func (w *WheelResetWorker) announce() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		at := w.now().UTC()

		if w.bus == nil {
			return
		}
		if err := w.bus.Publish(ctx, event.NewWheelReadyEvent(at)); err != nil {
			log.Error(LogMsgWheelResetFailed, "error", err)
			return
		}
		log.Info(LogMsgWheelResetAnnounced, "at", at)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight announcement
func (w *WheelResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down wheel reset worker")

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Wheel reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Wheel reset worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextWheelReset is the duration from now to the next 00:00 UTC
func timeUntilNextWheelReset(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(now)
}
