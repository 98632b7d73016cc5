package wheel

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HeroVerse_Go/internal/clock"
	"github.com/osse101/HeroVerse_Go/internal/concurrency"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// DefaultLayoutTTL is how long a computed layout is reused
const DefaultLayoutTTL = 6 * time.Hour

const (
	layoutKey      = "layout"
	lockKeyAccount = "account"
)

// Service exposes the daily prize wheel
type Service interface {
	// Slices returns the current rendering order
	Slices(ctx context.Context) ([]domain.WheelSlice, error)

	// Status reports the last spin and when the next one opens
	Status(ctx context.Context) (*domain.WheelStatus, error)

	// Spin asks the backend for today's prize and maps it onto a slice
	Spin(ctx context.Context) (*domain.SpinResult, error)
}

type service struct {
	userID string
	repo   repository.Wheel
	locks  *concurrency.LockManager
	bus    event.Bus
	clock  clock.Clock
	layout *expirable.LRU[string, []domain.WheelSlice]
}

// NewService creates a wheel service for userID
func NewService(userID string, repo repository.Wheel, locks *concurrency.LockManager, bus event.Bus, clk clock.Clock, ttl time.Duration) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if ttl <= 0 {
		ttl = DefaultLayoutTTL
	}
	return &service{
		userID: userID,
		repo:   repo,
		locks:  locks,
		bus:    bus,
		clock:  clk,
		layout: expirable.NewLRU[string, []domain.WheelSlice](1, nil, ttl),
	}
}

// NextSpinAt is the start of the UTC day after last
func NextSpinAt(last time.Time) time.Time {
	return last.UTC().Truncate(domain.WheelCooldown).Add(domain.WheelCooldown)
}

func (s *service) Slices(ctx context.Context) ([]domain.WheelSlice, error) {
	if slices, ok := s.layout.Get(layoutKey); ok {
		return slices, nil
	}
	return s.reloadLayout(ctx)
}

func (s *service) reloadLayout(ctx context.Context) ([]domain.WheelSlice, error) {
	prizes, err := s.repo.GetWheelPrizes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get wheel prizes: %w", err)
	}
	if len(prizes) == 0 {
		return nil, domain.ErrNoWheelPrizes
	}

	slices := Layout(prizes)
	s.layout.Add(layoutKey, slices)
	logger.FromContext(ctx).Debug("Wheel layout built", "prizes", len(prizes), "slices", len(slices), "adjacent_pairs", AdjacentPairs(slices))
	return slices, nil
}

func (s *service) Status(ctx context.Context) (*domain.WheelStatus, error) {
	last, err := s.repo.GetLastSpin(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get last spin: %w", err)
	}
	slices, err := s.Slices(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	status := &domain.WheelStatus{
		LastSpinAt: last,
		NextSpinAt: now,
		CanSpinNow: true,
		Slices:     slices,
	}
	if last != nil {
		status.NextSpinAt = NextSpinAt(*last)
		status.CanSpinNow = !now.Before(status.NextSpinAt)
	}
	return status, nil
}

func (s *service) Spin(ctx context.Context) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)

	if !s.locks.TryLock(lockKeyAccount) {
		s.publish(ctx, domain.Failed(domain.CommandSpinWheel, domain.ErrCommandInFlight))
		return nil, domain.ErrCommandInFlight
	}
	defer s.locks.Unlock(lockKeyAccount)

	cmdCtx := context.WithoutCancel(ctx)
	prize, spunAt, err := s.repo.SpinWheel(cmdCtx, s.userID)
	if err != nil {
		log.Warn("Wheel spin rejected", "error", err)
		s.publish(cmdCtx, domain.Failed(domain.CommandSpinWheel, err))
		return nil, err
	}

	slices, err := s.Slices(cmdCtx)
	if err != nil {
		log.Warn("Wheel layout unavailable after spin", "error", err)
	}
	index := SliceFor(slices, *prize)
	if index < 0 && slices != nil {
		// Prize table changed since the layout was cached
		if slices, err = s.reloadLayout(cmdCtx); err == nil {
			index = SliceFor(slices, *prize)
		}
	}

	res := domain.Succeeded(domain.CommandSpinWheel, fmt.Sprintf("Won %s", displayLabel(prize.Label)))
	res.Amount = prize.Amount
	s.publish(cmdCtx, res)

	log.Info("Wheel spun", "prize", prize.Label, "amount", prize.Amount, "slice", index)
	return &domain.SpinResult{Prize: *prize, SliceIndex: index, SpunAt: spunAt}, nil
}

func (s *service) publish(ctx context.Context, res domain.CommandResult) {
	if s.bus == nil {
		return
	}
	evt := event.NewCommandCompletedEvent(res.Command, res.Success, res.Message, res.Amount, res.Stale)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(event.LogMsgPublishFailed, "error", err)
	}
}
