package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/clock"
	"github.com/osse101/HeroVerse_Go/internal/concurrency"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/earnings"
	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/metrics"
	"github.com/osse101/HeroVerse_Go/internal/mysterybox"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// StacksView is the derived hero collection at one instant
type StacksView struct {
	Stacks    []domain.HeroStack      `json:"stacks"`
	Issues    []domain.IntegrityIssue `json:"issues"`
	Summary   earnings.Summary        `json:"summary"`
	FetchedAt time.Time               `json:"fetched_at"`
	At        time.Time               `json:"at"`
}

// PendingView is the uncollected balance at one instant
type PendingView struct {
	Pending    int64     `json:"pending"`
	HourlyRate float64   `json:"hourly_rate"`
	Issues     int       `json:"issues"`
	At         time.Time `json:"at"`
}

// Service owns the session's hero state and forwards every mutation to the backend
type Service interface {
	// Refresh re-fetches every owned instance and replaces the snapshot
	Refresh(ctx context.Context) error

	// LoadCatalog returns the cached catalog, fetching it when expired
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)

	// ReloadCatalog drops the cached catalog and fetches it again
	ReloadCatalog(ctx context.Context) domain.CommandResult

	// Snapshot returns the raw instances as last fetched
	Snapshot() Snapshot

	// Stacks derives the grouped collection at now
	Stacks(ctx context.Context, now time.Time) (*StacksView, error)

	// Pending derives the uncollected balance at now
	Pending(ctx context.Context, now time.Time) (*PendingView, error)

	// PublishPending recomputes pending at the clock's now and publishes it
	PublishPending(ctx context.Context) error

	Activate(ctx context.Context, instanceID string) domain.CommandResult
	Deactivate(ctx context.Context, instanceID string) domain.CommandResult
	ActivateAll(ctx context.Context, heroID string) domain.CommandResult
	DeactivateAll(ctx context.Context, heroID string) domain.CommandResult
	ClaimStarterHero(ctx context.Context) domain.CommandResult
	PurchaseMysteryBox(ctx context.Context, count int) domain.CommandResult
	Collect(ctx context.Context) domain.CommandResult

	// Shutdown waits for in-flight commands
	Shutdown(ctx context.Context) error
}

type service struct {
	userID     string
	backend    repository.HeroBackend
	catalogSvc catalog.Service
	boxSvc     mysterybox.Service
	store      *Store
	locks      *concurrency.LockManager
	bus        event.Bus
	clock      clock.Clock

	refreshMu sync.Mutex
	wg        sync.WaitGroup
}

// NewService creates the game session service for userID
func NewService(
	userID string,
	backend repository.HeroBackend,
	catalogSvc catalog.Service,
	boxSvc mysterybox.Service,
	locks *concurrency.LockManager,
	bus event.Bus,
	clk clock.Clock,
) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{
		userID:     userID,
		backend:    backend,
		catalogSvc: catalogSvc,
		boxSvc:     boxSvc,
		store:      NewStore(),
		locks:      locks,
		bus:        bus,
		clock:      clk,
	}
}

func (s *service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	log := logger.FromContext(ctx)
	start := time.Now()

	instances, err := s.backend.FetchOwnedInstances(ctx, s.userID)
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RefreshErrors.Inc()
		log.Warn(LogMsgRefreshFailed, "error", err)
		return fmt.Errorf("failed to fetch owned instances: %w", err)
	}

	now := s.clock.Now()
	s.store.Replace(instances, now)

	payload := event.StoreRefreshedPayloadV1{
		Instances:   len(instances),
		RefreshedAt: now,
	}
	for _, inst := range instances {
		if inst.IsActive {
			payload.ActiveInstances++
		}
	}

	cat, err := s.catalogSvc.Get(ctx)
	if err != nil {
		log.Warn(LogMsgCatalogUnavailable, "error", err)
	} else {
		stacks, issues := earnings.BuildStacks(now, instances, cat)
		payload.Stacks = len(stacks)
		payload.Issues = len(issues)
		for _, issue := range issues {
			metrics.IntegrityIssues.WithLabelValues(issue.Reason).Inc()
			log.Warn(LogMsgIntegrityIssue, "instance_id", issue.InstanceID, "hero_id", issue.HeroID, "reason", issue.Reason)
		}
	}

	log.Debug(LogMsgRefreshCompleted, "instances", payload.Instances, "active", payload.ActiveInstances, "duration", time.Since(start))
	s.publish(ctx, event.NewStoreRefreshedEvent(payload))
	return nil
}

func (s *service) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return s.catalogSvc.Get(ctx)
}

func (s *service) ReloadCatalog(ctx context.Context) domain.CommandResult {
	cat, err := s.catalogSvc.Reload(ctx)
	if err != nil {
		res := domain.Failed(domain.CommandRefreshCatalog, err)
		s.publishResult(ctx, res)
		return res
	}
	res := domain.Succeeded(domain.CommandRefreshCatalog, fmt.Sprintf("Catalog loaded with %d heroes", cat.Len()))
	s.publishResult(ctx, res)
	return res
}

func (s *service) Snapshot() Snapshot {
	return s.store.Snapshot()
}

func (s *service) Stacks(ctx context.Context, now time.Time) (*StacksView, error) {
	cat, err := s.catalogSvc.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogNotLoaded, err)
	}

	snap := s.store.Snapshot()
	stacks, issues := earnings.BuildStacks(now, snap.Instances, cat)
	return &StacksView{
		Stacks:    stacks,
		Issues:    issues,
		Summary:   earnings.Summarize(stacks),
		FetchedAt: snap.FetchedAt,
		At:        now,
	}, nil
}

func (s *service) Pending(ctx context.Context, now time.Time) (*PendingView, error) {
	cat, err := s.catalogSvc.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogNotLoaded, err)
	}

	snap := s.store.Snapshot()
	pending, issues := earnings.PendingBalance(now, snap.Instances, cat)
	stacks, _ := earnings.BuildStacks(now, snap.Instances, cat)
	return &PendingView{
		Pending:    pending,
		HourlyRate: earnings.Summarize(stacks).HourlyRate,
		Issues:     len(issues),
		At:         now,
	}, nil
}

func (s *service) PublishPending(ctx context.Context) error {
	view, err := s.Pending(ctx, s.clock.Now())
	if err != nil {
		return err
	}
	if s.bus == nil {
		return nil
	}
	return s.bus.Publish(ctx, event.NewPendingUpdatedEvent(view.Pending, view.HourlyRate, view.At))
}

func (s *service) Activate(ctx context.Context, instanceID string) domain.CommandResult {
	return s.run(ctx, domain.CommandActivate, lockKeyInstance+instanceID, func(ctx context.Context) (domain.CommandResult, error) {
		if err := s.backend.Activate(ctx, s.userID, instanceID); err != nil {
			return domain.CommandResult{}, err
		}
		return domain.Succeeded(domain.CommandActivate, "Hero activated"), nil
	})
}

func (s *service) Deactivate(ctx context.Context, instanceID string) domain.CommandResult {
	return s.run(ctx, domain.CommandDeactivate, lockKeyInstance+instanceID, func(ctx context.Context) (domain.CommandResult, error) {
		if err := s.backend.Deactivate(ctx, s.userID, instanceID); err != nil {
			return domain.CommandResult{}, err
		}
		return domain.Succeeded(domain.CommandDeactivate, "Hero deactivated"), nil
	})
}

func (s *service) ActivateAll(ctx context.Context, heroID string) domain.CommandResult {
	return s.run(ctx, domain.CommandActivateAll, lockKeyHero+heroID, func(ctx context.Context) (domain.CommandResult, error) {
		n, err := s.backend.ActivateAll(ctx, s.userID, heroID)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandActivateAll, fmt.Sprintf("Activated %d copies", n))
		res.Amount = int64(n)
		return res, nil
	})
}

func (s *service) DeactivateAll(ctx context.Context, heroID string) domain.CommandResult {
	return s.run(ctx, domain.CommandDeactivateAll, lockKeyHero+heroID, func(ctx context.Context) (domain.CommandResult, error) {
		n, err := s.backend.DeactivateAll(ctx, s.userID, heroID)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandDeactivateAll, fmt.Sprintf("Deactivated %d copies", n))
		res.Amount = int64(n)
		return res, nil
	})
}

func (s *service) ClaimStarterHero(ctx context.Context) domain.CommandResult {
	return s.run(ctx, domain.CommandClaimStarter, lockKeyAccount, func(ctx context.Context) (domain.CommandResult, error) {
		hero, err := s.backend.ClaimStarterHero(ctx, s.userID)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandClaimStarter, fmt.Sprintf("Claimed %s", hero.Name))
		res.Heroes = []domain.HeroDefinition{*hero}
		return res, nil
	})
}

func (s *service) PurchaseMysteryBox(ctx context.Context, count int) domain.CommandResult {
	return s.run(ctx, domain.CommandMysteryBox, lockKeyAccount, func(ctx context.Context) (domain.CommandResult, error) {
		cat, err := s.catalogSvc.Get(ctx)
		if err != nil {
			return domain.CommandResult{}, fmt.Errorf("%w: %v", domain.ErrCatalogNotLoaded, err)
		}
		heroes, err := s.boxSvc.Open(ctx, s.userID, cat, count)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandMysteryBox, fmt.Sprintf("Opened %d mystery boxes", len(heroes)))
		res.Heroes = heroes
		return res, nil
	})
}

func (s *service) Collect(ctx context.Context) domain.CommandResult {
	return s.run(ctx, domain.CommandCollect, lockKeyAccount, func(ctx context.Context) (domain.CommandResult, error) {
		amount, err := s.backend.Collect(ctx, s.userID)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandCollect, fmt.Sprintf("Collected %d SuperCash", amount))
		res.Amount = amount
		return res, nil
	})
}

// run executes one backend command. A second command on the same key fails
// fast while the first is in flight. The round trip ignores caller
// cancellation once sent; success is followed by a full refresh.
func (s *service) run(ctx context.Context, command, key string, fn func(context.Context) (domain.CommandResult, error)) domain.CommandResult {
	log := logger.FromContext(ctx)

	if !s.locks.TryLock(key) {
		res := domain.Failed(command, domain.ErrCommandInFlight)
		log.Info(LogMsgCommandFailed, "command", command, "key", key, "error", res.Err)
		s.publishResult(ctx, res)
		return res
	}
	defer s.locks.Unlock(key)

	s.wg.Add(1)
	defer s.wg.Done()

	cmdCtx := context.WithoutCancel(ctx)
	sentAt := s.clock.Now()

	res, err := fn(cmdCtx)
	if err != nil {
		res = domain.Failed(command, err)
		if errors.Is(err, domain.ErrBackendUnavailable) {
			log.Error(LogMsgCommandFailed, "command", command, "error", err)
		} else {
			log.Warn(LogMsgCommandFailed, "command", command, "error", err)
		}
		s.publishResult(cmdCtx, res)
		return res
	}

	if err := s.Refresh(cmdCtx); err != nil {
		res.Stale = true
		log.Warn(LogMsgCommandStale, "command", command, "error", err)
		if command == domain.CommandCollect {
			s.store.MarkCollected(sentAt)
			log.Info(LogMsgCollectMirrored, "at", sentAt)
		}
	}

	log.Info(LogMsgCommandSucceeded, "command", command, "amount", res.Amount, "stale", res.Stale)
	s.publishResult(cmdCtx, res)
	return res
}

func (s *service) publishResult(ctx context.Context, res domain.CommandResult) {
	s.publish(ctx, event.NewCommandCompletedEvent(res.Command, res.Success, res.Message, res.Amount, res.Stale))
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailure, "type", evt.Type, "error", err)
	}
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShutdownWaiting)
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
