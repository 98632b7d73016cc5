package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HeroVerse_Go/internal/concurrency"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// Service defines the account balance operations of the session owner
type Service interface {
	// GetProfile returns the current account row
	GetProfile(ctx context.Context) (*domain.Profile, error)

	// SendSuperCash transfers amount to another account by username
	SendSuperCash(ctx context.Context, toUsername string, amount int64) domain.CommandResult

	// ApplyReferralCode links the account to a referrer once
	ApplyReferralCode(ctx context.Context, code string) domain.CommandResult
}

type service struct {
	userID string
	repo   repository.Economy
	locks  *concurrency.LockManager
	bus    event.Bus
}

// NewService creates a new economy service. locks should be shared with the
// game service so balance-changing commands never overlap.
func NewService(userID string, repo repository.Economy, locks *concurrency.LockManager, bus event.Bus) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		userID: userID,
		repo:   repo,
		locks:  locks,
		bus:    bus,
	}
}

func (s *service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailedFmt, err)
	}
	return profile, nil
}

func (s *service) SendSuperCash(ctx context.Context, toUsername string, amount int64) domain.CommandResult {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSendSuperCash, "to", toUsername, "amount", amount)

	to, err := validateTransfer(toUsername, amount)
	if err != nil {
		return s.finish(ctx, domain.Failed(domain.CommandSendSuperCash, err))
	}

	return s.run(ctx, domain.CommandSendSuperCash, func(ctx context.Context) (domain.CommandResult, error) {
		receipt, err := s.repo.SendSuperCash(ctx, s.userID, to, amount)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandSendSuperCash,
			fmt.Sprintf("Sent %d SuperCash to %s", receipt.Amount, receipt.ToUsername))
		res.Amount = receipt.Amount
		return res, nil
	})
}

func (s *service) ApplyReferralCode(ctx context.Context, code string) domain.CommandResult {
	log := logger.FromContext(ctx)
	log.Info(LogMsgApplyReferral, "code", strings.TrimSpace(code))

	normalized, err := normalizeReferralCode(code)
	if err != nil {
		return s.finish(ctx, domain.Failed(domain.CommandApplyReferral, err))
	}

	return s.run(ctx, domain.CommandApplyReferral, func(ctx context.Context) (domain.CommandResult, error) {
		bonus, err := s.repo.ApplyReferralCode(ctx, s.userID, normalized)
		if err != nil {
			return domain.CommandResult{}, err
		}
		res := domain.Succeeded(domain.CommandApplyReferral, fmt.Sprintf("Referral applied, %d SuperCash bonus", bonus))
		res.Amount = bonus
		return res, nil
	})
}

func (s *service) run(ctx context.Context, command string, fn func(context.Context) (domain.CommandResult, error)) domain.CommandResult {
	if !s.locks.TryLock(lockKeyAccount) {
		return s.finish(ctx, domain.Failed(command, domain.ErrCommandInFlight))
	}
	defer s.locks.Unlock(lockKeyAccount)

	cmdCtx := context.WithoutCancel(ctx)
	res, err := fn(cmdCtx)
	if err != nil {
		return s.finish(cmdCtx, domain.Failed(command, err))
	}
	return s.finish(cmdCtx, res)
}

func (s *service) finish(ctx context.Context, res domain.CommandResult) domain.CommandResult {
	log := logger.FromContext(ctx)
	if res.Success {
		log.Info(LogMsgCommandSucceeded, "command", res.Command, "amount", res.Amount)
	} else {
		log.Warn(LogMsgCommandRejected, "command", res.Command, "error", res.Err)
	}

	if s.bus != nil {
		evt := event.NewCommandCompletedEvent(res.Command, res.Success, res.Message, res.Amount, res.Stale)
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return res
}
