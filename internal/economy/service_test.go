package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroVerse_Go/internal/concurrency"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/event"
)

const testUserID = "0d4c6b2a-9e8f-4a1b-b2c3-d4e5f6a7b8c9"

func TestGetProfile(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetProfile", mock.Anything, testUserID).Return(&domain.Profile{Username: "ada", Balance: 1200}, nil).Once()
	repo.On("GetProfile", mock.Anything, testUserID).Return(nil, domain.ErrProfileNotFound).Once()
	svc := NewService(testUserID, repo, nil, nil)

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1200), profile.Balance)

	_, err = svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSendSuperCash_Success(t *testing.T) {
	repo := &MockRepository{}
	repo.On("SendSuperCash", mock.Anything, testUserID, "grace", int64(250)).
		Return(&domain.TransferReceipt{ToUsername: "grace", Amount: 250, BalanceLeft: 750}, nil).Once()

	bus := event.NewMemoryBus()
	var completed []event.CommandCompletedPayloadV1
	bus.Subscribe(event.CommandCompleted, func(_ context.Context, e event.Event) error {
		completed = append(completed, e.Payload.(event.CommandCompletedPayloadV1))
		return nil
	})

	svc := NewService(testUserID, repo, nil, bus)
	res := svc.SendSuperCash(context.Background(), "  grace ", 250)

	require.True(t, res.Success)
	assert.Equal(t, int64(250), res.Amount)
	assert.Equal(t, "Sent 250 SuperCash to grace", res.Message)
	require.Len(t, completed, 1)
	assert.Equal(t, domain.CommandSendSuperCash, completed[0].Command)
}

func TestSendSuperCash_Validation(t *testing.T) {
	tests := []struct {
		name   string
		to     string
		amount int64
	}{
		{"zero amount", "grace", 0},
		{"negative amount", "grace", -5},
		{"blank recipient", "   ", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			svc := NewService(testUserID, repo, nil, nil)

			res := svc.SendSuperCash(context.Background(), tt.to, tt.amount)

			assert.False(t, res.Success)
			assert.ErrorIs(t, res.Err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "SendSuperCash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSendSuperCash_BackendRejections(t *testing.T) {
	for _, sentinel := range []error{domain.ErrInsufficientBalance, domain.ErrRecipientNotFound, domain.ErrSelfTransfer} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			repo := &MockRepository{}
			repo.On("SendSuperCash", mock.Anything, testUserID, "grace", int64(10)).Return(nil, sentinel).Once()
			svc := NewService(testUserID, repo, nil, nil)

			res := svc.SendSuperCash(context.Background(), "grace", 10)
			assert.False(t, res.Success)
			assert.ErrorIs(t, res.Err, sentinel)
			assert.Equal(t, sentinel.Error(), res.Message)
		})
	}
}

func TestSendSuperCash_AccountBusy(t *testing.T) {
	locks := concurrency.NewLockManager()
	require.True(t, locks.TryLock(lockKeyAccount))
	defer locks.Unlock(lockKeyAccount)

	svc := NewService(testUserID, &MockRepository{}, locks, nil)
	res := svc.SendSuperCash(context.Background(), "grace", 10)
	assert.ErrorIs(t, res.Err, domain.ErrCommandInFlight)
}

func TestApplyReferralCode(t *testing.T) {
	repo := &MockRepository{}
	repo.On("ApplyReferralCode", mock.Anything, testUserID, "HERO42").Return(int64(1000), nil).Once()
	repo.On("ApplyReferralCode", mock.Anything, testUserID, "HERO42").Return(int64(0), domain.ErrReferralUsed).Once()
	svc := NewService(testUserID, repo, nil, nil)

	res := svc.ApplyReferralCode(context.Background(), " hero42 ")
	require.True(t, res.Success)
	assert.Equal(t, int64(1000), res.Amount)

	res = svc.ApplyReferralCode(context.Background(), "hero42")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, domain.ErrReferralUsed)

	res = svc.ApplyReferralCode(context.Background(), "")
	assert.ErrorIs(t, res.Err, domain.ErrInvalidInput)
}
