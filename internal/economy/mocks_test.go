package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockRepository) SendSuperCash(ctx context.Context, fromUserID, toUsername string, amount int64) (*domain.TransferReceipt, error) {
	args := m.Called(ctx, fromUserID, toUsername, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReceipt), args.Error(1)
}

func (m *MockRepository) ApplyReferralCode(ctx context.Context, userID, code string) (int64, error) {
	args := m.Called(ctx, userID, code)
	return args.Get(0).(int64), args.Error(1)
}
