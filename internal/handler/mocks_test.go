package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/game"
)

// MockGameService mocks game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Catalog), args.Error(1)
}

func (m *MockGameService) ReloadCatalog(ctx context.Context) domain.CommandResult {
	return m.Called(ctx).Get(0).(domain.CommandResult)
}

func (m *MockGameService) Snapshot() game.Snapshot {
	return m.Called().Get(0).(game.Snapshot)
}

func (m *MockGameService) Stacks(ctx context.Context, now time.Time) (*game.StacksView, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.StacksView), args.Error(1)
}

func (m *MockGameService) Pending(ctx context.Context, now time.Time) (*game.PendingView, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.PendingView), args.Error(1)
}

func (m *MockGameService) PublishPending(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) Activate(ctx context.Context, instanceID string) domain.CommandResult {
	return m.Called(ctx, instanceID).Get(0).(domain.CommandResult)
}

func (m *MockGameService) Deactivate(ctx context.Context, instanceID string) domain.CommandResult {
	return m.Called(ctx, instanceID).Get(0).(domain.CommandResult)
}

func (m *MockGameService) ActivateAll(ctx context.Context, heroID string) domain.CommandResult {
	return m.Called(ctx, heroID).Get(0).(domain.CommandResult)
}

func (m *MockGameService) DeactivateAll(ctx context.Context, heroID string) domain.CommandResult {
	return m.Called(ctx, heroID).Get(0).(domain.CommandResult)
}

func (m *MockGameService) ClaimStarterHero(ctx context.Context) domain.CommandResult {
	return m.Called(ctx).Get(0).(domain.CommandResult)
}

func (m *MockGameService) PurchaseMysteryBox(ctx context.Context, count int) domain.CommandResult {
	return m.Called(ctx, count).Get(0).(domain.CommandResult)
}

func (m *MockGameService) Collect(ctx context.Context) domain.CommandResult {
	return m.Called(ctx).Get(0).(domain.CommandResult)
}

func (m *MockGameService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockEconomyService mocks economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockEconomyService) SendSuperCash(ctx context.Context, toUsername string, amount int64) domain.CommandResult {
	return m.Called(ctx, toUsername, amount).Get(0).(domain.CommandResult)
}

func (m *MockEconomyService) ApplyReferralCode(ctx context.Context, code string) domain.CommandResult {
	return m.Called(ctx, code).Get(0).(domain.CommandResult)
}

// MockLeaderboardService mocks leaderboard.Service
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) Invalidate() {
	m.Called()
}

// MockWheelService mocks wheel.Service
type MockWheelService struct {
	mock.Mock
}

func (m *MockWheelService) Slices(ctx context.Context) ([]domain.WheelSlice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WheelSlice), args.Error(1)
}

func (m *MockWheelService) Status(ctx context.Context) (*domain.WheelStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WheelStatus), args.Error(1)
}

func (m *MockWheelService) Spin(ctx context.Context) (*domain.SpinResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}
