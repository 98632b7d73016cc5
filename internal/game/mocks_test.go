package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) FetchOwnedInstances(ctx context.Context, userID string) ([]domain.OwnedHeroInstance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedHeroInstance), args.Error(1)
}

func (m *MockBackend) FetchHeroDefinitions(ctx context.Context) ([]domain.HeroDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeroDefinition), args.Error(1)
}

func (m *MockBackend) FetchRarityTiers(ctx context.Context) ([]domain.RarityTier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RarityTier), args.Error(1)
}

func (m *MockBackend) Activate(ctx context.Context, userID, instanceID string) error {
	return m.Called(ctx, userID, instanceID).Error(0)
}

func (m *MockBackend) Deactivate(ctx context.Context, userID, instanceID string) error {
	return m.Called(ctx, userID, instanceID).Error(0)
}

func (m *MockBackend) ActivateAll(ctx context.Context, userID, heroID string) (int, error) {
	args := m.Called(ctx, userID, heroID)
	return args.Int(0), args.Error(1)
}

func (m *MockBackend) DeactivateAll(ctx context.Context, userID, heroID string) (int, error) {
	args := m.Called(ctx, userID, heroID)
	return args.Int(0), args.Error(1)
}

func (m *MockBackend) ClaimStarterHero(ctx context.Context, userID string) (*domain.HeroDefinition, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroDefinition), args.Error(1)
}

func (m *MockBackend) PurchaseMysteryBox(ctx context.Context, userID string, heroIDs []string) error {
	return m.Called(ctx, userID, heroIDs).Error(0)
}

func (m *MockBackend) OpenMysteryBox(ctx context.Context, userID string, count int) ([]string, error) {
	args := m.Called(ctx, userID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBackend) Collect(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
