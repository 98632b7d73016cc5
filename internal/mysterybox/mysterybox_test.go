package mysterybox

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/domain"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) PurchaseMysteryBox(ctx context.Context, userID string, heroIDs []string) error {
	args := m.Called(ctx, userID, heroIDs)
	return args.Error(0)
}

func (m *MockBackend) OpenMysteryBox(ctx context.Context, userID string, count int) ([]string, error) {
	args := m.Called(ctx, userID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func tieredCatalog(extra ...domain.HeroDefinition) *catalog.Catalog {
	heroes := []domain.HeroDefinition{
		{ID: "a-common", RarityID: "common"},
		{ID: "b-rare", RarityID: "rare"},
		{ID: "c-epic", RarityID: "epic"},
		{ID: "d-legendary", RarityID: "legendary"},
		{ID: "e-mythic", RarityID: "mythic"},
		{ID: "s-starter", RarityID: "common", IsStarter: true},
	}
	heroes = append(heroes, extra...)
	return catalog.New(heroes, []domain.RarityTier{
		{ID: "common", TierRank: domain.TierCommon, HourlyRate: 10},
		{ID: "rare", TierRank: domain.TierRare, HourlyRate: 20},
		{ID: "epic", TierRank: domain.TierEpic, HourlyRate: 40},
		{ID: "legendary", TierRank: domain.TierLegendary, HourlyRate: 80},
		{ID: "mythic", TierRank: domain.TierMythic, HourlyRate: 160},
	})
}

func fixedRolls(rolls ...float64) func() float64 {
	i := 0
	return func() float64 {
		r := rolls[i%len(rolls)]
		i++
		return r
	}
}

func TestTierWeight(t *testing.T) {
	assert.Equal(t, 50, TierWeight(domain.TierCommon))
	assert.Equal(t, 30, TierWeight(domain.TierRare))
	assert.Equal(t, 15, TierWeight(domain.TierEpic))
	assert.Equal(t, 4, TierWeight(domain.TierLegendary))
	assert.Equal(t, 1, TierWeight(domain.TierMythic))
	assert.Equal(t, UnknownTierWeight, TierWeight(9))
	assert.Equal(t, UnknownTierWeight, TierWeight(0))
}

func TestNewPool_ExcludesStarters(t *testing.T) {
	pool := NewPool(tieredCatalog())

	assert.Equal(t, 100, pool.TotalWeight())
	for _, c := range pool.Candidates() {
		assert.False(t, c.Hero.IsStarter, "starter %s in pool", c.Hero.ID)
	}
}

func TestNewPool_MissingRarityUsesUnknownWeight(t *testing.T) {
	pool := NewPool(tieredCatalog(domain.HeroDefinition{ID: "f-orphan", RarityID: "gone"}))

	assert.Equal(t, 110, pool.TotalWeight())
}

func TestPool_Pick(t *testing.T) {
	pool := NewPool(tieredCatalog())

	tests := []struct {
		roll float64
		want string
	}{
		{0.0, "a-common"},
		{0.4999, "a-common"},
		{0.5, "b-rare"},
		{0.79, "b-rare"},
		{0.8, "c-epic"},
		{0.95, "d-legendary"},
		{0.99, "e-mythic"},
		{0.99999, "e-mythic"},
	}
	for _, tt := range tests {
		c, ok := pool.Pick(tt.roll)
		require.True(t, ok)
		assert.Equal(t, tt.want, c.Hero.ID, "roll %v", tt.roll)
	}
}

func TestSelector_Draw(t *testing.T) {
	sel := NewSelector(fixedRolls(0.1, 0.6, 0.995))

	drawn, err := sel.Draw(NewPool(tieredCatalog()), 3)

	require.NoError(t, err)
	require.Len(t, drawn, 3)
	assert.Equal(t, "a-common", drawn[0].Hero.ID)
	assert.Equal(t, "b-rare", drawn[1].Hero.ID)
	assert.Equal(t, "e-mythic", drawn[2].Hero.ID)
}

func TestSelector_DrawErrors(t *testing.T) {
	sel := NewSelector(fixedRolls(0.5))

	_, err := sel.Draw(NewPool(tieredCatalog()), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = sel.Draw(NewPool(tieredCatalog()), domain.MaxMysteryBoxCount+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	onlyStarters := catalog.New(
		[]domain.HeroDefinition{{ID: "s", RarityID: "common", IsStarter: true}},
		[]domain.RarityTier{{ID: "common", TierRank: 1}},
	)
	_, err = sel.Draw(NewPool(onlyStarters), 1)
	assert.ErrorIs(t, err, domain.ErrNoEligibleHeroes)
}

// Draw frequencies must match the tier weights. Chi-squared critical value
// for 4 degrees of freedom at p=0.0005 is 20.0.
func TestSelector_DistributionMatchesWeights(t *testing.T) {
	const draws = 100000
	pool := NewPool(tieredCatalog())
	sel := NewSelector(rand.New(rand.NewSource(20240301)).Float64) //nolint:gosec

	counts := make(map[string]int)
	remaining := draws
	for remaining > 0 {
		n := domain.MaxMysteryBoxCount
		if remaining < n {
			n = remaining
		}
		drawn, err := sel.Draw(pool, n)
		require.NoError(t, err)
		for _, c := range drawn {
			counts[c.Hero.ID]++
		}
		remaining -= n
	}

	chiSq := 0.0
	for _, c := range pool.Candidates() {
		expected := float64(draws) * float64(c.Weight) / float64(pool.TotalWeight())
		diff := float64(counts[c.Hero.ID]) - expected
		chiSq += diff * diff / expected
	}
	assert.Less(t, chiSq, 20.0, "counts %v", counts)
	assert.Zero(t, counts["s-starter"])
}

func TestService_OpenLocal(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("PurchaseMysteryBox", ctx, "user-1", []string{"a-common", "d-legendary"}).Return(nil)

	svc := NewService(backend, NewSelector(fixedRolls(0.2, 0.96)), false)

	heroes, err := svc.Open(ctx, "user-1", tieredCatalog(), 2)

	require.NoError(t, err)
	require.Len(t, heroes, 2)
	assert.Equal(t, "d-legendary", heroes[1].ID)
	backend.AssertExpectations(t)
	backend.AssertNotCalled(t, "OpenMysteryBox", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_OpenLocalBackendRejects(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("PurchaseMysteryBox", ctx, "user-1", mock.Anything).Return(domain.ErrInsufficientBalance)

	svc := NewService(backend, NewSelector(fixedRolls(0.2)), false)

	heroes, err := svc.Open(ctx, "user-1", tieredCatalog(), 1)

	assert.Nil(t, heroes)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestService_OpenRemote(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("OpenMysteryBox", ctx, "user-1", 2).Return([]string{"c-epic", "z-new"}, nil)

	svc := NewService(backend, nil, true)

	heroes, err := svc.Open(ctx, "user-1", tieredCatalog(), 2)

	require.NoError(t, err)
	require.Len(t, heroes, 2)
	assert.Equal(t, "c-epic", heroes[0].ID)
	assert.Equal(t, "z-new", heroes[1].ID)
	backend.AssertNotCalled(t, "PurchaseMysteryBox", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_OpenValidation(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, false)

	_, err := svc.Open(context.Background(), "user-1", tieredCatalog(), 11)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Open(context.Background(), "user-1", nil, 1)
	assert.True(t, errors.Is(err, domain.ErrCatalogNotLoaded))
}
