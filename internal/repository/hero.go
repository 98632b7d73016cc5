package repository

import (
	"context"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// InstanceSource fetches the owned hero instances of a user.
// Every call returns the full collection; there is no incremental diff.
type InstanceSource interface {
	FetchOwnedInstances(ctx context.Context, userID string) ([]domain.OwnedHeroInstance, error)
}

// CatalogSource fetches rarely changing reference data
type CatalogSource interface {
	FetchHeroDefinitions(ctx context.Context) ([]domain.HeroDefinition, error)
	FetchRarityTiers(ctx context.Context) ([]domain.RarityTier, error)
}

// HeroCommands are the remote mutations on a user's heroes.
// Callers must re-fetch instances after any successful command.
type HeroCommands interface {
	// Activate starts earning on one instance
	Activate(ctx context.Context, userID, instanceID string) error

	// Deactivate stops earning on one instance; power is not written back
	Deactivate(ctx context.Context, userID, instanceID string) error

	// ActivateAll activates every inactive copy of a hero and returns how many changed
	ActivateAll(ctx context.Context, userID, heroID string) (int, error)

	// DeactivateAll deactivates every active copy of a hero and returns how many changed
	DeactivateAll(ctx context.Context, userID, heroID string) (int, error)

	// ClaimStarterHero grants the one-time starter hero
	ClaimStarterHero(ctx context.Context, userID string) (*domain.HeroDefinition, error)

	// PurchaseMysteryBox persists heroes drawn on the client and debits the price
	PurchaseMysteryBox(ctx context.Context, userID string, heroIDs []string) error

	// OpenMysteryBox lets the backend draw count heroes and debit the price
	OpenMysteryBox(ctx context.Context, userID string, count int) ([]string, error)

	// Collect sweeps pending earnings into the account balance
	Collect(ctx context.Context, userID string) (int64, error)
}

// HeroBackend groups everything the game session needs from the backend
type HeroBackend interface {
	InstanceSource
	CatalogSource
	HeroCommands
}
