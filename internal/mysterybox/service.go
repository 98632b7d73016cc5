package mysterybox

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/metrics"
)

// Backend is the slice of hero commands a purchase needs
type Backend interface {
	PurchaseMysteryBox(ctx context.Context, userID string, heroIDs []string) error
	OpenMysteryBox(ctx context.Context, userID string, count int) ([]string, error)
}

// Service draws and persists mystery box purchases
type Service interface {
	// Open buys count boxes for userID and returns the heroes received
	Open(ctx context.Context, userID string, cat *catalog.Catalog, count int) ([]domain.HeroDefinition, error)
}

type service struct {
	backend    Backend
	selector   *Selector
	serverDraw bool
}

// NewService creates a mystery box service. With serverDraw set the backend
// picks the heroes and the local selector is not used.
func NewService(backend Backend, selector *Selector, serverDraw bool) Service {
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &service{
		backend:    backend,
		selector:   selector,
		serverDraw: serverDraw,
	}
}

func (s *service) Open(ctx context.Context, userID string, cat *catalog.Catalog, count int) ([]domain.HeroDefinition, error) {
	if count < domain.MinMysteryBoxCount || count > domain.MaxMysteryBoxCount {
		return nil, fmt.Errorf("%w: count must be between %d and %d", domain.ErrInvalidInput, domain.MinMysteryBoxCount, domain.MaxMysteryBoxCount)
	}
	if cat == nil {
		return nil, domain.ErrCatalogNotLoaded
	}

	if s.serverDraw {
		return s.openRemote(ctx, userID, cat, count)
	}
	return s.openLocal(ctx, userID, cat, count)
}

func (s *service) openLocal(ctx context.Context, userID string, cat *catalog.Catalog, count int) ([]domain.HeroDefinition, error) {
	log := logger.FromContext(ctx)

	drawn, err := s.selector.Draw(NewPool(cat), count)
	if err != nil {
		return nil, err
	}

	heroIDs := make([]string, len(drawn))
	heroes := make([]domain.HeroDefinition, len(drawn))
	for i, c := range drawn {
		heroIDs[i] = c.Hero.ID
		heroes[i] = c.Hero
	}

	if err := s.backend.PurchaseMysteryBox(ctx, userID, heroIDs); err != nil {
		return nil, fmt.Errorf("failed to purchase mystery box: %w", err)
	}

	for _, c := range drawn {
		metrics.MysteryBoxDraws.WithLabelValues(strconv.Itoa(c.TierRank)).Inc()
	}
	log.Info("Mystery box purchased", "count", count, "heroes", heroIDs)
	return heroes, nil
}

func (s *service) openRemote(ctx context.Context, userID string, cat *catalog.Catalog, count int) ([]domain.HeroDefinition, error) {
	log := logger.FromContext(ctx)

	heroIDs, err := s.backend.OpenMysteryBox(ctx, userID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to open mystery box: %w", err)
	}

	heroes := make([]domain.HeroDefinition, 0, len(heroIDs))
	for _, id := range heroIDs {
		hero, ok := cat.Hero(id)
		if !ok {
			// Catalog may be older than the hero the backend just granted
			log.Warn("Mystery box returned hero missing from catalog", "hero_id", id)
			hero = domain.HeroDefinition{ID: id}
		}
		rank := 0
		if rarity, ok := cat.Rarity(hero.RarityID); ok {
			rank = rarity.TierRank
		}
		metrics.MysteryBoxDraws.WithLabelValues(strconv.Itoa(rank)).Inc()
		heroes = append(heroes, hero)
	}

	log.Info("Mystery box opened by backend", "count", count, "heroes", heroIDs)
	return heroes, nil
}
