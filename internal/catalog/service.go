package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// DefaultTTL is used when no catalog TTL is configured
const DefaultTTL = 6 * time.Hour

// Service loads and caches the hero catalog
type Service interface {
	// Get returns the cached catalog, fetching it when missing or expired
	Get(ctx context.Context) (*Catalog, error)

	// Reload drops the cache and fetches a fresh catalog
	Reload(ctx context.Context) (*Catalog, error)
}

type service struct {
	source repository.CatalogSource
	cache  *catalogCache
	mu     sync.Mutex
}

// NewService creates a catalog service. A non-positive ttl falls back to DefaultTTL.
func NewService(source repository.CatalogSource, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &service{
		source: source,
		cache:  newCatalogCache(ttl),
	}
}

func (s *service) Get(ctx context.Context) (*Catalog, error) {
	if cat, ok := s.cache.Get(); ok {
		return cat, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have filled the cache while we waited
	if cat, ok := s.cache.Get(); ok {
		return cat, nil
	}
	return s.fetch(ctx)
}

func (s *service) Reload(ctx context.Context) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
	return s.fetch(ctx)
}

func (s *service) fetch(ctx context.Context) (*Catalog, error) {
	rarities, err := s.source.FetchRarityTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rarity tiers: %w", err)
	}
	heroes, err := s.source.FetchHeroDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hero definitions: %w", err)
	}

	cat := New(heroes, rarities)
	s.cache.Set(cat)

	logger.FromContext(ctx).Info("Catalog loaded", "heroes", len(heroes), "rarities", len(rarities))
	return cat, nil
}
