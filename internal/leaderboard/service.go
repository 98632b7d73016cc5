package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/metrics"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// DefaultTTL is used when no leaderboard TTL is configured
const DefaultTTL = 30 * time.Second

// cacheSize bounds the number of distinct limits kept
const cacheSize = 16

// Service serves the balance leaderboard
type Service interface {
	// Top returns up to limit ranked entries. A zero limit means the default.
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// Invalidate drops every cached page
	Invalidate()
}

type service struct {
	repo  repository.Leaderboard
	cache *expirable.LRU[int, []domain.LeaderboardEntry]
}

// NewService creates a leaderboard service caching each limit for ttl
func NewService(repo repository.Leaderboard, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[int, []domain.LeaderboardEntry](cacheSize, nil, ttl),
	}
}

// NormalizeLimit applies the default and checks bounds
func NormalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return domain.DefaultLeaderboardLimit, nil
	}
	if limit < 1 || limit > domain.MaxLeaderboardLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, domain.MaxLeaderboardLimit)
	}
	return limit, nil
}

func (s *service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit, err := NormalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	if entries, ok := s.cache.Get(limit); ok {
		metrics.LeaderboardCacheHits.Inc()
		return entries, nil
	}

	entries, err := s.repo.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	s.cache.Add(limit, entries)
	logger.FromContext(ctx).Debug("Leaderboard fetched", "limit", limit, "entries", len(entries))
	return entries, nil
}

func (s *service) Invalidate() {
	s.cache.Purge()
}
