package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// FetchHeroDefinitions returns every catalog hero
func (r *HeroRepository) FetchHeroDefinitions(ctx context.Context) ([]domain.HeroDefinition, error) {
	query := `
		SELECT id, name, rarity_id, image_url, is_starter
		FROM heroes
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query heroes: %w", mapRPCError(err))
	}
	defer rows.Close()

	var heroes []domain.HeroDefinition
	for rows.Next() {
		var h domain.HeroDefinition
		if err := rows.Scan(&h.ID, &h.Name, &h.RarityID, &h.ImageURL, &h.IsStarter); err != nil {
			return nil, fmt.Errorf("failed to scan hero: %w", err)
		}
		heroes = append(heroes, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return heroes, nil
}

// FetchRarityTiers returns every rarity tier ordered by rank
func (r *HeroRepository) FetchRarityTiers(ctx context.Context) ([]domain.RarityTier, error) {
	query := `
		SELECT id, name, tier_rank, hourly_rate, color, description
		FROM rarities
		ORDER BY tier_rank, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rarities: %w", mapRPCError(err))
	}
	defer rows.Close()

	var tiers []domain.RarityTier
	for rows.Next() {
		var t domain.RarityTier
		if err := rows.Scan(&t.ID, &t.Name, &t.TierRank, &t.HourlyRate, &t.Color, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan rarity: %w", err)
		}
		tiers = append(tiers, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tiers, nil
}
