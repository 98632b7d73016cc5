package catalog

import (
	"sort"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// Catalog is an immutable lookup over hero definitions and rarity tiers.
// Built once per fetch and shared read-only between calculators.
type Catalog struct {
	heroes   map[string]domain.HeroDefinition
	rarities map[string]domain.RarityTier
	ordered  []domain.HeroDefinition
}

// New builds a catalog. Later duplicates of an id replace earlier ones.
func New(heroes []domain.HeroDefinition, rarities []domain.RarityTier) *Catalog {
	c := &Catalog{
		heroes:   make(map[string]domain.HeroDefinition, len(heroes)),
		rarities: make(map[string]domain.RarityTier, len(rarities)),
	}
	for _, r := range rarities {
		c.rarities[r.ID] = r
	}
	for _, h := range heroes {
		c.heroes[h.ID] = h
	}

	c.ordered = make([]domain.HeroDefinition, 0, len(c.heroes))
	for _, h := range c.heroes {
		c.ordered = append(c.ordered, h)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].ID < c.ordered[j].ID
	})
	return c
}

// Hero returns the definition for id
func (c *Catalog) Hero(id string) (domain.HeroDefinition, bool) {
	if c == nil {
		return domain.HeroDefinition{}, false
	}
	h, ok := c.heroes[id]
	return h, ok
}

// Rarity returns the tier for id
func (c *Catalog) Rarity(id string) (domain.RarityTier, bool) {
	if c == nil {
		return domain.RarityTier{}, false
	}
	r, ok := c.rarities[id]
	return r, ok
}

// Resolve returns the hero and rarity an instance points at.
// When either is missing the returned reason names which one.
func (c *Catalog) Resolve(heroID string) (domain.HeroDefinition, domain.RarityTier, string) {
	hero, ok := c.Hero(heroID)
	if !ok {
		return domain.HeroDefinition{}, domain.RarityTier{}, domain.IssueMissingHero
	}
	rarity, ok := c.Rarity(hero.RarityID)
	if !ok {
		return hero, domain.RarityTier{}, domain.IssueMissingRarity
	}
	return hero, rarity, ""
}

// Heroes returns all hero definitions ordered by id
func (c *Catalog) Heroes() []domain.HeroDefinition {
	if c == nil {
		return nil
	}
	out := make([]domain.HeroDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Starters returns the starter heroes ordered by id
func (c *Catalog) Starters() []domain.HeroDefinition {
	var out []domain.HeroDefinition
	for _, h := range c.Heroes() {
		if h.IsStarter {
			out = append(out, h)
		}
	}
	return out
}

// Len returns the number of hero definitions
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.heroes)
}

// Rarities returns all tiers ordered by rank, then id
func (c *Catalog) Rarities() []domain.RarityTier {
	if c == nil {
		return nil
	}
	out := make([]domain.RarityTier, 0, len(c.rarities))
	for _, r := range c.rarities {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TierRank != out[j].TierRank {
			return out[i].TierRank < out[j].TierRank
		}
		return out[i].ID < out[j].ID
	})
	return out
}
