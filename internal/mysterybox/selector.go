// Package mysterybox draws heroes for a mystery box purchase.
package mysterybox

import (
	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/utils"
)

// tierWeights maps a rarity tier rank to its draw weight
var tierWeights = map[int]int{
	domain.TierCommon:    50,
	domain.TierRare:      30,
	domain.TierEpic:      15,
	domain.TierLegendary: 4,
	domain.TierMythic:    1,
}

// UnknownTierWeight applies to ranks outside the seeded tiers and to heroes
// whose rarity is missing from the catalog.
const UnknownTierWeight = 10

// TierWeight returns the draw weight for a tier rank
func TierWeight(rank int) int {
	if w, ok := tierWeights[rank]; ok {
		return w
	}
	return UnknownTierWeight
}

// Candidate is a hero that can come out of a mystery box
type Candidate struct {
	Hero     domain.HeroDefinition
	TierRank int
	Weight   int
}

// Pool is the weighted set of non-starter heroes for one catalog
type Pool struct {
	candidates  []Candidate
	cumulative  []int
	totalWeight int
}

// NewPool builds the draw pool from cat. Starter heroes are excluded.
func NewPool(cat *catalog.Catalog) *Pool {
	p := &Pool{}
	weights := make([]int, 0, cat.Len())

	for _, hero := range cat.Heroes() {
		if hero.IsStarter {
			continue
		}
		rank := 0
		if rarity, ok := cat.Rarity(hero.RarityID); ok {
			rank = rarity.TierRank
		}
		w := TierWeight(rank)
		p.candidates = append(p.candidates, Candidate{Hero: hero, TierRank: rank, Weight: w})
		weights = append(weights, w)
	}

	p.cumulative = utils.CumulativeWeights(weights)
	if n := len(p.cumulative); n > 0 {
		p.totalWeight = p.cumulative[n-1]
	}
	return p
}

// Candidates returns the eligible heroes in draw order
func (p *Pool) Candidates() []Candidate {
	out := make([]Candidate, len(p.candidates))
	copy(out, p.candidates)
	return out
}

// TotalWeight returns the sum of all candidate weights
func (p *Pool) TotalWeight() int {
	return p.totalWeight
}

// Pick maps roll in [0,1) onto one candidate
func (p *Pool) Pick(roll float64) (Candidate, bool) {
	idx := utils.PickWeighted(p.cumulative, roll)
	if idx < 0 {
		return Candidate{}, false
	}
	return p.candidates[idx], true
}

// Selector draws from a pool with an injectable random source
type Selector struct {
	rnd func() float64
}

// NewSelector creates a selector. A nil rnd uses crypto randomness.
func NewSelector(rnd func() float64) *Selector {
	if rnd == nil {
		rnd = utils.SecureRandomFloat
	}
	return &Selector{rnd: rnd}
}

// Draw picks count candidates independently, with replacement
func (s *Selector) Draw(pool *Pool, count int) ([]Candidate, error) {
	if count < domain.MinMysteryBoxCount || count > domain.MaxMysteryBoxCount {
		return nil, domain.ErrInvalidInput
	}
	if pool == nil || pool.TotalWeight() == 0 {
		return nil, domain.ErrNoEligibleHeroes
	}

	out := make([]Candidate, 0, count)
	for i := 0; i < count; i++ {
		c, ok := pool.Pick(s.rnd())
		if !ok {
			return nil, domain.ErrNoEligibleHeroes
		}
		out = append(out, c)
	}
	return out, nil
}
