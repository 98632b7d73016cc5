package earnings

import (
	"sort"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// BuildStacks groups instances by hero definition and decorates every group
// with live power and earning figures at now. Stacks are ordered by their
// primary instance's acquisition time, newest first. Instances whose hero or
// rarity cannot be resolved are left out and returned as issues.
func BuildStacks(now time.Time, instances []domain.OwnedHeroInstance, cat *catalog.Catalog) ([]domain.HeroStack, []domain.IntegrityIssue) {
	var issues []domain.IntegrityIssue

	order := make([]string, 0)
	groups := make(map[string][]domain.OwnedHeroInstance)
	for _, inst := range instances {
		if _, _, reason := cat.Resolve(inst.HeroID); reason != "" {
			issues = append(issues, newIssue(inst, reason))
			continue
		}
		if _, seen := groups[inst.HeroID]; !seen {
			order = append(order, inst.HeroID)
		}
		groups[inst.HeroID] = append(groups[inst.HeroID], inst)
	}

	stacks := make([]domain.HeroStack, 0, len(order))
	for _, heroID := range order {
		hero, rarity, _ := cat.Resolve(heroID)
		stacks = append(stacks, buildStack(now, hero, rarity, groups[heroID]))
	}

	sort.SliceStable(stacks, func(i, j int) bool {
		ai, aj := stacks[i].Primary.AcquiredAt, stacks[j].Primary.AcquiredAt
		if !ai.Equal(aj) {
			return ai.After(aj)
		}
		return stacks[i].Hero.ID < stacks[j].Hero.ID
	})

	return stacks, issues
}

func buildStack(now time.Time, hero domain.HeroDefinition, rarity domain.RarityTier, instances []domain.OwnedHeroInstance) domain.HeroStack {
	stack := domain.HeroStack{
		Hero:      hero,
		Rarity:    rarity,
		Instances: instances,
		Count:     len(instances),
		Primary:   selectPrimary(instances),
	}

	for _, inst := range instances {
		power := CurrentPower(inst, now)
		stack.TotalPower += power

		if inst.IsRevealed {
			stack.IsAnyRevealed = true
		}
		if !inst.IsActive {
			continue
		}

		stack.ActiveCount++
		stack.ActivePower += power
		if power > 0 {
			stack.EarningEligibleCount++
		}
	}

	stack.IsAnyActive = stack.ActiveCount > 0
	// Every eligible copy earns the full rate regardless of remaining power
	stack.TotalEarningRate = float64(stack.EarningEligibleCount) * rarity.HourlyRate

	return stack
}

// selectPrimary picks the display representative: revealed and active first,
// then any revealed copy, then the first copy.
func selectPrimary(instances []domain.OwnedHeroInstance) domain.OwnedHeroInstance {
	for _, inst := range instances {
		if inst.IsRevealed && inst.IsActive {
			return inst
		}
	}
	for _, inst := range instances {
		if inst.IsRevealed {
			return inst
		}
	}
	return instances[0]
}

// Summary totals a list of stacks
type Summary struct {
	Stacks           int     `json:"stacks"`
	Instances        int     `json:"instances"`
	ActiveInstances  int     `json:"active_instances"`
	EarningInstances int     `json:"earning_instances"`
	HourlyRate       float64 `json:"hourly_rate"`
}

// Summarize totals stacks for display and metrics
func Summarize(stacks []domain.HeroStack) Summary {
	s := Summary{Stacks: len(stacks)}
	for _, st := range stacks {
		s.Instances += st.Count
		s.ActiveInstances += st.ActiveCount
		s.EarningInstances += st.EarningEligibleCount
		s.HourlyRate += st.TotalEarningRate
	}
	return s
}
