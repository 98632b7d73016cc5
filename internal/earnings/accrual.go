package earnings

import (
	"math"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// InstanceEarnings returns the uncollected SuperCash of one instance at now.
// Only active instances with power left earn. The result is floored per instance.
func InstanceEarnings(inst domain.OwnedHeroInstance, hourlyRate float64, now time.Time) int64 {
	if !inst.IsActive || hourlyRate <= 0 {
		return 0
	}
	if CurrentPower(inst, now) <= 0 {
		return 0
	}

	anchor := collectAnchor(inst)
	if anchor == nil {
		return 0
	}

	return int64(math.Floor(elapsedHours(*anchor, now) * hourlyRate))
}

// PendingBalance sums InstanceEarnings over every instance. Instances whose
// hero or rarity is missing from cat are skipped and reported.
func PendingBalance(now time.Time, instances []domain.OwnedHeroInstance, cat *catalog.Catalog) (int64, []domain.IntegrityIssue) {
	var total int64
	var issues []domain.IntegrityIssue

	for _, inst := range instances {
		if !inst.IsActive {
			continue
		}

		_, rarity, reason := cat.Resolve(inst.HeroID)
		if reason != "" {
			issues = append(issues, newIssue(inst, reason))
			continue
		}

		if collectAnchor(inst) == nil {
			issues = append(issues, newIssue(inst, domain.IssueMissingCollectTime))
			continue
		}

		total += InstanceEarnings(inst, rarity.HourlyRate, now)
	}

	return total, issues
}

// collectAnchor is the instant earnings accrue from: the last collection, or
// the activation time for an instance never collected.
func collectAnchor(inst domain.OwnedHeroInstance) *time.Time {
	if inst.LastCollectedAt != nil {
		return inst.LastCollectedAt
	}
	return inst.ActivatedAt
}

func newIssue(inst domain.OwnedHeroInstance, reason string) domain.IntegrityIssue {
	return domain.IntegrityIssue{
		InstanceID: inst.ID,
		HeroID:     inst.HeroID,
		Reason:     reason,
	}
}
