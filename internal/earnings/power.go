// Package earnings derives live hero power, stacks and pending SuperCash from
// the last backend snapshot and a reference instant. Nothing here mutates
// state or performs I/O.
package earnings

import (
	"math"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// CurrentPower returns the power level of inst at now.
// Inactive instances are frozen at their stored value. Active instances lose
// one point per whole hour since the decay anchor, floored at zero.
func CurrentPower(inst domain.OwnedHeroInstance, now time.Time) int {
	if !inst.IsActive {
		return clampPower(inst.PowerLevel)
	}

	anchor := now
	switch {
	case inst.LastPowerUpdateAt != nil:
		anchor = *inst.LastPowerUpdateAt
	case inst.ActivatedAt != nil:
		anchor = *inst.ActivatedAt
	}

	return clampPower(inst.PowerLevel - wholeHours(anchor, now))
}

// IsExhausted reports whether an active instance has no power left to earn with
func IsExhausted(inst domain.OwnedHeroInstance, now time.Time) bool {
	return inst.IsActive && CurrentPower(inst, now) <= 0
}

// elapsedHours returns the hours between from and now. Negative spans (clock
// skew, timestamps in the future) count as zero.
func elapsedHours(from, now time.Time) float64 {
	h := now.Sub(from).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// wholeHours returns the completed hours between from and now, never negative
func wholeHours(from, now time.Time) int {
	h := math.Floor(elapsedHours(from, now))
	if h > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(h)
}

func clampPower(p int) int {
	if p < domain.MinPowerLevel {
		return domain.MinPowerLevel
	}
	return p
}
