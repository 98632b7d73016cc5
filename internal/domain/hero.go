package domain

import "time"

// HeroDefinition is a catalog hero. Immutable and read-only to the client.
type HeroDefinition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RarityID  string `json:"rarity_id"`
	ImageURL  string `json:"image_url"`
	IsStarter bool   `json:"is_starter"`
}

// RarityTier is a catalog rarity. TierRank drives mystery box weights.
type RarityTier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TierRank    int     `json:"tier_rank"`
	HourlyRate  float64 `json:"hourly_rate"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

// OwnedHeroInstance is one owned copy of a hero as last written by the backend
type OwnedHeroInstance struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	HeroID            string     `json:"hero_id"`
	IsActive          bool       `json:"is_active"`
	IsRevealed        bool       `json:"is_revealed"`
	AcquiredAt        time.Time  `json:"acquired_at"`
	ActivatedAt       *time.Time `json:"activated_at,omitempty"`
	LastCollectedAt   *time.Time `json:"last_collected_at,omitempty"`
	PowerLevel        int        `json:"power_level"`
	LastPowerUpdateAt *time.Time `json:"last_power_update_at,omitempty"`
}

// HeroStack is the derived view over every owned copy of one hero definition.
// It is never persisted.
type HeroStack struct {
	Hero                 HeroDefinition      `json:"hero"`
	Rarity               RarityTier          `json:"rarity"`
	Primary              OwnedHeroInstance   `json:"primary"`
	Instances            []OwnedHeroInstance `json:"instances"`
	Count                int                 `json:"count"`
	ActiveCount          int                 `json:"active_count"`
	EarningEligibleCount int                 `json:"earning_eligible_count"`
	TotalPower           int                 `json:"total_power"`
	ActivePower          int                 `json:"active_power"`
	TotalEarningRate     float64             `json:"total_earning_rate"`
	IsAnyActive          bool                `json:"is_any_active"`
	IsAnyRevealed        bool                `json:"is_any_revealed"`
}

// Integrity issue reasons
const (
	IssueMissingHero        = "missing_hero"
	IssueMissingRarity      = "missing_rarity"
	IssueMissingCollectTime = "missing_collect_anchor"
)

// IntegrityIssue reports a fetched instance that could not be included in derived math
type IntegrityIssue struct {
	InstanceID string `json:"instance_id"`
	HeroID     string `json:"hero_id"`
	Reason     string `json:"reason"`
}
