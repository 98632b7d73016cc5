package domain

import "time"

// Power level bounds for an owned hero instance
const (
	MaxPowerLevel     = 100
	MinPowerLevel     = 0
	InitialPowerLevel = MaxPowerLevel
)

// Rarity tier ranks as seeded by the backend catalog
const (
	TierCommon    = 1
	TierRare      = 2
	TierEpic      = 3
	TierLegendary = 4
	TierMythic    = 5
)

// Mystery box purchase limits
const (
	MinMysteryBoxCount = 1
	MaxMysteryBoxCount = 10
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// WheelCooldown is the interval between two prize wheel spins
const WheelCooldown = 24 * time.Hour

// Command names used in logs, metrics and events
const (
	CommandActivate       = "activate"
	CommandDeactivate     = "deactivate"
	CommandActivateAll    = "activate_all"
	CommandDeactivateAll  = "deactivate_all"
	CommandClaimStarter   = "claim_starter"
	CommandMysteryBox     = "mystery_box"
	CommandCollect        = "collect"
	CommandSendSuperCash  = "send_supercash"
	CommandApplyReferral  = "apply_referral"
	CommandSpinWheel      = "spin_wheel"
	CommandRefreshCatalog = "refresh_catalog"
)
