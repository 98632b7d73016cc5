package domain

import "time"

// WheelPrize is one configured prize. Weight is the number of slices it occupies.
type WheelPrize struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Weight int    `json:"weight"`
}

// WheelSlice is one rendered slice of the prize wheel
type WheelSlice struct {
	Index   int    `json:"index"`
	PrizeID string `json:"prize_id"`
	Label   string `json:"label"`
	Amount  int64  `json:"amount"`
}

// SpinResult is the backend-chosen prize matched to a slice
type SpinResult struct {
	Prize      WheelPrize `json:"prize"`
	SliceIndex int        `json:"slice_index"`
	SpunAt     time.Time  `json:"spun_at"`
}

// WheelStatus describes when the next spin is available
type WheelStatus struct {
	LastSpinAt *time.Time   `json:"last_spin_at,omitempty"`
	NextSpinAt time.Time    `json:"next_spin_at"`
	CanSpinNow bool         `json:"can_spin_now"`
	Slices     []WheelSlice `json:"slices"`
}
