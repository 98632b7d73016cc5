package domain

import "time"

// Profile is the account row of the session owner
type Profile struct {
	UserID         string    `json:"user_id"`
	Username       string    `json:"username"`
	Balance        int64     `json:"balance"`
	ReferralCode   string    `json:"referral_code"`
	ReferredBy     *string   `json:"referred_by,omitempty"`
	StarterClaimed bool      `json:"starter_claimed"`
	CreatedAt      time.Time `json:"created_at"`
}

// LeaderboardEntry is one ranked account
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// TransferReceipt is returned by a successful peer-to-peer send
type TransferReceipt struct {
	TransferID  string    `json:"transfer_id"`
	ToUsername  string    `json:"to_username"`
	Amount      int64     `json:"amount"`
	BalanceLeft int64     `json:"balance_left"`
	CreatedAt   time.Time `json:"created_at"`
}
