package repository

import (
	"context"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// Economy covers account balance operations that the backend computes
type Economy interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SendSuperCash(ctx context.Context, fromUserID, toUsername string, amount int64) (*domain.TransferReceipt, error)
	ApplyReferralCode(ctx context.Context, userID, code string) (int64, error)
}

// Leaderboard ranks accounts by balance
type Leaderboard interface {
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
