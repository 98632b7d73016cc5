package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// EconomyRepository implements repository.Economy and repository.Leaderboard
type EconomyRepository struct {
	db *pgxpool.Pool
}

var (
	_ repository.Economy     = (*EconomyRepository)(nil)
	_ repository.Leaderboard = (*EconomyRepository)(nil)
)

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// GetProfile loads the account row of userID
func (r *EconomyRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT user_id::text, username, balance, referral_code, referred_by::text,
		       starter_claimed, created_at
		FROM profiles
		WHERE user_id = $1
	`

	var p domain.Profile
	err = r.db.QueryRow(ctx, query, userUUID).Scan(
		&p.UserID,
		&p.Username,
		&p.Balance,
		&p.ReferralCode,
		&p.ReferredBy,
		&p.StarterClaimed,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", mapRPCError(err))
	}
	return &p, nil
}

// SendSuperCash transfers amount from the session owner to toUsername
func (r *EconomyRepository) SendSuperCash(ctx context.Context, fromUserID, toUsername string, amount int64) (*domain.TransferReceipt, error) {
	userUUID, err := parseUserUUID(fromUserID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT transfer_id::text, to_username, amount, balance_left, created_at
		FROM send_supercash($1, $2, $3)
	`

	var rec domain.TransferReceipt
	err = r.db.QueryRow(ctx, query, userUUID, toUsername, amount).Scan(
		&rec.TransferID,
		&rec.ToUsername,
		&rec.Amount,
		&rec.BalanceLeft,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send supercash: %w", mapRPCError(err))
	}
	return &rec, nil
}

// ApplyReferralCode links the session owner to a referrer and returns the bonus credited
func (r *EconomyRepository) ApplyReferralCode(ctx context.Context, userID, code string) (int64, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var bonus int64
	if err := r.db.QueryRow(ctx, `SELECT apply_referral_code($1, $2)`, userUUID, code).Scan(&bonus); err != nil {
		return 0, fmt.Errorf("failed to apply referral code: %w", mapRPCError(err))
	}
	return bonus, nil
}
