package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// WheelRepository implements repository.Wheel for PostgreSQL
type WheelRepository struct {
	db *pgxpool.Pool
}

var _ repository.Wheel = (*WheelRepository)(nil)

// NewWheelRepository creates a new WheelRepository
func NewWheelRepository(db *pgxpool.Pool) *WheelRepository {
	return &WheelRepository{db: db}
}

// GetWheelPrizes returns the configured prizes in id order
func (r *WheelRepository) GetWheelPrizes(ctx context.Context) ([]domain.WheelPrize, error) {
	query := `
		SELECT id::text, label, amount, weight
		FROM wheel_prizes
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wheel prizes: %w", mapRPCError(err))
	}
	defer rows.Close()

	var prizes []domain.WheelPrize
	for rows.Next() {
		var p domain.WheelPrize
		if err := rows.Scan(&p.ID, &p.Label, &p.Amount, &p.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan wheel prize: %w", err)
		}
		prizes = append(prizes, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return prizes, nil
}

// GetLastSpin returns the most recent spin time, or nil if the user never spun
func (r *WheelRepository) GetLastSpin(ctx context.Context, userID string) (*time.Time, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var last *time.Time
	err = r.db.QueryRow(ctx, `SELECT MAX(spun_at) FROM wheel_spins WHERE user_id = $1`, userUUID).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("failed to get last spin: %w", mapRPCError(err))
	}
	return last, nil
}

// SpinWheel asks the backend to pick and credit a prize
func (r *WheelRepository) SpinWheel(ctx context.Context, userID string) (*domain.WheelPrize, time.Time, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, time.Time{}, err
	}

	query := `
		SELECT prize_id::text, label, amount, weight, spun_at
		FROM spin_wheel($1)
	`

	var (
		prize  domain.WheelPrize
		spunAt time.Time
	)
	err = r.db.QueryRow(ctx, query, userUUID).Scan(&prize.ID, &prize.Label, &prize.Amount, &prize.Weight, &spunAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to spin wheel: %w", mapRPCError(err))
	}
	return &prize, spunAt, nil
}
