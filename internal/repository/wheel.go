package repository

import (
	"context"
	"time"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// Wheel is the daily prize wheel backend. The prize is always chosen server side.
type Wheel interface {
	GetWheelPrizes(ctx context.Context) ([]domain.WheelPrize, error)
	GetLastSpin(ctx context.Context, userID string) (*time.Time, error)
	SpinWheel(ctx context.Context, userID string) (*domain.WheelPrize, time.Time, error)
}
