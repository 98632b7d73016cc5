package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/logger"
)

// sqlStateRaiseException is what plpgsql RAISE EXCEPTION reports without an explicit ERRCODE
const sqlStateRaiseException = "P0001"

// rpcRejections maps RPC exception messages to domain errors
var rpcRejections = map[string]error{
	domain.ErrMsgInstanceNotFound:    domain.ErrInstanceNotFound,
	domain.ErrMsgHeroNotFound:        domain.ErrHeroNotFound,
	domain.ErrMsgAlreadyClaimed:      domain.ErrAlreadyClaimed,
	domain.ErrMsgNoStarterHeroes:     domain.ErrNoStarterHeroes,
	domain.ErrMsgNoEligibleHeroes:    domain.ErrNoEligibleHeroes,
	domain.ErrMsgInsufficientBalance: domain.ErrInsufficientBalance,
	domain.ErrMsgRecipientNotFound:   domain.ErrRecipientNotFound,
	domain.ErrMsgSelfTransfer:        domain.ErrSelfTransfer,
	domain.ErrMsgInvalidReferral:     domain.ErrInvalidReferral,
	domain.ErrMsgReferralUsed:        domain.ErrReferralUsed,
	domain.ErrMsgAlreadySpun:         domain.ErrAlreadySpun,
	domain.ErrMsgNoWheelPrizes:       domain.ErrNoWheelPrizes,
	domain.ErrMsgProfileNotFound:     domain.ErrProfileNotFound,
	domain.ErrMsgInvalidInput:        domain.ErrInvalidInput,
}

// mapRPCError converts backend failures into domain errors.
// Business rejections become their sentinel; connectivity failures wrap
// ErrBackendUnavailable; anything else is returned unchanged.
func mapRPCError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateRaiseException {
		if sentinel, ok := rpcRejections[pgErr.Message]; ok {
			return sentinel
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return err
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}
	return u, nil
}

// parseInstanceUUID parses an owned hero instance id
func parseInstanceUUID(instanceID string) (uuid.UUID, error) {
	u, err := uuid.Parse(instanceID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	return u, nil
}
