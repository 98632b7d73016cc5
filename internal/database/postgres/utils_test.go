package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

func TestMapRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"insufficient balance", &pgconn.PgError{Code: "P0001", Message: "insufficient balance"}, domain.ErrInsufficientBalance},
		{"already claimed", &pgconn.PgError{Code: "P0001", Message: "starter hero already claimed"}, domain.ErrAlreadyClaimed},
		{"already spun", &pgconn.PgError{Code: "P0001", Message: "wheel already spun today"}, domain.ErrAlreadySpun},
		{"wrapped rejection", fmt.Errorf("query: %w", &pgconn.PgError{Code: "P0001", Message: "recipient not found"}), domain.ErrRecipientNotFound},
		{"unknown rejection", &pgconn.PgError{Code: "P0001", Message: "something odd"}, domain.ErrInvalidInput},
		{"connect error", &pgconn.ConnectError{}, domain.ErrBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapRPCError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapRPCError_PassesThroughOtherErrors(t *testing.T) {
	uniqueViolation := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	got := mapRPCError(uniqueViolation)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(got, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)
}

func TestParseUserUUID(t *testing.T) {
	_, err := parseUserUUID("not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	u, err := parseUserUUID("6f1d2c8e-6a43-4f0e-9d0b-2f5e7f4f2a11")
	require.NoError(t, err)
	assert.Equal(t, "6f1d2c8e-6a43-4f0e-9d0b-2f5e7f4f2a11", u.String())
}

func TestParseInstanceUUID(t *testing.T) {
	_, err := parseInstanceUUID("bogus")
	assert.ErrorIs(t, err, domain.ErrInstanceNotFound)
}
