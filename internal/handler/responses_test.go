package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"wrapped not found", fmt.Errorf("activate: %w", domain.ErrInstanceNotFound), http.StatusNotFound, ErrMsgInstanceNotFoundError},
		{"already spun", domain.ErrAlreadySpun, http.StatusConflict, ErrMsgAlreadySpunError},
		{"in flight", domain.ErrCommandInFlight, http.StatusConflict, ErrMsgCommandInFlightError},
		{"balance", domain.ErrInsufficientBalance, http.StatusUnprocessableEntity, ErrMsgInsufficientBalanceError},
		{"backend down", fmt.Errorf("fetch: %w", domain.ErrBackendUnavailable), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unknown error stays generic", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapServiceError_CoversEverySentinel(t *testing.T) {
	sentinels := []error{
		domain.ErrInstanceNotFound, domain.ErrHeroNotFound, domain.ErrAlreadyClaimed,
		domain.ErrNoStarterHeroes, domain.ErrNoEligibleHeroes, domain.ErrInsufficientBalance,
		domain.ErrRecipientNotFound, domain.ErrSelfTransfer, domain.ErrInvalidReferral,
		domain.ErrReferralUsed, domain.ErrAlreadySpun, domain.ErrNoWheelPrizes,
		domain.ErrProfileNotFound, domain.ErrCommandInFlight, domain.ErrCatalogNotLoaded,
		domain.ErrBackendUnavailable, domain.ErrInvalidInput,
	}
	for _, err := range sentinels {
		status, msg := mapServiceErrorToUserMessage(err)
		assert.NotEqual(t, http.StatusInternalServerError, status, err.Error())
		assert.NotEqual(t, ErrMsgGenericServerError, msg, err.Error())
	}
}
