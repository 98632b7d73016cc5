package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

func newEconomyRouter(econ *MockEconomyService, lb *MockLeaderboardService) http.Handler {
	h := NewEconomyHandler(econ, lb)
	r := chi.NewRouter()
	r.Get("/profile", h.HandleGetProfile)
	r.Post("/economy/send", h.HandleSendSuperCash)
	r.Post("/economy/referral", h.HandleApplyReferral)
	r.Get("/leaderboard", h.HandleGetLeaderboard)
	return r
}

func TestHandleGetProfile(t *testing.T) {
	econ := &MockEconomyService{}
	econ.On("GetProfile", mock.Anything).Return(&domain.Profile{
		UserID:    "u1",
		Username:  "ada",
		Balance:   1200,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil).Once()
	econ.On("GetProfile", mock.Anything).Return(nil, domain.ErrProfileNotFound).Once()

	router := newEconomyRouter(econ, &MockLeaderboardService{})

	w := serve(router, http.MethodGet, "/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var p domain.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, int64(1200), p.Balance)

	w = serve(router, http.MethodGet, "/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSendSuperCash(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     *domain.CommandResult
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"to_username":"bob","amount":50}`,
			result:     &domain.CommandResult{Command: domain.CommandSendSuperCash, Success: true, Amount: 50},
			wantStatus: http.StatusOK,
		},
		{
			name:       "recipient missing",
			body:       `{"to_username":"ghost","amount":50}`,
			result:     &domain.CommandResult{Command: domain.CommandSendSuperCash, Err: domain.ErrRecipientNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "self transfer",
			body:       `{"to_username":"ada","amount":50}`,
			result:     &domain.CommandResult{Command: domain.CommandSendSuperCash, Err: domain.ErrSelfTransfer},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "zero amount rejected before service",
			body:       `{"to_username":"bob","amount":0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing username",
			body:       `{"amount":5}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			econ := &MockEconomyService{}
			if tt.result != nil {
				econ.On("SendSuperCash", mock.Anything, mock.Anything, mock.Anything).Return(*tt.result).Once()
			}

			w := serve(newEconomyRouter(econ, &MockLeaderboardService{}), http.MethodPost, "/economy/send", []byte(tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.result == nil {
				econ.AssertNotCalled(t, "SendSuperCash", mock.Anything, mock.Anything, mock.Anything)
			} else {
				econ.AssertExpectations(t)
			}
		})
	}
}

func TestHandleApplyReferral(t *testing.T) {
	econ := &MockEconomyService{}
	econ.On("ApplyReferralCode", mock.Anything, "refabc").
		Return(domain.Failed(domain.CommandApplyReferral, domain.ErrReferralUsed)).Once()

	w := serve(newEconomyRouter(econ, &MockLeaderboardService{}), http.MethodPost, "/economy/referral", []byte(`{"code":"refabc"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrMsgReferralUsedError, decodeCommand(t, w).Message)

	w = serve(newEconomyRouter(econ, &MockLeaderboardService{}), http.MethodPost, "/economy/referral", []byte(`{"code":"ref-abc"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	econ.AssertExpectations(t)
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		lb := &MockLeaderboardService{}
		lb.On("Top", mock.Anything, domain.DefaultLeaderboardLimit).
			Return([]domain.LeaderboardEntry{{Rank: 1, Username: "ada", Balance: 900}}, nil).Once()

		w := serve(newEconomyRouter(&MockEconomyService{}, lb), http.MethodGet, "/leaderboard", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp LeaderboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.DefaultLeaderboardLimit, resp.Limit)
		require.Len(t, resp.Entries, 1)
	})

	t.Run("malformed limit", func(t *testing.T) {
		lb := &MockLeaderboardService{}
		w := serve(newEconomyRouter(&MockEconomyService{}, lb), http.MethodGet, "/leaderboard?limit=ten", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		lb.AssertNotCalled(t, "Top", mock.Anything, mock.Anything)
	})

	t.Run("out of range", func(t *testing.T) {
		lb := &MockLeaderboardService{}
		lb.On("Top", mock.Anything, 500).Return(nil, domain.ErrInvalidInput).Once()

		w := serve(newEconomyRouter(&MockEconomyService{}, lb), http.MethodGet, "/leaderboard?limit=500", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty board encodes as list", func(t *testing.T) {
		lb := &MockLeaderboardService{}
		lb.On("Top", mock.Anything, 5).Return(nil, nil).Once()

		w := serve(newEconomyRouter(&MockEconomyService{}, lb), http.MethodGet, "/leaderboard?limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
	})
}
