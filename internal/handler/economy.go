package handler

import (
	"net/http"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/economy"
	"github.com/osse101/HeroVerse_Go/internal/leaderboard"
)

// SendSuperCashRequest is the body of a peer-to-peer transfer
type SendSuperCashRequest struct {
	ToUsername string `json:"to_username" validate:"required,max=50,username"`
	Amount     int64  `json:"amount" validate:"min=1"`
}

// ReferralRequest is the body of a referral code application
type ReferralRequest struct {
	Code string `json:"code" validate:"required,max=16,referral"`
}

// LeaderboardResponse wraps the ranked entries
type LeaderboardResponse struct {
	Limit   int                       `json:"limit"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// EconomyHandler serves the account, transfers and the leaderboard
type EconomyHandler struct {
	economy     economy.Service
	leaderboard leaderboard.Service
}

// NewEconomyHandler creates an economy handler
func NewEconomyHandler(economySvc economy.Service, leaderboardSvc leaderboard.Service) *EconomyHandler {
	return &EconomyHandler{economy: economySvc, leaderboard: leaderboardSvc}
}

// HandleGetProfile returns the session account
// @Summary Account profile
// @Tags economy
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile [get]
func (h *EconomyHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.economy.GetProfile(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleSendSuperCash sends SuperCash to another player
// @Summary Send SuperCash
// @Tags economy
// @Accept json
// @Param request body SendSuperCashRequest true "Transfer"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} domain.CommandResult
// @Failure 422 {object} domain.CommandResult
// @Router /api/v1/economy/send [post]
func (h *EconomyHandler) HandleSendSuperCash(w http.ResponseWriter, r *http.Request) {
	var req SendSuperCashRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Send supercash"); err != nil {
		return
	}
	res := h.economy.SendSuperCash(r.Context(), req.ToUsername, req.Amount)
	respondCommand(w, r, res)
}

// HandleApplyReferral applies a referral code once
// @Summary Apply referral code
// @Tags economy
// @Accept json
// @Param request body ReferralRequest true "Referral code"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Failure 409 {object} domain.CommandResult
// @Failure 422 {object} domain.CommandResult
// @Router /api/v1/economy/referral [post]
func (h *EconomyHandler) HandleApplyReferral(w http.ResponseWriter, r *http.Request) {
	var req ReferralRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply referral"); err != nil {
		return
	}
	res := h.economy.ApplyReferralCode(r.Context(), req.Code)
	respondCommand(w, r, res)
}

// HandleGetLeaderboard returns the top balances
// @Summary Leaderboard
// @Tags economy
// @Param limit query int false "Entries (1-100, default 10)"
// @Produce json
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *EconomyHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", domain.DefaultLeaderboardLimit)
	if !ok {
		return
	}
	entries, err := h.leaderboard.Top(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	if limit == 0 {
		limit = domain.DefaultLeaderboardLimit
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Limit: limit, Entries: entries})
}
