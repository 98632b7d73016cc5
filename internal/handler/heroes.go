package handler

import (
	"net/http"

	"github.com/osse101/HeroVerse_Go/internal/clock"
	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/game"
)

// MysteryBoxRequest is the body of a mystery box purchase
type MysteryBoxRequest struct {
	Count int `json:"count" validate:"min=1,max=10"`
}

// CatalogResponse lists every hero definition and rarity tier
type CatalogResponse struct {
	Heroes   []domain.HeroDefinition `json:"heroes"`
	Rarities []domain.RarityTier     `json:"rarities"`
}

// HeroHandler serves the hero collection and its commands
type HeroHandler struct {
	game  game.Service
	clock clock.Clock
}

// NewHeroHandler creates a hero handler. A nil clock uses the wall clock.
func NewHeroHandler(gameSvc game.Service, clk clock.Clock) *HeroHandler {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &HeroHandler{game: gameSvc, clock: clk}
}

// HandleGetStacks returns the grouped collection and any integrity issues
// @Summary Hero stacks
// @Tags heroes
// @Produce json
// @Success 200 {object} game.StacksView
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/heroes/stacks [get]
func (h *HeroHandler) HandleGetStacks(w http.ResponseWriter, r *http.Request) {
	view, err := h.game.Stacks(r.Context(), h.clock.Now())
	if err != nil {
		respondServiceError(w, r, "Get stacks", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleGetInstances returns the raw snapshot
// @Summary Owned hero instances
// @Tags heroes
// @Produce json
// @Success 200 {object} game.Snapshot
// @Router /api/v1/heroes/instances [get]
func (h *HeroHandler) HandleGetInstances(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Snapshot())
}

// HandleGetCatalog returns the cached hero catalog
// @Summary Hero catalog
// @Tags heroes
// @Produce json
// @Success 200 {object} CatalogResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/heroes/catalog [get]
func (h *HeroHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := h.game.LoadCatalog(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get catalog", err)
		return
	}
	respondJSON(w, http.StatusOK, CatalogResponse{
		Heroes:   cat.Heroes(),
		Rarities: cat.Rarities(),
	})
}

// HandleReloadCatalog drops the cached catalog and fetches it again
// @Summary Reload hero catalog
// @Tags heroes
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Router /api/v1/heroes/catalog/reload [post]
func (h *HeroHandler) HandleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	respondCommand(w, r, h.game.ReloadCatalog(r.Context()))
}

// HandleActivate activates one instance
// @Summary Activate hero instance
// @Tags heroes
// @Param id path string true "Instance ID"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Failure 404 {object} domain.CommandResult
// @Failure 409 {object} domain.CommandResult
// @Router /api/v1/heroes/instances/{id}/activate [post]
func (h *HeroHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	respondCommand(w, r, h.game.Activate(r.Context(), id))
}

// HandleDeactivate deactivates one instance. Its uncollected earnings are forfeited.
// @Summary Deactivate hero instance
// @Tags heroes
// @Param id path string true "Instance ID"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Router /api/v1/heroes/instances/{id}/deactivate [post]
func (h *HeroHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	respondCommand(w, r, h.game.Deactivate(r.Context(), id))
}

// HandleActivateAll activates every inactive copy of a hero
// @Summary Activate all copies of a hero
// @Tags heroes
// @Param heroID path string true "Hero ID"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Router /api/v1/heroes/{heroID}/activate-all [post]
func (h *HeroHandler) HandleActivateAll(w http.ResponseWriter, r *http.Request) {
	heroID, ok := GetPathParam(r, w, "heroID")
	if !ok {
		return
	}
	respondCommand(w, r, h.game.ActivateAll(r.Context(), heroID))
}

// HandleDeactivateAll deactivates every active copy of a hero
// @Summary Deactivate all copies of a hero
// @Tags heroes
// @Param heroID path string true "Hero ID"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Router /api/v1/heroes/{heroID}/deactivate-all [post]
func (h *HeroHandler) HandleDeactivateAll(w http.ResponseWriter, r *http.Request) {
	heroID, ok := GetPathParam(r, w, "heroID")
	if !ok {
		return
	}
	respondCommand(w, r, h.game.DeactivateAll(r.Context(), heroID))
}

// HandleClaimStarter claims the one free starter hero
// @Summary Claim starter hero
// @Tags heroes
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Failure 409 {object} domain.CommandResult
// @Router /api/v1/heroes/starter/claim [post]
func (h *HeroHandler) HandleClaimStarter(w http.ResponseWriter, r *http.Request) {
	respondCommand(w, r, h.game.ClaimStarterHero(r.Context()))
}

// HandlePurchaseMysteryBox buys and opens count boxes
// @Summary Purchase mystery boxes
// @Tags heroes
// @Accept json
// @Param request body MysteryBoxRequest true "Box count"
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} domain.CommandResult
// @Router /api/v1/mystery-box/purchase [post]
func (h *HeroHandler) HandlePurchaseMysteryBox(w http.ResponseWriter, r *http.Request) {
	var req MysteryBoxRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase mystery box"); err != nil {
		return
	}
	respondCommand(w, r, h.game.PurchaseMysteryBox(r.Context(), req.Count))
}

// HandleRefresh forces an authoritative re-fetch of the collection
// @Summary Refresh hero collection
// @Tags heroes
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/store/refresh [post]
func (h *HeroHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.game.Refresh(r.Context()); err != nil {
		respondServiceError(w, r, "Refresh", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStoreRefreshed})
}

// HandleGetPending returns the uncollected balance at now
// @Summary Pending earnings
// @Tags earnings
// @Produce json
// @Success 200 {object} game.PendingView
// @Router /api/v1/earnings/pending [get]
func (h *HeroHandler) HandleGetPending(w http.ResponseWriter, r *http.Request) {
	view, err := h.game.Pending(r.Context(), h.clock.Now())
	if err != nil {
		respondServiceError(w, r, "Get pending", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCollect sweeps pending earnings into the balance
// @Summary Collect earnings
// @Tags earnings
// @Produce json
// @Success 200 {object} domain.CommandResult
// @Router /api/v1/earnings/collect [post]
func (h *HeroHandler) HandleCollect(w http.ResponseWriter, r *http.Request) {
	respondCommand(w, r, h.game.Collect(r.Context()))
}
