package handler

import (
	"net/http"

	"github.com/osse101/HeroVerse_Go/internal/wheel"
)

// WheelHandler serves the daily prize wheel
type WheelHandler struct {
	wheel wheel.Service
}

// NewWheelHandler creates a wheel handler
func NewWheelHandler(wheelSvc wheel.Service) *WheelHandler {
	return &WheelHandler{wheel: wheelSvc}
}

// HandleGetWheel returns the slice layout and spin availability
// @Summary Prize wheel
// @Tags wheel
// @Produce json
// @Success 200 {object} domain.WheelStatus
// @Router /api/v1/wheel [get]
func (h *WheelHandler) HandleGetWheel(w http.ResponseWriter, r *http.Request) {
	status, err := h.wheel.Status(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get wheel", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleSpin spins the wheel once per UTC day
// @Summary Spin the prize wheel
// @Tags wheel
// @Produce json
// @Success 200 {object} domain.SpinResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/wheel/spin [post]
func (h *WheelHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	result, err := h.wheel.Spin(r.Context())
	if err != nil {
		respondServiceError(w, r, "Spin wheel", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
