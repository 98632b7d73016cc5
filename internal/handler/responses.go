package handler

import (
	"bytes"
	"errors"
	"net/http"
	"sync"

	"github.com/goccy/go-json"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", op, "error", err)
	}
	respondError(w, status, msg)
}

// respondCommand writes a CommandResult. Failed commands keep the result body
// but carry the status and message mapped from the cause.
func respondCommand(w http.ResponseWriter, r *http.Request, res domain.CommandResult) {
	if res.Success {
		respondJSON(w, http.StatusOK, res)
		return
	}

	status, msg := mapServiceErrorToUserMessage(res.Err)
	logger.FromContext(r.Context()).Warn(LogMsgCommandRejected,
		"command", res.Command,
		"status", status,
		"error", res.Err)
	res.Message = msg
	respondJSON(w, status, res)
}

type errorMapping struct {
	err    error
	status int
	msg    string
}

var serviceErrorMappings = []errorMapping{
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},

	{domain.ErrInstanceNotFound, http.StatusNotFound, ErrMsgInstanceNotFoundError},
	{domain.ErrHeroNotFound, http.StatusNotFound, ErrMsgHeroNotFoundError},
	{domain.ErrProfileNotFound, http.StatusNotFound, ErrMsgProfileNotFoundError},
	{domain.ErrRecipientNotFound, http.StatusNotFound, ErrMsgRecipientNotFoundError},

	{domain.ErrAlreadyClaimed, http.StatusConflict, ErrMsgAlreadyClaimedError},
	{domain.ErrAlreadySpun, http.StatusConflict, ErrMsgAlreadySpunError},
	{domain.ErrReferralUsed, http.StatusConflict, ErrMsgReferralUsedError},
	{domain.ErrCommandInFlight, http.StatusConflict, ErrMsgCommandInFlightError},

	{domain.ErrInsufficientBalance, http.StatusUnprocessableEntity, ErrMsgInsufficientBalanceError},
	{domain.ErrSelfTransfer, http.StatusUnprocessableEntity, ErrMsgSelfTransferError},
	{domain.ErrInvalidReferral, http.StatusUnprocessableEntity, ErrMsgInvalidReferralError},
	{domain.ErrNoStarterHeroes, http.StatusUnprocessableEntity, ErrMsgNoStarterHeroesError},
	{domain.ErrNoEligibleHeroes, http.StatusUnprocessableEntity, ErrMsgNoEligibleHeroesError},
	{domain.ErrNoWheelPrizes, http.StatusUnprocessableEntity, ErrMsgNoWheelPrizesError},

	{domain.ErrCatalogNotLoaded, http.StatusServiceUnavailable, ErrMsgCatalogNotLoadedError},
	{domain.ErrBackendUnavailable, http.StatusServiceUnavailable, ErrMsgUnavailableError},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show to the player
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range serviceErrorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
