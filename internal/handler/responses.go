package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

// Standard response types for consistent API responses

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

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgQueueFullError      = "The production queue is full"
	ErrMsgProductionPausedErr = "Production is paused"
	ErrMsgNotEnoughMoneyErr   = "Not enough money"
	ErrMsgInvalidAmountError  = "Amount must be positive"
	ErrMsgUpgradeNotFoundErr  = "Upgrade not found"
	ErrMsgMaxLevelReachedErr  = "Upgrade is already at max level"
	ErrMsgPrereqLockedError   = "Upgrade prerequisite not yet owned"
	ErrMsgNotEligibleError    = "Prestige requirement not met yet"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgSnapshotNotFoundErr = "No saved state found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrQueueFull):
		return http.StatusConflict, ErrMsgQueueFullError
	case errors.Is(err, domain.ErrProductionPaused):
		return http.StatusConflict, ErrMsgProductionPausedErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyErr
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusBadRequest, ErrMsgUpgradeNotFoundErr
	case errors.Is(err, domain.ErrMaxLevelReached):
		return http.StatusBadRequest, ErrMsgMaxLevelReachedErr
	case errors.Is(err, domain.ErrPrerequisiteLocked):
		return http.StatusForbidden, ErrMsgPrereqLockedError
	case errors.Is(err, domain.ErrPrestigeIneligible):
		return http.StatusBadRequest, ErrMsgNotEligibleError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound, ErrMsgSnapshotNotFoundErr
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
