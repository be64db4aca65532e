package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"spice-palace/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error onto an HTTP status. Rejected
// operations carry a DomainError whose code decides the response; anything
// else is an internal failure.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeInvalidCredentials, model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	case model.ErrCodeForbidden:
		status = http.StatusForbidden
	case model.ErrCodeMenuItemNotFound, model.ErrCodeTableNotFound:
		status = http.StatusNotFound
	case model.ErrCodeItemUnavailable, model.ErrCodeEmptyCart,
		model.ErrCodeNoActiveOrder, model.ErrCodeInvalidTransition:
		status = http.StatusConflict
	}

	logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg("request rejected")
	writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
}
