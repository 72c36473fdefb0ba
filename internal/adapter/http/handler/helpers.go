package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/iho/cartera/internal/adapter/http/dto"
	"github.com/iho/cartera/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}

// mapDomainError translates domain errors into HTTP responses. Unknown
// errors are logged server-side and returned as an opaque 500.
func mapDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCounterpartyLocked):
		writeError(w, http.StatusConflict, "recalculation already in progress for this counterparty")
	case errors.Is(err, domain.ErrConfigNotFound):
		writeError(w, http.StatusNotFound, "classifier configuration not found for tenant")
	case errors.Is(err, domain.ErrCounterpartyNotFound):
		writeError(w, http.StatusNotFound, "counterparty not found")
	case errors.Is(err, domain.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, "invalid balance role")
	case errors.Is(err, domain.ErrOverAllocation):
		log.Error().Err(err).Msg("allocation invariant violated")
		writeError(w, http.StatusInternalServerError, "allocation data is inconsistent")
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
