package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/pkg/apiErrors"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}

// respondServiceError maps domain errors onto the standard error payload.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrCostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}
