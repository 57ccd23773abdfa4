package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/store"
	"github.com/profitlens/storefront-analytics-api/pkg/apiErrors"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
)

func CreateStore(service store.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := &domain.CreateStoreRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.Name == "" || req.Platform == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name and platform are required", nil)
			return
		}

		created, err := service.CreateStore(r.Context(), req)
		if err != nil {
			logger.WithError(err).Error("stores: failed to create store")
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	})
}

func GetStore(service store.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetStore(r.Context(), id)
		if err != nil {
			logger.WithField("store_id", id).Warnf("stores: failed to get store: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	})
}

func ListStores(service store.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		onlyActive := r.URL.Query().Get("active") == "true"

		stores, err := service.ListStores(r.Context(), onlyActive)
		if err != nil {
			logger.WithError(err).Error("stores: failed to list stores")
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, stores)
	})
}

func UpdateStore(service store.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		req := &domain.UpdateStoreRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		updated, err := service.UpdateStore(r.Context(), id, req)
		if err != nil {
			logger.WithField("store_id", id).Warnf("stores: failed to update store: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	})
}

// IngestOrders accepts a batch of synchronized orders for a store.
func IngestOrders(service store.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var payload struct {
			Orders []*domain.Order `json:"orders"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if len(payload.Orders) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "orders batch is empty", nil)
			return
		}

		for _, order := range payload.Orders {
			if order.PlatformOrderID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "platform_order_id is required for every order", nil)
				return
			}
			if order.ProcessedAt.IsZero() {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "processed_at is required for every order", nil)
				return
			}
		}

		saved, err := service.IngestOrders(r.Context(), id, payload.Orders)
		if err != nil {
			logger.WithField("store_id", id).Errorf("stores: failed to ingest orders: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"store_id": id,
			"saved":    saved,
		})
	})
}
