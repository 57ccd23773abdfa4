package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/costing"
	"github.com/profitlens/storefront-analytics-api/pkg/apiErrors"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
	"github.com/profitlens/storefront-analytics-api/pkg/utils"
)

type adSpendRequest struct {
	Platform     string          `json:"platform"`
	Date         string          `json:"date"`
	Spend        decimal.Decimal `json:"spend"`
	CampaignName *string         `json:"campaign_name"`
}

type otherCostRequest struct {
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Frequency   string          `json:"frequency"`
}

func (req *otherCostRequest) toDomain(storeID string) (*domain.OtherCost, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	cost := &domain.OtherCost{
		StoreID:     storeID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   *startDate,
		Frequency:   req.Frequency,
	}

	if req.EndDate != "" {
		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		cost.EndDate = endDate
	}

	return cost, nil
}

func RecordAdSpend(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var payload struct {
			Entries []*adSpendRequest `json:"entries"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if len(payload.Entries) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "entries is empty", nil)
			return
		}

		entries := make([]*domain.AdSpend, 0, len(payload.Entries))
		for _, req := range payload.Entries {
			if req.Platform == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "platform is required for every entry", nil)
				return
			}

			date, err := utils.ParseDate(req.Date)
			if err != nil || req.Date == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid entry date", nil)
				return
			}

			entries = append(entries, &domain.AdSpend{
				StoreID:      id,
				Platform:     req.Platform,
				Date:         *date,
				Spend:        req.Spend,
				CampaignName: req.CampaignName,
			})
		}

		if err := service.RecordAdSpend(r.Context(), id, entries); err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to record ad spend: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"store_id": id,
			"saved":    len(entries),
		})
	})
}

func ListAdSpend(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, endDate, err := parseRangeParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		entries, err := service.ListAdSpend(r.Context(), id, *startDate, *endDate)
		if err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to list ad spend: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	})
}

func CreateOtherCost(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		req := &otherCostRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		cost, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := service.CreateOtherCost(r.Context(), cost); err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to create cost: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, cost)
	})
}

func UpdateOtherCost(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")

		costID, err := strconv.ParseInt(params.ByName("cost_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid cost id", nil)
			return
		}

		req := &otherCostRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		cost, err := req.toDomain(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		cost.ID = costID

		if err := service.UpdateOtherCost(r.Context(), cost); err != nil {
			logger.WithFields(log.Fields{
				"store_id": id,
				"cost_id":  costID,
			}).Errorf("costs: failed to update cost: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, cost)
	})
}

func DeleteOtherCost(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")

		costID, err := strconv.ParseInt(params.ByName("cost_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid cost id", nil)
			return
		}

		if err := service.DeleteOtherCost(r.Context(), id, costID); err != nil {
			logger.WithFields(log.Fields{
				"store_id": id,
				"cost_id":  costID,
			}).Warnf("costs: failed to delete cost: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	})
}

func ListOtherCosts(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		costs, err := service.ListOtherCosts(r.Context(), id)
		if err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to list costs: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, costs)
	})
}

func UpsertVariants(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var payload struct {
			Variants []*domain.ProductVariant `json:"variants"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if len(payload.Variants) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "variants is empty", nil)
			return
		}

		for _, variant := range payload.Variants {
			if variant.PlatformVariantID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "platform_variant_id is required for every variant", nil)
				return
			}
		}

		if err := service.UpsertVariants(r.Context(), id, payload.Variants); err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to upsert variants: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"store_id": id,
			"saved":    len(payload.Variants),
		})
	})
}

func ListVariants(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		variants, err := service.ListVariants(r.Context(), id)
		if err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to list variants: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, variants)
	})
}

func UpdateVariantCOGS(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		variantID := params.ByName("variant_id")

		var payload struct {
			COGS decimal.Decimal `json:"cogs"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.UpdateVariantCOGS(r.Context(), id, variantID, payload.COGS); err != nil {
			logger.WithFields(log.Fields{
				"store_id":   id,
				"variant_id": variantID,
			}).Errorf("costs: failed to update variant cogs: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"variant_id": variantID,
			"cogs":       payload.COGS,
		})
	})
}

func BulkUpdateVariantCOGS(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var payload struct {
			Updates []*domain.VariantCostUpdate `json:"updates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if len(payload.Updates) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "updates is empty", nil)
			return
		}

		updated, err := service.BulkUpdateVariantCOGS(r.Context(), id, payload.Updates)
		if err != nil {
			logger.WithField("store_id", id).Errorf("costs: failed to bulk update cogs: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"store_id": id,
			"updated":  updated,
		})
	})
}

func UpdateOrderShippingCost(service costing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		orderID := params.ByName("order_id")

		var payload struct {
			ShippingCost decimal.Decimal `json:"shipping_cost"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.UpdateOrderShippingCost(r.Context(), id, orderID, payload.ShippingCost); err != nil {
			logger.WithFields(log.Fields{
				"store_id": id,
				"order_id": orderID,
			}).Errorf("costs: failed to update shipping cost: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"order_id":      orderID,
			"shipping_cost": payload.ShippingCost,
		})
	})
}
