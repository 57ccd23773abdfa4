package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/analyzing"
	"github.com/profitlens/storefront-analytics-api/pkg/apiErrors"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
	"github.com/profitlens/storefront-analytics-api/pkg/utils"
)

// parseRangeParams reads the start_date/end_date query parameters.
func parseRangeParams(r *http.Request) (*time.Time, *time.Time, error) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")

	if startStr == "" || endStr == "" {
		return nil, nil, domain.ErrInvalidDateRange
	}

	return utils.ParseDateRange(startStr, endStr)
}

func GetDailyAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, endDate, err := parseRangeParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		rows, err := service.GetDailyAnalytics(r.Context(), id, &domain.AnalyticsFilters{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			logger.WithField("store_id", id).Errorf("analytics: failed to get daily rows: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, rows)
	})
}

func GetAnalyticsSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, endDate, err := parseRangeParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		summary, err := service.GetSummary(r.Context(), id, *startDate, *endDate)
		if err != nil {
			logger.WithField("store_id", id).Errorf("analytics: failed to build summary: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	})
}

func GetProfitBreakdown(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, endDate, err := parseRangeParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		breakdown, err := service.NetProfit(r.Context(), id, *startDate, *endDate)
		if err != nil {
			logger.WithField("store_id", id).Errorf("analytics: failed to compute profit: %v", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, breakdown)
	})
}

// RecomputeAnalytics recomputes a single day or an inclusive date range.
func RecomputeAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var payload struct {
			Date      string `json:"date"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if payload.Date != "" {
			date, err := utils.ParseDate(payload.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid date", nil)
				return
			}

			row, err := service.ComputeDay(r.Context(), id, *date)
			if err != nil {
				logger.WithFields(log.Fields{
					"store_id": id,
					"date":     payload.Date,
				}).Errorf("analytics: failed to recompute day: %v", err)
				respondServiceError(w, err)
				return
			}

			respondJSON(w, http.StatusOK, row)
			return
		}

		if payload.StartDate == "" || payload.EndDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "either date or start_date and end_date are required", nil)
			return
		}

		startDate, endDate, err := utils.ParseDateRange(payload.StartDate, payload.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		// Inclusive dates from the client become a half-open range.
		result, err := service.ComputeRange(r.Context(), id, *startDate, endDate.AddDate(0, 0, 1))
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id":   id,
				"start_date": payload.StartDate,
				"end_date":   payload.EndDate,
			}).Errorf("analytics: failed to recompute range: %v", err)
			respondServiceError(w, err)
			return
		}

		status := http.StatusOK
		if len(result.Failed) > 0 {
			status = http.StatusMultiStatus
		}

		respondJSON(w, status, result)
	})
}
