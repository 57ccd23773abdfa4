package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/profitlens/storefront-analytics-api/internal/scheduler"
	"github.com/profitlens/storefront-analytics-api/pkg/apiErrors"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
)

const (
	CronJobTypeAnalytics = "analytics"
	CronJobTypeAll       = "all"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	AnalyticsSyncService *scheduler.AnalyticsSyncService
}

// RunCronJob triggers a scheduler run outside its cron window.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeAnalytics, CronJobTypeAll:
			if services.AnalyticsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "analytics sync service not available", nil)
				return
			}
			services.AnalyticsSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: analytics, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron job triggered manually")

		respondJSON(w, http.StatusOK, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus reports the schedulers' configuration and last runs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.AnalyticsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "analytics sync service not available", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"analytics": services.AnalyticsSyncService.GetStatus(),
		})
	}
}
