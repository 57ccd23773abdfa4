package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/profitlens/storefront-analytics-api/internal/api/handler/router"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/analyzing"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/costing"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Stores(service store.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodPost,
			Handler: CreateStore(service),
		},
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodGet,
			Handler: GetStore(service),
		},
		{
			Path:    "/v1/stores/:id",
			Method:  http.MethodPut,
			Handler: UpdateStore(service),
		},
		{
			Path:    "/v1/stores/:id/orders",
			Method:  http.MethodPost,
			Handler: IngestOrders(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/analytics/daily",
			Method:  http.MethodGet,
			Handler: GetDailyAnalytics(service),
		},
		{
			Path:    "/v1/stores/:id/analytics/summary",
			Method:  http.MethodGet,
			Handler: GetAnalyticsSummary(service),
		},
		{
			Path:    "/v1/stores/:id/analytics/profit",
			Method:  http.MethodGet,
			Handler: GetProfitBreakdown(service),
		},
		{
			Path:    "/v1/stores/:id/analytics/recompute",
			Method:  http.MethodPost,
			Handler: RecomputeAnalytics(service),
		},
	}
}

func Costs(service costing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/ad-spends",
			Method:  http.MethodPost,
			Handler: RecordAdSpend(service),
		},
		{
			Path:    "/v1/stores/:id/ad-spends",
			Method:  http.MethodGet,
			Handler: ListAdSpend(service),
		},
		{
			Path:    "/v1/stores/:id/other-costs",
			Method:  http.MethodPost,
			Handler: CreateOtherCost(service),
		},
		{
			Path:    "/v1/stores/:id/other-costs",
			Method:  http.MethodGet,
			Handler: ListOtherCosts(service),
		},
		{
			Path:    "/v1/stores/:id/other-costs/:cost_id",
			Method:  http.MethodPut,
			Handler: UpdateOtherCost(service),
		},
		{
			Path:    "/v1/stores/:id/other-costs/:cost_id",
			Method:  http.MethodDelete,
			Handler: DeleteOtherCost(service),
		},
		{
			Path:    "/v1/stores/:id/variants",
			Method:  http.MethodPost,
			Handler: UpsertVariants(service),
		},
		{
			Path:    "/v1/stores/:id/variants",
			Method:  http.MethodGet,
			Handler: ListVariants(service),
		},
		{
			Path:    "/v1/stores/:id/variants/:variant_id/cogs",
			Method:  http.MethodPut,
			Handler: UpdateVariantCOGS(service),
		},
		{
			Path:    "/v1/stores/:id/variant-costs",
			Method:  http.MethodPut,
			Handler: BulkUpdateVariantCOGS(service),
		},
		{
			Path:    "/v1/stores/:id/orders/:order_id/shipping-cost",
			Method:  http.MethodPut,
			Handler: UpdateOrderShippingCost(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
