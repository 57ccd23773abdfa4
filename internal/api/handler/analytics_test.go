package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profitlens/storefront-analytics-api/internal/api/handler/router"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
)

const testStoreID = "stArQL7x9mKp"

// fakeAnalyzer satisfies analyzing.Analyzer with canned responses.
type fakeAnalyzer struct {
	computeDayFn   func(ctx context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error)
	computeRangeFn func(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.RangeResult, error)
	dailyFn        func(ctx context.Context, storeID string, filters *domain.AnalyticsFilters) ([]*domain.DailySalesAnalytics, error)
}

func (f *fakeAnalyzer) ComputeDay(ctx context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error) {
	return f.computeDayFn(ctx, storeID, date)
}

func (f *fakeAnalyzer) ComputeRange(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.RangeResult, error) {
	return f.computeRangeFn(ctx, storeID, startDate, endDate)
}

func (f *fakeAnalyzer) GetDailyAnalytics(ctx context.Context, storeID string, filters *domain.AnalyticsFilters) ([]*domain.DailySalesAnalytics, error) {
	return f.dailyFn(ctx, storeID, filters)
}

func (f *fakeAnalyzer) GetSummary(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.AnalyticsSummary, error) {
	rows, err := f.dailyFn(ctx, storeID, &domain.AnalyticsFilters{StartDate: &startDate, EndDate: &endDate})
	if err != nil {
		return nil, err
	}
	return domain.SummarizeDailyAnalytics(startDate, endDate, rows), nil
}

func (f *fakeAnalyzer) NetProfit(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.ProfitBreakdown, error) {
	return &domain.ProfitBreakdown{}, nil
}

func analyticsRouter(analyzer *fakeAnalyzer) http.Handler {
	return router.New(router.WithRoutes(Analytics(analyzer)...))
}

func TestGetDailyAnalytics(t *testing.T) {
	log.SetupTestLogger()

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		url        string
		analyzer   *fakeAnalyzer
		wantStatus int
		wantBody   string
	}{
		{
			name: "rows for a valid range",
			url:  "/v1/stores/" + testStoreID + "/analytics/daily?start_date=2024-03-01&end_date=2024-03-10",
			analyzer: &fakeAnalyzer{
				dailyFn: func(_ context.Context, storeID string, filters *domain.AnalyticsFilters) ([]*domain.DailySalesAnalytics, error) {
					return []*domain.DailySalesAnalytics{
						{StoreID: storeID, Date: date, TotalSales: decimal.NewFromInt(60), TotalOrders: 3},
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_orders":3`,
		},
		{
			name:       "missing range parameters",
			url:        "/v1/stores/" + testStoreID + "/analytics/daily",
			analyzer:   &fakeAnalyzer{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_004",
		},
		{
			name:       "inverted range",
			url:        "/v1/stores/" + testStoreID + "/analytics/daily?start_date=2024-03-10&end_date=2024-03-01",
			analyzer:   &fakeAnalyzer{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "VAL_004",
		},
		{
			name: "unknown store",
			url:  "/v1/stores/missing/analytics/daily?start_date=2024-03-01&end_date=2024-03-10",
			analyzer: &fakeAnalyzer{
				dailyFn: func(_ context.Context, _ string, _ *domain.AnalyticsFilters) ([]*domain.DailySalesAnalytics, error) {
					return nil, domain.ErrStoreNotFound
				},
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "RES_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			analyticsRouter(tt.analyzer).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRecomputeAnalytics(t *testing.T) {
	log.SetupTestLogger()

	t.Run("single day", func(t *testing.T) {
		var gotDate time.Time
		analyzer := &fakeAnalyzer{
			computeDayFn: func(_ context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error) {
				gotDate = date
				return &domain.DailySalesAnalytics{StoreID: storeID, Date: date}, nil
			},
		}

		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/stores/"+testStoreID+"/analytics/recompute",
			strings.NewReader(`{"date": "2024-03-10"}`),
		)
		rec := httptest.NewRecorder()

		analyticsRouter(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), gotDate)
	})

	t.Run("inclusive range becomes half-open", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		analyzer := &fakeAnalyzer{
			computeRangeFn: func(_ context.Context, storeID string, startDate, endDate time.Time) (*domain.RangeResult, error) {
				gotStart, gotEnd = startDate, endDate
				return &domain.RangeResult{StoreID: storeID}, nil
			},
		}

		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/stores/"+testStoreID+"/analytics/recompute",
			strings.NewReader(`{"start_date": "2024-03-01", "end_date": "2024-03-03"}`),
		)
		rec := httptest.NewRecorder()

		analyticsRouter(analyzer).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), gotStart)
		// end_date 2024-03-03 is inclusive, so the window ends on 03-04
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), gotEnd)
	})

	t.Run("failed dates return multi-status", func(t *testing.T) {
		analyzer := &fakeAnalyzer{
			computeRangeFn: func(_ context.Context, storeID string, _, _ time.Time) (*domain.RangeResult, error) {
				return &domain.RangeResult{
					StoreID: storeID,
					Computed: []*domain.DailySalesAnalytics{
						{StoreID: storeID, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
					},
					Failed: []*domain.DateError{
						{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Error: "boom"},
					},
				}, nil
			},
		}

		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/stores/"+testStoreID+"/analytics/recompute",
			strings.NewReader(`{"start_date": "2024-03-01", "end_date": "2024-03-02"}`),
		)
		rec := httptest.NewRecorder()

		analyticsRouter(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMultiStatus, rec.Code)
		assert.Contains(t, rec.Body.String(), `"failed"`)
	})

	t.Run("missing date and range", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/stores/"+testStoreID+"/analytics/recompute",
			strings.NewReader(`{}`),
		)
		rec := httptest.NewRecorder()

		analyticsRouter(&fakeAnalyzer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted range is rejected before the service is called", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/stores/"+testStoreID+"/analytics/recompute",
			strings.NewReader(`{"start_date": "2024-03-10", "end_date": "2024-03-01"}`),
		)
		rec := httptest.NewRecorder()

		analyticsRouter(&fakeAnalyzer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_004")
	})
}
