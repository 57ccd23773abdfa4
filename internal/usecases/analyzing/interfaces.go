package analyzing

import (
	"context"
	"time"

	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

// DayComputer recomputes the stored daily aggregates from raw orders.
type DayComputer interface {
	// ComputeDay aggregates the store's orders for a single calendar day and
	// upserts the resulting analytics row. A day with no activity produces a
	// row of zeros, not an error.
	ComputeDay(ctx context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error)

	// ComputeRange runs ComputeDay for each date in the half-open interval
	// [startDate, endDate). A failing date is reported in the result and does
	// not stop the remaining dates.
	ComputeRange(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.RangeResult, error)
}

// Analyzer is the full analytics read/write surface used by the API and the
// sync scheduler.
type Analyzer interface {
	DayComputer

	// GetDailyAnalytics returns the stored rows for an inclusive date range,
	// ordered by date. Days that were never computed are absent.
	GetDailyAnalytics(ctx context.Context, storeID string, filters *domain.AnalyticsFilters) ([]*domain.DailySalesAnalytics, error)

	// GetSummary folds the stored rows of an inclusive date range into period
	// totals.
	GetSummary(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.AnalyticsSummary, error)

	// NetProfit computes the full profit breakdown for an arbitrary window.
	NetProfit(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.ProfitBreakdown, error)
}
