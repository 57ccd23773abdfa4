package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesAnalytics is one precomputed metrics row per (store, date).
// Written only by the aggregation job; read-only to API consumers.
type DailySalesAnalytics struct {
	ID                int64           `json:"id"`
	StoreID           string          `json:"store_id"`
	Date              time.Time       `json:"date"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	Profit            decimal.Decimal `json:"profit"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AnalyticsFilters carries the date window of an analytics query. Both dates
// are interpreted as UTC calendar days.
type AnalyticsFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AnalyticsSummary folds a run of daily rows into period totals.
type AnalyticsSummary struct {
	StartDate         time.Time              `json:"start_date"`
	EndDate           time.Time              `json:"end_date"`
	TotalSales        decimal.Decimal        `json:"total_sales"`
	TotalOrders       int                    `json:"total_orders"`
	AverageOrderValue decimal.Decimal        `json:"average_order_value"`
	TotalProfit       decimal.Decimal        `json:"total_profit"`
	Daily             []*DailySalesAnalytics `json:"daily"`
}

// DateError records a single failed day inside a range recompute.
type DateError struct {
	Date  time.Time `json:"date"`
	Error string    `json:"error"`
}

// RangeResult is the outcome of a range recompute. Failed days are data, not
// a range-level error: one bad date must not abort the remaining dates.
type RangeResult struct {
	StoreID  string                 `json:"store_id"`
	Computed []*DailySalesAnalytics `json:"computed"`
	Failed   []*DateError           `json:"failed"`
}

// SummarizeDailyAnalytics combines daily rows into an AnalyticsSummary for the
// given window. The period average order value is recomputed from the period
// totals rather than averaged over the daily averages.
func SummarizeDailyAnalytics(startDate, endDate time.Time, rows []*DailySalesAnalytics) *AnalyticsSummary {
	summary := &AnalyticsSummary{
		StartDate: startDate,
		EndDate:   endDate,
		Daily:     rows,
	}

	for _, row := range rows {
		if row == nil {
			continue
		}
		summary.TotalSales = summary.TotalSales.Add(row.TotalSales)
		summary.TotalOrders += row.TotalOrders
		summary.TotalProfit = summary.TotalProfit.Add(row.Profit)
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalSales.
			Div(decimal.NewFromInt(int64(summary.TotalOrders))).
			Round(2)
	}

	return summary
}
