package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

func TestSummarizeDailyAnalytics(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     []*DailySalesAnalytics
		validate func(t *testing.T, summary *AnalyticsSummary)
	}{
		{
			name: "totals and period average from two days",
			rows: []*DailySalesAnalytics{
				{Date: start, TotalSales: dec("100.00"), TotalOrders: 4, AverageOrderValue: dec("25.00"), Profit: dec("40.00")},
				{Date: end, TotalSales: dec("50.00"), TotalOrders: 1, AverageOrderValue: dec("50.00"), Profit: dec("-10.00")},
			},
			validate: func(t *testing.T, summary *AnalyticsSummary) {
				assert.True(t, summary.TotalSales.Equal(dec("150.00")))
				assert.Equal(t, 5, summary.TotalOrders)
				// 150 / 5, not the mean of the daily averages (37.50)
				assert.True(t, summary.AverageOrderValue.Equal(dec("30.00")), "aov: %s", summary.AverageOrderValue)
				assert.True(t, summary.TotalProfit.Equal(dec("30.00")))
				assert.Len(t, summary.Daily, 2)
			},
		},
		{
			name: "zero-activity days contribute nothing",
			rows: []*DailySalesAnalytics{
				{Date: start, TotalSales: dec("80.00"), TotalOrders: 2, Profit: dec("20.00")},
				{Date: start.AddDate(0, 0, 1)},
			},
			validate: func(t *testing.T, summary *AnalyticsSummary) {
				assert.True(t, summary.TotalSales.Equal(dec("80.00")))
				assert.Equal(t, 2, summary.TotalOrders)
				assert.True(t, summary.AverageOrderValue.Equal(dec("40.00")))
			},
		},
		{
			name: "no rows yields zero totals and zero average",
			rows: nil,
			validate: func(t *testing.T, summary *AnalyticsSummary) {
				assert.True(t, summary.TotalSales.IsZero())
				assert.Equal(t, 0, summary.TotalOrders)
				assert.True(t, summary.AverageOrderValue.IsZero())
				assert.True(t, summary.TotalProfit.IsZero())
			},
		},
		{
			name: "nil rows are skipped",
			rows: []*DailySalesAnalytics{
				nil,
				{Date: start, TotalSales: dec("10.00"), TotalOrders: 1, Profit: dec("5.00")},
			},
			validate: func(t *testing.T, summary *AnalyticsSummary) {
				assert.True(t, summary.TotalSales.Equal(dec("10.00")))
				assert.Equal(t, 1, summary.TotalOrders)
			},
		},
		{
			name: "average is rounded to cents",
			rows: []*DailySalesAnalytics{
				{Date: start, TotalSales: dec("100.00"), TotalOrders: 3},
			},
			validate: func(t *testing.T, summary *AnalyticsSummary) {
				assert.True(t, summary.AverageOrderValue.Equal(dec("33.33")), "aov: %s", summary.AverageOrderValue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := SummarizeDailyAnalytics(start, end, tt.rows)

			assert.Equal(t, start, summary.StartDate)
			assert.Equal(t, end, summary.EndDate)
			tt.validate(t, summary)
		})
	}
}
