package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/profitlens/storefront-analytics-api/infrastructure/repository/mocks"
	"github.com/profitlens/storefront-analytics-api/internal/config"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
)

const testStoreID = "stArQL7x9mKp"

func defaultFees() config.Fees {
	return config.Fees{
		TransactionRate:  0.029,
		TransactionFixed: 0.30,
	}
}

type serviceMocks struct {
	storeRepo     *mocks.MockStoreRepository
	orderRepo     *mocks.MockOrderRepository
	analyticsRepo *mocks.MockDailyAnalyticsRepository
	variantRepo   *mocks.MockVariantRepository
	adSpendRepo   *mocks.MockAdSpendRepository
	otherCostRepo *mocks.MockOtherCostRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storeRepo:     mocks.NewMockStoreRepository(ctrl),
		orderRepo:     mocks.NewMockOrderRepository(ctrl),
		analyticsRepo: mocks.NewMockDailyAnalyticsRepository(ctrl),
		variantRepo:   mocks.NewMockVariantRepository(ctrl),
		adSpendRepo:   mocks.NewMockAdSpendRepository(ctrl),
		otherCostRepo: mocks.NewMockOtherCostRepository(ctrl),
	}

	calculator := NewProfitCalculator(
		defaultFees(),
		m.orderRepo,
		m.variantRepo,
		m.adSpendRepo,
		m.otherCostRepo,
	)

	service := NewService(m.storeRepo, m.orderRepo, m.analyticsRepo, calculator)

	return service, m
}

func activeStore() *domain.Store {
	return &domain.Store{
		ID:       testStoreID,
		Name:     "Demo Store",
		Platform: "shopify",
		Currency: "USD",
		Active:   true,
	}
}

func money(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

func orderWithTotal(total string, processedAt time.Time) *domain.Order {
	return &domain.Order{
		ID:              "order-" + total,
		StoreID:         testStoreID,
		PlatformOrderID: "ext-" + total,
		TotalPrice:      money(total),
		Currency:        "USD",
		ProcessedAt:     processedAt,
	}
}

func zeroTotals() *domain.OrderTotals {
	return &domain.OrderTotals{}
}

// expectProfitInputs wires the four aggregate queries behind the profit
// calculation for one day window.
func (m *serviceMocks) expectProfitInputs(totals *domain.OrderTotals, cogs, adSpend, otherCosts decimal.Decimal) {
	m.orderRepo.EXPECT().
		RevenueTotals(gomock.Any(), testStoreID, gomock.Any(), gomock.Any()).
		Return(totals, nil)
	m.variantRepo.EXPECT().
		COGSTotal(gomock.Any(), testStoreID, gomock.Any(), gomock.Any()).
		Return(cogs, nil)
	m.adSpendRepo.EXPECT().
		SumByWindow(gomock.Any(), testStoreID, gomock.Any(), gomock.Any()).
		Return(adSpend, nil)
	m.otherCostRepo.EXPECT().
		SumForWindow(gomock.Any(), testStoreID, gomock.Any(), gomock.Any()).
		Return(otherCosts, nil)
}

func TestService_ComputeDay(t *testing.T) {
	date := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(m *serviceMocks)
		validate func(t *testing.T, row *domain.DailySalesAnalytics, err error)
	}{
		{
			name: "three orders produce total, count and average",
			setup: func(m *serviceMocks) {
				m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil)
				m.orderRepo.EXPECT().
					ListByStoreAndWindow(gomock.Any(), testStoreID, dayStart, dayStart.AddDate(0, 0, 1)).
					Return([]*domain.Order{
						orderWithTotal("10.00", dayStart.Add(2*time.Hour)),
						orderWithTotal("20.00", dayStart.Add(5*time.Hour)),
						orderWithTotal("30.00", dayStart.Add(22*time.Hour)),
					}, nil)
				m.expectProfitInputs(
					&domain.OrderTotals{GrossRevenue: money("60.00"), OrderCount: 3},
					decimal.Zero, decimal.Zero, decimal.Zero,
				)
				m.analyticsRepo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row *domain.DailySalesAnalytics) error {
						row.ID = 1
						return nil
					})
			},
			validate: func(t *testing.T, row *domain.DailySalesAnalytics, err error) {
				require.NoError(t, err)
				assert.Equal(t, testStoreID, row.StoreID)
				assert.Equal(t, dayStart, row.Date)
				assert.True(t, row.TotalSales.Equal(money("60.00")), "total sales: %s", row.TotalSales)
				assert.Equal(t, 3, row.TotalOrders)
				assert.True(t, row.AverageOrderValue.Equal(money("20.00")), "aov: %s", row.AverageOrderValue)
				// 60 - (60*0.029 + 3*0.30) = 57.36
				assert.True(t, row.Profit.Equal(money("57.36")), "profit: %s", row.Profit)
			},
		},
		{
			name: "day without orders stores zeros",
			setup: func(m *serviceMocks) {
				m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil)
				m.orderRepo.EXPECT().
					ListByStoreAndWindow(gomock.Any(), testStoreID, dayStart, dayStart.AddDate(0, 0, 1)).
					Return([]*domain.Order{}, nil)
				m.expectProfitInputs(zeroTotals(), decimal.Zero, decimal.Zero, decimal.Zero)
				m.analyticsRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, row *domain.DailySalesAnalytics, err error) {
				require.NoError(t, err)
				assert.True(t, row.TotalSales.IsZero())
				assert.Equal(t, 0, row.TotalOrders)
				assert.True(t, row.AverageOrderValue.IsZero())
				assert.True(t, row.Profit.IsZero())
			},
		},
		{
			name: "day with costs but no orders stores a negative profit",
			setup: func(m *serviceMocks) {
				m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil)
				m.orderRepo.EXPECT().
					ListByStoreAndWindow(gomock.Any(), testStoreID, dayStart, dayStart.AddDate(0, 0, 1)).
					Return([]*domain.Order{}, nil)
				m.expectProfitInputs(zeroTotals(), decimal.Zero, money("45.00"), money("5.00"))
				m.analyticsRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, row *domain.DailySalesAnalytics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, row.TotalOrders)
				assert.True(t, row.Profit.Equal(money("-50.00")), "profit: %s", row.Profit)
			},
		},
		{
			name: "unknown store fails",
			setup: func(m *serviceMocks) {
				m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(nil, nil)
			},
			validate: func(t *testing.T, row *domain.DailySalesAnalytics, err error) {
				assert.ErrorIs(t, err, domain.ErrStoreNotFound)
				assert.Nil(t, row)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)
			tt.setup(m)

			row, err := service.ComputeDay(context.Background(), testStoreID, date)
			tt.validate(t, row, err)
		})
	}
}

func TestService_ComputeDay_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	dayStart := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	orders := []*domain.Order{
		orderWithTotal("19.90", dayStart.Add(time.Hour)),
		orderWithTotal("35.10", dayStart.Add(3*time.Hour)),
	}

	m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil).Times(2)
	m.orderRepo.EXPECT().
		ListByStoreAndWindow(gomock.Any(), testStoreID, dayStart, dayStart.AddDate(0, 0, 1)).
		Return(orders, nil).
		Times(2)
	for i := 0; i < 2; i++ {
		m.expectProfitInputs(
			&domain.OrderTotals{GrossRevenue: money("55.00"), OrderCount: 2},
			money("12.00"), decimal.Zero, decimal.Zero,
		)
	}
	m.analyticsRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := service.ComputeDay(context.Background(), testStoreID, dayStart)
	require.NoError(t, err)

	second, err := service.ComputeDay(context.Background(), testStoreID, dayStart)
	require.NoError(t, err)

	assert.True(t, first.TotalSales.Equal(second.TotalSales))
	assert.Equal(t, first.TotalOrders, second.TotalOrders)
	assert.True(t, first.AverageOrderValue.Equal(second.AverageOrderValue))
	assert.True(t, first.Profit.Equal(second.Profit))
}

func TestService_ComputeRange(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("inverted range is rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newServiceWithMocks(ctrl)

		result, err := service.ComputeRange(context.Background(), testStoreID, start, start.AddDate(0, 0, -2))
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		assert.Nil(t, result)
	})

	t.Run("failing date does not abort the remaining dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		end := start.AddDate(0, 0, 3)
		badDay := start.AddDate(0, 0, 1)

		m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil).AnyTimes()

		m.orderRepo.EXPECT().
			ListByStoreAndWindow(gomock.Any(), testStoreID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, windowStart, _ time.Time) ([]*domain.Order, error) {
				if windowStart.Equal(badDay) {
					return nil, assert.AnError
				}
				return []*domain.Order{}, nil
			}).
			Times(3)

		// Profit inputs are only queried for the two days that load orders.
		for i := 0; i < 2; i++ {
			m.expectProfitInputs(zeroTotals(), decimal.Zero, decimal.Zero, decimal.Zero)
		}
		m.analyticsRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := service.ComputeRange(context.Background(), testStoreID, start, end)
		require.NoError(t, err)

		assert.Len(t, result.Computed, 2)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, badDay, result.Failed[0].Date)
	})

	t.Run("range over two days equals the two day results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		end := start.AddDate(0, 0, 2)

		m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil).AnyTimes()

		dayOne := []*domain.Order{orderWithTotal("10.00", start.Add(time.Hour))}
		dayTwo := []*domain.Order{
			orderWithTotal("20.00", start.AddDate(0, 0, 1).Add(time.Hour)),
			orderWithTotal("30.00", start.AddDate(0, 0, 1).Add(2*time.Hour)),
		}

		m.orderRepo.EXPECT().
			ListByStoreAndWindow(gomock.Any(), testStoreID, start, start.AddDate(0, 0, 1)).
			Return(dayOne, nil)
		m.orderRepo.EXPECT().
			ListByStoreAndWindow(gomock.Any(), testStoreID, start.AddDate(0, 0, 1), end).
			Return(dayTwo, nil)

		m.expectProfitInputs(&domain.OrderTotals{GrossRevenue: money("10.00"), OrderCount: 1}, decimal.Zero, decimal.Zero, decimal.Zero)
		m.expectProfitInputs(&domain.OrderTotals{GrossRevenue: money("50.00"), OrderCount: 2}, decimal.Zero, decimal.Zero, decimal.Zero)

		m.analyticsRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := service.ComputeRange(context.Background(), testStoreID, start, end)
		require.NoError(t, err)
		require.Len(t, result.Computed, 2)
		assert.Empty(t, result.Failed)

		assert.True(t, result.Computed[0].TotalSales.Equal(money("10.00")))
		assert.Equal(t, 1, result.Computed[0].TotalOrders)
		assert.True(t, result.Computed[1].TotalSales.Equal(money("50.00")))
		assert.Equal(t, 2, result.Computed[1].TotalOrders)

		// AOV times order count reproduces the day total.
		for _, row := range result.Computed {
			product := row.AverageOrderValue.Mul(decimal.NewFromInt(int64(row.TotalOrders)))
			assert.True(t, product.Equal(row.TotalSales), "aov * orders = %s, total = %s", product, row.TotalSales)
		}
	})

	t.Run("empty half-open range computes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.storeRepo.EXPECT().GetByID(gomock.Any(), testStoreID).Return(activeStore(), nil)

		result, err := service.ComputeRange(context.Background(), testStoreID, start, start)
		require.NoError(t, err)
		assert.Empty(t, result.Computed)
		assert.Empty(t, result.Failed)
	})
}

func TestService_GetDailyAnalytics(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	t.Run("returns stored rows for the range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		stored := []*domain.DailySalesAnalytics{
			{StoreID: testStoreID, Date: start, TotalSales: money("100.00"), TotalOrders: 4},
		}

		m.analyticsRepo.EXPECT().
			GetByDateRange(gomock.Any(), testStoreID, start, end).
			Return(stored, nil)

		rows, err := service.GetDailyAnalytics(context.Background(), testStoreID, &domain.AnalyticsFilters{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		assert.Equal(t, stored, rows)
	})

	t.Run("missing filters are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newServiceWithMocks(ctrl)

		_, err := service.GetDailyAnalytics(context.Background(), testStoreID, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		_, err = service.GetDailyAnalytics(context.Background(), testStoreID, &domain.AnalyticsFilters{
			StartDate: &end,
			EndDate:   &start,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}

func TestService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	m.analyticsRepo.EXPECT().
		GetByDateRange(gomock.Any(), testStoreID, start, end).
		Return([]*domain.DailySalesAnalytics{
			{StoreID: testStoreID, Date: start, TotalSales: money("100.00"), TotalOrders: 4, Profit: money("40.00")},
			{StoreID: testStoreID, Date: end, TotalSales: money("50.00"), TotalOrders: 1, Profit: money("-10.00")},
		}, nil)

	summary, err := service.GetSummary(context.Background(), testStoreID, start, end)
	require.NoError(t, err)

	assert.True(t, summary.TotalSales.Equal(money("150.00")))
	assert.Equal(t, 5, summary.TotalOrders)
	assert.True(t, summary.AverageOrderValue.Equal(money("30.00")))
	assert.True(t, summary.TotalProfit.Equal(money("30.00")))
	assert.Len(t, summary.Daily, 2)
}
