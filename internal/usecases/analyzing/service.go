package analyzing

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/infrastructure/cache"
	"github.com/profitlens/storefront-analytics-api/infrastructure/repository"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
	"github.com/profitlens/storefront-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Service struct {
	storeRepository     repository.StoreRepository
	orderRepository     repository.OrderRepository
	analyticsRepository repository.DailyAnalyticsRepository
	profitCalculator    *ProfitCalculator
	cache               cache.Cache
	useCache            bool
}

func NewService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	analyticsRepo repository.DailyAnalyticsRepository,
	profitCalculator *ProfitCalculator,
) *Service {
	return &Service{
		storeRepository:     storeRepo,
		orderRepository:     orderRepo,
		analyticsRepository: analyticsRepo,
		profitCalculator:    profitCalculator,
		cache:               cache.NewNoopCache(),
		useCache:            false,
	}
}

// WithCache enables the read-side cache for range queries. Recomputations
// invalidate the store's cached entries.
func (s *Service) WithCache(c cache.Cache) *Service {
	if c != nil {
		s.cache = c
		s.useCache = true
	}
	return s
}

// ComputeDay aggregates one calendar day of orders into the analytics row for
// (store, date) and upserts it. Cancelled orders are excluded. A day without
// orders stores zeros.
func (s *Service) ComputeDay(ctx context.Context, storeID string, date time.Time) (*domain.DailySalesAnalytics, error) {
	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load store %s: %w", storeID, err)
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	dayStart := utils.TruncateToDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	orders, err := s.orderRepository.ListByStoreAndWindow(ctx, storeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for %s: %w", dayStart.Format(time.DateOnly), err)
	}

	totalSales := decimal.Zero
	for _, order := range orders {
		totalSales = totalSales.Add(order.TotalPrice)
	}

	totalOrders := len(orders)

	averageOrderValue := decimal.Zero
	if totalOrders > 0 {
		averageOrderValue = totalSales.Div(decimal.NewFromInt(int64(totalOrders)))
	}

	breakdown, err := s.profitCalculator.NetProfit(ctx, storeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute profit for %s: %w", dayStart.Format(time.DateOnly), err)
	}

	row := &domain.DailySalesAnalytics{
		StoreID:           storeID,
		Date:              dayStart,
		TotalSales:        utils.Money(totalSales),
		TotalOrders:       totalOrders,
		AverageOrderValue: utils.Money(averageOrderValue),
		Profit:            breakdown.NetProfit,
	}

	if err := s.analyticsRepository.SaveOrUpdate(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to save analytics row: %w", err)
	}

	if s.useCache {
		s.cache.InvalidateStore(ctx, storeID)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id":     storeID,
		"date":         dayStart.Format(time.DateOnly),
		"total_orders": totalOrders,
		"total_sales":  row.TotalSales.String(),
	}).Debug("daily analytics computed")

	return row, nil
}

// ComputeRange recomputes every date in the half-open interval
// [startDate, endDate). The range is validated before any day is written. A
// date that fails is recorded in the result and the remaining dates still run.
func (s *Service) ComputeRange(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.RangeResult, error) {
	start := utils.TruncateToDay(startDate)
	end := utils.TruncateToDay(endDate)

	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load store %s: %w", storeID, err)
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	result := &domain.RangeResult{
		StoreID:  storeID,
		Computed: make([]*domain.DailySalesAnalytics, 0),
		Failed:   make([]*domain.DateError, 0),
	}

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		row, err := s.ComputeDay(ctx, storeID, day)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"store_id": storeID,
				"date":     day.Format(time.DateOnly),
			}).Errorf("failed to compute day: %v", err)

			result.Failed = append(result.Failed, &domain.DateError{
				Date:  day,
				Error: err.Error(),
			})
			continue
		}

		result.Computed = append(result.Computed, row)
	}

	return result, nil
}

// GetDailyAnalytics returns the stored rows for an inclusive date range.
func (s *Service) GetDailyAnalytics(ctx context.Context, storeID string, filters *domain.AnalyticsFilters) ([]*domain.DailySalesAnalytics, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, domain.ErrInvalidDateRange
	}
	if filters.StartDate.After(*filters.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	cacheKey := cache.Key(storeID, fmt.Sprintf(
		"daily:%s:%s",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	))

	if s.useCache {
		if payload, ok := s.cache.Get(ctx, cacheKey); ok {
			rows := make([]*domain.DailySalesAnalytics, 0)
			if err := json.Unmarshal(payload, &rows); err == nil {
				return rows, nil
			}
			log.ForContext(ctx).WithField("key", cacheKey).Warn("discarding unreadable cache entry")
		}
	}

	rows, err := s.analyticsRepository.GetByDateRange(ctx, storeID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, err
	}

	if s.useCache {
		if payload, err := json.Marshal(rows); err == nil {
			s.cache.Set(ctx, cacheKey, payload)
		}
	}

	return rows, nil
}

// GetSummary folds the stored rows of an inclusive date range into period
// totals. The period average order value is recomputed from the totals rather
// than averaging the daily averages.
func (s *Service) GetSummary(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.AnalyticsSummary, error) {
	rows, err := s.GetDailyAnalytics(ctx, storeID, &domain.AnalyticsFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, err
	}

	return domain.SummarizeDailyAnalytics(startDate, endDate, rows), nil
}

// NetProfit exposes the profit breakdown for an inclusive date range.
func (s *Service) NetProfit(ctx context.Context, storeID string, startDate, endDate time.Time) (*domain.ProfitBreakdown, error) {
	start := utils.TruncateToDay(startDate)
	end := utils.TruncateToDay(endDate)

	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load store %s: %w", storeID, err)
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	// Inclusive date range becomes a half-open timestamp window.
	return s.profitCalculator.NetProfit(ctx, storeID, start, end.AddDate(0, 0, 1))
}
