package costing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/infrastructure/repository"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
)

// Manager maintains the cost inputs of the profit calculation: ad spend,
// operating costs, per-variant COGS and per-order shipping costs.
type Manager interface {
	RecordAdSpend(ctx context.Context, storeID string, entries []*domain.AdSpend) error
	ListAdSpend(ctx context.Context, storeID string, startDate, endDate time.Time) ([]*domain.AdSpend, error)

	CreateOtherCost(ctx context.Context, cost *domain.OtherCost) error
	UpdateOtherCost(ctx context.Context, cost *domain.OtherCost) error
	DeleteOtherCost(ctx context.Context, storeID string, costID int64) error
	ListOtherCosts(ctx context.Context, storeID string) ([]*domain.OtherCost, error)

	UpsertVariants(ctx context.Context, storeID string, variants []*domain.ProductVariant) error
	ListVariants(ctx context.Context, storeID string) ([]*domain.ProductVariant, error)
	UpdateVariantCOGS(ctx context.Context, storeID, variantID string, cogs decimal.Decimal) error
	BulkUpdateVariantCOGS(ctx context.Context, storeID string, updates []*domain.VariantCostUpdate) (int, error)

	UpdateOrderShippingCost(ctx context.Context, storeID, orderID string, cost decimal.Decimal) error
}

type Service struct {
	storeRepository     repository.StoreRepository
	orderRepository     repository.OrderRepository
	variantRepository   repository.VariantRepository
	adSpendRepository   repository.AdSpendRepository
	otherCostRepository repository.OtherCostRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	variantRepo repository.VariantRepository,
	adSpendRepo repository.AdSpendRepository,
	otherCostRepo repository.OtherCostRepository,
) Manager {
	return &Service{
		storeRepository:     storeRepo,
		orderRepository:     orderRepo,
		variantRepository:   variantRepo,
		adSpendRepository:   adSpendRepo,
		otherCostRepository: otherCostRepo,
	}
}

func (s *Service) requireStore(ctx context.Context, storeID string) error {
	store, err := s.storeRepository.GetByID(ctx, storeID)
	if err != nil {
		return errors.Wrapf(err, "failed to load store %s", storeID)
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (s *Service) RecordAdSpend(ctx context.Context, storeID string, entries []*domain.AdSpend) error {
	if err := s.requireStore(ctx, storeID); err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.Spend.IsNegative() {
			return errors.Errorf("negative ad spend for %s on %s", entry.Platform, entry.Date.Format(time.DateOnly))
		}
	}

	if err := s.adSpendRepository.SaveOrUpdateBatch(ctx, storeID, entries); err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id": storeID,
		"entries":  len(entries),
	}).Info("ad spend recorded")

	return nil
}

func (s *Service) ListAdSpend(ctx context.Context, storeID string, startDate, endDate time.Time) ([]*domain.AdSpend, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	return s.adSpendRepository.ListByDateRange(ctx, storeID, startDate, endDate)
}

func (s *Service) CreateOtherCost(ctx context.Context, cost *domain.OtherCost) error {
	if err := s.requireStore(ctx, cost.StoreID); err != nil {
		return err
	}

	if err := validateOtherCost(cost); err != nil {
		return err
	}

	return s.otherCostRepository.Insert(ctx, cost)
}

func (s *Service) UpdateOtherCost(ctx context.Context, cost *domain.OtherCost) error {
	if err := validateOtherCost(cost); err != nil {
		return err
	}

	return s.otherCostRepository.Update(ctx, cost)
}

func (s *Service) DeleteOtherCost(ctx context.Context, storeID string, costID int64) error {
	return s.otherCostRepository.Delete(ctx, storeID, costID)
}

func (s *Service) ListOtherCosts(ctx context.Context, storeID string) ([]*domain.OtherCost, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	return s.otherCostRepository.List(ctx, storeID)
}

func (s *Service) UpsertVariants(ctx context.Context, storeID string, variants []*domain.ProductVariant) error {
	if err := s.requireStore(ctx, storeID); err != nil {
		return err
	}

	return s.variantRepository.UpsertBatch(ctx, storeID, variants)
}

func (s *Service) ListVariants(ctx context.Context, storeID string) ([]*domain.ProductVariant, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	return s.variantRepository.ListByStore(ctx, storeID)
}

func (s *Service) UpdateVariantCOGS(ctx context.Context, storeID, variantID string, cogs decimal.Decimal) error {
	if cogs.IsNegative() {
		return errors.New("cost of goods sold must not be negative")
	}

	return s.variantRepository.UpdateCOGS(ctx, storeID, variantID, cogs)
}

func (s *Service) BulkUpdateVariantCOGS(ctx context.Context, storeID string, updates []*domain.VariantCostUpdate) (int, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return 0, err
	}

	for _, update := range updates {
		if update.COGS.IsNegative() {
			return 0, errors.Errorf("cost of goods sold must not be negative for variant %s", update.VariantID)
		}
	}

	updated, err := s.variantRepository.BulkUpdateCOGS(ctx, storeID, updates)
	if err != nil {
		return 0, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"store_id": storeID,
		"updated":  updated,
	}).Info("variant costs updated")

	return updated, nil
}

func (s *Service) UpdateOrderShippingCost(ctx context.Context, storeID, orderID string, cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errors.New("shipping cost must not be negative")
	}

	return s.orderRepository.UpdateShippingCost(ctx, storeID, orderID, cost)
}

func validateOtherCost(cost *domain.OtherCost) error {
	if cost.Category == "" {
		return errors.New("cost category is required")
	}
	if cost.Amount.IsNegative() {
		return errors.New("cost amount must not be negative")
	}

	switch cost.Frequency {
	case domain.FrequencyOneTime, domain.FrequencyMonthly, domain.FrequencyYearly:
	default:
		return errors.Errorf("unknown cost frequency: %s", cost.Frequency)
	}

	if cost.EndDate != nil && cost.EndDate.Before(cost.StartDate) {
		return domain.ErrInvalidDateRange
	}

	return nil
}
