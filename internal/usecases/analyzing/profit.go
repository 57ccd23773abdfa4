package analyzing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/profitlens/storefront-analytics-api/infrastructure/repository"
	"github.com/profitlens/storefront-analytics-api/internal/config"
	"github.com/profitlens/storefront-analytics-api/internal/domain"
	"github.com/profitlens/storefront-analytics-api/pkg/utils"
)

// ProfitCalculator computes the net profit breakdown of a window from orders,
// variant costs, ad spend and operating costs.
type ProfitCalculator struct {
	orderRepository     repository.OrderRepository
	variantRepository   repository.VariantRepository
	adSpendRepository   repository.AdSpendRepository
	otherCostRepository repository.OtherCostRepository
	feeRate             decimal.Decimal
	feeFixed            decimal.Decimal
}

func NewProfitCalculator(
	fees config.Fees,
	orderRepo repository.OrderRepository,
	variantRepo repository.VariantRepository,
	adSpendRepo repository.AdSpendRepository,
	otherCostRepo repository.OtherCostRepository,
) *ProfitCalculator {
	return &ProfitCalculator{
		orderRepository:     orderRepo,
		variantRepository:   variantRepo,
		adSpendRepository:   adSpendRepo,
		otherCostRepository: otherCostRepo,
		feeRate:             decimal.NewFromFloat(fees.TransactionRate),
		feeFixed:            decimal.NewFromFloat(fees.TransactionFixed),
	}
}

// NetProfit builds the breakdown for the half-open window
// [windowStart, windowEnd):
//
//	net revenue  = gross revenue - refunds - discounts
//	gross profit = net revenue - COGS
//	net profit   = gross profit - shipping - transaction fees - ad spend - other costs
//
// Transaction fees follow the default processor model (rate on gross revenue
// plus a fixed amount per order) until per-order fee data is ingested.
func (c *ProfitCalculator) NetProfit(ctx context.Context, storeID string, windowStart, windowEnd time.Time) (*domain.ProfitBreakdown, error) {
	totals, err := c.orderRepository.RevenueTotals(ctx, storeID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	totalCOGS, err := c.variantRepository.COGSTotal(ctx, storeID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	totalAdSpend, err := c.adSpendRepository.SumByWindow(ctx, storeID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	totalOtherCosts, err := c.otherCostRepository.SumForWindow(ctx, storeID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	netRevenue := totals.GrossRevenue.Sub(totals.TotalRefunds).Sub(totals.TotalDiscounts)
	grossProfit := netRevenue.Sub(totalCOGS)

	orderCount := decimal.NewFromInt(int64(totals.OrderCount))
	transactionFees := totals.GrossRevenue.Mul(c.feeRate).Add(c.feeFixed.Mul(orderCount))

	netProfit := grossProfit.
		Sub(totals.TotalShipping).
		Sub(transactionFees).
		Sub(totalAdSpend).
		Sub(totalOtherCosts)

	return &domain.ProfitBreakdown{
		GrossRevenue:         utils.Money(totals.GrossRevenue),
		NetRevenue:           utils.Money(netRevenue),
		GrossProfit:          utils.Money(grossProfit),
		NetProfit:            utils.Money(netProfit),
		TotalCOGS:            utils.Money(totalCOGS),
		TotalShippingCost:    utils.Money(totals.TotalShipping),
		TotalTransactionFees: utils.Money(transactionFees),
		TotalAdSpend:         utils.Money(totalAdSpend),
		TotalOtherCosts:      utils.Money(totalOtherCosts),
		TotalRefunds:         utils.Money(totals.TotalRefunds),
		TotalDiscounts:       utils.Money(totals.TotalDiscounts),
	}, nil
}
