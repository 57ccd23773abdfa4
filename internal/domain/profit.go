package domain

import "github.com/shopspring/decimal"

// ProfitBreakdown is the full cost decomposition for a store and date window.
// The daily analytics row stores only NetProfit; the breakdown endpoint
// exposes the rest.
type ProfitBreakdown struct {
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	NetRevenue   decimal.Decimal `json:"net_revenue"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	NetProfit    decimal.Decimal `json:"net_profit"`

	TotalCOGS            decimal.Decimal `json:"total_cogs"`
	TotalShippingCost    decimal.Decimal `json:"total_shipping_cost"`
	TotalTransactionFees decimal.Decimal `json:"total_transaction_fees"`
	TotalAdSpend         decimal.Decimal `json:"total_ad_spend"`
	TotalOtherCosts      decimal.Decimal `json:"total_other_costs"`
	TotalRefunds         decimal.Decimal `json:"total_refunds"`
	TotalDiscounts       decimal.Decimal `json:"total_discounts"`
}
