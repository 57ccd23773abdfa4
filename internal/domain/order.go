package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a synchronized storefront order. (store_id, platform_order_id) is
// unique, so re-ingesting the same batch is an update, not a duplicate.
type Order struct {
	ID                 string           `json:"id"`
	StoreID            string           `json:"store_id"`
	PlatformOrderID    string           `json:"platform_order_id"`
	OrderNumber        string           `json:"order_number"`
	TotalPrice         decimal.Decimal  `json:"total_price"`
	TotalDiscount      decimal.Decimal  `json:"total_discount"`
	RefundedAmount     decimal.Decimal  `json:"refunded_amount"`
	ActualShippingCost *decimal.Decimal `json:"actual_shipping_cost"`
	Currency           string           `json:"currency"`
	FinancialStatus    *string          `json:"financial_status"`
	CancelledAt        *time.Time       `json:"cancelled_at"`
	ProcessedAt        time.Time        `json:"processed_at"`
	LineItems          []*LineItem      `json:"line_items,omitempty"`
	SyncedAt           time.Time        `json:"synced_at"`
}

// OrderTotals is the aggregate revenue picture of a window, excluding
// cancelled orders.
type OrderTotals struct {
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	TotalRefunds   decimal.Decimal `json:"total_refunds"`
	TotalShipping  decimal.Decimal `json:"total_shipping"`
	OrderCount     int             `json:"order_count"`
}

type LineItem struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	PlatformLineItemID string          `json:"platform_line_item_id"`
	PlatformVariantID  *string         `json:"platform_variant_id"`
	Title              string          `json:"title"`
	SKU                *string         `json:"sku"`
	Quantity           int             `json:"quantity"`
	Price              decimal.Decimal `json:"price"`
}

// Cancelled reports whether the order should be excluded from aggregation.
func (o *Order) Cancelled() bool {
	return o.CancelledAt != nil
}
