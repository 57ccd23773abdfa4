package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant carries the unit cost used for COGS. A nil CostOfGoodsSold
// is treated as zero by the profit calculator.
type ProductVariant struct {
	ID                string           `json:"id"`
	StoreID           string           `json:"store_id"`
	PlatformVariantID string           `json:"platform_variant_id"`
	Title             *string          `json:"title"`
	SKU               *string          `json:"sku"`
	Price             *decimal.Decimal `json:"price"`
	CostOfGoodsSold   *decimal.Decimal `json:"cost_of_goods_sold"`
	SyncedAt          time.Time        `json:"synced_at"`
}
