package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cost frequency values accepted for other costs.
const (
	FrequencyOneTime = "one_time"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// AdSpend is one advertising spend record per store, platform and day.
type AdSpend struct {
	ID           int64           `json:"id"`
	StoreID      string          `json:"store_id"`
	Platform     string          `json:"platform"`
	Date         time.Time       `json:"date"`
	Spend        decimal.Decimal `json:"spend"`
	CampaignName *string         `json:"campaign_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OtherCost is a one-time or recurring operating cost. Recurring costs with a
// nil EndDate are open-ended.
type OtherCost struct {
	ID          int64           `json:"id"`
	StoreID     string          `json:"store_id"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Frequency   string          `json:"frequency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// VariantCostUpdate sets the cost of goods sold for one product variant.
type VariantCostUpdate struct {
	VariantID string          `json:"variant_id"`
	COGS      decimal.Decimal `json:"cogs"`
}
