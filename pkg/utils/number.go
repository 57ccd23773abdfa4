package utils

import "github.com/shopspring/decimal"

// Money rounds a decimal amount to cents.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
