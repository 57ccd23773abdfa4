package domain

import "github.com/pkg/errors"

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCostNotFound     = errors.New("cost entry not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
