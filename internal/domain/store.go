package domain

import "time"

// Store is a connected e-commerce shop account. Orders, costs and analytics
// rows all hang off a store ID.
type Store struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Platform   string     `json:"platform"`
	ShopDomain string     `json:"shop_domain"`
	Currency   string     `json:"currency"`
	Active     bool       `json:"active"`
	LastSyncAt *time.Time `json:"last_sync_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateStoreRequest struct {
	Name       string `json:"name"`
	Platform   string `json:"platform"`
	ShopDomain string `json:"shop_domain"`
	Currency   string `json:"currency"`
}

type UpdateStoreRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name"`
	ShopDomain *string `json:"shop_domain"`
	Currency   *string `json:"currency"`
	Active     *bool   `json:"active"`
}
