package model

import "time"

// ListingEntity mirrors one marketplace-side item. ProductID stays nil until
// the listing is matched to a local product; unmatched listings are excluded
// from replenishment.
type ListingEntity struct {
	ID                uint64     `db:"id" json:"id"`
	AccountID         uint64     `db:"account_id" json:"account_id"`
	ExternalItemID    string     `db:"external_item_id" json:"external_item_id"`
	ProductID         *uint64    `db:"product_id" json:"product_id,omitempty"`
	Title             string     `db:"title" json:"title"`
	Price             float64    `db:"price" json:"price"`
	AvailableQuantity int64      `db:"available_quantity" json:"available_quantity"`
	SoldQuantity      int64      `db:"sold_quantity" json:"sold_quantity"`
	HasPromotion      bool       `db:"has_promotion" json:"has_promotion"`
	DiscountPercent   float64    `db:"discount_percent" json:"discount_percent"`
	Fulfillment       bool       `db:"fulfillment" json:"fulfillment"`
	PushEnabled       bool       `db:"push_enabled" json:"push_enabled"`
	SyncStatus        string     `db:"sync_status" json:"sync_status"`
	LastUpdated       time.Time  `db:"last_updated" json:"last_updated"`
	LastSyncAt        *time.Time `db:"last_sync_at" json:"last_sync_at,omitempty"`
}

type LinkListingRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
}
