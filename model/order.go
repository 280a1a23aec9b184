package model

import "time"

// OrderRecord is a normalized marketplace order used only as aggregation
// input, never as a source of truth for stock.
type OrderRecord struct {
	ID              uint64    `db:"id" json:"id"`
	ExternalOrderID string    `db:"external_order_id" json:"external_order_id"`
	AccountID       uint64    `db:"account_id" json:"account_id"`
	Status          string    `db:"status" json:"status"`
	OrderedAt       time.Time `db:"ordered_at" json:"ordered_at"`
}

type OrderRecordItem struct {
	ExternalItemID string  `db:"external_item_id" json:"external_item_id"`
	Quantity       int64   `db:"quantity" json:"quantity"`
	UnitPrice      float64 `db:"unit_price" json:"unit_price"`
}

// OrderSyncReport summarizes one paging run over the order search endpoint.
// Skipped pages are a warning, not an error: their absence only delays sync.
type OrderSyncReport struct {
	PagesFetched   int      `json:"pages_fetched"`
	PagesSkipped   int      `json:"pages_skipped"`
	OrdersUpserted int      `json:"orders_upserted"`
	Warnings       []string `json:"warnings,omitempty"`
}
