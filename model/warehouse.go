package model

import "time"

type WarehouseEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Role string `db:"role" json:"role"`
}

// StockEntry is the authoritative quantity for one (product, warehouse) pair.
// Absence of a row means quantity zero.
type StockEntry struct {
	ProductID   uint64 `db:"product_id" json:"product_id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	SafetyStock int64  `db:"safety_stock" json:"safety_stock"`
}

type AdjustStockRequest struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Delta       int64  `json:"delta" validate:"required"`
}

type TransferItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type TransferRequest struct {
	OriginWarehouseID uint64                `json:"origin_warehouse_id" validate:"required"`
	DestWarehouseID   uint64                `json:"dest_warehouse_id" validate:"required"`
	Note              string                `json:"note"`
	Items             []TransferItemRequest `json:"items" validate:"required,dive,required"`
}

type TransferLine struct {
	ProductID uint64 `db:"product_id" json:"product_id"`
	Quantity  int64  `db:"quantity" json:"quantity"`
}

// TransferRecord is immutable history once executed. Reference is the
// external identifier handed back to callers and printed on picking slips.
type TransferRecord struct {
	ID                uint64         `db:"id" json:"id"`
	Reference         string         `db:"reference" json:"reference"`
	OriginWarehouseID uint64         `db:"origin_warehouse_id" json:"origin_warehouse_id"`
	DestWarehouseID   uint64         `db:"dest_warehouse_id" json:"dest_warehouse_id"`
	Note              string         `db:"note" json:"note,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	Lines             []TransferLine `json:"lines"`
}

type InsertTransferTxItem struct {
	Reference         string
	OriginWarehouseID uint64
	DestWarehouseID   uint64
	Note              string
}
