package model

// ProductEntity represents the product table entity. Identity and SKU are
// immutable; average cost is mutated by purchase confirmation outside this
// engine.
type ProductEntity struct {
	ID               uint64 `db:"id" json:"id"`
	SKU              string `db:"sku" json:"sku"`
	Name             string `db:"name" json:"name"`
	AverageCostCents int64  `db:"average_cost_cents" json:"average_cost_cents"`
	UnitMultiplier   int64  `db:"unit_multiplier" json:"unit_multiplier"`
}
