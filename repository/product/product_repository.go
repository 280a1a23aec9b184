package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/estoquehub/sync-engine/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetBySKU(ctx context.Context, sku string) (*model.ProductEntity, error)
	ListReplenishmentCandidates(ctx context.Context) ([]uint64, error)
	GetConfig(ctx context.Context, productID uint64) (*model.ReplenishmentConfig, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var p model.ProductEntity
	q := "SELECT id, sku, name, average_cost_cents, unit_multiplier FROM product WHERE id = ?"
	if err := r.conn.GetContext(ctx, &p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) GetBySKU(ctx context.Context, sku string) (*model.ProductEntity, error) {
	var p model.ProductEntity
	q := "SELECT id, sku, name, average_cost_cents, unit_multiplier FROM product WHERE sku = ?"
	if err := r.conn.GetContext(ctx, &p, q, sku); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListReplenishmentCandidates returns products with at least one linked
// listing or one stock row; everything else has no demand or supply signal.
func (r *SQL) ListReplenishmentCandidates(ctx context.Context) ([]uint64, error) {
	q := `SELECT DISTINCT p.id FROM product p
LEFT JOIN listing l ON l.product_id = p.id
LEFT JOIN stock_entry se ON se.product_id = p.id
WHERE l.id IS NOT NULL OR se.product_id IS NOT NULL
ORDER BY p.id`
	ids := make([]uint64, 0)
	if err := r.conn.SelectContext(ctx, &ids, q); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetConfig returns the product-specific config row, falling back to the
// global default row (product_id IS NULL). Nil when neither exists.
func (r *SQL) GetConfig(ctx context.Context, productID uint64) (*model.ReplenishmentConfig, error) {
	var cfg model.ReplenishmentConfig
	q := `SELECT product_id, avg_delivery_days, full_release_days, safety_stock, min_coverage_days, analysis_period_days
FROM replenishment_config
WHERE product_id = ? OR product_id IS NULL
ORDER BY product_id IS NULL
LIMIT 1`
	if err := r.conn.GetContext(ctx, &cfg, q, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}
