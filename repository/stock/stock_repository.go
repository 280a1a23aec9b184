package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/estoquehub/sync-engine/model"
)

type StockRepository interface {
	GetQuantity(ctx context.Context, productID, warehouseID uint64) (int64, error)
	GetQuantitiesForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, productIDs []uint64) (map[uint64]int64, error)
	AddQuantityTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, delta int64) error
	SetQuantity(ctx context.Context, productID, warehouseID uint64, quantity int64) error
	TotalQuantity(ctx context.Context, productID uint64) (int64, error)
	TotalQuantityByRole(ctx context.Context, productID uint64, role string) (int64, error)
	GetSafetyStock(ctx context.Context, productID uint64) (int64, error)
	GetEntriesByProduct(ctx context.Context, productID uint64) ([]model.StockEntry, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetQuantity(ctx context.Context, productID, warehouseID uint64) (int64, error) {
	var qty int64
	q := "SELECT quantity FROM stock_entry WHERE product_id = ? AND warehouse_id = ?"
	if err := r.conn.GetContext(ctx, &qty, q, productID, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			// absence means zero, not error
			return 0, nil
		}
		return 0, err
	}
	return qty, nil
}

// GetQuantitiesForUpdateTx locks the warehouse rows for the given products and
// returns their quantities. Products without a row map to 0. Rows are locked
// in product id order so concurrent transfers over overlapping pairs cannot
// deadlock.
func (r *SQL) GetQuantitiesForUpdateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, productIDs []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(productIDs))
	for _, pid := range productIDs {
		out[pid] = 0
	}
	if len(productIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In("SELECT product_id, quantity FROM stock_entry WHERE warehouse_id = ? AND product_id IN (?) ORDER BY product_id FOR UPDATE", warehouseID, productIDs)
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryxContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e model.StockEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		out[e.ProductID] = e.Quantity
	}
	return out, rows.Err()
}

func (r *SQL) AddQuantityTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, delta int64) error {
	q := "INSERT INTO stock_entry (product_id, warehouse_id, quantity) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)"
	_, err := tx.ExecContext(ctx, q, productID, warehouseID, delta)
	return err
}

func (r *SQL) SetQuantity(ctx context.Context, productID, warehouseID uint64, quantity int64) error {
	q := "INSERT INTO stock_entry (product_id, warehouse_id, quantity) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)"
	_, err := r.conn.ExecContext(ctx, q, productID, warehouseID, quantity)
	return err
}

func (r *SQL) TotalQuantity(ctx context.Context, productID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity),0) FROM stock_entry WHERE product_id = ?"
	if err := r.conn.GetContext(ctx, &total, q, productID); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *SQL) TotalQuantityByRole(ctx context.Context, productID uint64, role string) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(se.quantity),0) FROM stock_entry se JOIN warehouse w ON se.warehouse_id = w.id WHERE se.product_id = ? AND w.role = ?"
	if err := r.conn.GetContext(ctx, &total, q, productID, role); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *SQL) GetSafetyStock(ctx context.Context, productID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(MAX(safety_stock),0) FROM stock_entry WHERE product_id = ?"
	if err := r.conn.GetContext(ctx, &total, q, productID); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *SQL) GetEntriesByProduct(ctx context.Context, productID uint64) ([]model.StockEntry, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT product_id, warehouse_id, quantity, safety_stock FROM stock_entry WHERE product_id = ?", productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.StockEntry, 0)
	for rows.Next() {
		var e model.StockEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
