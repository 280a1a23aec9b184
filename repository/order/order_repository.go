package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/estoquehub/sync-engine/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	Upsert(ctx context.Context, rec *model.OrderRecord, items []model.OrderRecordItem) error
	SoldUnitsByProduct(ctx context.Context, productID uint64, since time.Time, statuses []string) (int64, error)
	SoldUnitsByExternalItem(ctx context.Context, externalItemID string, since time.Time, statuses []string) (int64, error)
	EarliestOrderAtByProduct(ctx context.Context, productID uint64, since time.Time, statuses []string) (*time.Time, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

// Upsert applies one normalized order keyed on its external id. Items are
// replaced wholesale so replaying the same order any number of times leaves
// identical rows.
func (r *SQL) Upsert(ctx context.Context, rec *model.OrderRecord, items []model.OrderRecordItem) error {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO order_record (external_order_id, account_id, status, ordered_at) VALUES (?, ?, ?, ?) ON DUPLICATE KEY UPDATE status = VALUES(status), ordered_at = VALUES(ordered_at), id = LAST_INSERT_ID(id)",
		rec.ExternalOrderID, rec.AccountID, rec.Status, rec.OrderedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_record_item WHERE order_record_id = ?", id); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, "INSERT INTO order_record_item (order_record_id, external_item_id, quantity, unit_price) VALUES (?, ?, ?, ?)", id, it.ExternalItemID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *SQL) SoldUnitsByProduct(ctx context.Context, productID uint64, since time.Time, statuses []string) (int64, error) {
	q := `SELECT COALESCE(SUM(oi.quantity),0)
FROM order_record_item oi
JOIN order_record o ON oi.order_record_id = o.id
JOIN listing l ON oi.external_item_id = l.external_item_id
WHERE l.product_id = ? AND o.ordered_at >= ? AND o.status IN (?)`
	return r.sumQuery(ctx, q, productID, since, statuses)
}

func (r *SQL) SoldUnitsByExternalItem(ctx context.Context, externalItemID string, since time.Time, statuses []string) (int64, error) {
	q := `SELECT COALESCE(SUM(oi.quantity),0)
FROM order_record_item oi
JOIN order_record o ON oi.order_record_id = o.id
WHERE oi.external_item_id = ? AND o.ordered_at >= ? AND o.status IN (?)`
	return r.sumQuery(ctx, q, externalItemID, since, statuses)
}

func (r *SQL) sumQuery(ctx context.Context, q string, key interface{}, since time.Time, statuses []string) (int64, error) {
	query, args, err := sqlx.In(q, key, since, statuses)
	if err != nil {
		return 0, err
	}
	var total sql.NullInt64
	if err := r.conn.GetContext(ctx, &total, r.conn.Rebind(query), args...); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *SQL) EarliestOrderAtByProduct(ctx context.Context, productID uint64, since time.Time, statuses []string) (*time.Time, error) {
	q := `SELECT MIN(o.ordered_at)
FROM order_record o
JOIN order_record_item oi ON oi.order_record_id = o.id
JOIN listing l ON oi.external_item_id = l.external_item_id
WHERE l.product_id = ? AND o.ordered_at >= ? AND o.status IN (?)`
	query, args, err := sqlx.In(q, productID, since, statuses)
	if err != nil {
		return nil, err
	}
	var earliest sql.NullTime
	if err := r.conn.GetContext(ctx, &earliest, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	if !earliest.Valid {
		return nil, nil
	}
	return &earliest.Time, nil
}
