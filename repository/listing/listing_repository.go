package listing

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

type ListingRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.ListingEntity, error)
	GetByExternalItemID(ctx context.Context, externalItemID string) (*model.ListingEntity, error)
	GetByProductID(ctx context.Context, productID uint64) ([]model.ListingEntity, error)
	Upsert(ctx context.Context, l *model.ListingEntity) error
	SetProductID(ctx context.Context, id uint64, productID *uint64) error
	SetSyncStatus(ctx context.Context, id uint64, status string, syncedAt time.Time) error
	UpdateSoldQuantity(ctx context.Context, externalItemID string, soldQuantity int64) error
	ListLinked(ctx context.Context) ([]model.ListingEntity, error)
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const listingColumns = "id, account_id, external_item_id, product_id, title, price, available_quantity, sold_quantity, has_promotion, discount_percent, fulfillment, push_enabled, sync_status, last_updated, last_sync_at"

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ListingEntity, error) {
	var l model.ListingEntity
	q := "SELECT " + listingColumns + " FROM listing WHERE id = ?"
	if err := r.conn.GetContext(ctx, &l, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQL) GetByExternalItemID(ctx context.Context, externalItemID string) (*model.ListingEntity, error) {
	var l model.ListingEntity
	q := "SELECT " + listingColumns + " FROM listing WHERE external_item_id = ?"
	if err := r.conn.GetContext(ctx, &l, q, externalItemID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQL) GetByProductID(ctx context.Context, productID uint64) ([]model.ListingEntity, error) {
	return r.queryList(ctx, "SELECT "+listingColumns+" FROM listing WHERE product_id = ?", productID)
}

// Upsert writes the cached marketplace fields keyed on external_item_id.
// Link state (product_id) is managed separately and never touched here.
func (r *SQL) Upsert(ctx context.Context, l *model.ListingEntity) error {
	q := `INSERT INTO listing (account_id, external_item_id, product_id, title, price, available_quantity, sold_quantity, has_promotion, discount_percent, fulfillment, push_enabled, sync_status, last_updated, last_sync_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE title = VALUES(title), price = VALUES(price), available_quantity = VALUES(available_quantity), has_promotion = VALUES(has_promotion), discount_percent = VALUES(discount_percent), fulfillment = VALUES(fulfillment), sync_status = VALUES(sync_status), last_updated = VALUES(last_updated), last_sync_at = VALUES(last_sync_at)`
	_, err := r.conn.ExecContext(ctx, q,
		l.AccountID, l.ExternalItemID, l.ProductID, l.Title, l.Price, l.AvailableQuantity, l.SoldQuantity,
		l.HasPromotion, l.DiscountPercent, l.Fulfillment, l.PushEnabled, l.SyncStatus, l.LastUpdated, l.LastSyncAt)
	return err
}

func (r *SQL) SetProductID(ctx context.Context, id uint64, productID *uint64) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE listing SET product_id = ? WHERE id = ?", productID, id)
	return err
}

func (r *SQL) SetSyncStatus(ctx context.Context, id uint64, status string, syncedAt time.Time) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE listing SET sync_status = ?, last_sync_at = ? WHERE id = ?", status, syncedAt, id)
	return err
}

func (r *SQL) UpdateSoldQuantity(ctx context.Context, externalItemID string, soldQuantity int64) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE listing SET sold_quantity = ? WHERE external_item_id = ?", soldQuantity, externalItemID)
	return err
}

func (r *SQL) ListLinked(ctx context.Context) ([]model.ListingEntity, error) {
	return r.queryList(ctx, "SELECT "+listingColumns+" FROM listing WHERE product_id IS NOT NULL")
}

func (r *SQL) queryList(ctx context.Context, query string, args ...interface{}) ([]model.ListingEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]model.ListingEntity, 0)
	for rows.Next() {
		var l model.ListingEntity
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
