package transfer

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/estoquehub/sync-engine/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TransferRepository interface {
	InsertTransferTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferTxItem) (uint64, error)
	InsertTransferLinesTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, lines []model.TransferLine) error
	List(ctx context.Context, page, perPage int) ([]model.TransferRecord, error)
	GetLines(ctx context.Context, transferID uint64) ([]model.TransferLine, error)
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTransferTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertTransferTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO transfer (reference, origin_warehouse_id, dest_warehouse_id, note) VALUES (?, ?, ?, ?)", req.Reference, req.OriginWarehouseID, req.DestWarehouseID, req.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertTransferLinesTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, lines []model.TransferLine) error {
	q := "INSERT INTO transfer_line (transfer_id, product_id, quantity) VALUES (?, ?, ?)"
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, q, transferID, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) List(ctx context.Context, page, perPage int) ([]model.TransferRecord, error) {
	offset := (page - 1) * perPage
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, reference, origin_warehouse_id, dest_warehouse_id, note, created_at FROM transfer ORDER BY id DESC LIMIT ? OFFSET ?", perPage, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.TransferRecord, 0)
	for rows.Next() {
		var rec model.TransferRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQL) GetLines(ctx context.Context, transferID uint64) ([]model.TransferLine, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT product_id, quantity FROM transfer_line WHERE transfer_id = ?", transferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.TransferLine, 0)
	for rows.Next() {
		var l model.TransferLine
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
