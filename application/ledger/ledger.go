package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/model"
	stockrepo "github.com/estoquehub/sync-engine/repository/stock"
	transferrepo "github.com/estoquehub/sync-engine/repository/transfer"
	txrepo "github.com/estoquehub/sync-engine/repository/tx"
	"github.com/estoquehub/sync-engine/utils/errors"
	"github.com/estoquehub/sync-engine/utils/logger"
)

type LedgerApp interface {
	GetQuantity(ctx context.Context, productID, warehouseID uint64) (int64, error)
	TotalQuantity(ctx context.Context, productID uint64) (int64, error)
	Transfer(ctx context.Context, req *model.TransferRequest) (*model.TransferRecord, error)
	Adjust(ctx context.Context, productID, warehouseID uint64, delta int64) (int64, error)
	ListTransfers(ctx context.Context, page, perPage int) ([]model.TransferRecord, error)
}

type ledgerAppImpl struct {
	txRepo       txrepo.TxRepository
	stockRepo    stockrepo.StockRepository
	transferRepo transferrepo.TransferRepository
}

func NewLedgerApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, transferRepo transferrepo.TransferRepository) LedgerApp {
	return &ledgerAppImpl{txRepo: txRepo, stockRepo: stockRepo, transferRepo: transferRepo}
}

func (s *ledgerAppImpl) GetQuantity(ctx context.Context, productID, warehouseID uint64) (int64, error) {
	qty, err := s.stockRepo.GetQuantity(ctx, productID, warehouseID)
	if err != nil {
		logger.Error("[GetQuantity] get quantity failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return qty, nil
}

func (s *ledgerAppImpl) TotalQuantity(ctx context.Context, productID uint64) (int64, error) {
	total, err := s.stockRepo.TotalQuantity(ctx, productID)
	if err != nil {
		logger.Error("[TotalQuantity] sum failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return total, nil
}

// Transfer moves stock between two warehouses atomically: every line is
// checked against the locked origin rows first, and either all lines apply or
// none do. InsufficientStock reflects real-world state and is never retried.
func (s *ledgerAppImpl) Transfer(ctx context.Context, req *model.TransferRequest) (*model.TransferRecord, error) {
	if req.OriginWarehouseID == req.DestWarehouseID || len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// merge duplicate product lines so the sufficiency check sees the real demand
	requested := make(map[uint64]int64, len(req.Items))
	productIDs := make([]uint64, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if _, ok := requested[item.ProductID]; !ok {
			productIDs = append(productIDs, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	available, err := s.stockRepo.GetQuantitiesForUpdateTx(ctx, tx, req.OriginWarehouseID, productIDs)
	if err != nil {
		logger.Error("[Transfer] lock origin rows failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for pid, qty := range requested {
		if available[pid] < qty {
			logger.Info("[Transfer] insufficient stock",
				zap.Uint64("product_id", pid),
				zap.Int64("requested", qty),
				zap.Int64("available", available[pid]))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
	}

	for _, pid := range productIDs {
		qty := requested[pid]
		if err := s.stockRepo.AddQuantityTx(ctx, tx, pid, req.OriginWarehouseID, -qty); err != nil {
			logger.Error("[Transfer] decrement origin failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.stockRepo.AddQuantityTx(ctx, tx, pid, req.DestWarehouseID, qty); err != nil {
			logger.Error("[Transfer] increment destination failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	reference := uuid.NewString()
	transferID, err := s.transferRepo.InsertTransferTx(ctx, tx, &model.InsertTransferTxItem{
		Reference:         reference,
		OriginWarehouseID: req.OriginWarehouseID,
		DestWarehouseID:   req.DestWarehouseID,
		Note:              req.Note,
	})
	if err != nil {
		logger.Error("[Transfer] insert transfer failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lines := make([]model.TransferLine, 0, len(productIDs))
	for _, pid := range productIDs {
		lines = append(lines, model.TransferLine{ProductID: pid, Quantity: requested[pid]})
	}
	if err := s.transferRepo.InsertTransferLinesTx(ctx, tx, transferID, lines); err != nil {
		logger.Error("[Transfer] insert lines failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.TransferRecord{
		ID:                transferID,
		Reference:         reference,
		OriginWarehouseID: req.OriginWarehouseID,
		DestWarehouseID:   req.DestWarehouseID,
		Note:              req.Note,
		CreatedAt:         time.Now(),
		Lines:             lines,
	}, nil
}

// Adjust reconciles external truth into a single stock row. Negative results
// are clamped to zero instead of failing: external systems may report stale
// lower counts after a duplicate webhook.
func (s *ledgerAppImpl) Adjust(ctx context.Context, productID, warehouseID uint64, delta int64) (int64, error) {
	current, err := s.stockRepo.GetQuantity(ctx, productID, warehouseID)
	if err != nil {
		logger.Error("[Adjust] get quantity failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	next := current + delta
	if next < 0 {
		logger.Warn("[Adjust] clamping negative quantity",
			zap.Uint64("product_id", productID),
			zap.Uint64("warehouse_id", warehouseID),
			zap.Int64("current", current),
			zap.Int64("delta", delta))
		next = 0
	}

	if err := s.stockRepo.SetQuantity(ctx, productID, warehouseID, next); err != nil {
		logger.Error("[Adjust] set quantity failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return next, nil
}

func (s *ledgerAppImpl) ListTransfers(ctx context.Context, page, perPage int) ([]model.TransferRecord, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	records, err := s.transferRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListTransfers] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for i := range records {
		lines, err := s.transferRepo.GetLines(ctx, records[i].ID)
		if err != nil {
			logger.Error("[ListTransfers] get lines failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		records[i].Lines = lines
	}
	return records, nil
}
