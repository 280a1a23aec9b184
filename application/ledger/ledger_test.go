package ledger_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appledger "github.com/estoquehub/sync-engine/application/ledger"
	"github.com/estoquehub/sync-engine/constant"
	stockmocks "github.com/estoquehub/sync-engine/mocks/repository/stock"
	transfermocks "github.com/estoquehub/sync-engine/mocks/repository/transfer"
	txmocks "github.com/estoquehub/sync-engine/mocks/repository/tx"
	"github.com/estoquehub/sync-engine/model"
	cerr "github.com/estoquehub/sync-engine/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestLedgerApp_Transfer(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		stockRepo    *stockmocks.StockRepository
		transferRepo *transfermocks.TransferRepository
	}
	type args struct {
		ctx context.Context
		req *model.TransferRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.TransferRecord
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: transfer two lines",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TransferRequest{
					OriginWarehouseID: 1,
					DestWarehouseID:   2,
					Note:              "restock full",
					Items: []model.TransferItemRequest{
						{ProductID: 10, Quantity: 5},
						{ProductID: 11, Quantity: 3},
					},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()

				f.stockRepo.
					On("GetQuantitiesForUpdateTx", mock.Anything, mock.Anything, uint64(1), []uint64{10, 11}).
					Return(map[uint64]int64{10: 5, 11: 10}, nil).
					Once()

				f.stockRepo.On("AddQuantityTx", mock.Anything, mock.Anything, uint64(10), uint64(1), int64(-5)).Return(nil).Once()
				f.stockRepo.On("AddQuantityTx", mock.Anything, mock.Anything, uint64(10), uint64(2), int64(5)).Return(nil).Once()
				f.stockRepo.On("AddQuantityTx", mock.Anything, mock.Anything, uint64(11), uint64(1), int64(-3)).Return(nil).Once()
				f.stockRepo.On("AddQuantityTx", mock.Anything, mock.Anything, uint64(11), uint64(2), int64(3)).Return(nil).Once()

				f.transferRepo.
					On("InsertTransferTx", mock.Anything, mock.Anything, mock.MatchedBy(func(item *model.InsertTransferTxItem) bool {
						return item.Reference != "" &&
							item.OriginWarehouseID == 1 &&
							item.DestWarehouseID == 2 &&
							item.Note == "restock full"
					})).
					Return(uint64(7), nil).
					Once()

				f.transferRepo.
					On("InsertTransferLinesTx", mock.Anything, mock.Anything, uint64(7), []model.TransferLine{
						{ProductID: 10, Quantity: 5},
						{ProductID: 11, Quantity: 3},
					}).
					Return(nil).
					Once()

				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.TransferRecord{
				ID:                7,
				OriginWarehouseID: 1,
				DestWarehouseID:   2,
				Note:              "restock full",
				Lines: []model.TransferLine{
					{ProductID: 10, Quantity: 5},
					{ProductID: 11, Quantity: 3},
				},
			},
			wantErr: false,
		},
		{
			name: "success: duplicate product lines are merged",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TransferRequest{
					OriginWarehouseID: 1,
					DestWarehouseID:   2,
					Items: []model.TransferItemRequest{
						{ProductID: 10, Quantity: 3},
						{ProductID: 10, Quantity: 4},
					},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()

				// sufficiency must be checked against the combined demand
				f.stockRepo.
					On("GetQuantitiesForUpdateTx", mock.Anything, mock.Anything, uint64(1), []uint64{10}).
					Return(map[uint64]int64{10: 7}, nil).
					Once()

				f.stockRepo.On("AddQuantityTx", mock.Anything, mock.Anything, uint64(10), uint64(1), int64(-7)).Return(nil).Once()
				f.stockRepo.On("AddQuantityTx", mock.Anything, mock.Anything, uint64(10), uint64(2), int64(7)).Return(nil).Once()

				f.transferRepo.
					On("InsertTransferTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.InsertTransferTxItem")).
					Return(uint64(8), nil).
					Once()

				f.transferRepo.
					On("InsertTransferLinesTx", mock.Anything, mock.Anything, uint64(8), []model.TransferLine{
						{ProductID: 10, Quantity: 7},
					}).
					Return(nil).
					Once()

				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			want: &model.TransferRecord{
				ID:                8,
				OriginWarehouseID: 1,
				DestWarehouseID:   2,
				Lines: []model.TransferLine{
					{ProductID: 10, Quantity: 7},
				},
			},
			wantErr: false,
		},
		{
			name: "error: one short line fails the whole transfer",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TransferRequest{
					OriginWarehouseID: 1,
					DestWarehouseID:   2,
					Items: []model.TransferItemRequest{
						{ProductID: 10, Quantity: 5},
						{ProductID: 11, Quantity: 3},
					},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()

				f.stockRepo.
					On("GetQuantitiesForUpdateTx", mock.Anything, mock.Anything, uint64(1), []uint64{10, 11}).
					Return(map[uint64]int64{10: 5, 11: 2}, nil).
					Once()

				// no mutation happens; the transaction is rolled back
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: origin equals destination",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TransferRequest{
					OriginWarehouseID: 1,
					DestWarehouseID:   1,
					Items: []model.TransferItemRequest{
						{ProductID: 10, Quantity: 5},
					},
				},
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: non-positive quantity",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TransferRequest{
					OriginWarehouseID: 1,
					DestWarehouseID:   2,
					Items: []model.TransferItemRequest{
						{ProductID: 10, Quantity: 0},
					},
				},
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.stockRepo, tt.fields.transferRepo)

			got, err := app.Transfer(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transfer() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Reference == "" {
				t.Fatal("Transfer() returned an empty reference")
			}
			got.Reference = ""
			got.CreatedAt = time.Time{}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Transfer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLedgerApp_Adjust(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		stockRepo    *stockmocks.StockRepository
		transferRepo *transfermocks.TransferRepository
	}
	type args struct {
		ctx         context.Context
		productID   uint64
		warehouseID uint64
		delta       int64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     int64
		wantErr  bool
	}{
		{
			name: "success: positive delta",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				productID:   10,
				warehouseID: 1,
				delta:       2,
			},
			mockCall: func(f fields) {
				f.stockRepo.On("GetQuantity", mock.Anything, uint64(10), uint64(1)).Return(int64(3), nil).Once()
				f.stockRepo.On("SetQuantity", mock.Anything, uint64(10), uint64(1), int64(5)).Return(nil).Once()
			},
			want:    5,
			wantErr: false,
		},
		{
			name: "success: negative delta clamps at zero",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				productID:   10,
				warehouseID: 1,
				delta:       -100,
			},
			mockCall: func(f fields) {
				f.stockRepo.On("GetQuantity", mock.Anything, uint64(10), uint64(1)).Return(int64(3), nil).Once()
				f.stockRepo.On("SetQuantity", mock.Anything, uint64(10), uint64(1), int64(0)).Return(nil).Once()
			},
			want:    0,
			wantErr: false,
		},
		{
			name: "error: read fails",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				stockRepo:    stockmocks.NewStockRepository(t),
				transferRepo: transfermocks.NewTransferRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				productID:   10,
				warehouseID: 1,
				delta:       1,
			},
			mockCall: func(f fields) {
				f.stockRepo.On("GetQuantity", mock.Anything, uint64(10), uint64(1)).Return(int64(0), errors.New("db error")).Once()
			},
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.stockRepo, tt.fields.transferRepo)

			got, err := app.Adjust(tt.args.ctx, tt.args.productID, tt.args.warehouseID, tt.args.delta)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Adjust() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Adjust() = %d, want %d", got, tt.want)
			}
		})
	}
}
