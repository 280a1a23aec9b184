package sync_test

import (
	"context"
	"strings"
	"testing"
	"time"

	accountappmocks "github.com/estoquehub/sync-engine/mocks/application/account"
	ledgermocks "github.com/estoquehub/sync-engine/mocks/application/ledger"
	accountmocks "github.com/estoquehub/sync-engine/mocks/repository/account"
	listingmocks "github.com/estoquehub/sync-engine/mocks/repository/listing"
	ordermocks "github.com/estoquehub/sync-engine/mocks/repository/order"
	productmocks "github.com/estoquehub/sync-engine/mocks/repository/product"
	stockmocks "github.com/estoquehub/sync-engine/mocks/repository/stock"
	mpmocks "github.com/estoquehub/sync-engine/mocks/thirdparty/marketplace"
	"github.com/stretchr/testify/mock"

	appsync "github.com/estoquehub/sync-engine/application/sync"
	"github.com/estoquehub/sync-engine/cmd/config"
	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/model"
	"github.com/estoquehub/sync-engine/thirdparty/marketplace"
	cerr "github.com/estoquehub/sync-engine/utils/errors"
)

type syncMocks struct {
	accountApp  *accountappmocks.AccountApp
	ledgerApp   *ledgermocks.LedgerApp
	accountRepo *accountmocks.AccountRepository
	listingRepo *listingmocks.ListingRepository
	productRepo *productmocks.ProductRepository
	orderRepo   *ordermocks.OrderRepository
	stockRepo   *stockmocks.StockRepository
	mp          *mpmocks.Client
}

func newSyncApp(t *testing.T, cfg *config.Config) (appsync.SyncApp, syncMocks) {
	m := syncMocks{
		accountApp:  accountappmocks.NewAccountApp(t),
		ledgerApp:   ledgermocks.NewLedgerApp(t),
		accountRepo: accountmocks.NewAccountRepository(t),
		listingRepo: listingmocks.NewListingRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		orderRepo:   ordermocks.NewOrderRepository(t),
		stockRepo:   stockmocks.NewStockRepository(t),
		mp:          mpmocks.NewClient(t),
	}
	app := appsync.NewSyncApp(cfg, m.accountApp, m.ledgerApp, m.accountRepo, m.listingRepo, m.productRepo, m.orderRepo, m.stockRepo, m.mp, nil)
	return app, m
}

func syncTestConfig() *config.Config {
	return &config.Config{
		Sync: config.SyncConfig{
			PageSize:  2,
			PageCap:   10,
			PageDelay: time.Millisecond,
		},
		Replenish: config.ReplenishConfig{
			AnalysisPeriodDays: 30,
		},
	}
}

func TestSyncApp_ProcessWebhook_ItemStaleUpdateDiscarded(t *testing.T) {
	app, m := newSyncApp(t, syncTestConfig())

	stored := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	item := &marketplace.Item{
		ID:          "MLB123",
		Title:       "Widget",
		LastUpdated: stored.Add(-time.Hour),
	}

	m.accountRepo.
		On("GetByExternalUserID", mock.Anything, int64(777)).
		Return(&model.ExternalAccountEntity{ID: 1, ExternalUserID: 777, Active: true}, nil).
		Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Once()
	m.mp.On("FetchItem", mock.Anything, "token", "MLB123").Return(item, nil).Once()
	m.mp.On("FetchItemPrice", mock.Anything, "token", "MLB123").Return(&marketplace.ItemPrice{Price: 100}, nil).Once()

	// the stored snapshot is fresher; nothing may be written
	m.listingRepo.
		On("GetByExternalItemID", mock.Anything, "MLB123").
		Return(&model.ListingEntity{ID: 5, ExternalItemID: "MLB123", LastUpdated: stored}, nil).
		Once()

	err := app.ProcessWebhook(context.Background(), &model.WebhookPayload{
		Resource: "/items/MLB123",
		Topic:    constant.WebhookTopicItems,
		UserID:   777,
	})
	if err != nil {
		t.Fatalf("ProcessWebhook() error = %v", err)
	}
}

func TestSyncApp_ProcessWebhook_ItemAutoLinksBySKU(t *testing.T) {
	app, m := newSyncApp(t, syncTestConfig())

	item := &marketplace.Item{
		ID:                "MLB123",
		Title:             "Widget",
		SellerCustomField: "SKU-10",
		AvailableQuantity: 12,
		LastUpdated:       time.Now(),
	}

	m.accountRepo.
		On("GetByExternalUserID", mock.Anything, int64(777)).
		Return(&model.ExternalAccountEntity{ID: 1, ExternalUserID: 777, Active: true}, nil).
		Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Once()
	m.mp.On("FetchItem", mock.Anything, "token", "MLB123").Return(item, nil).Once()
	m.mp.On("FetchItemPrice", mock.Anything, "token", "MLB123").
		Return(&marketplace.ItemPrice{Price: 90, OriginalPrice: 100, HasPromotion: true, DiscountPercent: 10}, nil).
		Once()

	// first observation of the item
	m.listingRepo.On("GetByExternalItemID", mock.Anything, "MLB123").Return(nil, nil).Once()

	// the SKU matches a product no other listing claims
	m.productRepo.On("GetBySKU", mock.Anything, "SKU-10").Return(&model.ProductEntity{ID: 10, SKU: "SKU-10"}, nil).Once()
	m.listingRepo.On("GetByProductID", mock.Anything, uint64(10)).Return(nil, nil).Once()

	m.listingRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(l *model.ListingEntity) bool {
			return l.ExternalItemID == "MLB123" &&
				l.ProductID != nil && *l.ProductID == 10 &&
				l.SyncStatus == constant.SyncStatusSynced &&
				l.HasPromotion && l.DiscountPercent == 10
		})).
		Return(nil).
		Once()

	err := app.ProcessWebhook(context.Background(), &model.WebhookPayload{
		Resource: "/items/MLB123",
		Topic:    constant.WebhookTopicItems,
		UserID:   777,
	})
	if err != nil {
		t.Fatalf("ProcessWebhook() error = %v", err)
	}
}

func TestSyncApp_ProcessWebhook_OrderRecomputesSoldQuantity(t *testing.T) {
	app, m := newSyncApp(t, syncTestConfig())

	ord := &marketplace.Order{
		ID:         555,
		Status:     "paid",
		DateClosed: time.Now().Add(-time.Hour),
	}
	ord.OrderItems = []marketplace.OrderItem{{Quantity: 3, UnitPrice: 10}}
	ord.OrderItems[0].Item.ID = "MLB123"

	m.accountRepo.
		On("GetByExternalUserID", mock.Anything, int64(777)).
		Return(&model.ExternalAccountEntity{ID: 1, ExternalUserID: 777, Active: true}, nil).
		Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Once()
	m.mp.On("FetchOrder", mock.Anything, "token", "555").Return(ord, nil).Once()

	m.orderRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(rec *model.OrderRecord) bool {
			return rec.ExternalOrderID == "555" && rec.Status == "paid"
		}), mock.Anything).
		Return(nil).
		Once()

	// sold quantity comes from the period's order set, never from increments
	m.orderRepo.
		On("SoldUnitsByExternalItem", mock.Anything, "MLB123", mock.AnythingOfType("time.Time"), constant.CommittedOrderStatuses).
		Return(int64(9), nil).
		Once()
	m.listingRepo.On("UpdateSoldQuantity", mock.Anything, "MLB123", int64(9)).Return(nil).Once()

	err := app.ProcessWebhook(context.Background(), &model.WebhookPayload{
		Resource: "/orders/555",
		Topic:    constant.WebhookTopicOrders,
		UserID:   777,
	})
	if err != nil {
		t.Fatalf("ProcessWebhook() error = %v", err)
	}
}

func TestSyncApp_SyncOrders_SkipsFailedPageAndContinues(t *testing.T) {
	app, m := newSyncApp(t, syncTestConfig())

	since := time.Now().AddDate(0, 0, -30)
	acct := &model.ExternalAccountEntity{ID: 1, ExternalUserID: 777, Active: true}
	m.accountRepo.On("GetByID", mock.Anything, uint64(1)).Return(acct, nil).Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Times(3)

	makeOrder := func(id int64) marketplace.Order {
		o := marketplace.Order{ID: id, Status: "paid", DateClosed: time.Now().Add(-time.Hour)}
		o.OrderItems = []marketplace.OrderItem{{Quantity: 1, UnitPrice: 10}}
		o.OrderItems[0].Item.ID = "MLB123"
		return o
	}

	// page 0 succeeds, page 1 fails upstream, page 2 is short and final
	m.mp.
		On("SearchOrders", mock.Anything, "token", mock.MatchedBy(func(q marketplace.OrderSearchQuery) bool { return q.Offset == 0 })).
		Return(&marketplace.OrderSearchPage{Results: []marketplace.Order{makeOrder(1), makeOrder(2)}}, nil).
		Once()
	m.mp.
		On("SearchOrders", mock.Anything, "token", mock.MatchedBy(func(q marketplace.OrderSearchQuery) bool { return q.Offset == 2 })).
		Return(nil, cerr.SetCustomError(constant.ErrTransientUpstream)).
		Once()
	m.mp.
		On("SearchOrders", mock.Anything, "token", mock.MatchedBy(func(q marketplace.OrderSearchQuery) bool { return q.Offset == 4 })).
		Return(&marketplace.OrderSearchPage{Results: []marketplace.Order{makeOrder(3)}}, nil).
		Once()

	m.orderRepo.On("Upsert", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)
	m.orderRepo.
		On("SoldUnitsByExternalItem", mock.Anything, "MLB123", mock.AnythingOfType("time.Time"), constant.CommittedOrderStatuses).
		Return(int64(3), nil).
		Times(3)
	m.listingRepo.On("UpdateSoldQuantity", mock.Anything, "MLB123", int64(3)).Return(nil).Times(3)

	report, err := app.SyncOrders(context.Background(), 1, since)
	if err != nil {
		t.Fatalf("SyncOrders() error = %v", err)
	}
	if report.PagesFetched != 2 {
		t.Fatalf("PagesFetched = %d, want 2", report.PagesFetched)
	}
	if report.PagesSkipped != 1 {
		t.Fatalf("PagesSkipped = %d, want 1", report.PagesSkipped)
	}
	if report.OrdersUpserted != 3 {
		t.Fatalf("OrdersUpserted = %d, want 3", report.OrdersUpserted)
	}
	if len(report.Warnings) == 0 {
		t.Fatal("expected a warning for the skipped page")
	}
}

func TestSyncApp_SyncOrders_CancellationKeepsCommittedPages(t *testing.T) {
	cfg := syncTestConfig()
	// long enough that the cancelled context, not the timer, ends the wait
	cfg.Sync.PageDelay = 200 * time.Millisecond
	app, m := newSyncApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	acct := &model.ExternalAccountEntity{ID: 1, ExternalUserID: 777, Active: true}
	m.accountRepo.On("GetByID", mock.Anything, uint64(1)).Return(acct, nil).Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Once()

	makeOrder := func(id int64) marketplace.Order {
		o := marketplace.Order{ID: id, Status: "paid", DateClosed: time.Now().Add(-time.Hour)}
		o.OrderItems = []marketplace.OrderItem{{Quantity: 1, UnitPrice: 10}}
		o.OrderItems[0].Item.ID = "MLB123"
		return o
	}

	// the account is invalidated while page 0 is being fetched
	m.mp.
		On("SearchOrders", mock.Anything, "token", mock.MatchedBy(func(q marketplace.OrderSearchQuery) bool { return q.Offset == 0 })).
		Run(func(args mock.Arguments) { cancel() }).
		Return(&marketplace.OrderSearchPage{Results: []marketplace.Order{makeOrder(1), makeOrder(2)}}, nil).
		Once()

	m.orderRepo.On("Upsert", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	m.orderRepo.
		On("SoldUnitsByExternalItem", mock.Anything, "MLB123", mock.AnythingOfType("time.Time"), constant.CommittedOrderStatuses).
		Return(int64(2), nil).
		Times(2)
	m.listingRepo.On("UpdateSoldQuantity", mock.Anything, "MLB123", int64(2)).Return(nil).Times(2)

	report, err := app.SyncOrders(ctx, 1, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("SyncOrders() error = %v", err)
	}
	// page 0 committed before cancellation; its effects stay
	if report.PagesFetched != 1 {
		t.Fatalf("PagesFetched = %d, want 1", report.PagesFetched)
	}
	if report.OrdersUpserted != 2 {
		t.Fatalf("OrdersUpserted = %d, want 2", report.OrdersUpserted)
	}
	cancelled := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "cancelled") {
			cancelled = true
		}
	}
	if !cancelled {
		t.Fatalf("Warnings = %v, want a cancellation warning", report.Warnings)
	}
}

func TestSyncApp_SyncOrders_FailedPagesKeepInterPageDelay(t *testing.T) {
	cfg := syncTestConfig()
	cfg.Sync.PageCap = 3
	cfg.Sync.PageDelay = 25 * time.Millisecond
	app, m := newSyncApp(t, cfg)

	acct := &model.ExternalAccountEntity{ID: 1, ExternalUserID: 777, Active: true}
	m.accountRepo.On("GetByID", mock.Anything, uint64(1)).Return(acct, nil).Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Times(3)

	m.mp.
		On("SearchOrders", mock.Anything, "token", mock.AnythingOfType("marketplace.OrderSearchQuery")).
		Return(nil, cerr.SetCustomError(constant.ErrTransientUpstream)).
		Times(3)

	start := time.Now()
	report, err := app.SyncOrders(context.Background(), 1, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("SyncOrders() error = %v", err)
	}
	if report.PagesSkipped != 3 {
		t.Fatalf("PagesSkipped = %d, want 3", report.PagesSkipped)
	}
	// consecutive failures must not fire back-to-back requests
	if elapsed := time.Since(start); elapsed < 2*cfg.Sync.PageDelay {
		t.Fatalf("elapsed = %v, want at least %v of pacing", elapsed, 2*cfg.Sync.PageDelay)
	}
}

func TestSyncApp_SyncOrders_ReauthHaltsAccount(t *testing.T) {
	app, m := newSyncApp(t, syncTestConfig())

	acct := &model.ExternalAccountEntity{ID: 1, ExternalUserID: 777}
	m.accountRepo.On("GetByID", mock.Anything, uint64(1)).Return(acct, nil).Once()
	m.accountApp.
		On("GetValidToken", mock.Anything, uint64(1)).
		Return("", cerr.SetCustomError(constant.ErrReauthRequired)).
		Once()

	_, err := app.SyncOrders(context.Background(), 1, time.Now().AddDate(0, 0, -30))
	if !cerr.Is(err, constant.ErrReauthRequired) {
		t.Fatalf("SyncOrders() error = %v, want reauth required", err)
	}
}

func TestSyncApp_LinkListing(t *testing.T) {
	existing := uint64(20)

	tests := []struct {
		name      string
		listingID uint64
		productID uint64
		mockCall  func(m syncMocks)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "success: link an unlinked listing",
			listingID: 5,
			productID: 10,
			mockCall: func(m syncMocks) {
				m.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5}, nil).Once()
				m.productRepo.On("GetByID", mock.Anything, uint64(10)).Return(&model.ProductEntity{ID: 10}, nil).Once()
				pid := uint64(10)
				m.listingRepo.On("SetProductID", mock.Anything, uint64(5), &pid).Return(nil).Once()
				m.listingRepo.On("SetSyncStatus", mock.Anything, uint64(5), constant.SyncStatusSynced, mock.AnythingOfType("time.Time")).Return(nil).Once()
			},
		},
		{
			name:      "error: refuse to relink a listing linked elsewhere",
			listingID: 5,
			productID: 10,
			mockCall: func(m syncMocks) {
				m.listingRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.ListingEntity{ID: 5, ProductID: &existing}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrListingAlreadyLinked,
		},
		{
			name:      "error: unknown listing",
			listingID: 99,
			productID: 10,
			mockCall: func(m syncMocks) {
				m.listingRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := newSyncApp(t, syncTestConfig())
			tt.mockCall(m)

			err := app.LinkListing(context.Background(), tt.listingID, tt.productID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LinkListing() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !cerr.Is(err, tt.errCode) {
				t.Fatalf("LinkListing() error = %v, want code %v", err, tt.errCode)
			}
		})
	}
}

func TestSyncApp_PushListingQuantity(t *testing.T) {
	app, m := newSyncApp(t, syncTestConfig())

	pid := uint64(10)
	m.listingRepo.
		On("GetByID", mock.Anything, uint64(5)).
		Return(&model.ListingEntity{ID: 5, AccountID: 1, ExternalItemID: "MLB123", ProductID: &pid, PushEnabled: true}, nil).
		Once()
	m.stockRepo.On("TotalQuantityByRole", mock.Anything, uint64(10), constant.WarehouseRoleLocal).Return(int64(42), nil).Once()
	m.accountApp.On("GetValidToken", mock.Anything, uint64(1)).Return("token", nil).Once()
	m.mp.On("UpdateItemQuantity", mock.Anything, "token", "MLB123", int64(42)).Return(nil).Once()
	m.listingRepo.On("SetSyncStatus", mock.Anything, uint64(5), constant.SyncStatusSynced, mock.AnythingOfType("time.Time")).Return(nil).Once()

	if err := app.PushListingQuantity(context.Background(), 5); err != nil {
		t.Fatalf("PushListingQuantity() error = %v", err)
	}
}
