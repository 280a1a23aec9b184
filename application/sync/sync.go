package sync

import (
	"context"
	"path"
	"strconv"
	"time"

	"go.uber.org/zap"

	accountapp "github.com/estoquehub/sync-engine/application/account"
	"github.com/estoquehub/sync-engine/application/ledger"
	"github.com/estoquehub/sync-engine/cmd/config"
	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/metrics"
	"github.com/estoquehub/sync-engine/model"
	accountrepo "github.com/estoquehub/sync-engine/repository/account"
	listingrepo "github.com/estoquehub/sync-engine/repository/listing"
	orderrepo "github.com/estoquehub/sync-engine/repository/order"
	productrepo "github.com/estoquehub/sync-engine/repository/product"
	stockrepo "github.com/estoquehub/sync-engine/repository/stock"
	"github.com/estoquehub/sync-engine/thirdparty/marketplace"
	"github.com/estoquehub/sync-engine/utils/errors"
	"github.com/estoquehub/sync-engine/utils/logger"
)

// WebhookPublisher buffers webhook deliveries so the HTTP handler can
// acknowledge with a fast 2xx before any processing happens.
type WebhookPublisher interface {
	PublishWebhook(payload *model.WebhookPayload) error
}

type SyncApp interface {
	AttachPool(pool *Pool)
	IngestWebhook(ctx context.Context, payload *model.WebhookPayload) error
	ProcessWebhook(ctx context.Context, payload *model.WebhookPayload) error
	SyncOrders(ctx context.Context, accountID uint64, since time.Time) (*model.OrderSyncReport, error)
	LinkListing(ctx context.Context, listingID, productID uint64) error
	UnlinkListing(ctx context.Context, listingID uint64) error
	PushListingQuantity(ctx context.Context, listingID uint64) error
}

type syncAppImpl struct {
	config      *config.Config
	accountApp  accountapp.AccountApp
	ledgerApp   ledger.LedgerApp
	accountRepo accountrepo.AccountRepository
	listingRepo listingrepo.ListingRepository
	productRepo productrepo.ProductRepository
	orderRepo   orderrepo.OrderRepository
	stockRepo   stockrepo.StockRepository
	mp          marketplace.Client
	publisher   WebhookPublisher
	pool        *Pool
}

func NewSyncApp(cfg *config.Config, accountApp accountapp.AccountApp, ledgerApp ledger.LedgerApp, accountRepo accountrepo.AccountRepository, listingRepo listingrepo.ListingRepository, productRepo productrepo.ProductRepository, orderRepo orderrepo.OrderRepository, stockRepo stockrepo.StockRepository, mp marketplace.Client, publisher WebhookPublisher) SyncApp {
	return &syncAppImpl{
		config:      cfg,
		accountApp:  accountApp,
		ledgerApp:   ledgerApp,
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		stockRepo:   stockRepo,
		mp:          mp,
		publisher:   publisher,
	}
}

// AttachPool wires the keyed worker pool used for direct dispatch when no
// message broker is configured.
func (s *syncAppImpl) AttachPool(pool *Pool) {
	s.pool = pool
}

// IngestWebhook accepts a delivery and hands it off for asynchronous
// processing. It never fails from the webhook sender's perspective: internal
// problems are logged and retried on the consumer side.
func (s *syncAppImpl) IngestWebhook(_ context.Context, payload *model.WebhookPayload) error {
	metrics.WebhooksReceived.WithLabelValues(payload.Topic).Inc()

	if s.publisher != nil {
		if err := s.publisher.PublishWebhook(payload); err == nil {
			return nil
		} else {
			logger.Error("[IngestWebhook] publish failed, dispatching directly", zap.String("error", err.Error()))
		}
	}
	if s.pool != nil {
		s.pool.Dispatch(payload)
	}
	return nil
}

// ProcessWebhook applies one delivery. Callers must guarantee per-resource
// serialization (the pool partitions by resource); within that guarantee all
// writes are idempotent upserts, so duplicates and replays are harmless.
func (s *syncAppImpl) ProcessWebhook(ctx context.Context, payload *model.WebhookPayload) error {
	var err error
	switch payload.Topic {
	case constant.WebhookTopicItems:
		err = s.processItemNotification(ctx, payload)
	case constant.WebhookTopicOrders:
		err = s.processOrderNotification(ctx, payload)
	default:
		logger.Info("[ProcessWebhook] ignoring topic", zap.String("topic", payload.Topic))
		return nil
	}
	if err != nil {
		metrics.WebhooksFailed.WithLabelValues(payload.Topic).Inc()
		logger.Error("[ProcessWebhook] processing failed",
			zap.String("topic", payload.Topic),
			zap.String("resource", payload.Resource),
			zap.String("error", err.Error()))
	}
	return err
}

func (s *syncAppImpl) processItemNotification(ctx context.Context, payload *model.WebhookPayload) error {
	itemID := path.Base(payload.Resource)

	acct, err := s.accountRepo.GetByExternalUserID(ctx, payload.UserID)
	if err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}
	if acct == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	token, err := s.accountApp.GetValidToken(ctx, acct.ID)
	if err != nil {
		return err
	}

	item, err := s.mp.FetchItem(ctx, token, itemID)
	if err != nil {
		s.markListingError(ctx, itemID)
		return err
	}

	// promotion info is nice-to-have; a failed lookup keeps the cached values
	price, err := s.mp.FetchItemPrice(ctx, token, itemID)
	if err != nil {
		logger.Warn("[processItemNotification] price lookup failed", zap.String("item_id", itemID), zap.String("error", err.Error()))
		price = nil
	}
	return s.applyItem(ctx, acct.ID, item, price)
}

// applyItem upserts the cached listing fields keyed on the external item id.
// The marketplace's own lastUpdated decides freshness: an older snapshot than
// what is stored is a no-op, so a slow duplicate can never overwrite a
// fresher write.
func (s *syncAppImpl) applyItem(ctx context.Context, accountID uint64, item *marketplace.Item, price *marketplace.ItemPrice) error {
	existing, err := s.listingRepo.GetByExternalItemID(ctx, item.ID)
	if err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil && !item.LastUpdated.After(existing.LastUpdated) {
		logger.Debug("[applyItem] stale update discarded", zap.String("item_id", item.ID))
		return nil
	}

	now := time.Now()
	l := &model.ListingEntity{
		AccountID:         accountID,
		ExternalItemID:    item.ID,
		Title:             item.Title,
		Price:             item.Price,
		AvailableQuantity: item.AvailableQuantity,
		SoldQuantity:      item.SoldQuantity,
		Fulfillment:       item.Shipping.LogisticType == "fulfillment",
		SyncStatus:        constant.SyncStatusPending,
		LastUpdated:       item.LastUpdated,
		LastSyncAt:        &now,
	}
	if existing != nil {
		l.ProductID = existing.ProductID
		l.PushEnabled = existing.PushEnabled
		l.HasPromotion = existing.HasPromotion
		l.DiscountPercent = existing.DiscountPercent
	}
	if price != nil {
		l.HasPromotion = price.HasPromotion
		l.DiscountPercent = price.DiscountPercent
	}

	// auto-link by SKU when the product is not claimed by another listing
	autoLinked := false
	if l.ProductID == nil && item.SellerCustomField != "" {
		product, err := s.productRepo.GetBySKU(ctx, item.SellerCustomField)
		if err == nil && product != nil {
			claimed, err := s.listingRepo.GetByProductID(ctx, product.ID)
			if err == nil && len(claimed) == 0 {
				l.ProductID = &product.ID
				autoLinked = true
			}
		}
	}
	if l.ProductID != nil {
		l.SyncStatus = constant.SyncStatusSynced
	}

	if err := s.listingRepo.Upsert(ctx, l); err != nil {
		logger.Error("[applyItem] upsert failed", zap.String("item_id", item.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil && autoLinked {
		// link state is excluded from the upsert and written explicitly
		if err := s.listingRepo.SetProductID(ctx, existing.ID, l.ProductID); err != nil {
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if l.ProductID != nil && l.Fulfillment && s.config.Sync.FulfillmentWarehouseID != 0 {
		s.reconcileFulfillmentStock(ctx, *l.ProductID, item.AvailableQuantity)
	}
	return nil
}

// reconcileFulfillmentStock aligns the fulfillment warehouse row with the
// quantity the marketplace reports for a Full-channel listing.
func (s *syncAppImpl) reconcileFulfillmentStock(ctx context.Context, productID uint64, reported int64) {
	warehouseID := s.config.Sync.FulfillmentWarehouseID
	current, err := s.ledgerApp.GetQuantity(ctx, productID, warehouseID)
	if err != nil {
		logger.Error("[reconcileFulfillmentStock] read failed", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return
	}
	if current == reported {
		return
	}
	if _, err := s.ledgerApp.Adjust(ctx, productID, warehouseID, reported-current); err != nil {
		logger.Error("[reconcileFulfillmentStock] adjust failed", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
	}
}

func (s *syncAppImpl) processOrderNotification(ctx context.Context, payload *model.WebhookPayload) error {
	orderID := path.Base(payload.Resource)

	acct, err := s.accountRepo.GetByExternalUserID(ctx, payload.UserID)
	if err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}
	if acct == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	token, err := s.accountApp.GetValidToken(ctx, acct.ID)
	if err != nil {
		return err
	}

	ord, err := s.mp.FetchOrder(ctx, token, orderID)
	if err != nil {
		return err
	}
	return s.applyOrder(ctx, acct.ID, ord)
}

// applyOrder upserts the normalized order and recomputes each referenced
// listing's sold quantity from the full order set in the analysis period.
// Recomputing instead of incrementing is what makes duplicate webhook
// delivery safe.
func (s *syncAppImpl) applyOrder(ctx context.Context, accountID uint64, ord *marketplace.Order) error {
	orderedAt := ord.DateClosed
	if orderedAt.IsZero() {
		orderedAt = time.Now()
	}

	rec := &model.OrderRecord{
		ExternalOrderID: strconv.FormatInt(ord.ID, 10),
		AccountID:       accountID,
		Status:          ord.Status,
		OrderedAt:       orderedAt,
	}
	items := make([]model.OrderRecordItem, 0, len(ord.OrderItems))
	for _, it := range ord.OrderItems {
		items = append(items, model.OrderRecordItem{
			ExternalItemID: it.Item.ID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
		})
	}

	if err := s.orderRepo.Upsert(ctx, rec, items); err != nil {
		logger.Error("[applyOrder] upsert failed", zap.String("external_order_id", rec.ExternalOrderID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	metrics.OrdersUpserted.Inc()

	since := time.Now().AddDate(0, 0, -s.config.Replenish.AnalysisPeriodDays)
	for _, it := range items {
		sold, err := s.orderRepo.SoldUnitsByExternalItem(ctx, it.ExternalItemID, since, constant.CommittedOrderStatuses)
		if err != nil {
			logger.Error("[applyOrder] recompute sold failed", zap.String("item_id", it.ExternalItemID), zap.String("error", err.Error()))
			continue
		}
		if err := s.listingRepo.UpdateSoldQuantity(ctx, it.ExternalItemID, sold); err != nil {
			logger.Error("[applyOrder] update sold failed", zap.String("item_id", it.ExternalItemID), zap.String("error", err.Error()))
		}
	}
	return nil
}

// SyncOrders pages through the account's order history. Transient page
// failures are skipped with a warning so the rest of the batch still commits;
// cancellation between pages leaves previously committed pages intact.
func (s *syncAppImpl) SyncOrders(ctx context.Context, accountID uint64, since time.Time) (*model.OrderSyncReport, error) {
	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("[SyncOrders] get account failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if acct == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	report := &model.OrderSyncReport{}
	pageSize := s.config.Sync.PageSize

	for page := 0; page < s.config.Sync.PageCap; page++ {
		if ctx.Err() != nil {
			report.Warnings = append(report.Warnings, "sync cancelled; committed pages kept")
			break
		}

		token, err := s.accountApp.GetValidToken(ctx, accountID)
		if err != nil {
			// reauth failures halt this account's sync entirely
			return report, err
		}

		result, err := s.mp.SearchOrders(ctx, token, marketplace.OrderSearchQuery{
			SellerID: acct.ExternalUserID,
			Offset:   page * pageSize,
			Limit:    pageSize,
			Sort:     "date_desc",
		})
		if err != nil {
			if errors.Is(err, constant.ErrTransientUpstream) {
				logger.Warn("[SyncOrders] page skipped after upstream error", zap.Int("page", page))
				metrics.OrderPagesSkipped.Inc()
				report.PagesSkipped++
				report.Warnings = append(report.Warnings, "page "+strconv.Itoa(page)+" skipped after upstream error")
				// failed pages still pace the rate limit
				if serr := sleepCtx(ctx, s.config.Sync.PageDelay); serr != nil {
					report.Warnings = append(report.Warnings, "sync cancelled; committed pages kept")
					break
				}
				continue
			}
			if errors.Is(err, constant.ErrRateLimited) {
				report.Warnings = append(report.Warnings, "rate limit budget exhausted, sync delayed")
				break
			}
			return report, err
		}
		report.PagesFetched++

		pageExhausted := false
		for i := range result.Results {
			ord := &result.Results[i]
			if !ord.DateClosed.IsZero() && ord.DateClosed.Before(since) {
				// results are date-sorted; everything further back is out of range
				pageExhausted = true
				break
			}
			if !constant.IsCommittedOrderStatus(ord.Status) {
				continue
			}
			if err := s.applyOrder(ctx, accountID, ord); err != nil {
				// one bad order never aborts the batch
				report.Warnings = append(report.Warnings, "order "+strconv.FormatInt(ord.ID, 10)+" failed to apply")
			} else {
				report.OrdersUpserted++
			}
		}
		if pageExhausted || len(result.Results) < pageSize {
			break
		}

		if err := sleepCtx(ctx, s.config.Sync.PageDelay); err != nil {
			report.Warnings = append(report.Warnings, "sync cancelled; committed pages kept")
			break
		}
	}
	return report, nil
}

func (s *syncAppImpl) LinkListing(ctx context.Context, listingID, productID uint64) error {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[LinkListing] get listing failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if l == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if l.ProductID != nil && *l.ProductID != productID {
		return errors.SetCustomError(constant.ErrListingAlreadyLinked)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[LinkListing] get product failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.listingRepo.SetProductID(ctx, listingID, &productID); err != nil {
		logger.Error("[LinkListing] set product failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.listingRepo.SetSyncStatus(ctx, listingID, constant.SyncStatusSynced, time.Now()); err != nil {
		logger.Error("[LinkListing] set status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *syncAppImpl) UnlinkListing(ctx context.Context, listingID uint64) error {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[UnlinkListing] get listing failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if l == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.listingRepo.SetProductID(ctx, listingID, nil); err != nil {
		logger.Error("[UnlinkListing] clear product failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.listingRepo.SetSyncStatus(ctx, listingID, constant.SyncStatusPending, time.Now()); err != nil {
		logger.Error("[UnlinkListing] set status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// PushListingQuantity publishes the local total quantity to the marketplace
// for a linked listing whose sync direction includes outward push.
func (s *syncAppImpl) PushListingQuantity(ctx context.Context, listingID uint64) error {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[PushListingQuantity] get listing failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if l == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if l.ProductID == nil || !l.PushEnabled {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	total, err := s.stockRepo.TotalQuantityByRole(ctx, *l.ProductID, constant.WarehouseRoleLocal)
	if err != nil {
		logger.Error("[PushListingQuantity] total stock failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.accountApp.GetValidToken(ctx, l.AccountID)
	if err != nil {
		return err
	}
	if err := s.mp.UpdateItemQuantity(ctx, token, l.ExternalItemID, total); err != nil {
		_ = s.listingRepo.SetSyncStatus(ctx, listingID, constant.SyncStatusError, time.Now())
		return err
	}
	return s.listingRepo.SetSyncStatus(ctx, listingID, constant.SyncStatusSynced, time.Now())
}

func (s *syncAppImpl) markListingError(ctx context.Context, externalItemID string) {
	l, err := s.listingRepo.GetByExternalItemID(ctx, externalItemID)
	if err != nil || l == nil {
		return
	}
	if err := s.listingRepo.SetSyncStatus(ctx, l.ID, constant.SyncStatusError, time.Now()); err != nil {
		logger.Error("[markListingError] set status failed", zap.String("error", err.Error()))
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
