package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	accountapp "github.com/estoquehub/sync-engine/application/account"
	"github.com/estoquehub/sync-engine/application/ledger"
	"github.com/estoquehub/sync-engine/application/replenish"
	syncapp "github.com/estoquehub/sync-engine/application/sync"
	"github.com/estoquehub/sync-engine/cmd/config"
	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/model"
	"github.com/estoquehub/sync-engine/utils/errors"
	validatorx "github.com/estoquehub/sync-engine/utils/validator"
)

type RestHandler struct {
	Config       *config.Config
	LedgerApp    ledger.LedgerApp
	AccountApp   accountapp.AccountApp
	SyncApp      syncapp.SyncApp
	ReplenishApp replenish.ReplenishApp
}

func NewTransport(cfg *config.Config, ledgerApp ledger.LedgerApp, accountApp accountapp.AccountApp, syncApp syncapp.SyncApp, replenishApp replenish.ReplenishApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:       cfg,
		LedgerApp:    ledgerApp,
		AccountApp:   accountApp,
		SyncApp:      syncApp,
		ReplenishApp: replenishApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Prometheus
	mux.Path("/metrics").Handler(promhttp.Handler())

	// Public routes
	mux.HandleFunc("/webhooks/marketplace", rh.MarketplaceWebhook).Methods(http.MethodPost)
	mux.HandleFunc("/accounts/connect", rh.ConnectAccount).Methods(http.MethodPost)
	mux.HandleFunc("/accounts/callback", rh.ConnectCallback).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Server.InternalKey))
	internal.HandleFunc("/transfers", rh.CreateTransfer).Methods(http.MethodPost)
	internal.HandleFunc("/transfers", rh.ListTransfers).Methods(http.MethodGet)
	internal.HandleFunc("/products/{id}/stock", rh.GetStock).Methods(http.MethodGet)
	internal.HandleFunc("/products/{id}/adjust", rh.AdjustStock).Methods(http.MethodPost)
	internal.HandleFunc("/replenishment", rh.RunBatchAnalysis).Methods(http.MethodPost)
	internal.HandleFunc("/replenishment/products/{id}", rh.GetSuggestion).Methods(http.MethodPost)
	internal.HandleFunc("/listings/{id}/link", rh.LinkListing).Methods(http.MethodPost)
	internal.HandleFunc("/listings/{id}/unlink", rh.UnlinkListing).Methods(http.MethodPost)
	internal.HandleFunc("/listings/{id}/push", rh.PushListingQuantity).Methods(http.MethodPost)
	internal.HandleFunc("/accounts/{id}/sync", rh.SyncOrders).Methods(http.MethodPost)
	internal.HandleFunc("/accounts/{id}/disconnect", rh.DisconnectAccount).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// MarketplaceWebhook handler
// @Summary Receive marketplace webhook
// @Description Accepts item/order notifications; always acknowledges with 200
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param request body model.WebhookPayload true "Webhook Payload"
// @Success 200 {object} transport.response
// @Router /webhooks/marketplace [post]
func (s *RestHandler) MarketplaceWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// the sender expects a fast 2xx no matter what; malformed payloads are
	// acknowledged and dropped
	var payload model.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeSuccess(w, nil)
		return
	}
	if err := validatorx.ValidateStruct(&payload); err != nil {
		writeSuccess(w, nil)
		return
	}

	_ = s.SyncApp.IngestWebhook(ctx, &payload)
	writeSuccess(w, nil)
}

// ConnectAccount handler
// @Summary Start marketplace account connection
// @Description Returns the authorization URL for the OAuth + PKCE handshake
// @Tags Accounts
// @Accept json
// @Produce json
// @Param user_id query int true "Owning user id"
// @Success 200 {object} model.ConnectResponse
// @Failure 400 {object} errors.CustomError
// @Router /accounts/connect [post]
func (s *RestHandler) ConnectAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.ConnectAccount(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConnectCallback handler
// @Summary OAuth callback
// @Description Exchanges the authorization code for tokens and stores the account
// @Tags Accounts
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Opaque state from connect"
// @Success 200 {object} model.ExternalAccountEntity
// @Failure 400 {object} errors.CustomError
// @Router /accounts/callback [get]
func (s *RestHandler) ConnectCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.CompleteConnect(ctx, code, state)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateTransfer handler
// @Summary Transfer stock between warehouses
// @Description Atomically moves the requested lines; fails whole if any line lacks stock
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.TransferRequest true "Transfer Request"
// @Success 200 {object} model.TransferRecord
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/transfers [post]
func (s *RestHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LedgerApp.Transfer(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListTransfers handler
// @Summary List transfer history
// @Tags Stock
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {array} model.TransferRecord
// @Router /internal/v1/transfers [get]
func (s *RestHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.LedgerApp.ListTransfers(ctx, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStock handler
// @Summary Get product stock
// @Description Per-warehouse quantity when warehouse_id is given, otherwise total
// @Tags Stock
// @Produce json
// @Param id path int true "Product ID"
// @Param warehouse_id query int false "Warehouse ID"
// @Success 200 {object} model.StockEntry
// @Router /internal/v1/products/{id}/stock [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var qty int64
	if raw := r.URL.Query().Get("warehouse_id"); raw != "" {
		warehouseID, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		qty, err = s.LedgerApp.GetQuantity(ctx, productID, warehouseID)
	} else {
		qty, err = s.LedgerApp.TotalQuantity(ctx, productID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	res := struct {
		ProductID uint64 `json:"product_id"`
		Quantity  int64  `json:"quantity"`
	}{
		ProductID: productID,
		Quantity:  qty,
	}

	writeSuccess(w, res)
}

// AdjustStock handler
// @Summary Adjust product stock
// @Description Applies a signed delta to one warehouse row, clamping at zero
// @Tags Stock
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.AdjustStockRequest true "Adjust Request"
// @Success 200 {object} model.StockEntry
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/products/{id}/adjust [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	qty, err := s.LedgerApp.Adjust(ctx, productID, req.WarehouseID, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}

	res := struct {
		ProductID   uint64 `json:"product_id"`
		WarehouseID uint64 `json:"warehouse_id"`
		Quantity    int64  `json:"quantity"`
	}{
		ProductID:   productID,
		WarehouseID: req.WarehouseID,
		Quantity:    qty,
	}

	writeSuccess(w, res)
}

// RunBatchAnalysis handler
// @Summary Run replenishment analysis for all candidate products
// @Tags Replenishment
// @Produce json
// @Success 200 {object} model.BatchAnalysisResponse
// @Router /internal/v1/replenishment [post]
func (s *RestHandler) RunBatchAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ReplenishApp.RunBatchAnalysis(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSuggestion handler
// @Summary Replenishment suggestion for one product
// @Description Optional body overrides the stored planning configuration
// @Tags Replenishment
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ReplenishmentConfig false "Config override"
// @Success 200 {object} model.ReplenishmentSuggestion
// @Failure 404 {object} errors.CustomError
// @Router /internal/v1/replenishment/products/{id} [post]
func (s *RestHandler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// absent or empty body means use the stored configuration
	var cfg *model.ReplenishmentConfig
	var override model.ReplenishmentConfig
	if derr := json.NewDecoder(r.Body).Decode(&override); derr == nil {
		cfg = &override
	}

	res, err := s.ReplenishApp.GetSuggestion(ctx, productID, cfg)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// LinkListing handler
// @Summary Link a listing to a local product
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body model.LinkListingRequest true "Link Request"
// @Success 200 {object} transport.response
// @Failure 409 {object} errors.CustomError
// @Router /internal/v1/listings/{id}/link [post]
func (s *RestHandler) LinkListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.LinkListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SyncApp.LinkListing(ctx, listingID, req.ProductID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// UnlinkListing handler
// @Summary Unlink a listing from its product
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} transport.response
// @Router /internal/v1/listings/{id}/unlink [post]
func (s *RestHandler) UnlinkListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SyncApp.UnlinkListing(ctx, listingID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// PushListingQuantity handler
// @Summary Push local total quantity to the marketplace
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} transport.response
// @Router /internal/v1/listings/{id}/push [post]
func (s *RestHandler) PushListingQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SyncApp.PushListingQuantity(ctx, listingID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// SyncOrders handler
// @Summary Reconcile one account's recent orders
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.OrderSyncReport
// @Router /internal/v1/accounts/{id}/sync [post]
func (s *RestHandler) SyncOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	since := time.Now().AddDate(0, 0, -s.Config.Replenish.AnalysisPeriodDays)
	res, err := s.SyncApp.SyncOrders(ctx, accountID, since)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DisconnectAccount handler
// @Summary Deactivate a connected account
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} transport.response
// @Router /internal/v1/accounts/{id}/disconnect [post]
func (s *RestHandler) DisconnectAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AccountApp.DisconnectAccount(ctx, accountID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}
