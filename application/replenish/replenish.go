package replenish

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/estoquehub/sync-engine/application/velocity"
	"github.com/estoquehub/sync-engine/cmd/config"
	"github.com/estoquehub/sync-engine/constant"
	"github.com/estoquehub/sync-engine/model"
	listingrepo "github.com/estoquehub/sync-engine/repository/listing"
	productrepo "github.com/estoquehub/sync-engine/repository/product"
	stockrepo "github.com/estoquehub/sync-engine/repository/stock"
	"github.com/estoquehub/sync-engine/utils/errors"
	"github.com/estoquehub/sync-engine/utils/logger"
)

type ReplenishApp interface {
	GetSuggestion(ctx context.Context, productID uint64, cfg *model.ReplenishmentConfig) (*model.ReplenishmentSuggestion, error)
	RunBatchAnalysis(ctx context.Context) (*model.BatchAnalysisResponse, error)
}

type replenishAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	stockRepo   stockrepo.StockRepository
	listingRepo listingrepo.ListingRepository
	velocityApp velocity.VelocityApp
}

func NewReplenishApp(cfg *config.Config, productRepo productrepo.ProductRepository, stockRepo stockrepo.StockRepository, listingRepo listingrepo.ListingRepository, velocityApp velocity.VelocityApp) ReplenishApp {
	return &replenishAppImpl{
		config:      cfg,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		listingRepo: listingRepo,
		velocityApp: velocityApp,
	}
}

// GetSuggestion computes the replenishment picture for one product. A nil cfg
// loads the stored per-product configuration, falling back to the global row
// and then to built-in defaults; configuration problems degrade the result,
// they never fail it.
func (s *replenishAppImpl) GetSuggestion(ctx context.Context, productID uint64, cfg *model.ReplenishmentConfig) (*model.ReplenishmentSuggestion, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[GetSuggestion] get product failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	cfg = s.resolveConfig(ctx, productID, cfg)

	suggestion := &model.ReplenishmentSuggestion{
		ProductID: productID,
		SKU:       product.SKU,
		Name:      product.Name,
		Status:    constant.ReplenishStatusOK,
		Actions:   []model.ReplenishmentAction{},
	}

	local, err := s.stockRepo.TotalQuantityByRole(ctx, productID, constant.WarehouseRoleLocal)
	if err != nil {
		logger.Error("[GetSuggestion] local stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	full, err := s.stockRepo.TotalQuantityByRole(ctx, productID, constant.WarehouseRoleFulfillment)
	if err != nil {
		logger.Error("[GetSuggestion] fulfillment stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	suggestion.LocalQuantity = local
	suggestion.FullQuantity = full

	listings, err := s.listingRepo.GetByProductID(ctx, productID)
	if err != nil {
		logger.Error("[GetSuggestion] listings lookup failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	hasFull := full > 0
	for _, l := range listings {
		if l.Fulfillment {
			hasFull = true
		}
	}
	suggestion.HasFullChannel = hasFull

	dailyVelocity, err := s.velocityApp.DailyVelocity(ctx, productID, cfg.AnalysisPeriodDays)
	if err != nil {
		// degrade this product instead of failing the batch
		logger.Warn("[GetSuggestion] velocity unavailable, treating as zero", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		suggestion.Warning = "sales velocity unavailable"
		dailyVelocity = 0
	}
	suggestion.DailyVelocity = dailyVelocity

	safety := cfg.SafetyStock
	if safety == 0 {
		manual, err := s.stockRepo.GetSafetyStock(ctx, productID)
		if err == nil {
			safety = manual
		}
	}

	suggestion.LocalReorderPoint = dailyVelocity*float64(cfg.AvgDeliveryDays+cfg.MinCoverageDays) + float64(safety)
	suggestion.LocalCoverageDays = coverageDays(local, dailyVelocity)
	if hasFull {
		suggestion.FullReorderPoint = dailyVelocity*float64(cfg.FullReleaseDays) + float64(safety)
		suggestion.FullCoverageDays = coverageDays(full, dailyVelocity)
	} else {
		suggestion.FullCoverageDays = math.Inf(1)
	}

	minCoverage := suggestion.LocalCoverageDays
	if hasFull && suggestion.FullCoverageDays < minCoverage {
		minCoverage = suggestion.FullCoverageDays
	}
	suggestion.Status = s.statusFor(minCoverage)

	// zero velocity means no demand signal: coverage is infinite and nothing
	// is suggested regardless of absolute stock level
	if dailyVelocity == 0 {
		return suggestion, nil
	}

	localNeeded := float64(local) <= suggestion.LocalReorderPoint
	if localNeeded {
		qty := int64(math.Ceil(suggestion.LocalReorderPoint*s.config.Replenish.TopupMultiplier - float64(local)))
		if qty > 0 {
			suggestion.Actions = append(suggestion.Actions, model.ReplenishmentAction{
				ProductID:          productID,
				SKU:                product.SKU,
				Type:               constant.ActionPurchase,
				Quantity:           qty,
				Priority:           s.priorityFor(suggestion.LocalCoverageDays),
				CoverageDays:       suggestion.LocalCoverageDays,
				EstimatedCostCents: qty * product.AverageCostCents,
			})
		}
	}

	if hasFull && float64(full) <= suggestion.FullReorderPoint {
		needed := int64(math.Ceil(suggestion.FullReorderPoint*s.config.Replenish.TopupMultiplier - float64(full)))
		if needed > 0 {
			suggestion.Actions = append(suggestion.Actions, s.fullChannelAction(product, suggestion, local, needed, localNeeded))
		}
	}

	return suggestion, nil
}

// fullChannelAction decides the remedy for a depleted fulfillment channel.
// Transfers never exceed local availability; when local stock cannot support
// one, the remedy becomes a purchase-first action.
func (s *replenishAppImpl) fullChannelAction(product *model.ProductEntity, sg *model.ReplenishmentSuggestion, local, needed int64, localNeeded bool) model.ReplenishmentAction {
	action := model.ReplenishmentAction{
		ProductID:    product.ID,
		SKU:          product.SKU,
		Priority:     s.priorityFor(sg.FullCoverageDays),
		CoverageDays: sg.FullCoverageDays,
	}

	switch {
	case local == 0:
		// no transfer remedy exists, only buying first
		action.Type = constant.ActionPurchaseThenTransfer
		action.Quantity = needed
		action.EstimatedCostCents = needed * product.AverageCostCents
	case localNeeded:
		// local is itself at or below its reorder point; draining it further
		// just moves the stockout
		action.Type = constant.ActionAwaitPurchase
		action.Quantity = needed
	default:
		qty := needed
		if qty > local {
			qty = local
		}
		action.Type = constant.ActionTransfer
		action.Quantity = qty
		if float64(local-qty) < sg.LocalReorderPoint {
			action.Note = "transfer leaves local stock below its reorder point"
		}
	}
	return action
}

// RunBatchAnalysis recomputes suggestions for every candidate product.
// Per-product anomalies degrade that product's entry; the batch always
// returns a full result set plus summary.
func (s *replenishAppImpl) RunBatchAnalysis(ctx context.Context) (*model.BatchAnalysisResponse, error) {
	ids, err := s.productRepo.ListReplenishmentCandidates(ctx)
	if err != nil {
		logger.Error("[RunBatchAnalysis] list candidates failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.BatchAnalysisResponse{
		Results: make([]model.ReplenishmentSuggestion, 0, len(ids)),
		Actions: make([]model.ReplenishmentAction, 0),
	}

	for _, id := range ids {
		suggestion, err := s.GetSuggestion(ctx, id, nil)
		if err != nil {
			logger.Warn("[RunBatchAnalysis] product skipped", zap.Uint64("product_id", id), zap.String("error", err.Error()))
			continue
		}
		resp.Results = append(resp.Results, *suggestion)
		resp.Actions = append(resp.Actions, suggestion.Actions...)

		bucket := s.bucketFor(resp, suggestion.Status)
		bucket.Count++
		for _, a := range suggestion.Actions {
			bucket.EstimatedCostCents += a.EstimatedCostCents
		}
	}

	SortActions(resp.Actions)
	return resp, nil
}

func (s *replenishAppImpl) resolveConfig(ctx context.Context, productID uint64, cfg *model.ReplenishmentConfig) *model.ReplenishmentConfig {
	if cfg == nil {
		stored, err := s.productRepo.GetConfig(ctx, productID)
		if err != nil {
			logger.Warn("[GetSuggestion] config lookup failed, using defaults", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		} else {
			cfg = stored
		}
	}
	if cfg == nil {
		cfg = &model.ReplenishmentConfig{}
	}
	defaults := s.config.Replenish
	if cfg.AvgDeliveryDays <= 0 {
		cfg.AvgDeliveryDays = defaults.AvgDeliveryDays
	}
	if cfg.FullReleaseDays <= 0 {
		cfg.FullReleaseDays = defaults.FullReleaseDays
	}
	if cfg.MinCoverageDays <= 0 {
		cfg.MinCoverageDays = defaults.MinCoverageDays
	}
	if cfg.AnalysisPeriodDays <= 0 {
		cfg.AnalysisPeriodDays = defaults.AnalysisPeriodDays
	}
	return cfg
}

func (s *replenishAppImpl) statusFor(coverage float64) string {
	switch {
	case coverage < s.config.Replenish.CriticalDays:
		return constant.ReplenishStatusCritical
	case coverage < s.config.Replenish.AttentionDays:
		return constant.ReplenishStatusAttention
	default:
		return constant.ReplenishStatusOK
	}
}

func (s *replenishAppImpl) priorityFor(coverage float64) string {
	switch s.statusFor(coverage) {
	case constant.ReplenishStatusCritical:
		return constant.PriorityHigh
	case constant.ReplenishStatusAttention:
		return constant.PriorityMedium
	default:
		return constant.PriorityLow
	}
}

// coverageDays is the remaining days of coverage; infinite when there is no
// demand signal.
func coverageDays(qty int64, dailyVelocity float64) float64 {
	if dailyVelocity == 0 {
		return math.Inf(1)
	}
	return float64(qty) / dailyVelocity
}

func (s *replenishAppImpl) bucketFor(resp *model.BatchAnalysisResponse, status string) *model.ReplenishmentBucket {
	switch status {
	case constant.ReplenishStatusCritical:
		return &resp.Summary.Critical
	case constant.ReplenishStatusAttention:
		return &resp.Summary.Attention
	default:
		return &resp.Summary.OK
	}
}
