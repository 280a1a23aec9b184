package model

// ReplenishmentConfig holds per-product planning parameters. A row with nil
// ProductID is the global default; a missing row falls back to built-in
// defaults rather than failing the product.
type ReplenishmentConfig struct {
	ProductID          *uint64 `db:"product_id" json:"product_id,omitempty"`
	AvgDeliveryDays    int     `db:"avg_delivery_days" json:"avg_delivery_days"`
	FullReleaseDays    int     `db:"full_release_days" json:"full_release_days"`
	SafetyStock        int64   `db:"safety_stock" json:"safety_stock"`
	MinCoverageDays    int     `db:"min_coverage_days" json:"min_coverage_days"`
	AnalysisPeriodDays int     `db:"analysis_period_days" json:"analysis_period_days"`
}

// ReplenishmentAction is one suggested remedy. CoverageDays carries the
// remaining days of coverage of the channel that triggered it and is the
// secondary sort key inside a priority bucket.
type ReplenishmentAction struct {
	ProductID          uint64  `json:"product_id"`
	SKU                string  `json:"sku"`
	Type               string  `json:"type"`
	Quantity           int64   `json:"quantity"`
	Priority           string  `json:"priority"`
	CoverageDays       float64 `json:"coverage_days"`
	EstimatedCostCents int64   `json:"estimated_cost_cents"`
	Note               string  `json:"note,omitempty"`
}

// ReplenishmentSuggestion is a pure computation result, never persisted.
type ReplenishmentSuggestion struct {
	ProductID         uint64                `json:"product_id"`
	SKU               string                `json:"sku"`
	Name              string                `json:"name"`
	LocalQuantity     int64                 `json:"local_quantity"`
	FullQuantity      int64                 `json:"full_quantity"`
	HasFullChannel    bool                  `json:"has_full_channel"`
	DailyVelocity     float64               `json:"daily_velocity"`
	LocalReorderPoint float64               `json:"local_reorder_point"`
	FullReorderPoint  float64               `json:"full_reorder_point"`
	LocalCoverageDays float64               `json:"local_coverage_days"`
	FullCoverageDays  float64               `json:"full_coverage_days"`
	Status            string                `json:"status"`
	Actions           []ReplenishmentAction `json:"actions"`
	Warning           string                `json:"warning,omitempty"`
}

type ReplenishmentBucket struct {
	Count              int   `json:"count"`
	EstimatedCostCents int64 `json:"estimated_cost_cents"`
}

type ReplenishmentSummary struct {
	Critical  ReplenishmentBucket `json:"critico"`
	Attention ReplenishmentBucket `json:"atencao"`
	OK        ReplenishmentBucket `json:"ok"`
}

type BatchAnalysisResponse struct {
	Results []ReplenishmentSuggestion `json:"results"`
	Actions []ReplenishmentAction     `json:"actions"`
	Summary ReplenishmentSummary      `json:"summary"`
}
