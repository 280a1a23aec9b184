package constant

// Warehouse roles. Fulfillment rows represent stock staged at the
// marketplace's own fulfillment centers ("Full" channel).
const (
	WarehouseRoleLocal       = "local"
	WarehouseRoleFulfillment = "fulfillment"
)

// Listing sync status
const (
	SyncStatusPending = "pending"
	SyncStatusSynced  = "synced"
	SyncStatusError   = "error"
	SyncStatusIgnored = "ignored"
)

// Webhook topics delivered by the marketplace
const (
	WebhookTopicItems  = "items"
	WebhookTopicOrders = "orders_v2"
)

// Marketplace order statuses that count as a committed sale. Cancelled and
// refunded orders are deliberately absent.
var CommittedOrderStatuses = []string{
	"paid",
	"handling",
	"ready_to_ship",
	"shipped",
	"delivered",
}

func IsCommittedOrderStatus(status string) bool {
	for _, s := range CommittedOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Replenishment status buckets
const (
	ReplenishStatusCritical  = "critico"
	ReplenishStatusAttention = "atencao"
	ReplenishStatusOK        = "ok"
)

// Action priorities, ordered alta > media > baixa
const (
	PriorityHigh   = "alta"
	PriorityMedium = "media"
	PriorityLow    = "baixa"
)

var PriorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Replenishment action kinds
const (
	ActionPurchase             = "purchase"
	ActionTransfer             = "transfer"
	ActionPurchaseThenTransfer = "purchase_then_transfer"
	ActionAwaitPurchase        = "await_purchase"
)
