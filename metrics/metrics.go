package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_webhooks_received_total",
		Help: "Webhook deliveries accepted, by topic.",
	}, []string{"topic"})

	WebhooksFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_webhooks_failed_total",
		Help: "Webhook deliveries whose asynchronous processing failed, by topic.",
	}, []string{"topic"})

	SyncRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_marketplace_retries_total",
		Help: "Retried marketplace API calls.",
	})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_marketplace_rate_limit_hits_total",
		Help: "429 responses received from the marketplace API.",
	})

	OrdersUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_orders_upserted_total",
		Help: "Normalized order records written during ingestion.",
	})

	OrderPagesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_order_pages_skipped_total",
		Help: "Order search pages skipped after transient upstream failures.",
	})
)
