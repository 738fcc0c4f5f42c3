// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "widget_admin"

// Collectors groups every collector the service records into
type Collectors struct {
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	WebhookDeliveries     *prometheus.CounterVec
	WebhookAttemptLatency *prometheus.HistogramVec
	WebhookQueueDepth     prometheus.Gauge
	WebhooksDisabled      prometheus.Counter

	KnowledgeIngestions *prometheus.CounterVec
	KnowledgeChunks     prometheus.Counter

	LinkRuleCardsServed prometheus.Counter
	WidgetConfigCache   *prometheus.CounterVec
}

var collectors = sync.OnceValue(func() *Collectors {
	return &Collectors{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		WebhookDeliveries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Webhook deliveries by event and final result.",
		}, []string{"event", "result"}),
		WebhookAttemptLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "webhook_attempt_duration_seconds",
			Help:      "Latency of individual webhook HTTP attempts.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"result"}),
		WebhookQueueDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "webhook_queue_depth",
			Help:      "Deliveries waiting for a worker.",
		}),
		WebhooksDisabled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_auto_disabled_total",
			Help:      "Webhooks deactivated after consecutive failures.",
		}),
		KnowledgeIngestions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "knowledge_ingestions_total",
			Help:      "Knowledge source ingestions by kind and result.",
		}, []string{"kind", "result"}),
		KnowledgeChunks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "knowledge_chunks_written_total",
			Help:      "Chunks written by knowledge ingestion.",
		}),
		LinkRuleCardsServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_rule_cards_served_total",
			Help:      "Link cards returned to widgets.",
		}),
		WidgetConfigCache: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "widget_config_cache_total",
			Help:      "Public widget config cache lookups by result.",
		}, []string{"result"}),
	}
})

// Get returns the process-wide collectors
func Get() *Collectors {
	return collectors()
}
