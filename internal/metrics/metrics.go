package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	WorkflowTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workboard_task_workflow_transitions_total",
			Help: "Extension and completion request transitions",
		},
		[]string{"workflow", "status"},
	)

	OutboxPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workboard_outbox_published_total",
			Help: "Outbox events handed to the broker",
		},
		[]string{"topic", "result"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workboard_cache_lookups_total",
			Help: "Redis cache lookups by key family",
		},
		[]string{"cache", "result"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementWorkflowTransition(workflow, status string) {
	WorkflowTransitions.WithLabelValues(workflow, status).Inc()
}

func IncrementOutboxPublished(topic, result string) {
	OutboxPublished.WithLabelValues(topic, result).Inc()
}

func IncrementCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(cache, result).Inc()
}
