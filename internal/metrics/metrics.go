// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation strategies
const (
	StrategyProvider = "provider"
	StrategyFallback = "fallback"
)

var (
	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "draftpost",
		Name:      "generations_total",
		Help:      "Generation requests served, by strategy.",
	}, []string{"strategy"})

	Drafts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "draftpost",
		Name:      "drafts_total",
		Help:      "Draft variants returned, by strategy.",
	}, []string{"strategy"})

	ProviderFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "draftpost",
		Name:      "provider_failures_total",
		Help:      "Completion provider calls that failed and fell back to templates.",
	})

	ProviderLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "draftpost",
		Name:      "provider_request_duration_seconds",
		Help:      "Latency of completion provider calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})
)

// Record counts one served request and the drafts it produced.
func Record(strategy string, drafts int) {
	Generations.WithLabelValues(strategy).Inc()
	Drafts.WithLabelValues(strategy).Add(float64(drafts))
}
