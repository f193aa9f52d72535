package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitment",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitment",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5, 10},
	}, []string{"method", "path"})

	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitment",
		Name:      "provider_requests_total",
		Help:      "Total catalog search provider calls by provider and result status.",
	}, []string{"provider", "status"})

	ProviderRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitment",
		Name:      "provider_request_duration_seconds",
		Help:      "Catalog search provider call duration in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"provider"})

	SearchStrategyRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitment",
		Name:      "search_strategy_runs_total",
		Help:      "Search strategy executions by strategy (combined, synonyms, partial).",
	}, []string{"strategy"})

	SearchCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitment",
		Name:      "search_cache_hits_total",
		Help:      "Total search response cache hits.",
	})

	SearchCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitment",
		Name:      "search_cache_misses_total",
		Help:      "Total search response cache misses.",
	})
)

// Register registers all collectors on reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ProviderRequestsTotal,
		ProviderRequestDuration,
		SearchStrategyRuns,
		SearchCacheHits,
		SearchCacheMisses,
	)
}
