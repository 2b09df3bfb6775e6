// Package metrics exposes Prometheus collectors for the console API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Navigation metrics
var (
	// NavigationResolutionsTotal tracks sidebar resolutions by outcome.
	NavigationResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navigation_resolutions_total",
			Help: "Total number of navigation tree resolutions by outcome",
		},
		[]string{"tenant_id", "outcome"},
	)

	// NavigationFilterDuration tracks how long tree filtering takes.
	NavigationFilterDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "navigation_filter_duration_seconds",
			Help:    "Navigation tree filter duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
)

// Entitlement metrics
var (
	// EntitlementCacheHits tracks snapshot cache hits.
	EntitlementCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "entitlement_cache_hits_total",
			Help: "Total number of entitlement snapshot cache hits",
		},
	)

	// EntitlementCacheMisses tracks snapshot cache misses.
	EntitlementCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "entitlement_cache_misses_total",
			Help: "Total number of entitlement snapshot cache misses",
		},
	)

	// EntitlementFallbacksTotal tracks snapshots that fell back to pending
	// because the backing store could not be reached.
	EntitlementFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlement_fallbacks_total",
			Help: "Total number of entitlement lookups served as pending after a load failure",
		},
		[]string{"tenant_id"},
	)

	// EntitlementRefreshesTotal tracks background snapshot refreshes by status.
	EntitlementRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlement_refreshes_total",
			Help: "Total number of background entitlement refreshes by status",
		},
		[]string{"status"},
	)
)

// HTTP metrics
var (
	// HTTPRequestsTotal tracks HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request duration.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	// HTTPRateLimitedTotal tracks requests rejected by the rate limiter.
	HTTPRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)
