package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdplex_upstream_requests_total",
			Help: "Upstream API requests issued, by endpoint",
		},
		[]string{"endpoint"},
	)

	UpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdplex_upstream_failures_total",
			Help: "Upstream API requests that failed, by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "crowdplex_upstream_duration_seconds",
			Help: "Upstream API request duration, by endpoint",
		},
		[]string{"endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdplex_cache_hits_total",
			Help: "Cached upstream responses served, by endpoint",
		},
		[]string{"endpoint"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdplex_cache_misses_total",
			Help: "Cache lookups that fell through to the upstream, by endpoint",
		},
		[]string{"endpoint"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "crowdplex_pipeline_stage_duration_seconds",
			Help: "Ranking pipeline stage duration, by stage",
		},
		[]string{"stage"},
	)
)
