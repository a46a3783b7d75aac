package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request counter
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP request duration histogram
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// Active HTTP connections gauge
	HTTPActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	// Business logic metrics
	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of provider match requests",
		},
		[]string{"result"}, // "success", "empty_result", "member_not_found", "data_unavailable", "invalid_request"
	)

	MatchPipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_pipeline_duration_seconds",
			Help:    "Duration of the matching pipeline per request",
			Buckets: prometheus.DefBuckets,
		},
	)

	MatchProvidersReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_providers_returned",
			Help:    "Number of providers returned per match request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	ProviderSnapshotSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "provider_snapshot_size",
			Help: "Number of providers in the current in-memory snapshot",
		},
	)
)

// RecordHTTPRequest records metrics for an HTTP request
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)

	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordMatchRequest records business metrics for a completed match request
func RecordMatchRequest(result string, duration time.Duration, providersReturned int) {
	MatchRequestsTotal.WithLabelValues(result).Inc()
	MatchPipelineDuration.Observe(duration.Seconds())
	MatchProvidersReturned.Observe(float64(providersReturned))
}

// RecordMatchFailure records a match request that produced no provider list
func RecordMatchFailure(result string) {
	MatchRequestsTotal.WithLabelValues(result).Inc()
}

// SetProviderSnapshotSize records the size of the installed snapshot
func SetProviderSnapshotSize(n int) {
	ProviderSnapshotSize.Set(float64(n))
}

// IncActiveConnections increments active connections
func IncActiveConnections() {
	HTTPActiveConnections.Inc()
}

// DecActiveConnections decrements active connections
func DecActiveConnections() {
	HTTPActiveConnections.Dec()
}
