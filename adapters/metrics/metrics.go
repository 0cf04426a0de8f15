// Package metrics provides Prometheus metrics collection for the
// leaderboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the service.
type Collector struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Gateway metrics
	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	GatewayErrors   *prometheus.CounterVec
	GatewayPages    prometheus.Counter

	// Cache metrics
	CachedTeams prometheus.Gauge

	// Config metrics
	ConfigReloads    prometheus.Counter
	ConfigLastReload prometheus.Gauge
}

// New creates a collector registered on the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a collector on a custom registry. Useful for
// testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "leaderboard",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "leaderboard",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "leaderboard",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),

		GatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "leaderboard",
				Name:      "gateway_requests_total",
				Help:      "Total requests sent to the upstream gateway",
			},
			[]string{"endpoint", "outcome"},
		),
		GatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "leaderboard",
				Name:      "gateway_request_duration_seconds",
				Help:      "Upstream gateway request duration in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"endpoint"},
		),
		GatewayErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "leaderboard",
				Name:      "gateway_errors_total",
				Help:      "Total upstream gateway errors",
			},
			[]string{"type"},
		),
		GatewayPages: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "leaderboard",
				Name:      "gateway_activity_pages_total",
				Help:      "Total activity report pages fetched from the gateway",
			},
		),

		CachedTeams: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "leaderboard",
				Name:      "cached_teams",
				Help:      "Number of teams in the cached roster",
			},
		),

		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "leaderboard",
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigLastReload: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "leaderboard",
				Name:      "config_last_reload_timestamp",
				Help:      "Unix timestamp of last successful config reload",
			},
		),
	}
}
