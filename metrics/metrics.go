// Package metrics provides Prometheus metrics for eventdesk.
package metrics

import (
	"eventdesk/common"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = common.ServiceName
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

// Store metrics
var (
	// MutationsTotal counts committed entity changes by entity type and category.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Total committed entity mutations",
		},
		[]string{"entity", "category"},
	)

	// PermissionDeniedTotal counts rejected operations by permission.
	PermissionDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "authority",
			Name:      "permission_denied_total",
			Help:      "Total operations rejected by the permission engine",
		},
		[]string{"permission"},
	)

	// ProjectsCurrent tracks the number of projects.
	ProjectsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "projects",
			Help:      "Number of projects currently held",
		},
	)

	// LoginsTotal counts login attempts by result.
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total login attempts",
		},
		[]string{"result"}, // success, failure, throttled
	)
)

// Info metric
var (
	// BuildInfo exposes build information.
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information",
		},
		[]string{"version"},
	)
)

// SetBuildInfo sets the build info metric.
func SetBuildInfo(version string) {
	BuildInfo.WithLabelValues(version).Set(1)
}

// Denied records a permission rejection.
func Denied(permission string) {
	PermissionDeniedTotal.WithLabelValues(permission).Inc()
}
