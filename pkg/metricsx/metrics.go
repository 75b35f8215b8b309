// Package metricsx wires Prometheus instrumentation for the profile
// service: HTTP request metrics plus counters for the decisions the
// sharing layer makes.
package metricsx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Registry all metrics below are registered on.
	Registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Access control metrics
	AccessDecisionsTotal *prometheus.CounterVec

	// Invite metrics
	InvitesMintedTotal    prometheus.Counter
	InviteRedemptionTotal *prometheus.CounterVec

	// Share metrics
	SharesGrantedTotal prometheus.Counter
	SharesRevokedTotal prometheus.Counter

	// Cascade metrics
	ProfileCascadeDeletesTotal prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		Registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fairstand_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fairstand_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		AccessDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fairstand_access_decisions_total",
				Help: "Access control decisions by outcome",
			},
			[]string{"permission", "outcome"},
		),
		InvitesMintedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fairstand_invites_minted_total",
				Help: "Invites minted",
			},
		),
		InviteRedemptionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fairstand_invite_redemptions_total",
				Help: "Invite redemption attempts by outcome",
			},
			[]string{"outcome"},
		),
		SharesGrantedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fairstand_shares_granted_total",
				Help: "Shares granted or regranted",
			},
		),
		SharesRevokedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fairstand_shares_revoked_total",
				Help: "Shares revoked",
			},
		),
		ProfileCascadeDeletesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fairstand_profile_cascade_deletes_total",
				Help: "Profile deletions including dependent rows",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AccessDecisionsTotal,
		m.InvitesMintedTotal,
		m.InviteRedemptionTotal,
		m.SharesGrantedTotal,
		m.SharesRevokedTotal,
		m.ProfileCascadeDeletesTotal,
	)

	return m
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// HTTPMetricsMiddleware instruments HTTP requests with Prometheus metrics
func HTTPMetricsMiddleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			// Label with the route pattern, not the raw path, to keep
			// cardinality bounded.
			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rw.statusCode)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}

// Handler returns the /metrics endpoint handler for the given registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
