// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quitsmoke"

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests counts served requests by route pattern, method and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "http_requests_total",
	Help:      "Total HTTP requests served.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency in seconds.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
}, []string{"method", "route"})

// ─── Progress ───────────────────────────────────────────────────────────────

// MilestonesUnlocked counts unlock records created, by milestone category.
var MilestonesUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "milestones_unlocked_total",
	Help:      "Total milestones unlocked.",
}, []string{"category"})

// CravingsLogged counts cravings created.
var CravingsLogged = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "cravings_logged_total",
	Help:      "Total cravings logged.",
})

// ─── Auth ───────────────────────────────────────────────────────────────────

// AuthEvents counts authentication outcomes by event (register, login,
// refresh, logout) and result (ok, fail).
var AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "auth_events_total",
	Help:      "Total authentication events.",
}, []string{"event", "result"})

// TokensPurged counts expired or revoked refresh tokens removed by cleanup.
var TokensPurged = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "refresh_tokens_purged_total",
	Help:      "Total refresh tokens deleted by cleanup.",
})

// MilestoneUnlocked records one unlock in the given category.
func MilestoneUnlocked(category string) {
	MilestonesUnlocked.WithLabelValues(category).Inc()
}

// AuthEvent records an authentication attempt.
func AuthEvent(event string, err error) {
	result := "ok"
	if err != nil {
		result = "fail"
	}
	AuthEvents.WithLabelValues(event, result).Inc()
}

// ObserveRequest records a finished HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
