package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/quitsmoke-backend/internal/metrics"
)

// Metrics records request counts and latencies labelled by chi route
// template. Unmatched requests share the "unmatched" label so raw paths
// never become label values.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		route := routePattern(r)
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(r.Method, route, sw.status, time.Since(start))
	})
}
