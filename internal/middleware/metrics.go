package middleware

import (
	"net/http"
	"time"

	"github.com/Guilherme-dev15/finance-app/internal/metrics"
)

// Metrics records Prometheus counters and latency for every request.
// The route label uses the matched ServeMux pattern so debt IDs don't
// explode the label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(r.Method, route, rec.status, time.Since(start).Seconds())
	})
}
