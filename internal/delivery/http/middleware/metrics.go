package middleware

import (
	"net/http"
	"time"

	"affiliateedge/internal/metrics"
)

// Metrics records request count and latency for each served request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		metrics.ObserveRequest(r.Method, metrics.NormalizeRoute(r.URL.Path), wrapped.status, time.Since(start))
	})
}
