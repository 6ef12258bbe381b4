// Package metrics exposes Prometheus collectors for the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	gatewayRedirectsTotal      *prometheus.CounterVec
	gatewayEventsTotal         *prometheus.CounterVec

	once sync.Once

	knownSites map[string]struct{}
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		)

		gatewayRedirectsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_redirects_total",
				Help: "Total number of affiliate redirects served, labeled by site and network.",
			},
			[]string{"site", "network"},
		)

		gatewayEventsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_events_total",
				Help: "Total number of analytics events recorded, labeled by event kind and write status.",
			},
			[]string{"event", "status"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetKnownSites registers the configured tenant sites. Site labels outside
// this set are collapsed by NormalizeSite; call before serving traffic.
func SetKnownSites(sites []string) {
	m := make(map[string]struct{}, len(sites))
	for _, s := range sites {
		m[s] = struct{}{}
	}
	knownSites = m
}

// NormalizeSite maps a site tag to a bounded label value. The site query
// parameter is caller-controlled, so anything outside the configured tenant
// sites becomes "other" to keep label cardinality bounded.
func NormalizeSite(site string) string {
	if _, ok := knownSites[site]; ok {
		return site
	}
	return "other"
}

// ObserveRedirect increments the redirect counter.
func ObserveRedirect(site, network string) {
	if gatewayRedirectsTotal == nil {
		return
	}
	gatewayRedirectsTotal.WithLabelValues(NormalizeSite(site), network).Inc()
}

// ObserveEvent increments the analytics event counter. Status is "ok" or "error".
func ObserveEvent(event, status string) {
	if gatewayEventsTotal == nil {
		return
	}
	gatewayEventsTotal.WithLabelValues(event, status).Inc()
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, code int, duration time.Duration) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// NormalizeRoute maps a request path to a bounded route label so unknown
// paths cannot explode label cardinality.
func NormalizeRoute(path string) string {
	switch path {
	case "/r", "/api/newsletter", "/.netlify/functions/newsletter",
		"/api/newsletter/unsubscribe", "/api/contact", "/api/analytics", "/metrics":
		return path
	default:
		return "other"
	}
}
