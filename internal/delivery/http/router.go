// Package http wires the gateway's public routes.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"affiliateedge/internal/delivery/http/controllers"
	"affiliateedge/internal/metrics"
)

// NewRouter initializes the HTTP router with all application routes.
// Unmatched paths and methods get a plain-text 404 (never the ServeMux
// default 405), matching what clients of the original endpoint expect.
// ServeMux "GET" patterns also accept HEAD, so HEAD on the GET routes is
// served rather than 404'd; CORS advertises HEAD accordingly.
func NewRouter(
	redirect *controllers.RedirectController,
	newsletter *controllers.NewsletterController,
	contact *controllers.ContactController,
	analytics *controllers.AnalyticsController,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /r", redirect.Redirect)

	mux.HandleFunc("POST /api/newsletter", newsletter.Signup)
	// Legacy path from the Netlify era; old static pages still post here.
	mux.HandleFunc("POST /.netlify/functions/newsletter", newsletter.Signup)
	mux.HandleFunc("GET /api/newsletter/unsubscribe", newsletter.Unsubscribe)

	mux.HandleFunc("POST /api/contact", contact.Submit)

	mux.HandleFunc("GET /api/analytics", analytics.Dashboard)

	// Ops
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Method fallbacks: a wrong method on a known path is 404, not 405.
	for _, path := range []string{
		"/r", "/api/newsletter", "/.netlify/functions/newsletter",
		"/api/newsletter/unsubscribe", "/api/contact", "/api/analytics", "/metrics",
	} {
		mux.HandleFunc(path, notFound)
	}
	mux.HandleFunc("/", notFound)

	return mux
}

func notFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
