package middleware

import "net/http"

// The gateway serves many static sites from different domains, so the CORS
// policy is a fixed wildcard set rather than an origin allowlist.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,HEAD,POST,OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS adds the fixed CORS header set to every response and answers OPTIONS
// preflight requests on any path with 204 and no body.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
