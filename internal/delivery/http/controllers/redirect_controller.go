package controllers

import (
	"log/slog"
	"net/http"
	"net/url"

	"affiliateedge/internal/delivery/http/helpers"
	"affiliateedge/internal/domain"
)

type RedirectController struct {
	Logger  *slog.Logger
	Service domain.RedirectService
}

func NewRedirectController(logger *slog.Logger, svc domain.RedirectService) *RedirectController {
	return &RedirectController{Logger: logger, Service: svc}
}

// Redirect godoc
// @Summary Affiliate redirect with click tracking
// @Description Classifies the destination, injects the affiliate tag and UTM parameters, records the click, and issues a 302 redirect.
// @Tags redirect
// @Produce json
// @Param site query string false "Tenant site tag" default(unknown)
// @Param id query string false "Product id (becomes utm_campaign)"
// @Param article query string false "Referring article slug"
// @Param href query string true "URL-encoded destination URL"
// @Success 302 "Location header carries the final tagged URL"
// @Failure 400 {object} helpers.ErrorResponse "error: missing_href"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /r [get]
func (c *RedirectController) Redirect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	encodedHref := q.Get("href")
	if encodedHref == "" {
		helpers.WriteError(w, http.StatusBadRequest, helpers.CodeMissingHref)
		return
	}

	// The links embedded in articles double-encode the destination; the query
	// parser removed one layer, this removes the other. PathUnescape, not
	// QueryUnescape: a literal + in the destination must stay a +.
	destination, err := url.PathUnescape(encodedHref)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := c.Service.BuildRedirect(r.Context(), &domain.RedirectRequest{
		Site:        q.Get("site"),
		ProductID:   q.Get("id"),
		ArticleSlug: q.Get("article"),
		Destination: destination,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Location", result.Location)
	w.WriteHeader(http.StatusFound)
}
