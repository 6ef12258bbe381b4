package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"affiliateedge/internal/delivery/http/helpers"
	"affiliateedge/internal/domain"
)

// SignupRequest is the request body for POST /api/newsletter.
type SignupRequest struct {
	Email string `json:"email"`
	Site  string `json:"site"`
	Name  string `json:"name"`
}

type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{Logger: logger, Service: svc}
}

// Signup godoc
// @Summary Newsletter signup
// @Description Subscribes an email address for a tenant site. Duplicate signups are silent no-ops.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup data"
// @Success 200 {object} helpers.OKResponse
// @Failure 400 {object} helpers.ErrorResponse "error: invalid_email"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/newsletter [post]
func (c *NewsletterController) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := c.Service.Subscribe(r.Context(), req.Email, req.Site, req.Name); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			helpers.WriteError(w, http.StatusBadRequest, helpers.CodeInvalidEmail)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helpers.WriteOK(w, "Successfully subscribed")
}

// Unsubscribe godoc
// @Summary Newsletter unsubscribe
// @Description Marks a subscriber as unsubscribed using the signed token from the welcome email. Idempotent.
// @Tags newsletter
// @Produce json
// @Param token query string true "Signed unsubscribe token"
// @Success 200 {object} helpers.OKResponse
// @Failure 400 {object} helpers.ErrorResponse "error: invalid_token"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/newsletter/unsubscribe [get]
func (c *NewsletterController) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		helpers.WriteError(w, http.StatusBadRequest, helpers.CodeInvalidToken)
		return
	}

	if err := c.Service.Unsubscribe(r.Context(), token); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			helpers.WriteError(w, http.StatusBadRequest, helpers.CodeInvalidToken)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helpers.WriteOK(w, "Unsubscribed")
}
