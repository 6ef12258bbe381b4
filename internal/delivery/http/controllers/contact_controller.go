package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"affiliateedge/internal/delivery/http/helpers"
	"affiliateedge/internal/domain"
)

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Site    string `json:"site"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Contact form submission
// @Description Records the inquiry and notifies the site operator. The stored message snippet is truncated to 200 characters.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact data"
// @Success 200 {object} helpers.OKResponse
// @Failure 400 {object} helpers.ErrorResponse "error: missing_fields"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	err := c.Service.Submit(r.Context(), &domain.ContactInquiry{
		Site:    req.Site,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			helpers.WriteError(w, http.StatusBadRequest, helpers.CodeMissingFields)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helpers.WriteOK(w, "Message received")
}
