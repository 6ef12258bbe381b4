package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"affiliateedge/internal/delivery/http/helpers"
	"affiliateedge/internal/domain"
)

const (
	defaultDashboardSite  = "swankyboyz"
	defaultDashboardLimit = 100
)

// DashboardResponse is the response body for GET /api/analytics.
type DashboardResponse struct {
	Site string                        `json:"site"`
	Data []*domain.AnalyticsSummaryRow `json:"data"`
}

type AnalyticsController struct {
	Logger  *slog.Logger
	Service domain.AnalyticsService
	Token   string
}

// NewAnalyticsController creates an AnalyticsController. token is the shared
// secret the dashboard must present.
func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService, token string) *AnalyticsController {
	return &AnalyticsController{Logger: logger, Service: svc, Token: token}
}

// Dashboard godoc
// @Summary Analytics dashboard data
// @Description Returns event counts for a site grouped by (affiliate network, event kind). Requires the dashboard token.
// @Tags analytics
// @Produce json
// @Param token query string true "Dashboard auth token"
// @Param site query string false "Tenant site tag" default(swankyboyz)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} helpers.ErrorResponse "error: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/analytics [get]
func (c *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if c.Token == "" || q.Get("token") != c.Token {
		helpers.WriteError(w, http.StatusUnauthorized, helpers.CodeUnauthorized)
		return
	}

	site := q.Get("site")
	if site == "" {
		site = defaultDashboardSite
	}
	limit := defaultDashboardLimit
	if s := q.Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	rows, err := c.Service.Summary(r.Context(), site, limit)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helpers.WriteJSON(w, http.StatusOK, DashboardResponse{Site: site, Data: rows})
}
