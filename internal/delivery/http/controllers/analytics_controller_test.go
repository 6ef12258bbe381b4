package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"affiliateedge/internal/delivery/http/helpers"
	"affiliateedge/internal/domain"
)

type mockAnalyticsService struct {
	rows      []*domain.AnalyticsSummaryRow
	err       error
	lastSite  string
	lastLimit int
}

func (m *mockAnalyticsService) Record(e *domain.AnalyticsEvent) {}

func (m *mockAnalyticsService) Summary(ctx context.Context, site string, limit int) ([]*domain.AnalyticsSummaryRow, error) {
	m.lastSite, m.lastLimit = site, limit
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func TestAnalyticsController_BadTokenIs401(t *testing.T) {
	ctrl := NewAnalyticsController(testLogger(), &mockAnalyticsService{}, "correct")

	for _, target := range []string{
		"/api/analytics",
		"/api/analytics?token=wrong",
		"/api/analytics?token=wrong&site=swankyboyz&limit=5",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		ctrl.Dashboard(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", target, w.Code)
		}
		var resp helpers.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Error != "unauthorized" {
			t.Errorf("%s: error = %q", target, resp.Error)
		}
	}
}

func TestAnalyticsController_EmptyConfiguredTokenRejectsAll(t *testing.T) {
	ctrl := NewAnalyticsController(testLogger(), &mockAnalyticsService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?token=", nil)
	w := httptest.NewRecorder()
	ctrl.Dashboard(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAnalyticsController_Success(t *testing.T) {
	svc := &mockAnalyticsService{rows: []*domain.AnalyticsSummaryRow{
		{Count: 12, AffiliateNetwork: "amazon", Event: "affiliate_click"},
	}}
	ctrl := NewAnalyticsController(testLogger(), svc, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?token=sekrit&site=vaughnsterling&limit=25", nil)
	w := httptest.NewRecorder()
	ctrl.Dashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp DashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Site != "vaughnsterling" || len(resp.Data) != 1 || resp.Data[0].Count != 12 {
		t.Errorf("unexpected body: %+v", resp)
	}
	if svc.lastSite != "vaughnsterling" || svc.lastLimit != 25 {
		t.Errorf("service got %q/%d", svc.lastSite, svc.lastLimit)
	}
}

func TestAnalyticsController_Defaults(t *testing.T) {
	svc := &mockAnalyticsService{}
	ctrl := NewAnalyticsController(testLogger(), svc, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?token=sekrit&limit=junk", nil)
	w := httptest.NewRecorder()
	ctrl.Dashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.lastSite != "swankyboyz" || svc.lastLimit != 100 {
		t.Errorf("defaults not applied: %q/%d", svc.lastSite, svc.lastLimit)
	}
}

func TestAnalyticsController_ServiceErrorIs500(t *testing.T) {
	ctrl := NewAnalyticsController(testLogger(), &mockAnalyticsService{err: errors.New("db down")}, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?token=sekrit", nil)
	w := httptest.NewRecorder()
	ctrl.Dashboard(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
