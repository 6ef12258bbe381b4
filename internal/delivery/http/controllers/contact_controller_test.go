package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"affiliateedge/internal/delivery/http/helpers"
	"affiliateedge/internal/domain"
)

type mockContactService struct {
	err  error
	last *domain.ContactInquiry
}

func (m *mockContactService) Submit(ctx context.Context, inquiry *domain.ContactInquiry) error {
	m.last = inquiry
	return m.err
}

func TestContactController_Submit_Success(t *testing.T) {
	svc := &mockContactService{}
	ctrl := NewContactController(testLogger(), svc)

	body := `{"name":"Bob","email":"bob@example.com","message":"hi","site":"swankyboyz"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp helpers.OKResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.Message != "Message received" {
		t.Errorf("unexpected body: %+v", resp)
	}
	if svc.last.Name != "Bob" || svc.last.Email != "bob@example.com" || svc.last.Message != "hi" || svc.last.Site != "swankyboyz" {
		t.Errorf("inquiry not forwarded: %+v", svc.last)
	}
}

func TestContactController_Submit_MissingFields(t *testing.T) {
	svc := &mockContactService{err: domain.ErrMissingFields}
	ctrl := NewContactController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Bob"}`))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp helpers.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != "missing_fields" {
		t.Errorf("error = %q, want missing_fields", resp.Error)
	}
}

func TestContactController_Submit_MalformedJSONIs500(t *testing.T) {
	ctrl := NewContactController(testLogger(), &mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestContactController_Submit_ServiceErrorIs500(t *testing.T) {
	ctrl := NewContactController(testLogger(), &mockContactService{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"a","email":"a@b.com","message":"m"}`))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
