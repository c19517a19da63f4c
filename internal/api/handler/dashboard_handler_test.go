package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/api/middleware"
	"github.com/roleportal/accounts-api/internal/core/domain"
)

type stubAuditService struct {
	events []*domain.AuditEvent
}

func (s *stubAuditService) Process(_ context.Context, event domain.AuditEvent) error {
	s.events = append(s.events, &event)
	return nil
}

func (s *stubAuditService) Recent(_ context.Context, _ int) ([]*domain.AuditEvent, error) {
	return s.events, nil
}

func TestDashboardHandler_Admin_ListsAllUsersOrdered(t *testing.T) {
	e := newTestEcho()
	svc := newStubAccountService()
	h := NewDashboardHandler(svc, &stubAuditService{})

	c, rec := adminContext(e, http.MethodGet, "/dashboard/admin/", "", "")
	if err := h.Admin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Dashboard string         `json:"dashboard"`
		Users     []userResponse `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Dashboard != "admin" {
		t.Fatalf("unexpected dashboard: %s", resp.Dashboard)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}
	if resp.Users[0].ID >= resp.Users[1].ID {
		t.Fatalf("expected ascending id order")
	}
}

func TestDashboardHandler_Customer_OwnProfile(t *testing.T) {
	e := newTestEcho()
	svc := newStubAccountService()
	h := NewDashboardHandler(svc, &stubAuditService{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/customer/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(2))
	c.Set(middleware.CtxUsername, "alice")
	c.Set(middleware.CtxRole, "CUSTOMER")

	if err := h.Customer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Dashboard string        `json:"dashboard"`
		User      *userResponse `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Dashboard != "customer" {
		t.Fatalf("unexpected dashboard: %s", resp.Dashboard)
	}
	if resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("expected acting user's profile, got %+v", resp.User)
	}
}

func TestDashboardHandler_Customer_MissingClaims(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(newStubAccountService(), &stubAuditService{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/customer/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Customer(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestDashboardHandler_AuditTrail(t *testing.T) {
	e := newTestEcho()
	audit := &stubAuditService{events: []*domain.AuditEvent{
		{Actor: "root", Action: domain.AuditUserDeleted, TargetID: 5, Timestamp: time.Now().UTC()},
	}}
	h := NewDashboardHandler(newStubAccountService(), audit)

	c, rec := adminContext(e, http.MethodGet, "/dashboard/admin/audit/", "", "")
	if err := h.AuditTrail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Events []auditEntry `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Action != "user_deleted" {
		t.Fatalf("unexpected trail: %+v", resp.Events)
	}
}
