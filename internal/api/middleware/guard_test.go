package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/core/domain"
)

type stubAudit struct {
	events []domain.AuditEvent
}

func (s *stubAudit) Enqueue(event domain.AuditEvent) {
	s.events = append(s.events, event)
}

func guardContext(e *echo.Echo, id int64, username, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxUserID, id)
		c.Set(CtxUsername, username)
		c.Set(CtxRole, role)
	}
	return c, rec
}

func decodeDenial(t *testing.T, rec *httptest.ResponseRecorder) denialResponse {
	t.Helper()
	var resp denialResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, 1, "root", "ADMIN")

	audit := &stubAudit{}
	called := false
	handler := RequireAdmin("admin_dashboard", audit)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(audit.events) != 0 {
		t.Fatalf("allowed request should not be audited, got %d events", len(audit.events))
	}
}

func TestRequireAdmin_CustomerFallsBackToLogin(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, 2, "alice", "CUSTOMER")

	handler := RequireAdmin("admin_dashboard", nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	resp := decodeDenial(t, rec)
	// admin-check failures always bounce to the login entry point
	if resp.Redirect != "/" {
		t.Fatalf("expected login redirect, got %q", resp.Redirect)
	}
}

func TestRequireCustomer_AdminBouncesToOwnDashboard(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, 1, "root", "ADMIN")

	handler := RequireCustomer("customer_dashboard", nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	resp := decodeDenial(t, rec)
	if resp.Redirect != "/dashboard/admin/" {
		t.Fatalf("expected admin dashboard redirect, got %q", resp.Redirect)
	}
	if resp.Message == "" {
		t.Fatalf("expected a user-facing denial message")
	}
}

func TestRequireCustomer_AllowsCustomer(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, 2, "alice", "CUSTOMER")

	handler := RequireCustomer("customer_dashboard", nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_AnonymousRoutedToLogin(t *testing.T) {
	e := echo.New()
	c, rec := guardContext(e, 0, "", "")

	handler := RequireCustomer("customer_dashboard", nil)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if resp := decodeDenial(t, rec); resp.Redirect != "/" {
		t.Fatalf("expected login redirect, got %q", resp.Redirect)
	}
}

func TestGuard_DenialRecordedInAuditTrail(t *testing.T) {
	e := echo.New()
	c, _ := guardContext(e, 2, "alice", "CUSTOMER")

	audit := &stubAudit{}
	handler := RequireAdmin("delete_user", audit)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if len(audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.events))
	}
	got := audit.events[0]
	if got.Action != domain.AuditAccessDenied {
		t.Fatalf("expected %q action, got %q", domain.AuditAccessDenied, got.Action)
	}
	if got.Actor != "alice" {
		t.Fatalf("expected actor alice, got %q", got.Actor)
	}
	if got.Detail != "delete_user" {
		t.Fatalf("expected endpoint in detail, got %q", got.Detail)
	}
}

func TestGuard_AnonymousDenialAuditedAsAnonymous(t *testing.T) {
	e := echo.New()
	c, _ := guardContext(e, 0, "", "")

	audit := &stubAudit{}
	handler := RequireAdmin("admin_dashboard", audit)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if len(audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.events))
	}
	if got := audit.events[0].Actor; got != "anonymous" {
		t.Fatalf("expected anonymous actor, got %q", got)
	}
}
