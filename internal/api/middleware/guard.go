package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/api/metrics"
	"github.com/roleportal/accounts-api/internal/core/domain"
)

// AuditDispatcher is the interface the guard uses to record denials in the
// audit trail.
type AuditDispatcher interface {
	Enqueue(event domain.AuditEvent)
}

// denialResponse is the payload rendered on every guard denial: a user-facing
// message plus the destination the caller is bounced to.
type denialResponse struct {
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// SessionFromContext rebuilds the request-scoped session from the claims the
// auth middleware injected. A request that never passed the middleware yields
// an anonymous session.
func SessionFromContext(c echo.Context) domain.Session {
	role, _ := c.Get(CtxRole).(string)
	if role == "" {
		return domain.Session{}
	}
	id, _ := c.Get(CtxUserID).(int64)
	username, _ := c.Get(CtxUsername).(string)
	return domain.Session{
		Authenticated: true,
		User: &domain.User{
			ID:       id,
			Username: username,
			Role:     domain.Role(role),
		},
	}
}

// Guard applies an access decision before the handler runs. A Denied outcome
// short-circuits with 403 carrying the message and fallback redirect, and is
// counted and recorded in the audit trail.
func Guard(endpoint string, audit AuditDispatcher, guard func(domain.Session) domain.Outcome) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			out := guard(session)
			if !out.Allowed {
				metrics.AccessDeniedTotal.WithLabelValues(endpoint).Inc()
				if audit != nil {
					actor := "anonymous"
					if session.Authenticated && session.User != nil {
						actor = session.User.Username
					}
					audit.Enqueue(domain.AuditEvent{
						Actor:  actor,
						Action: domain.AuditAccessDenied,
						Detail: endpoint,
					})
				}
				return c.JSON(http.StatusForbidden, denialResponse{
					Message:  out.Message,
					Redirect: out.Fallback.Path(),
				})
			}
			return next(c)
		}
	}
}

// RequireAdmin gates the admin dashboard and every account mutation.
func RequireAdmin(endpoint string, audit AuditDispatcher) echo.MiddlewareFunc {
	return Guard(endpoint, audit, domain.GuardAdminDashboard)
}

// RequireCustomer gates the customer dashboard.
func RequireCustomer(endpoint string, audit AuditDispatcher) echo.MiddlewareFunc {
	return Guard(endpoint, audit, domain.GuardCustomerDashboard)
}
