package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/core/ports"
)

// DashboardHandler serves the two role-specific dashboards. Role access is
// enforced by the guard middleware before these run.
type DashboardHandler struct {
	accounts ports.AccountService
	audit    ports.AuditService
}

func NewDashboardHandler(accounts ports.AccountService, audit ports.AuditService) *DashboardHandler {
	return &DashboardHandler{accounts: accounts, audit: audit}
}

// Customer handles GET /dashboard/customer/ — the acting user's profile.
//
// @Summary      Customer dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/customer/ [get]
func (h *DashboardHandler) Customer(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.GetUser(c.Request().Context(), ident.ID)
	if err != nil {
		return err
	}

	resp := toUserResponse(user)
	return c.JSON(http.StatusOK, dashboardResponse{
		Dashboard: "customer",
		User:      &resp,
	})
}

// Admin handles GET /dashboard/admin/ — all registered users ordered by id.
//
// @Summary      Admin dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/admin/ [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Dashboard: "admin",
		Users:     toUserResponses(users),
	})
}

// AuditTrail handles GET /dashboard/admin/audit/ — recent account actions.
//
// @Summary      Recent audit trail
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 50)"
// @Success      200    {object}  auditTrailResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /dashboard/admin/audit/ [get]
func (h *DashboardHandler) AuditTrail(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.audit.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, auditTrailResponse{Events: toAuditEntries(events)})
}
