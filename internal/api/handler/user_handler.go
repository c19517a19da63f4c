package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/api/metrics"
	"github.com/roleportal/accounts-api/internal/core/domain"
	"github.com/roleportal/accounts-api/internal/core/ports"
)

// UserHandler serves the admin-only account mutations. The admin guard runs
// in middleware before any of these handlers.
type UserHandler struct {
	accounts ports.AccountService
	audit    AuditDispatcher
}

func NewUserHandler(accounts ports.AccountService, audit AuditDispatcher) *UserHandler {
	return &UserHandler{accounts: accounts, audit: audit}
}

func targetID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

// adminRedirect is the silent fallthrough for mutation endpoints: stale ids
// and read-only requests land back on the admin dashboard without side effects.
func adminRedirect(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, redirectResponse{
		Message:  message,
		Redirect: domain.DestinationAdminDashboard.Path(),
	})
}

// UpdateForm handles GET /user/update/:id/ — the target's current fields for
// form prefill. A vanished record falls through to the admin dashboard.
//
// @Summary      Update form prefill
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Target user id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/update/{id}/ [get]
func (h *UserHandler) UpdateForm(c echo.Context) error {
	id, err := targetID(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return adminRedirect(c, "")
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles POST /user/update/:id/ — replaces username, email, and role.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Target user id"
// @Param        body  body      updateUserRequest  true  "New field values"
// @Success      200   {object}  redirectResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/update/{id}/ [post]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := targetID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.accounts.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return adminRedirect(c, "")
		}
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	if ident, err := ctxIdentity(c); err == nil {
		h.audit.Enqueue(domain.AuditEvent{
			Actor:    ident.Username,
			Action:   domain.AuditUserUpdated,
			TargetID: updated.ID,
			Detail:   fmt.Sprintf("role=%s", updated.Role),
		})
	}

	return adminRedirect(c, fmt.Sprintf("User %q has been updated successfully.", updated.Username))
}

// Delete handles POST /user/delete/:id/ — permanently removes the record,
// unless the target is the acting admin itself.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Target user id"
// @Success      200  {object}  redirectResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/delete/{id}/ [post]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := targetID(c)
	if err != nil {
		return err
	}

	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	target, err := h.accounts.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return adminRedirect(c, "")
		}
		return err
	}

	if err := h.accounts.DeleteUser(c.Request().Context(), id, ident.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfDelete):
			metrics.SelfDeleteRefusedTotal.Inc()
			return c.JSON(http.StatusForbidden, redirectResponse{
				Message:  "You cannot delete your own account.",
				Redirect: domain.DestinationAdminDashboard.Path(),
			})
		case errors.Is(err, domain.ErrUserNotFound):
			// lost a race with a concurrent delete: same silent fallthrough
			return adminRedirect(c, "")
		}
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	h.audit.Enqueue(domain.AuditEvent{
		Actor:    ident.Username,
		Action:   domain.AuditUserDeleted,
		TargetID: id,
		Detail:   target.Username,
	})

	return adminRedirect(c, fmt.Sprintf("User %q has been deleted successfully.", target.Username))
}

// DeleteFallthrough handles GET /user/delete/:id/ — deletion requires an
// explicit POST confirmation; a read-only request redirects back to the
// admin dashboard without touching the store.
//
// @Summary      Delete fallthrough
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Target user id"
// @Success      200  {object}  redirectResponse
// @Router       /user/delete/{id}/ [get]
func (h *UserHandler) DeleteFallthrough(c echo.Context) error {
	return adminRedirect(c, "")
}
