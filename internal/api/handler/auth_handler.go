package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/api/metrics"
	"github.com/roleportal/accounts-api/internal/api/middleware"
	"github.com/roleportal/accounts-api/internal/core/domain"
	"github.com/roleportal/accounts-api/internal/core/ports"
)

// AuthHandler serves the login entry point, signup, and logout.
type AuthHandler struct {
	authService ports.AuthService
	audit       AuditDispatcher
}

func NewAuthHandler(authService ports.AuthService, audit AuditDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Root handles GET / — the login entry point. An already-authenticated
// caller is redirected to its role's dashboard without re-authentication;
// anonymous callers get the login form descriptor.
//
// @Summary      Login entry point
// @Tags         auth
// @Produce      json
// @Success      200  {object}  pageResponse
// @Router       / [get]
func (h *AuthHandler) Root(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session.Authenticated {
		return c.JSON(http.StatusOK, redirectResponse{
			Redirect: domain.ResolveDestination(session.User).Path(),
		})
	}
	return c.JSON(http.StatusOK, pageResponse{Page: "login"})
}

// Login handles POST / — authenticates and redirects by role.
//
// @Summary      Authenticate
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       / [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown", "failure").Inc()
		// both unknown-user and bad-password render the same feedback
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid username or password."})
	}

	metrics.LoginsTotal.WithLabelValues(string(res.User.Role), "success").Inc()
	h.audit.Enqueue(domain.AuditEvent{Actor: res.User.Username, Action: domain.AuditLogin})

	return c.JSON(http.StatusOK, loginResponse{
		Token:    res.Token,
		User:     toUserResponse(res.User),
		Redirect: res.Destination.Path(),
	})
}

// SignupForm handles GET /signup/ — the signup form descriptor.
//
// @Summary      Signup form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  pageResponse
// @Router       /signup/ [get]
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "signup"})
}

// Signup handles POST /signup/ — creates an account and redirects to login.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  redirectResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup/ [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(user.Role)).Inc()
	metrics.UserMutationsTotal.WithLabelValues("create").Inc()
	h.audit.Enqueue(domain.AuditEvent{Actor: user.Username, Action: domain.AuditSignup})

	return c.JSON(http.StatusCreated, redirectResponse{
		Message:  "Signup successful. Please log in.",
		Redirect: domain.DestinationLogin.Path(),
	})
}

// Logout handles POST /logout/ — revokes the token and redirects to login.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  redirectResponse
// @Failure      401  {object}  errorResponse
// @Router       /logout/ [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), ident.JTI, ident.TokenExp); err != nil {
		return err
	}

	h.audit.Enqueue(domain.AuditEvent{Actor: ident.Username, Action: domain.AuditLogout})

	return c.JSON(http.StatusOK, redirectResponse{
		Message:  "You have been logged out successfully.",
		Redirect: domain.DestinationLogin.Path(),
	})
}
