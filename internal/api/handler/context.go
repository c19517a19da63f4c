package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roleportal/accounts-api/internal/api/middleware"
)

// identity is the acting identity extracted from the auth middleware's claims.
type identity struct {
	ID       int64
	Username string
	Role     string
	JTI      string
	TokenExp time.Time
}

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: the role claim must be
// present (presence proves the middleware ran) and the subject id must have
// parsed, otherwise the token is structurally valid but unusable.
func ctxIdentity(c echo.Context) (identity, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get(middleware.CtxUserID).(int64)
	if id == 0 {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	username, _ := c.Get(middleware.CtxUsername).(string)
	jti, _ := c.Get(middleware.CtxJTI).(string)
	exp, _ := c.Get(middleware.CtxTokenExp).(time.Time)

	return identity{ID: id, Username: username, Role: role, JTI: jti, TokenExp: exp}, nil
}
