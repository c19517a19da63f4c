package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker answers whether a token id has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Context keys set by the auth middleware.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxJTI      = "jti"
	CtxTokenExp = "token_exp"
)

// Auth validates the JWT, rejects revoked tokens, and injects the identity
// into context. Requests without a valid token are rejected with 401 and the
// login entry point as redirect.
func Auth(jwtSecret string, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := resolveIdentity(c, jwtSecret, revocations); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// AuthOptional resolves the identity when a token is present but lets
// anonymous requests through untouched. Used by the login entry point to
// redirect already-authenticated callers.
func AuthOptional(jwtSecret string, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "" {
				// ignore bad or revoked tokens here: the caller is simply anonymous
				_ = resolveIdentity(c, jwtSecret, revocations)
			}
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, jwtSecret string, revocations RevocationChecker) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && revocations != nil {
		revoked, err := revocations.IsRevoked(c.Request().Context(), jti)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unable to verify token")
		}
		if revoked {
			return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
		}
	}

	sub, _ := claims["sub"].(string)
	userID, _ := strconv.ParseInt(sub, 10, 64)

	c.Set(CtxUserID, userID)
	c.Set(CtxUsername, claims["username"])
	c.Set(CtxRole, claims["role"])
	c.Set(CtxJTI, jti)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.Set(CtxTokenExp, exp.Time)
	} else {
		c.Set(CtxTokenExp, time.Time{})
	}

	return nil
}
