package ports

import (
	"context"
	"time"

	"github.com/roleportal/accounts-api/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token       string
	User        *domain.User
	Destination domain.Destination
}

// AuthService implements signup, login, and logout.
type AuthService interface {
	Signup(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Logout revokes the token identified by jti until its expiry.
	Logout(ctx context.Context, jti string, expiry time.Time) error
}
