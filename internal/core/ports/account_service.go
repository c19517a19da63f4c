package ports

import (
	"context"

	"github.com/roleportal/accounts-api/internal/core/domain"
)

// UpdateUserInput carries the three admin-editable fields.
type UpdateUserInput struct {
	ID       int64
	Username string
	Email    string
	Role     string
}

// AccountService defines the admin-only operations on identity records.
// Role-based access is enforced at the middleware boundary before any of
// these run; the self-delete guard lives inside DeleteUser itself.
type AccountService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id, actingID int64) error
}
