package ports

import (
	"context"

	"github.com/roleportal/accounts-api/internal/core/domain"
)

// UserRepository defines persistence operations for identity records.
// Uniqueness of username and email is enforced by the store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns every user ordered by ascending id.
	List(ctx context.Context) ([]*domain.User, error)
	// Update replaces username, email, and role of an existing record.
	// The password hash and framework flags are left untouched.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
