package domain

import "time"

// Role classifies an account. The set is closed: every valid user carries
// exactly one of the two values below.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// DefaultRole is assigned when a signup omits the role field.
const DefaultRole = RoleCustomer

// ParseRole validates an inbound role string. An empty string resolves to
// DefaultRole; anything outside the closed set is ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), nil
	case "":
		return DefaultRole, nil
	default:
		return "", ErrInvalidRole
	}
}

// IsAdmin reports whether the role grants admin access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsCustomer reports whether the role grants customer access.
func (r Role) IsCustomer() bool { return r == RoleCustomer }

// User models a persisted account. The password hash is owned by the auth
// layer and never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Staff        bool      `json:"is_staff,omitempty"`
	Superuser    bool      `json:"is_superuser,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}
