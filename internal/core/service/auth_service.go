package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/roleportal/accounts-api/internal/core/domain"
	"github.com/roleportal/accounts-api/internal/core/ports"
)

// RevocationStore abstracts the token revocation set (Redis).
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService implements signup, login, and logout.
type AuthService struct {
	repo        ports.UserRepository
	revocations RevocationStore
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(repo ports.UserRepository, revocations RevocationStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, revocations: revocations, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Signup creates a new account. The role is an open choice at signup and
// defaults to customer when omitted.
func (s *AuthService) Signup(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
		JoinedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by username and password and returns the token plus
// the role-resolved landing destination.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		Token:       token,
		User:        user,
		Destination: domain.ResolveDestination(user),
	}, nil
}

// Logout places the token's jti on the revocation set until the token would
// have expired anyway.
func (s *AuthService) Logout(ctx context.Context, jti string, expiry time.Time) error {
	if jti == "" {
		return nil
	}
	return s.revocations.Revoke(ctx, jti, expiry)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", user.ID),
		"username": user.Username,
		"role":     string(user.Role),
		"jti":      newJTI(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newJTI returns a random token identifier in the format ACC-XXXXXXXXXXXXXXXX.
func newJTI() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("ACC-%016X", time.Now().UnixNano())
	}
	return fmt.Sprintf("ACC-%016X", b)
}
