package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roleportal/accounts-api/internal/core/domain"
	"github.com/roleportal/accounts-api/internal/core/ports"
)

// AccountService implements the admin-only CRUD on identity records.
type AccountService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// ListUsers returns every record ordered by id, for the admin dashboard.
func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// GetUser fetches a single record by id.
func (s *AccountService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser replaces exactly username, email, and role of the target
// record. The credential and framework flags are never touched here.
func (s *AccountService) UpdateUser(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	user.Username = in.Username
	user.Email = in.Email
	user.Role = role

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", in.ID).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", updated.ID).Str("role", string(updated.Role)).Msg("user updated")
	return updated, nil
}

// DeleteUser permanently removes the target record. The self-delete guard is
// unconditional: it runs before the store delete and cannot be overridden.
func (s *AccountService) DeleteUser(ctx context.Context, id, actingID int64) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if target.ID == actingID {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, target.ID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Int64("user_id", id).Str("username", target.Username).Msg("user deleted")
	return nil
}
