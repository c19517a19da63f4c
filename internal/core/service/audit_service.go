package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/roleportal/accounts-api/internal/core/domain"
	"github.com/roleportal/accounts-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation backed by the
// given repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. A missing timestamp is filled in
// at processing time.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		s.log.Error().Err(err).
			Str("actor", event.Actor).
			Str("action", string(event.Action)).
			Msg("failed to persist audit event")
		return err
	}
	return nil
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]*domain.AuditEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.Recent(ctx, limit)
}
