package ports

import (
	"context"

	"github.com/roleportal/accounts-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// Recent returns the newest events, most recent first.
	Recent(ctx context.Context, limit int) ([]*domain.AuditEvent, error)
}

// AuditService consumes queued audit events.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
	Recent(ctx context.Context, limit int) ([]*domain.AuditEvent, error)
}
