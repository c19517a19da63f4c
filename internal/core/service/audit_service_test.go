package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roleportal/accounts-api/internal/core/domain"
)

type stubAuditRepo struct {
	events []*domain.AuditEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *stubAuditRepo) Recent(_ context.Context, limit int) ([]*domain.AuditEvent, error) {
	if limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]*domain.AuditEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

func TestAuditService_Process_FillsTimestamp(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), domain.AuditEvent{
		Actor:  "root",
		Action: domain.AuditUserDeleted,
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(repo.events))
	}
	if repo.events[0].Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be filled")
	}
}

func TestAuditService_Recent_ClampsLimit(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_ = svc.Process(context.Background(), domain.AuditEvent{Actor: "root", Action: domain.AuditLogin})
	}

	events, err := svc.Recent(context.Background(), -5)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}
