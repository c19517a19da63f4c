package handler

import (
	"github.com/roleportal/accounts-api/internal/core/domain"
)

// AuditDispatcher is the interface handlers use to enqueue audit events.
type AuditDispatcher interface {
	Enqueue(event domain.AuditEvent)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		JoinedAt: u.JoinedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toAuditEntries(events []*domain.AuditEvent) []auditEntry {
	out := make([]auditEntry, 0, len(events))
	for _, e := range events {
		out = append(out, auditEntry{
			Actor:     e.Actor,
			Action:    string(e.Action),
			TargetID:  e.TargetID,
			Detail:    e.Detail,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
