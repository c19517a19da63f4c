package domain

import "time"

// AuditAction identifies the account action recorded in the trail.
type AuditAction string

const (
	AuditSignup       AuditAction = "signup"
	AuditLogin        AuditAction = "login"
	AuditLogout       AuditAction = "logout"
	AuditUserUpdated  AuditAction = "user_updated"
	AuditUserDeleted  AuditAction = "user_deleted"
	AuditAccessDenied AuditAction = "access_denied"
)

// AuditEvent records one account action performed by (or denied to) an actor.
type AuditEvent struct {
	Actor     string      `json:"actor"`
	Action    AuditAction `json:"action"`
	TargetID  int64       `json:"target_id,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
