package core

import (
	"time"
)

// AuditAction is the kind of change an audit entry records.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// EntityType names the audited collection.
type EntityType string

const (
	EntityBook EntityType = "book"
	EntityUser EntityType = "user"
	EntityLoan EntityType = "loan"
)

// AuditLog is an append-only record of a state-changing operation.
type AuditLog struct {
	ID         string      `json:"id"`
	Action     AuditAction `json:"action"`
	EntityType EntityType  `json:"entityType"`
	EntityID   string      `json:"entityId"`
	Details    string      `json:"details"`
	Timestamp  time.Time   `json:"timestamp"`
	UserID     string      `json:"userId,omitempty"`
}

// BuildAuditLog creates an entry without an id; the shell assigns one when the entry is committed.
func BuildAuditLog(
	action AuditAction,
	entityType EntityType,
	entityID string,
	details string,
	occurredAt OccurredAt,
) AuditLog {
	return AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  occurredAt,
	}
}
