package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntity names the kind of record an audit entry refers to.
type AuditEntity string

const (
	AuditEntityUser        AuditEntity = "user"
	AuditEntityPreferences AuditEntity = "preferences"
	AuditEntityQuitPlan    AuditEntity = "quit_plan"
)

func (e AuditEntity) String() string { return string(e) }

// AuditAction is the kind of mutation recorded.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs a mutation of user-owned data.
// Changes maps a field name to {"old": …, "new": …}.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType AuditEntity
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// FieldChange returns the audit representation of a changed field.
func FieldChange(old, new any) map[string]any {
	return map[string]any{"old": old, "new": new}
}
