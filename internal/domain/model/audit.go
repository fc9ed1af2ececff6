package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one row of the operational audit trail. Every state-changing
// use case records who did what to which entity.
type AuditEntry struct {
	ID        string
	UserID    string
	Action    string
	Entity    string
	EntityID  string
	Detail    string
	CreatedAt time.Time
}

// NewAuditEntry creates an audit trail record.
func NewAuditEntry(userID, action, entity, entityID, detail string, now time.Time) AuditEntry {
	return AuditEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: now,
	}
}
