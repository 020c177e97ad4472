package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction tags an audit trail row with the domain event it records.
type AuditAction string

// Audit actions appended by the core. Live tables are wiped by the daily
// reset, so these rows are the durable record used by later statistics.
const (
	ActionTimetableRegister AuditAction = "TIMETABLE_REGISTER"
	ActionTimetableDelete   AuditAction = "TIMETABLE_DELETE"
	ActionPartyCreate       AuditAction = "PARTY_CREATE"
	ActionPartyJoin         AuditAction = "PARTY_JOIN"
	ActionPartyLeave        AuditAction = "PARTY_LEAVE"
	ActionPartyDelete       AuditAction = "PARTY_DELETE"
	ActionNotifyDispatch    AuditAction = "NOTIFY_DISPATCH"
)

// RemovalReason tags why a timetable entry was removed.
type RemovalReason string

// Removal reasons recorded in TIMETABLE_DELETE details.
const (
	ReasonUserAction RemovalReason = "USER_ACTION"
	ReasonPartyMove  RemovalReason = "PARTY_MOVE"
	ReasonKick       RemovalReason = "KICK"
	ReasonReset      RemovalReason = "RESET"
)

// AuditLogEntry is an append-only record of a domain event. Rows are never
// updated and are pruned only by age-based retention.
type AuditLogEntry struct {
	ID         uuid.UUID   `json:"id"`
	ServerID   *uuid.UUID  `json:"server_id,omitempty"` // Nil for events without a server scope.
	UserID     *uuid.UUID  `json:"user_id,omitempty"`   // Nil for events without a single subject.
	Action     AuditAction `json:"action"`
	Details    string      `json:"details"` // Semi-structured "k=v;k=v" payload, see AuditDetail.
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewAuditLogEntry builds an audit row for a server-scoped user event,
// encoding the detail payload through the audit detail codec.
func NewAuditLogEntry(serverID, userID uuid.UUID, action AuditAction, detail AuditDetail) *AuditLogEntry {
	return &AuditLogEntry{
		ID:         uuid.New(),
		ServerID:   &serverID,
		UserID:     &userID,
		Action:     action,
		Details:    EncodeAuditDetail(detail),
		OccurredAt: time.Now(),
	}
}
