// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimetableEntryModel is the GORM-specific struct for the 'timetable_entries'
// table. The (server_id, user_id) unique index enforces at most one active
// reservation per user per server; rows are hard-deleted, the audit trail is
// the durable record.
type TimetableEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ServerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_timetable_server_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_timetable_server_user"`
	Slot      time.Time `gorm:"not null;index"`
	Game      string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}
