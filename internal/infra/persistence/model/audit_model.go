package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
// Append-only: rows are never updated and only removed by the retention
// sweep.
type AuditLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ServerID   *uuid.UUID `gorm:"type:uuid;index"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	Action     string     `gorm:"type:varchar(32);not null;index"`
	Details    string     `gorm:"type:varchar(512);not null"`
	OccurredAt time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
