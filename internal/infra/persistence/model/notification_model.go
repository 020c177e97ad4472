package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the
// 'notification_preferences' table. Absence of a row means every switch is
// on with the default reminder lead.
type NotificationPreferenceModel struct {
	UserID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Enabled               bool      `gorm:"not null;default:true"`
	InviteEnabled         bool      `gorm:"not null;default:true"`
	FriendRequestEnabled  bool      `gorm:"not null;default:true"`
	FriendScheduleEnabled bool      `gorm:"not null;default:true"`
	PartyEnabled          bool      `gorm:"not null;default:true"`
	ReminderLeadMinutes   int       `gorm:"not null;default:30"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

// PanelNotificationModel is the GORM-specific struct for the
// 'panel_notifications' table: durable, user-visible notification rows.
type PanelNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Category  string    `gorm:"type:varchar(32);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:varchar(512);not null"`
	LinkURL   string    `gorm:"type:varchar(512)"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PanelNotificationModel) TableName() string {
	return "panel_notifications"
}
