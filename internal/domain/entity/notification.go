package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCategory classifies a notification for per-user opt-out.
type NotificationCategory string

// Notification categories. Reminder is push-only and never produces a panel
// record; friend-schedule panel records honor the category switch so a user
// can silence panel clutter while still receiving push.
const (
	CategoryInvite         NotificationCategory = "invite"
	CategoryFriendRequest  NotificationCategory = "friend_request"
	CategoryFriendSchedule NotificationCategory = "friend_schedule"
	CategoryParty          NotificationCategory = "party"
	CategoryReminder       NotificationCategory = "reminder"
)

// DefaultReminderLeadMinutes applies when a user has no preference row.
const DefaultReminderLeadMinutes = 30

// NotificationPreference holds a user's per-category notification switches
// and reminder lead time. The core reads these; it never mutates them.
type NotificationPreference struct {
	UserID                uuid.UUID `json:"user_id"`
	Enabled               bool      `json:"enabled"` // Global on/off; when off, nothing is delivered or recorded.
	InviteEnabled         bool      `json:"invite_enabled"`
	FriendRequestEnabled  bool      `json:"friend_request_enabled"`
	FriendScheduleEnabled bool      `json:"friend_schedule_enabled"`
	PartyEnabled          bool      `json:"party_enabled"`
	ReminderLeadMinutes   int       `json:"reminder_lead_minutes"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultNotificationPreference is the everything-on preference used for
// users without a stored row.
func DefaultNotificationPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:                userID,
		Enabled:               true,
		InviteEnabled:         true,
		FriendRequestEnabled:  true,
		FriendScheduleEnabled: true,
		PartyEnabled:          true,
		ReminderLeadMinutes:   DefaultReminderLeadMinutes,
	}
}

// PushEnabledFor reports whether push delivery is allowed for the category.
// The global switch is checked separately by the gateway.
func (p *NotificationPreference) PushEnabledFor(category NotificationCategory) bool {
	switch category {
	case CategoryInvite:
		return p.InviteEnabled
	case CategoryFriendRequest:
		return p.FriendRequestEnabled
	case CategoryFriendSchedule:
		return p.FriendScheduleEnabled
	case CategoryParty:
		return p.PartyEnabled
	case CategoryReminder:
		// Reminders concern the user's own entry; no category switch applies.
		return true
	default:
		return true
	}
}

// PanelEnabledFor reports whether a durable panel record is created for the
// category. Only friend-schedule panels are gated by a category switch;
// reminders never create one.
func (p *NotificationPreference) PanelEnabledFor(category NotificationCategory) bool {
	switch category {
	case CategoryFriendSchedule:
		return p.FriendScheduleEnabled
	case CategoryReminder:
		return false
	default:
		return true
	}
}

// PanelNotification is a durable, user-visible notification row, distinct
// from the transient push delivery attempt.
type PanelNotification struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Category  NotificationCategory `json:"category"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	LinkURL   string               `json:"link_url"` // Deep link opened when the user taps the row.
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"created_at"`
}
