package service

import (
	"context"

	"gametable/internal/domain/entity"
)

// FanoutPayload is the structured notification payload carried by a fan-out
// event. Kind discriminates how the push body and deep link are composed;
// an empty or unknown kind falls back to Message truncation.
type FanoutPayload struct {
	Kind       string `json:"kind,omitempty"` // friend_request | server_invite | timetable | party
	Game       string `json:"game,omitempty"`
	Slot       string `json:"slot,omitempty"` // Minute-truncated, entity.AuditSlotLayout format.
	PartyID    string `json:"party_id,omitempty"`
	ServerID   string `json:"server_id,omitempty"`
	FromUserID string `json:"from_user_id,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Payload kinds understood by the notification gateway.
const (
	PayloadKindFriendRequest = "friend_request"
	PayloadKindServerInvite  = "server_invite"
	PayloadKindTimetable     = "timetable"
	PayloadKindParty         = "party"
)

// FanoutEvent is one notification fan-out request, published after a slot
// operation commits and drained by the notify worker.
type FanoutEvent struct {
	RequestID    string                      `json:"request_id,omitempty"` // For distributed tracing.
	ServerID     string                      `json:"server_id,omitempty"`  // Audit scope hint.
	Category     entity.NotificationCategory `json:"category"`
	Title        string                      `json:"title"`
	RecipientIDs []string                    `json:"recipient_ids"`
	Payload      FanoutPayload               `json:"payload"`
}

// EventPublisher defines the interface for publishing fan-out events to a
// message queue. Publishing is best-effort: a failure is logged by the
// caller and never affects the committed slot operation.
type EventPublisher interface {
	// PublishFanoutEvent publishes a fan-out event for async delivery.
	PublishFanoutEvent(ctx context.Context, event *FanoutEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
