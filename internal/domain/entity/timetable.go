// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimetableEntry is a user's single active slot reservation within a server.
// At most one entry exists per (server, user) pair; a new registration always
// replaces the previous one.
type TimetableEntry struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the entry.
	ServerID  uuid.UUID `json:"server_id"`  // The server the reservation belongs to.
	UserID    uuid.UUID `json:"user_id"`    // The user holding the reservation.
	Slot      time.Time `json:"slot"`       // The reserved time slot, truncated to the minute.
	Game      string    `json:"game"`       // The game the slot is reserved for.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// NewTimetableEntry builds an entry with the slot truncated to the minute.
func NewTimetableEntry(serverID, userID uuid.UUID, slot time.Time, game string) *TimetableEntry {
	now := time.Now()

	return &TimetableEntry{
		ID:        uuid.New(),
		ServerID:  serverID,
		UserID:    userID,
		Slot:      slot.Truncate(time.Minute),
		Game:      game,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
