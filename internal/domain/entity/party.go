package entity

import (
	"time"

	"github.com/google/uuid"
)

// Party is a capacity-bounded group reservation for a slot and game within a
// server. Joining a party implies a matching timetable entry; a user belongs
// to at most one party system-wide.
type Party struct {
	ID           uuid.UUID   `json:"id"`           // The Global Unique Identifier (GUID) for the party.
	ServerID     uuid.UUID   `json:"server_id"`    // The server the party belongs to.
	CreatorID    uuid.UUID   `json:"creator_id"`   // The user who created the party.
	Slot         time.Time   `json:"slot"`         // The reserved time slot, truncated to the minute.
	Capacity     int         `json:"capacity"`     // Maximum participant count, always >= 1.
	Game         string      `json:"game"`         // The game the party gathers for.
	Participants []uuid.UUID `json:"participants"` // Current participant user IDs.
	CreatedAt    time.Time   `json:"created_at"`   // Timestamp of when this record was created.
}

// HasParticipant reports whether the user is currently a participant.
func (p *Party) HasParticipant(userID uuid.UUID) bool {
	for _, id := range p.Participants {
		if id == userID {
			return true
		}
	}

	return false
}

// IsFull reports whether the party reached its capacity.
func (p *Party) IsFull() bool {
	return len(p.Participants) >= p.Capacity
}

// ClampCapacity forces a requested capacity into the [1, maxCapacity] range.
func ClampCapacity(requested, maxCapacity int) int {
	if requested < 1 {
		return 1
	}
	if maxCapacity > 0 && requested > maxCapacity {
		return maxCapacity
	}

	return requested
}
