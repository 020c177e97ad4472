package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetTimeLayout is the wall-clock layout used for per-server reset times.
const ResetTimeLayout = "15:04"

// GameServer is a community container: the scoping unit for timetable
// entries, parties and membership. Its reset time is the wall-clock minute at
// which all of the server's timetable entries are wiped.
type GameServer struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the server.
	Name      string    `json:"name"`       // Display name of the server.
	ResetTime string    `json:"reset_time"` // Daily wipe time in "HH:MM" wall-clock format.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// ServerMember represents a user's membership in a server. A user may be a
// member of any number of servers.
type ServerMember struct {
	ServerID uuid.UUID `json:"server_id"`
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
