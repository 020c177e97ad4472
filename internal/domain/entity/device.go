package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push destination registered by a user. A user may hold
// several; destinations reported as permanently invalid by the delivery
// provider are pruned.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The owning user.
	PushToken string    `json:"push_token"` // Opaque delivery token issued by the push provider.
	DeviceID  string    `json:"device_id"`  // Client-side device identifier.
	Platform  string    `json:"platform"`   // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
