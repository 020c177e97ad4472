package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel is the GORM-specific struct for the 'friendships' table.
// A confirmed friendship is stored as two mirrored rows so friend lookups
// stay a single indexed query on user_id.
type FriendshipModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	FriendID  uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
