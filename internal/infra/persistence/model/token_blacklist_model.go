package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel is the GORM-specific struct for the 'token_blacklist'
// table. The core never issues or validates tokens; it only prunes rows whose
// expiry has passed during the daily retention sweep.
type TokenBlacklistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TokenHash string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
