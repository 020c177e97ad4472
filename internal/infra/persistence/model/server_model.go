package model

import (
	"time"

	"github.com/google/uuid"
)

// GameServerModel is the GORM-specific struct for the 'game_servers' table.
type GameServerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(128);not null"`
	ResetTime string    `gorm:"type:varchar(5);not null;index"` // "HH:MM" wall clock
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GameServerModel) TableName() string {
	return "game_servers"
}

// ServerMemberModel is the GORM-specific struct for the 'server_members'
// table.
type ServerMemberModel struct {
	ServerID uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID `gorm:"type:uuid;primary_key;index"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ServerMemberModel) TableName() string {
	return "server_members"
}
