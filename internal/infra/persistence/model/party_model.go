package model

import (
	"time"

	"github.com/google/uuid"
)

// PartyModel is the GORM-specific struct for the 'parties' table.
type PartyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ServerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null"`
	Slot      time.Time `gorm:"not null"`
	Capacity  int       `gorm:"not null"`
	Game      string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time

	Participants []PartyParticipantModel `gorm:"foreignKey:PartyID"`
}

// TableName explicitly sets the table name for GORM.
func (PartyModel) TableName() string {
	return "parties"
}

// PartyParticipantModel is the GORM-specific struct for the
// 'party_participants' table. The unique index on user_id enforces at most
// one party membership per user system-wide.
type PartyParticipantModel struct {
	PartyID  uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID `gorm:"type:uuid;primary_key;uniqueIndex:idx_participant_user"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PartyParticipantModel) TableName() string {
	return "party_participants"
}
