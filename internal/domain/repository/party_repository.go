package repository

import (
	"context"
	"errors"

	"gametable/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPartyNotFound is returned when a party lookup matches nothing.
var ErrPartyNotFound = errors.New("party not found")

// PartyRepository persists parties and their participant sets.
type PartyRepository interface {
	// Create persists a new party (without participants).
	Create(ctx context.Context, party *entity.Party) error

	// FindByID retrieves a party with its participants, or ErrPartyNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)

	// FindByParticipant retrieves the party the user currently belongs to,
	// anywhere in the system, or ErrPartyNotFound. A user holds at most one
	// membership system-wide.
	FindByParticipant(ctx context.Context, userID uuid.UUID) (*entity.Party, error)

	// AddParticipant records the user as a participant of the party.
	AddParticipant(ctx context.Context, partyID, userID uuid.UUID) error

	// RemoveParticipant removes the user from the party. Removing a missing
	// participant is not an error.
	RemoveParticipant(ctx context.Context, partyID, userID uuid.UUID) error

	// Delete removes the party row and its participant rows.
	Delete(ctx context.Context, partyID uuid.UUID) error
}
