// Package usecase defines the application use case interfaces: the small
// surface the (excluded) HTTP layer calls into.
package usecase

import (
	"context"
	"time"

	"gametable/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterEntryCommand carries the inputs of a timetable registration. The
// acting user is always explicit; the core never reads an ambient identity.
type RegisterEntryCommand struct {
	ServerID uuid.UUID `validate:"required"`
	UserID   uuid.UUID `validate:"required"`
	Slot     time.Time `validate:"required"`
	Game     string    `validate:"required,max=64"`
}

// CreatePartyCommand carries the inputs of a party creation. Capacity is
// clamped to [1, configured max] rather than rejected.
type CreatePartyCommand struct {
	ServerID  uuid.UUID `validate:"required"`
	CreatorID uuid.UUID `validate:"required"`
	Slot      time.Time `validate:"required"`
	Capacity  int
	Game      string `validate:"required,max=64"`
}

// SlotUsecase coordinates timetable registration, party membership and their
// cross-invariant effects. Every operation is atomic against the stores;
// notification fan-out happens after commit and is best-effort.
type SlotUsecase interface {
	// RegisterEntry reserves a slot for the user, replacing any prior entry
	// for the same (server, user). Fails with ErrPartyMembershipConflict if
	// the user holds party membership in that server.
	RegisterEntry(ctx context.Context, cmd *RegisterEntryCommand) (*entity.TimetableEntry, error)

	// RemoveEntry deletes the user's entry for the server. Idempotent: a
	// missing entry is not an error and produces no audit row.
	RemoveEntry(ctx context.Context, serverID, userID uuid.UUID, reason entity.RemovalReason) error

	// CreateParty persists a party, reserves the creator's matching slot and
	// adds the creator as first participant.
	CreateParty(ctx context.Context, cmd *CreatePartyCommand) (*entity.Party, error)

	// JoinParty adds the user to the party, evicting them from any other
	// party first. Idempotent for existing participants; fails with
	// ErrPartyFull at capacity.
	JoinParty(ctx context.Context, partyID, userID uuid.UUID) (*entity.Party, error)

	// LeaveParty removes the user from the party and drops their timetable
	// entry for that server. An emptied party is deleted.
	LeaveParty(ctx context.Context, partyID, userID uuid.UUID) error

	// DeleteParty deletes the party and every participant's timetable entry
	// for that server. Fails with ErrPartyDeleteForbidden unless the
	// requester is the creator.
	DeleteParty(ctx context.Context, partyID, requesterID uuid.UUID) error
}
