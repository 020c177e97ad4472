// Package repository defines the persistence interfaces consumed by the use
// case layer. Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"gametable/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when no timetable entry exists for the lookup.
var ErrEntryNotFound = errors.New("timetable entry not found")

// TimetableRepository persists slot reservations. At most one row exists per
// (server, user); Upsert replaces silently (last write wins).
type TimetableRepository interface {
	// Upsert inserts the entry, replacing any prior entry for the same
	// (server, user) pair.
	Upsert(ctx context.Context, entry *entity.TimetableEntry) error

	// FindByServerAndUser retrieves the active entry for a (server, user)
	// pair, or ErrEntryNotFound.
	FindByServerAndUser(ctx context.Context, serverID, userID uuid.UUID) (*entity.TimetableEntry, error)

	// Delete removes the entry for a (server, user) pair. Deleting a missing
	// entry is not an error.
	Delete(ctx context.Context, serverID, userID uuid.UUID) error

	// DeleteByServer wipes every entry of a server and returns the removed
	// entries so callers can audit them.
	DeleteByServer(ctx context.Context, serverID uuid.UUID) ([]*entity.TimetableEntry, error)

	// ListAll returns every active entry. Used by the reminder sweep; a full
	// scan per minute is acceptable at current entry counts.
	ListAll(ctx context.Context) ([]*entity.TimetableEntry, error)
}
