package repository

import (
	"context"

	"github.com/google/uuid"
)

// FriendRepository exposes the friend graph, used only to scope notification
// fan-out. Friend-request management itself is outside the core.
type FriendRepository interface {
	// FindFriendIDs returns the ids of the user's confirmed friends.
	FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// MemberRepository exposes server membership.
type MemberRepository interface {
	// FindMemberIDs returns the ids of every member of the server.
	FindMemberIDs(ctx context.Context, serverID uuid.UUID) ([]uuid.UUID, error)
}
