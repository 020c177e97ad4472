package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAuditDetail_Scheduled(t *testing.T) {
	slot := time.Date(2025, 1, 10, 21, 0, 0, 0, time.Local)

	encoded := EncodeAuditDetail(ScheduledDetail{Game: "valheim", Slot: slot})

	assert.Equal(t, "game=valheim;slot=2025-01-10T21:00:00", encoded)
}

func TestEncodeAuditDetail_Removed(t *testing.T) {
	slot := time.Date(2025, 3, 2, 5, 30, 0, 0, time.Local)

	encoded := EncodeAuditDetail(RemovedDetail{Game: "eco", Slot: slot, Reason: ReasonReset})

	assert.Equal(t, "game=eco;slot=2025-03-02T05:30:00;reason=RESET", encoded)
}

func TestEncodeAuditDetail_Moved(t *testing.T) {
	from := time.Date(2025, 6, 1, 20, 0, 0, 0, time.Local)
	to := time.Date(2025, 6, 1, 22, 0, 0, 0, time.Local)

	encoded := EncodeAuditDetail(MovedDetail{
		FromGame: "factorio",
		FromSlot: from,
		ToGame:   "satisfactory",
		ToSlot:   to,
	})

	pairs := ParseAuditDetails(encoded)
	assert.Equal(t, "factorio", pairs["game"])
	assert.Equal(t, "2025-06-01T20:00:00", pairs["slot"])
	assert.Equal(t, string(ReasonPartyMove), pairs["reason"])
	assert.Equal(t, "factorio", pairs["fromGame"])
	assert.Equal(t, "2025-06-01T20:00:00", pairs["fromSlot"])
	assert.Equal(t, "satisfactory", pairs["toGame"])
	assert.Equal(t, "2025-06-01T22:00:00", pairs["toSlot"])
}

func TestEncodeAuditDetail_Kicked(t *testing.T) {
	target := uuid.New()
	slot := time.Date(2025, 2, 14, 18, 45, 0, 0, time.Local)

	encoded := EncodeAuditDetail(KickedDetail{Game: "rust", Slot: slot, TargetUserID: target})

	pairs := ParseAuditDetails(encoded)
	assert.Equal(t, string(ReasonKick), pairs["reason"])
	assert.Equal(t, target.String(), pairs["targetUserId"])
}

func TestEncodeAuditDetail_TruncatesOversizedPayload(t *testing.T) {
	encoded := EncodeAuditDetail(ScheduledDetail{
		Game: strings.Repeat("x", 2*MaxAuditDetailLength),
		Slot: time.Now(),
	})

	assert.Len(t, encoded, MaxAuditDetailLength)
}

func TestEncodeAuditDetail_NilDetail(t *testing.T) {
	assert.Empty(t, EncodeAuditDetail(nil))
}

func TestParseAuditDetails_SkipsMalformedSegments(t *testing.T) {
	pairs := ParseAuditDetails("game=valheim;;broken;slot=2025-01-10T21:00:00")

	require.Len(t, pairs, 2)
	assert.Equal(t, "valheim", pairs["game"])
	assert.Equal(t, "2025-01-10T21:00:00", pairs["slot"])
}

func TestNewAuditLogEntry_EncodesDetail(t *testing.T) {
	serverID := uuid.New()
	userID := uuid.New()
	slot := time.Date(2025, 1, 10, 21, 0, 0, 0, time.Local)

	row := NewAuditLogEntry(serverID, userID, ActionTimetableRegister, ScheduledDetail{Game: "valheim", Slot: slot})

	require.NotNil(t, row.ServerID)
	require.NotNil(t, row.UserID)
	assert.Equal(t, serverID, *row.ServerID)
	assert.Equal(t, userID, *row.UserID)
	assert.Equal(t, ActionTimetableRegister, row.Action)
	assert.Equal(t, "game=valheim;slot=2025-01-10T21:00:00", row.Details)
	assert.False(t, row.OccurredAt.IsZero())
}

func TestClampCapacity(t *testing.T) {
	assert.Equal(t, 1, ClampCapacity(0, 16))
	assert.Equal(t, 1, ClampCapacity(-3, 16))
	assert.Equal(t, 5, ClampCapacity(5, 16))
	assert.Equal(t, 16, ClampCapacity(40, 16))
}
