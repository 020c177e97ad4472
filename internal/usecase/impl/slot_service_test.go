package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"gametable/config"
	"gametable/internal/domain/entity"
	domainerrors "gametable/internal/domain/errors"
	"gametable/internal/domain/repository"
	"gametable/internal/domain/service"
	mockrepo "gametable/internal/mocks/repository"
	mockservice "gametable/internal/mocks/service"
	"gametable/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type slotServiceFixture struct {
	txManager     *mockrepo.TransactionManager
	factory       *mockrepo.RepositoryFactory
	timetableRepo *mockrepo.TimetableRepository
	partyRepo     *mockrepo.PartyRepository
	auditRepo     *mockrepo.AuditRepository
	friendRepo    *mockrepo.FriendRepository
	memberRepo    *mockrepo.MemberRepository
	publisher     *mockservice.EventPublisher

	appended []*entity.AuditLogEntry

	service usecase.SlotUsecase
}

// createTestSlotService wires the coordinator against mocks. The transaction
// manager passes the mock factory straight through, and every audit append is
// captured for assertion.
func createTestSlotService(t *testing.T) *slotServiceFixture {
	t.Helper()

	f := &slotServiceFixture{
		txManager:     mockrepo.NewTransactionManager(t),
		factory:       mockrepo.NewRepositoryFactory(t),
		timetableRepo: mockrepo.NewTimetableRepository(t),
		partyRepo:     mockrepo.NewPartyRepository(t),
		auditRepo:     mockrepo.NewAuditRepository(t),
		friendRepo:    mockrepo.NewFriendRepository(t),
		memberRepo:    mockrepo.NewMemberRepository(t),
		publisher:     mockservice.NewEventPublisher(t),
	}

	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Maybe()
	f.factory.EXPECT().NewTimetableRepository().Return(f.timetableRepo).Maybe()
	f.factory.EXPECT().NewPartyRepository().Return(f.partyRepo).Maybe()
	f.factory.EXPECT().NewAuditRepository().Return(f.auditRepo).Maybe()

	f.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, row *entity.AuditLogEntry) error {
			f.appended = append(f.appended, row)

			return nil
		}).Maybe()

	cfg := &config.Config{
		Party: &config.PartyConfig{MaxCapacity: 8},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.service = NewSlotService(SlotServiceParams{
		TxManager:  f.txManager,
		FriendRepo: f.friendRepo,
		MemberRepo: f.memberRepo,
		Publisher:  f.publisher,
		Config:     cfg,
		Logger:     logger,
	})

	return f
}

func (f *slotServiceFixture) actions() []entity.AuditAction {
	actions := make([]entity.AuditAction, 0, len(f.appended))
	for _, row := range f.appended {
		actions = append(actions, row.Action)
	}

	return actions
}

func TestSlotService_RegisterEntry(t *testing.T) {
	serverID := uuid.New()
	userID := uuid.New()
	slot := time.Date(2026, 8, 29, 20, 30, 45, 0, time.Local)

	t.Run("registers entry, truncates slot and fans out to friends in the server", func(t *testing.T) {
		f := createTestSlotService(t)
		friendInServer := uuid.New()
		friendElsewhere := uuid.New()

		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(nil, repository.ErrPartyNotFound)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.friendRepo.EXPECT().FindFriendIDs(mock.Anything, userID).Return([]uuid.UUID{friendInServer, friendElsewhere}, nil)
		f.memberRepo.EXPECT().FindMemberIDs(mock.Anything, serverID).Return([]uuid.UUID{userID, friendInServer}, nil)

		var published *service.FanoutEvent
		f.publisher.EXPECT().PublishFanoutEvent(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, event *service.FanoutEvent) error {
				published = event

				return nil
			})

		entry, err := f.service.RegisterEntry(context.Background(), &usecase.RegisterEntryCommand{
			ServerID: serverID,
			UserID:   userID,
			Slot:     slot,
			Game:     "raid-night",
		})

		require.NoError(t, err)
		assert.Equal(t, slot.Truncate(time.Minute), entry.Slot)
		assert.Equal(t, []entity.AuditAction{entity.ActionTimetableRegister}, f.actions())

		require.NotNil(t, published)
		assert.Equal(t, entity.CategoryFriendSchedule, published.Category)
		assert.Equal(t, []string{friendInServer.String()}, published.RecipientIDs)
		assert.Equal(t, service.PayloadKindTimetable, published.Payload.Kind)
	})

	t.Run("rejects registration while holding party membership in the server", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{ID: uuid.New(), ServerID: serverID, Game: "raid-night"}

		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(party, nil)

		_, err := f.service.RegisterEntry(context.Background(), &usecase.RegisterEntryCommand{
			ServerID: serverID,
			UserID:   userID,
			Slot:     slot,
			Game:     "raid-night",
		})

		require.ErrorIs(t, err, domainerrors.ErrPartyMembershipConflict)
		assert.Empty(t, f.appended)
	})

	t.Run("party membership in another server does not block registration", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{ID: uuid.New(), ServerID: uuid.New(), Game: "dungeon"}

		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(party, nil)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.friendRepo.EXPECT().FindFriendIDs(mock.Anything, userID).Return(nil, nil)

		_, err := f.service.RegisterEntry(context.Background(), &usecase.RegisterEntryCommand{
			ServerID: serverID,
			UserID:   userID,
			Slot:     slot,
			Game:     "raid-night",
		})

		require.NoError(t, err)
	})

	t.Run("rejects missing game", func(t *testing.T) {
		f := createTestSlotService(t)

		_, err := f.service.RegisterEntry(context.Background(), &usecase.RegisterEntryCommand{
			ServerID: serverID,
			UserID:   userID,
			Slot:     slot,
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("fan-out failure does not fail the registration", func(t *testing.T) {
		f := createTestSlotService(t)

		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(nil, repository.ErrPartyNotFound)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.friendRepo.EXPECT().FindFriendIDs(mock.Anything, userID).Return([]uuid.UUID{uuid.New()}, nil)
		f.memberRepo.EXPECT().FindMemberIDs(mock.Anything, serverID).Return(nil, assert.AnError)

		_, err := f.service.RegisterEntry(context.Background(), &usecase.RegisterEntryCommand{
			ServerID: serverID,
			UserID:   userID,
			Slot:     slot,
			Game:     "raid-night",
		})

		require.NoError(t, err)
	})
}

func TestSlotService_RemoveEntry(t *testing.T) {
	serverID := uuid.New()
	userID := uuid.New()
	slot := time.Date(2026, 8, 29, 21, 0, 0, 0, time.Local)

	t.Run("removes entry and audits the reason", func(t *testing.T) {
		f := createTestSlotService(t)
		entry := entity.NewTimetableEntry(serverID, userID, slot, "raid-night")

		f.timetableRepo.EXPECT().FindByServerAndUser(mock.Anything, serverID, userID).Return(entry, nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, serverID, userID).Return(nil)

		err := f.service.RemoveEntry(context.Background(), serverID, userID, entity.ReasonUserAction)

		require.NoError(t, err)
		require.Len(t, f.appended, 1)
		assert.Equal(t, entity.ActionTimetableDelete, f.appended[0].Action)

		pairs := entity.ParseAuditDetails(f.appended[0].Details)
		assert.Equal(t, string(entity.ReasonUserAction), pairs["reason"])
		assert.Equal(t, "raid-night", pairs["game"])
	})

	t.Run("kick removal carries the target user id", func(t *testing.T) {
		f := createTestSlotService(t)
		entry := entity.NewTimetableEntry(serverID, userID, slot, "raid-night")

		f.timetableRepo.EXPECT().FindByServerAndUser(mock.Anything, serverID, userID).Return(entry, nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, serverID, userID).Return(nil)

		err := f.service.RemoveEntry(context.Background(), serverID, userID, entity.ReasonKick)

		require.NoError(t, err)
		require.Len(t, f.appended, 1)

		pairs := entity.ParseAuditDetails(f.appended[0].Details)
		assert.Equal(t, string(entity.ReasonKick), pairs["reason"])
		assert.Equal(t, userID.String(), pairs["targetUserId"])
	})

	t.Run("missing entry is a silent no-op", func(t *testing.T) {
		f := createTestSlotService(t)

		f.timetableRepo.EXPECT().FindByServerAndUser(mock.Anything, serverID, userID).Return(nil, repository.ErrEntryNotFound)

		err := f.service.RemoveEntry(context.Background(), serverID, userID, entity.ReasonUserAction)

		require.NoError(t, err)
		assert.Empty(t, f.appended)
	})
}

func TestSlotService_CreateParty(t *testing.T) {
	serverID := uuid.New()
	creatorID := uuid.New()
	slot := time.Date(2026, 8, 29, 20, 0, 0, 0, time.Local)

	t.Run("creates party, reserves creator slot and recruits members", func(t *testing.T) {
		f := createTestSlotService(t)
		memberID := uuid.New()

		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, creatorID).Return(nil, repository.ErrPartyNotFound)
		f.partyRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.partyRepo.EXPECT().AddParticipant(mock.Anything, mock.Anything, creatorID).Return(nil)
		f.memberRepo.EXPECT().FindMemberIDs(mock.Anything, serverID).Return([]uuid.UUID{creatorID, memberID}, nil)

		var published *service.FanoutEvent
		f.publisher.EXPECT().PublishFanoutEvent(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, event *service.FanoutEvent) error {
				published = event

				return nil
			})

		party, err := f.service.CreateParty(context.Background(), &usecase.CreatePartyCommand{
			ServerID:  serverID,
			CreatorID: creatorID,
			Slot:      slot,
			Capacity:  99,
			Game:      "raid-night",
		})

		require.NoError(t, err)
		assert.Equal(t, 8, party.Capacity) // clamped to the configured max
		assert.Equal(t, []uuid.UUID{creatorID}, party.Participants)
		assert.Equal(t, []entity.AuditAction{
			entity.ActionPartyCreate,
			entity.ActionTimetableRegister,
			entity.ActionPartyJoin,
		}, f.actions())

		require.NotNil(t, published)
		assert.Equal(t, entity.CategoryParty, published.Category)
		assert.Equal(t, []string{memberID.String()}, published.RecipientIDs)
	})

	t.Run("creator is evicted from a previous party elsewhere", func(t *testing.T) {
		f := createTestSlotService(t)
		oldParty := &entity.Party{
			ID:           uuid.New(),
			ServerID:     uuid.New(),
			Slot:         slot.Add(-time.Hour),
			Game:         "dungeon",
			Capacity:     4,
			Participants: []uuid.UUID{creatorID, uuid.New()},
		}

		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, creatorID).Return(oldParty, nil)
		f.partyRepo.EXPECT().RemoveParticipant(mock.Anything, oldParty.ID, creatorID).Return(nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, oldParty.ServerID, creatorID).Return(nil)
		f.partyRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.partyRepo.EXPECT().AddParticipant(mock.Anything, mock.Anything, creatorID).Return(nil)
		f.memberRepo.EXPECT().FindMemberIDs(mock.Anything, serverID).Return(nil, nil)

		_, err := f.service.CreateParty(context.Background(), &usecase.CreatePartyCommand{
			ServerID:  serverID,
			CreatorID: creatorID,
			Slot:      slot,
			Capacity:  4,
			Game:      "raid-night",
		})

		require.NoError(t, err)
		assert.Equal(t, []entity.AuditAction{
			entity.ActionTimetableDelete,
			entity.ActionPartyCreate,
			entity.ActionTimetableRegister,
			entity.ActionPartyJoin,
		}, f.actions())

		pairs := entity.ParseAuditDetails(f.appended[0].Details)
		assert.Equal(t, string(entity.ReasonPartyMove), pairs["reason"])
		assert.Equal(t, "dungeon", pairs["fromGame"])
		assert.Equal(t, "raid-night", pairs["toGame"])
	})
}

func TestSlotService_JoinParty(t *testing.T) {
	serverID := uuid.New()
	userID := uuid.New()
	slot := time.Date(2026, 8, 29, 20, 0, 0, 0, time.Local)

	makeParty := func(participants ...uuid.UUID) *entity.Party {
		return &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			CreatorID:    uuid.New(),
			Slot:         slot,
			Capacity:     2,
			Game:         "raid-night",
			Participants: participants,
		}
	}

	t.Run("joins and mirrors the party slot into the timetable", func(t *testing.T) {
		f := createTestSlotService(t)
		party := makeParty(uuid.New())

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(nil, repository.ErrPartyNotFound)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.partyRepo.EXPECT().AddParticipant(mock.Anything, party.ID, userID).Return(nil)

		joined, err := f.service.JoinParty(context.Background(), party.ID, userID)

		require.NoError(t, err)
		assert.Contains(t, joined.Participants, userID)
		assert.Equal(t, []entity.AuditAction{
			entity.ActionTimetableRegister,
			entity.ActionPartyJoin,
		}, f.actions())
	})

	t.Run("join is idempotent for an existing participant", func(t *testing.T) {
		f := createTestSlotService(t)
		party := makeParty(userID)

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)

		joined, err := f.service.JoinParty(context.Background(), party.ID, userID)

		require.NoError(t, err)
		assert.Equal(t, party, joined)
		assert.Empty(t, f.appended)
	})

	t.Run("full party rejects the join before any write", func(t *testing.T) {
		f := createTestSlotService(t)
		party := makeParty(uuid.New(), uuid.New())

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(nil, repository.ErrPartyNotFound)

		_, err := f.service.JoinParty(context.Background(), party.ID, userID)

		require.ErrorIs(t, err, domainerrors.ErrPartyFull)
		assert.Empty(t, f.appended)
	})

	t.Run("unknown party", func(t *testing.T) {
		f := createTestSlotService(t)
		partyID := uuid.New()

		f.partyRepo.EXPECT().FindByID(mock.Anything, partyID).Return(nil, repository.ErrPartyNotFound)

		_, err := f.service.JoinParty(context.Background(), partyID, userID)

		require.ErrorIs(t, err, domainerrors.ErrPartyNotFound)
	})

	t.Run("joining evicts the user from their previous party and deletes it when emptied", func(t *testing.T) {
		f := createTestSlotService(t)
		party := makeParty(uuid.New())
		oldParty := &entity.Party{
			ID:           uuid.New(),
			ServerID:     uuid.New(),
			Slot:         slot.Add(time.Hour),
			Capacity:     4,
			Game:         "dungeon",
			Participants: []uuid.UUID{userID},
		}

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
		f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(oldParty, nil)
		f.partyRepo.EXPECT().RemoveParticipant(mock.Anything, oldParty.ID, userID).Return(nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, oldParty.ServerID, userID).Return(nil)
		f.partyRepo.EXPECT().Delete(mock.Anything, oldParty.ID).Return(nil)
		f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
		f.partyRepo.EXPECT().AddParticipant(mock.Anything, party.ID, userID).Return(nil)

		_, err := f.service.JoinParty(context.Background(), party.ID, userID)

		require.NoError(t, err)
		assert.Equal(t, []entity.AuditAction{
			entity.ActionTimetableDelete,
			entity.ActionPartyDelete,
			entity.ActionTimetableRegister,
			entity.ActionPartyJoin,
		}, f.actions())
	})
}

// Capacity is enforced strictly at every size, including single-seat parties.
func TestSlotService_JoinParty_CapacityBoundaries(t *testing.T) {
	serverID := uuid.New()
	slot := time.Date(2026, 8, 29, 20, 0, 0, 0, time.Local)

	makeParty := func(capacity, occupied int) *entity.Party {
		participants := make([]uuid.UUID, occupied)
		for i := range participants {
			participants[i] = uuid.New()
		}

		return &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			CreatorID:    uuid.New(),
			Slot:         slot,
			Capacity:     capacity,
			Game:         "raid-night",
			Participants: participants,
		}
	}

	for capacity := 1; capacity <= 5; capacity++ {
		t.Run(fmt.Sprintf("capacity %d", capacity), func(t *testing.T) {
			t.Run("last seat is grantable", func(t *testing.T) {
				f := createTestSlotService(t)
				userID := uuid.New()
				party := makeParty(capacity, capacity-1)

				f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
				f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(nil, repository.ErrPartyNotFound)
				f.timetableRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
				f.partyRepo.EXPECT().AddParticipant(mock.Anything, party.ID, userID).Return(nil)

				joined, err := f.service.JoinParty(context.Background(), party.ID, userID)

				require.NoError(t, err)
				assert.Len(t, joined.Participants, capacity)
			})

			t.Run("full party rejects without writes", func(t *testing.T) {
				f := createTestSlotService(t)
				userID := uuid.New()
				party := makeParty(capacity, capacity)

				f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
				f.partyRepo.EXPECT().FindByParticipant(mock.Anything, userID).Return(nil, repository.ErrPartyNotFound)

				_, err := f.service.JoinParty(context.Background(), party.ID, userID)

				require.ErrorIs(t, err, domainerrors.ErrPartyFull)
				assert.Len(t, party.Participants, capacity)
				assert.Empty(t, f.appended)
				f.partyRepo.AssertNotCalled(t, "AddParticipant", mock.Anything, mock.Anything, mock.Anything)
				f.timetableRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
			})
		})
	}
}

func TestSlotService_LeaveParty(t *testing.T) {
	serverID := uuid.New()
	userID := uuid.New()
	slot := time.Date(2026, 8, 29, 20, 0, 0, 0, time.Local)

	t.Run("leaves and keeps the party when others remain", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			Slot:         slot,
			Capacity:     4,
			Game:         "raid-night",
			Participants: []uuid.UUID{userID, uuid.New()},
		}

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
		f.partyRepo.EXPECT().RemoveParticipant(mock.Anything, party.ID, userID).Return(nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, serverID, userID).Return(nil)

		err := f.service.LeaveParty(context.Background(), party.ID, userID)

		require.NoError(t, err)
		assert.Equal(t, []entity.AuditAction{entity.ActionPartyLeave}, f.actions())
	})

	t.Run("last participant leaving deletes the party", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			Slot:         slot,
			Capacity:     4,
			Game:         "raid-night",
			Participants: []uuid.UUID{userID},
		}

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
		f.partyRepo.EXPECT().RemoveParticipant(mock.Anything, party.ID, userID).Return(nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, serverID, userID).Return(nil)
		f.partyRepo.EXPECT().Delete(mock.Anything, party.ID).Return(nil)

		err := f.service.LeaveParty(context.Background(), party.ID, userID)

		require.NoError(t, err)
		assert.Equal(t, []entity.AuditAction{
			entity.ActionPartyLeave,
			entity.ActionPartyDelete,
		}, f.actions())
	})

	t.Run("leaving a party the user is not in is a no-op", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			Capacity:     4,
			Participants: []uuid.UUID{uuid.New()},
		}

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)

		err := f.service.LeaveParty(context.Background(), party.ID, userID)

		require.NoError(t, err)
		assert.Empty(t, f.appended)
	})
}

func TestSlotService_DeleteParty(t *testing.T) {
	serverID := uuid.New()
	creatorID := uuid.New()
	otherID := uuid.New()
	slot := time.Date(2026, 8, 29, 20, 0, 0, 0, time.Local)

	t.Run("creator deletes the party and all participant entries", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			CreatorID:    creatorID,
			Slot:         slot,
			Capacity:     4,
			Game:         "raid-night",
			Participants: []uuid.UUID{creatorID, otherID},
		}

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, serverID, creatorID).Return(nil)
		f.timetableRepo.EXPECT().Delete(mock.Anything, serverID, otherID).Return(nil)
		f.partyRepo.EXPECT().Delete(mock.Anything, party.ID).Return(nil)

		err := f.service.DeleteParty(context.Background(), party.ID, creatorID)

		require.NoError(t, err)
		// One PARTY_DELETE row regardless of participant count.
		assert.Equal(t, []entity.AuditAction{entity.ActionPartyDelete}, f.actions())
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		f := createTestSlotService(t)
		party := &entity.Party{
			ID:           uuid.New(),
			ServerID:     serverID,
			CreatorID:    creatorID,
			Participants: []uuid.UUID{creatorID, otherID},
		}

		f.partyRepo.EXPECT().FindByID(mock.Anything, party.ID).Return(party, nil)

		err := f.service.DeleteParty(context.Background(), party.ID, otherID)

		require.ErrorIs(t, err, domainerrors.ErrPartyDeleteForbidden)
		assert.Empty(t, f.appended)
	})
}
