// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gametable/config"
	"gametable/internal/domain/entity"
	domainerrors "gametable/internal/domain/errors"
	"gametable/internal/domain/repository"
	"gametable/internal/domain/service"
	"gametable/internal/errors"
	"gametable/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type slotService struct {
	txManager  repository.TransactionManager
	friendRepo repository.FriendRepository
	memberRepo repository.MemberRepository
	publisher  service.EventPublisher
	config     *config.Config
	logger     *slog.Logger
	validate   *validator.Validate
}

// SlotServiceParams holds dependencies for SlotService, injected by Fx.
type SlotServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	FriendRepo repository.FriendRepository
	MemberRepo repository.MemberRepository
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSlotService creates a new slot coordinator instance
func NewSlotService(params SlotServiceParams) usecase.SlotUsecase {
	return &slotService{
		txManager:  params.TxManager,
		friendRepo: params.FriendRepo,
		memberRepo: params.MemberRepo,
		publisher:  params.Publisher,
		config:     params.Config,
		logger:     params.Logger,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterEntry reserves a slot for the user. A prior entry for the same
// (server, user) is silently superseded: last write wins, by policy.
func (s *slotService) RegisterEntry(ctx context.Context, cmd *usecase.RegisterEntryCommand) (*entity.TimetableEntry, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	var entry *entity.TimetableEntry
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		current, err := repos.NewPartyRepository().FindByParticipant(ctx, cmd.UserID)
		if err != nil && !errors.Is(err, repository.ErrPartyNotFound) {
			return errors.Wrap(err, "failed to check party membership")
		}
		if current != nil && current.ServerID == cmd.ServerID {
			// The party already implies a reservation here; the user must
			// leave it before reserving a slot on their own.
			return domainerrors.ErrPartyMembershipConflict
		}

		entry, err = registerEntryTx(ctx, repos, cmd.ServerID, cmd.UserID, cmd.Slot, cmd.Game)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.fanOutFriendSchedule(ctx, entry)

	return entry, nil
}

// RemoveEntry deletes the user's entry for the server. Idempotent.
func (s *slotService) RemoveEntry(ctx context.Context, serverID, userID uuid.UUID, reason entity.RemovalReason) error {
	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return removeEntryTx(ctx, repos, serverID, userID, reason)
	})
}

// CreateParty persists the party, reserves the creator's matching slot and
// records the creator as first participant.
func (s *slotService) CreateParty(ctx context.Context, cmd *usecase.CreatePartyCommand) (*entity.Party, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	party := &entity.Party{
		ID:        uuid.New(),
		ServerID:  cmd.ServerID,
		CreatorID: cmd.CreatorID,
		Slot:      cmd.Slot.Truncate(time.Minute),
		Capacity:  entity.ClampCapacity(cmd.Capacity, s.config.Party.MaxCapacity),
		Game:      cmd.Game,
		CreatedAt: time.Now(),
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		partyRepo := repos.NewPartyRepository()

		// The creator may hold membership elsewhere; a single party
		// membership system-wide must hold after this operation too.
		if err := evictFromOtherPartyTx(ctx, repos, cmd.CreatorID, party); err != nil {
			return err
		}

		if err := partyRepo.Create(ctx, party); err != nil {
			return errors.Wrap(err, "failed to create party")
		}
		if err := repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
			party.ServerID, cmd.CreatorID, entity.ActionPartyCreate,
			entity.ScheduledDetail{Game: party.Game, Slot: party.Slot},
		)); err != nil {
			return errors.Wrap(err, "failed to append party create audit")
		}

		// The party path bypasses the membership guard: this reservation IS
		// the party's slot, mirrored into the shared timetable view.
		if _, err := registerEntryTx(ctx, repos, party.ServerID, cmd.CreatorID, party.Slot, party.Game); err != nil {
			return err
		}

		if err := partyRepo.AddParticipant(ctx, party.ID, cmd.CreatorID); err != nil {
			return errors.Wrap(err, "failed to add party creator as participant")
		}
		party.Participants = append(party.Participants, cmd.CreatorID)

		return repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
			party.ServerID, cmd.CreatorID, entity.ActionPartyJoin,
			entity.ScheduledDetail{Game: party.Game, Slot: party.Slot},
		))
	})
	if err != nil {
		return nil, err
	}

	s.fanOutPartyRecruiting(ctx, party)

	return party, nil
}

// JoinParty adds the user to the party, evicting them from any other party
// they hold anywhere first. Idempotent for existing participants.
func (s *slotService) JoinParty(ctx context.Context, partyID, userID uuid.UUID) (*entity.Party, error) {
	var joined *entity.Party
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		partyRepo := repos.NewPartyRepository()

		party, err := partyRepo.FindByID(ctx, partyID)
		if err != nil {
			if errors.Is(err, repository.ErrPartyNotFound) {
				return domainerrors.ErrPartyNotFound
			}

			return errors.Wrap(err, "failed to find party")
		}

		if party.HasParticipant(userID) {
			joined = party

			return nil
		}

		if err := evictFromOtherPartyTx(ctx, repos, userID, party); err != nil {
			return err
		}

		// Capacity is checked before any new state is written so a failed
		// join leaves no transient overshoot behind.
		if party.IsFull() {
			return domainerrors.ErrPartyFull
		}

		if _, err := registerEntryTx(ctx, repos, party.ServerID, userID, party.Slot, party.Game); err != nil {
			return err
		}

		if err := partyRepo.AddParticipant(ctx, party.ID, userID); err != nil {
			return errors.Wrap(err, "failed to add participant")
		}
		party.Participants = append(party.Participants, userID)

		if err := repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
			party.ServerID, userID, entity.ActionPartyJoin,
			entity.ScheduledDetail{Game: party.Game, Slot: party.Slot},
		)); err != nil {
			return errors.Wrap(err, "failed to append party join audit")
		}

		joined = party

		return nil
	})
	if err != nil {
		return nil, err
	}

	return joined, nil
}

// LeaveParty removes the user from the party and drops their timetable entry
// for that server. The last participant leaving deletes the party.
func (s *slotService) LeaveParty(ctx context.Context, partyID, userID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		partyRepo := repos.NewPartyRepository()

		party, err := partyRepo.FindByID(ctx, partyID)
		if err != nil {
			if errors.Is(err, repository.ErrPartyNotFound) {
				return domainerrors.ErrPartyNotFound
			}

			return errors.Wrap(err, "failed to find party")
		}

		if !party.HasParticipant(userID) {
			return nil
		}

		if err := partyRepo.RemoveParticipant(ctx, party.ID, userID); err != nil {
			return errors.Wrap(err, "failed to remove participant")
		}
		if err := repos.NewTimetableRepository().Delete(ctx, party.ServerID, userID); err != nil {
			return errors.Wrap(err, "failed to delete timetable entry")
		}

		if err := repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
			party.ServerID, userID, entity.ActionPartyLeave,
			entity.ScheduledDetail{Game: party.Game, Slot: party.Slot},
		)); err != nil {
			return errors.Wrap(err, "failed to append party leave audit")
		}

		// An abandoned party is deleted rather than left empty.
		if len(party.Participants) <= 1 {
			return deletePartyTx(ctx, repos, party, userID, false)
		}

		return nil
	})
}

// DeleteParty deletes the party and every participant's timetable entry for
// that server. Only the creator may delete.
func (s *slotService) DeleteParty(ctx context.Context, partyID, requesterID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		party, err := repos.NewPartyRepository().FindByID(ctx, partyID)
		if err != nil {
			if errors.Is(err, repository.ErrPartyNotFound) {
				return domainerrors.ErrPartyNotFound
			}

			return errors.Wrap(err, "failed to find party")
		}

		if party.CreatorID != requesterID {
			return domainerrors.ErrPartyDeleteForbidden
		}

		return deletePartyTx(ctx, repos, party, requesterID, true)
	})
}

// --- transactional helpers shared by the operations ---

// registerEntryTx upserts the entry (last write wins) and appends the
// mandatory TIMETABLE_REGISTER audit row.
func registerEntryTx(ctx context.Context, repos repository.RepositoryFactory, serverID, userID uuid.UUID, slot time.Time, game string) (*entity.TimetableEntry, error) {
	entry := entity.NewTimetableEntry(serverID, userID, slot, game)

	if err := repos.NewTimetableRepository().Upsert(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to upsert timetable entry")
	}

	if err := repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
		serverID, userID, entity.ActionTimetableRegister,
		entity.ScheduledDetail{Game: entry.Game, Slot: entry.Slot},
	)); err != nil {
		return nil, errors.Wrap(err, "failed to append register audit")
	}

	return entry, nil
}

// removeEntryTx deletes the entry if it exists and audits the removal with
// the supplied reason. Missing entries are a silent no-op.
func removeEntryTx(ctx context.Context, repos repository.RepositoryFactory, serverID, userID uuid.UUID, reason entity.RemovalReason) error {
	timetableRepo := repos.NewTimetableRepository()

	entry, err := timetableRepo.FindByServerAndUser(ctx, serverID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find timetable entry")
	}

	if err := timetableRepo.Delete(ctx, serverID, userID); err != nil {
		return errors.Wrap(err, "failed to delete timetable entry")
	}

	var detail entity.AuditDetail
	if reason == entity.ReasonKick {
		detail = entity.KickedDetail{Game: entry.Game, Slot: entry.Slot, TargetUserID: userID}
	} else {
		detail = entity.RemovedDetail{Game: entry.Game, Slot: entry.Slot, Reason: reason}
	}

	return errors.Wrap(repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
		serverID, userID, entity.ActionTimetableDelete, detail,
	)), "failed to append delete audit")
}

// evictFromOtherPartyTx removes the user from any party other than target,
// along with that party's implied timetable entry (reason PARTY_MOVE).
func evictFromOtherPartyTx(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, target *entity.Party) error {
	partyRepo := repos.NewPartyRepository()

	current, err := partyRepo.FindByParticipant(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPartyNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find current party")
	}
	if current.ID == target.ID {
		return nil
	}

	if err := partyRepo.RemoveParticipant(ctx, current.ID, userID); err != nil {
		return errors.Wrap(err, "failed to evict participant")
	}
	if err := repos.NewTimetableRepository().Delete(ctx, current.ServerID, userID); err != nil {
		return errors.Wrap(err, "failed to delete abandoned timetable entry")
	}

	if err := repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
		current.ServerID, userID, entity.ActionTimetableDelete,
		entity.MovedDetail{
			FromGame: current.Game,
			FromSlot: current.Slot,
			ToGame:   target.Game,
			ToSlot:   target.Slot,
		},
	)); err != nil {
		return errors.Wrap(err, "failed to append eviction audit")
	}

	// The eviction may have emptied the abandoned party.
	if len(current.Participants) <= 1 {
		return deletePartyTx(ctx, repos, current, userID, false)
	}

	return nil
}

// deletePartyTx removes the party row and, when cascade is set, every
// remaining participant's timetable entry. Exactly one PARTY_DELETE row is
// appended regardless of participant count.
func deletePartyTx(ctx context.Context, repos repository.RepositoryFactory, party *entity.Party, actorID uuid.UUID, cascade bool) error {
	if cascade {
		timetableRepo := repos.NewTimetableRepository()
		for _, participantID := range party.Participants {
			if err := timetableRepo.Delete(ctx, party.ServerID, participantID); err != nil {
				return errors.Wrap(err, "failed to delete participant timetable entry")
			}
		}
	}

	if err := repos.NewAuditRepository().Append(ctx, entity.NewAuditLogEntry(
		party.ServerID, actorID, entity.ActionPartyDelete,
		entity.ScheduledDetail{Game: party.Game, Slot: party.Slot},
	)); err != nil {
		return errors.Wrap(err, "failed to append party delete audit")
	}

	return errors.Wrap(repos.NewPartyRepository().Delete(ctx, party.ID), "failed to delete party")
}

// --- post-commit fan-out (best-effort, never fails the caller) ---

// fanOutFriendSchedule notifies the user's friends who are also members of
// the server, in one batched event.
func (s *slotService) fanOutFriendSchedule(ctx context.Context, entry *entity.TimetableEntry) {
	friendIDs, err := s.friendRepo.FindFriendIDs(ctx, entry.UserID)
	if err != nil {
		s.logger.Error("friend lookup for fan-out failed",
			slog.String("user_id", entry.UserID.String()), slog.Any("error", err))

		return
	}
	if len(friendIDs) == 0 {
		return
	}

	memberIDs, err := s.memberRepo.FindMemberIDs(ctx, entry.ServerID)
	if err != nil {
		s.logger.Error("member lookup for fan-out failed",
			slog.String("server_id", entry.ServerID.String()), slog.Any("error", err))

		return
	}

	recipients := intersect(friendIDs, memberIDs)
	if len(recipients) == 0 {
		return
	}

	s.publish(ctx, &service.FanoutEvent{
		ServerID:     entry.ServerID.String(),
		Category:     entity.CategoryFriendSchedule,
		Title:        "A friend scheduled a session",
		RecipientIDs: toStringIDs(recipients),
		Payload: service.FanoutPayload{
			Kind:       service.PayloadKindTimetable,
			Game:       entry.Game,
			Slot:       entry.Slot.Format(entity.AuditSlotLayout),
			ServerID:   entry.ServerID.String(),
			FromUserID: entry.UserID.String(),
		},
	})
}

// fanOutPartyRecruiting notifies all server members except the creator.
func (s *slotService) fanOutPartyRecruiting(ctx context.Context, party *entity.Party) {
	memberIDs, err := s.memberRepo.FindMemberIDs(ctx, party.ServerID)
	if err != nil {
		s.logger.Error("member lookup for fan-out failed",
			slog.String("server_id", party.ServerID.String()), slog.Any("error", err))

		return
	}

	recipients := make([]uuid.UUID, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id != party.CreatorID {
			recipients = append(recipients, id)
		}
	}
	if len(recipients) == 0 {
		return
	}

	s.publish(ctx, &service.FanoutEvent{
		ServerID:     party.ServerID.String(),
		Category:     entity.CategoryParty,
		Title:        "A party is recruiting",
		RecipientIDs: toStringIDs(recipients),
		Payload: service.FanoutPayload{
			Kind:       service.PayloadKindParty,
			Game:       party.Game,
			Slot:       party.Slot.Format(entity.AuditSlotLayout),
			PartyID:    party.ID.String(),
			ServerID:   party.ServerID.String(),
			FromUserID: party.CreatorID.String(),
		},
	})
}

func (s *slotService) publish(ctx context.Context, event *service.FanoutEvent) {
	if err := s.publisher.PublishFanoutEvent(ctx, event); err != nil {
		// The slot change is already committed; a lost notification must not
		// surface to the caller.
		s.logger.Error("fan-out publish failed",
			slog.String("category", string(event.Category)), slog.Any("error", err))
	}
}

func intersect(a, b []uuid.UUID) []uuid.UUID {
	set := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		set[id] = struct{}{}
	}

	out := make([]uuid.UUID, 0, len(a))
	for _, id := range a {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

func toStringIDs(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
