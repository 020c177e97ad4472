package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gametable/internal/domain/entity"
	"gametable/internal/domain/repository"
	mockrepo "gametable/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resetFixture struct {
	txManager     *mockrepo.TransactionManager
	factory       *mockrepo.RepositoryFactory
	timetableRepo *mockrepo.TimetableRepository
	auditRepo     *mockrepo.AuditRepository
	serverRepo    *mockrepo.ServerRepository

	appended []*entity.AuditLogEntry

	scheduler *resetScheduler
}

func createResetFixture(t *testing.T) *resetFixture {
	t.Helper()

	f := &resetFixture{
		txManager:     mockrepo.NewTransactionManager(t),
		factory:       mockrepo.NewRepositoryFactory(t),
		timetableRepo: mockrepo.NewTimetableRepository(t),
		auditRepo:     mockrepo.NewAuditRepository(t),
		serverRepo:    mockrepo.NewServerRepository(t),
	}

	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Maybe()
	f.factory.EXPECT().NewTimetableRepository().Return(f.timetableRepo).Maybe()
	f.factory.EXPECT().NewAuditRepository().Return(f.auditRepo).Maybe()

	f.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, row *entity.AuditLogEntry) error {
			f.appended = append(f.appended, row)

			return nil
		}).Maybe()

	f.scheduler = &resetScheduler{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		txManager:  f.txManager,
		serverRepo: f.serverRepo,
		now:        time.Now,
	}

	return f
}

func TestResetScheduler_Sweep(t *testing.T) {
	serverID := uuid.New()
	server := &entity.GameServer{ID: serverID, Name: "raid-night", ResetTime: "05:00"}

	entryA := &entity.TimetableEntry{
		ID:       uuid.New(),
		ServerID: serverID,
		UserID:   uuid.New(),
		Slot:     time.Date(2026, 8, 29, 21, 0, 0, 0, time.Local),
		Game:     "chess",
	}
	entryB := &entity.TimetableEntry{
		ID:       uuid.New(),
		ServerID: serverID,
		UserID:   uuid.New(),
		Slot:     time.Date(2026, 8, 29, 22, 0, 0, 0, time.Local),
		Game:     "go",
	}

	t.Run("wipes all entries of a due server and audits each with reason RESET", func(t *testing.T) {
		f := createResetFixture(t)
		now := time.Date(2026, 8, 29, 5, 0, 0, 0, time.Local)

		f.serverRepo.EXPECT().FindByResetTime(mock.Anything, "05:00").Return([]*entity.GameServer{server}, nil)
		f.timetableRepo.EXPECT().DeleteByServer(mock.Anything, serverID).Return([]*entity.TimetableEntry{entryA, entryB}, nil)

		f.scheduler.sweep(context.Background(), now)

		require.Len(t, f.appended, 2)
		for idx, entry := range []*entity.TimetableEntry{entryA, entryB} {
			row := f.appended[idx]
			assert.Equal(t, entity.ActionTimetableDelete, row.Action)
			require.NotNil(t, row.ServerID)
			assert.Equal(t, serverID, *row.ServerID)
			require.NotNil(t, row.UserID)
			assert.Equal(t, entry.UserID, *row.UserID)

			pairs := entity.ParseAuditDetails(row.Details)
			assert.Equal(t, entry.Game, pairs["game"])
			assert.Equal(t, entry.Slot.Format(entity.AuditSlotLayout), pairs["slot"])
			assert.Equal(t, string(entity.ReasonReset), pairs["reason"])
		}
	})

	t.Run("does not touch servers one minute before or after their reset time", func(t *testing.T) {
		for _, clock := range []time.Time{
			time.Date(2026, 8, 29, 4, 59, 0, 0, time.Local),
			time.Date(2026, 8, 29, 5, 1, 0, 0, time.Local),
		} {
			f := createResetFixture(t)

			f.serverRepo.EXPECT().FindByResetTime(mock.Anything, clock.Format(entity.ResetTimeLayout)).Return(nil, nil)

			f.scheduler.sweep(context.Background(), clock)

			assert.Empty(t, f.appended)
			f.timetableRepo.AssertNotCalled(t, "DeleteByServer", mock.Anything, mock.Anything)
		}
	})

	t.Run("one failing server does not block the rest", func(t *testing.T) {
		f := createResetFixture(t)
		now := time.Date(2026, 8, 29, 5, 0, 0, 0, time.Local)
		otherID := uuid.New()
		other := &entity.GameServer{ID: otherID, Name: "casual", ResetTime: "05:00"}

		f.serverRepo.EXPECT().FindByResetTime(mock.Anything, "05:00").Return([]*entity.GameServer{server, other}, nil)
		f.timetableRepo.EXPECT().DeleteByServer(mock.Anything, serverID).Return(nil, errors.New("deadlock"))
		f.timetableRepo.EXPECT().DeleteByServer(mock.Anything, otherID).Return([]*entity.TimetableEntry{entryA}, nil)

		f.scheduler.sweep(context.Background(), now)

		assert.Len(t, f.appended, 1)
	})

	t.Run("lookup failure skips the tick", func(t *testing.T) {
		f := createResetFixture(t)
		now := time.Date(2026, 8, 29, 5, 0, 0, 0, time.Local)

		f.serverRepo.EXPECT().FindByResetTime(mock.Anything, "05:00").Return(nil, errors.New("connection refused"))

		f.scheduler.sweep(context.Background(), now)

		assert.Empty(t, f.appended)
	})
}
