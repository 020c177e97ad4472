package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gametable/internal/domain/entity"
	"gametable/internal/domain/service"
	mockrepo "gametable/internal/mocks/repository"
	mockusecase "gametable/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type reminderFixture struct {
	timetableRepo    *mockrepo.TimetableRepository
	notificationRepo *mockrepo.NotificationRepository
	notificationUC   *mockusecase.NotificationUsecase

	scheduler *reminderScheduler
}

func createReminderFixture(t *testing.T) *reminderFixture {
	t.Helper()

	f := &reminderFixture{
		timetableRepo:    mockrepo.NewTimetableRepository(t),
		notificationRepo: mockrepo.NewNotificationRepository(t),
		notificationUC:   mockusecase.NewNotificationUsecase(t),
	}

	f.scheduler = &reminderScheduler{
		defaultLeadMinutes: 30,
		logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		timetableRepo:      f.timetableRepo,
		notificationRepo:   f.notificationRepo,
		notificationUC:     f.notificationUC,
		now:                time.Now,
	}

	return f
}

func prefWithLead(userID uuid.UUID, lead int) *entity.NotificationPreference {
	pref := entity.DefaultNotificationPreference(userID)
	pref.ReminderLeadMinutes = lead

	return pref
}

func TestReminderScheduler_Sweep(t *testing.T) {
	userID := uuid.New()
	entry := &entity.TimetableEntry{
		ID:       uuid.New(),
		ServerID: uuid.New(),
		UserID:   userID,
		Slot:     time.Date(2026, 8, 29, 21, 0, 0, 0, time.Local),
		Game:     "chess",
	}

	t.Run("fires exactly at slot minus lead and not one minute around it", func(t *testing.T) {
		cases := []struct {
			clock time.Time
			fires bool
		}{
			{time.Date(2026, 8, 29, 20, 49, 0, 0, time.Local), false},
			{time.Date(2026, 8, 29, 20, 50, 0, 0, time.Local), true},
			{time.Date(2026, 8, 29, 20, 51, 0, 0, time.Local), false},
		}

		for _, tc := range cases {
			f := createReminderFixture(t)

			f.timetableRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.TimetableEntry{entry}, nil)
			f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).Return(
				map[uuid.UUID]*entity.NotificationPreference{userID: prefWithLead(userID, 10)}, nil)

			if tc.fires {
				f.notificationUC.EXPECT().Notify(mock.Anything, userID, entity.CategoryReminder, "Slot reminder", mock.Anything).Return(nil)
			}

			f.scheduler.sweep(context.Background(), tc.clock)

			if !tc.fires {
				f.notificationUC.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		}
	})

	t.Run("uses the configured default lead when no preference row exists", func(t *testing.T) {
		f := createReminderFixture(t)
		now := time.Date(2026, 8, 29, 20, 30, 0, 0, time.Local)

		f.timetableRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.TimetableEntry{entry}, nil)
		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).Return(
			map[uuid.UUID]*entity.NotificationPreference{}, nil)
		f.notificationUC.EXPECT().Notify(mock.Anything, userID, entity.CategoryReminder, "Slot reminder", mock.Anything).Return(nil)

		f.scheduler.sweep(context.Background(), now)
	})

	t.Run("preference lookup failure degrades to default lead", func(t *testing.T) {
		f := createReminderFixture(t)
		now := time.Date(2026, 8, 29, 20, 30, 0, 0, time.Local)

		f.timetableRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.TimetableEntry{entry}, nil)
		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).Return(nil, errors.New("timeout"))
		f.notificationUC.EXPECT().Notify(mock.Anything, userID, entity.CategoryReminder, "Slot reminder", mock.Anything).Return(nil)

		f.scheduler.sweep(context.Background(), now)
	})

	t.Run("reminder payload carries the entry and a push body", func(t *testing.T) {
		f := createReminderFixture(t)
		now := time.Date(2026, 8, 29, 20, 30, 0, 0, time.Local)

		f.timetableRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.TimetableEntry{entry}, nil)
		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).Return(nil, nil)
		f.notificationUC.EXPECT().Notify(mock.Anything, userID, entity.CategoryReminder, "Slot reminder", mock.Anything).RunAndReturn(
			func(_ context.Context, _ uuid.UUID, _ entity.NotificationCategory, _ string, payload *service.FanoutPayload) error {
				assert.Equal(t, "chess", payload.Game)
				assert.Equal(t, entry.Slot.Format(entity.AuditSlotLayout), payload.Slot)
				assert.Equal(t, entry.ServerID.String(), payload.ServerID)
				assert.Equal(t, "Your chess slot starts at 21:00.", payload.Message)

				return nil
			})

		f.scheduler.sweep(context.Background(), now)
	})

	t.Run("delivery errors are absorbed", func(t *testing.T) {
		f := createReminderFixture(t)
		now := time.Date(2026, 8, 29, 20, 30, 0, 0, time.Local)

		f.timetableRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.TimetableEntry{entry}, nil)
		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).Return(nil, nil)
		f.notificationUC.EXPECT().Notify(mock.Anything, userID, entity.CategoryReminder, "Slot reminder", mock.Anything).Return(errors.New("push outage"))

		f.scheduler.sweep(context.Background(), now)
	})

	t.Run("empty timetable is a no-op", func(t *testing.T) {
		f := createReminderFixture(t)
		now := time.Date(2026, 8, 29, 20, 30, 0, 0, time.Local)

		f.timetableRepo.EXPECT().ListAll(mock.Anything).Return(nil, nil)

		f.scheduler.sweep(context.Background(), now)

		f.notificationRepo.AssertNotCalled(t, "FindPreferencesByUsers", mock.Anything, mock.Anything)
	})

	t.Run("list failure skips the tick", func(t *testing.T) {
		f := createReminderFixture(t)
		now := time.Date(2026, 8, 29, 20, 30, 0, 0, time.Local)

		f.timetableRepo.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("connection refused"))

		f.scheduler.sweep(context.Background(), now)
	})
}
