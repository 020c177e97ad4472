package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"gametable/config"
	"gametable/internal/domain/entity"
	"gametable/internal/domain/service"
	mockrepo "gametable/internal/mocks/repository"
	mockservice "gametable/internal/mocks/service"
	"gametable/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixture struct {
	notificationRepo *mockrepo.NotificationRepository
	deviceRepo       *mockrepo.DeviceRepository
	auditRepo        *mockrepo.AuditRepository
	pushService      *mockservice.PushService

	appended []*entity.AuditLogEntry
	panels   []*entity.PanelNotification

	service usecase.NotificationUsecase
}

func createTestNotificationService(t *testing.T) *notificationServiceFixture {
	t.Helper()

	f := &notificationServiceFixture{
		notificationRepo: mockrepo.NewNotificationRepository(t),
		deviceRepo:       mockrepo.NewDeviceRepository(t),
		auditRepo:        mockrepo.NewAuditRepository(t),
		pushService:      mockservice.NewPushService(t),
	}

	f.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, row *entity.AuditLogEntry) error {
			f.appended = append(f.appended, row)

			return nil
		}).Maybe()
	f.notificationRepo.EXPECT().CreatePanelNotification(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, row *entity.PanelNotification) error {
			f.panels = append(f.panels, row)

			return nil
		}).Maybe()

	cfg := &config.Config{
		Notification: &config.NotificationConfig{
			LinkBaseURL:    "https://app.example.com",
			DeepLinkScheme: "gametable",
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.service = NewNotificationService(NotificationServiceParams{
		NotificationRepo: f.notificationRepo,
		DeviceRepo:       f.deviceRepo,
		AuditRepo:        f.auditRepo,
		PushService:      f.pushService,
		Config:           cfg,
		Logger:           logger,
	})

	return f
}

func device(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		PushToken: token,
		IsActive:  true,
	}
}

func TestNotificationService_Notify(t *testing.T) {
	userID := uuid.New()
	payload := &service.FanoutPayload{
		Kind:     service.PayloadKindParty,
		Game:     "raid-night",
		Slot:     "2026-08-29T20:00:00",
		PartyID:  uuid.NewString(),
		ServerID: uuid.NewString(),
	}

	t.Run("globally disabled recipient produces no record at all", func(t *testing.T) {
		f := createTestNotificationService(t)
		pref := entity.DefaultNotificationPreference(userID)
		pref.Enabled = false

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return(map[uuid.UUID]*entity.NotificationPreference{userID: pref}, nil)

		err := f.service.Notify(context.Background(), userID, entity.CategoryParty, "A party is recruiting", payload)

		require.NoError(t, err)
		assert.Empty(t, f.panels)
		assert.Empty(t, f.appended)
	})

	t.Run("delivers panel and push, audits one row scoped to the recipient", func(t *testing.T) {
		f := createTestNotificationService(t)

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return(map[uuid.UUID]*entity.NotificationPreference{}, nil) // no row, defaults apply
		f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return([]*entity.UserDevice{device(userID, "tok-1")}, nil)
		f.pushService.EXPECT().SendBatchNotification(mock.Anything, []string{"tok-1"}, "A party is recruiting", mock.Anything, mock.Anything).
			Return(1, 0, nil, nil)

		err := f.service.Notify(context.Background(), userID, entity.CategoryParty, "A party is recruiting", payload)

		require.NoError(t, err)
		require.Len(t, f.panels, 1)
		assert.Equal(t, userID, f.panels[0].UserID)
		assert.Equal(t, "gametable://party/"+payload.PartyID, f.panels[0].LinkURL)

		require.Len(t, f.appended, 1)
		row := f.appended[0]
		assert.Equal(t, entity.ActionNotifyDispatch, row.Action)
		require.NotNil(t, row.UserID)
		assert.Equal(t, userID, *row.UserID)

		pairs := entity.ParseAuditDetails(row.Details)
		assert.Equal(t, "party", pairs["category"])
		assert.Equal(t, "1", pairs["sent"])
	})

	t.Run("reminder never creates a panel record", func(t *testing.T) {
		f := createTestNotificationService(t)

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return(map[uuid.UUID]*entity.NotificationPreference{}, nil)
		f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return([]*entity.UserDevice{device(userID, "tok-1")}, nil)
		f.pushService.EXPECT().SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(1, 0, nil, nil)

		err := f.service.Notify(context.Background(), userID, entity.CategoryReminder, "Upcoming session", &service.FanoutPayload{
			Kind: service.PayloadKindTimetable,
			Game: "raid-night",
			Slot: "2026-08-29T20:00:00",
		})

		require.NoError(t, err)
		assert.Empty(t, f.panels)
		require.Len(t, f.appended, 1)
	})
}

func TestNotificationService_NotifyMany(t *testing.T) {
	payload := &service.FanoutPayload{
		Kind:     service.PayloadKindParty,
		Game:     "raid-night",
		Slot:     "2026-08-29T20:00:00",
		PartyID:  uuid.NewString(),
		ServerID: uuid.NewString(),
	}

	t.Run("empty recipient list is a no-op", func(t *testing.T) {
		f := createTestNotificationService(t)

		err := f.service.NotifyMany(context.Background(), nil, entity.CategoryParty, "t", payload, nil)

		require.NoError(t, err)
		assert.Empty(t, f.appended)
	})

	t.Run("evaluates recipients independently and audits one summary row", func(t *testing.T) {
		f := createTestNotificationService(t)
		serverID := uuid.New()
		defaultUser := uuid.New()  // no preference row: everything on
		pushOffUser := uuid.New()  // party push off, panel still on
		disabledUser := uuid.New() // global switch off: skipped entirely
		recipients := []uuid.UUID{defaultUser, pushOffUser, disabledUser}

		pushOff := entity.DefaultNotificationPreference(pushOffUser)
		pushOff.PartyEnabled = false
		disabled := entity.DefaultNotificationPreference(disabledUser)
		disabled.Enabled = false

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, recipients).
			Return(map[uuid.UUID]*entity.NotificationPreference{
				pushOffUser:  pushOff,
				disabledUser: disabled,
			}, nil)
		f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{defaultUser}).
			Return([]*entity.UserDevice{
				device(defaultUser, "tok-good"),
				device(defaultUser, "tok-stale"),
			}, nil)

		var prunedID uuid.UUID
		f.deviceRepo.EXPECT().DeleteDevice(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, id uuid.UUID) error {
				prunedID = id

				return nil
			})
		f.pushService.EXPECT().SendBatchNotification(mock.Anything, []string{"tok-good", "tok-stale"}, mock.Anything, mock.Anything, mock.Anything).
			Return(1, 1, []string{"tok-stale"}, nil)

		err := f.service.NotifyMany(context.Background(), recipients, entity.CategoryParty, "A party is recruiting", payload, &serverID)

		require.NoError(t, err)

		// Panels for the two enabled users only.
		require.Len(t, f.panels, 2)
		panelUsers := []uuid.UUID{f.panels[0].UserID, f.panels[1].UserID}
		assert.ElementsMatch(t, []uuid.UUID{defaultUser, pushOffUser}, panelUsers)

		// The unregistered token's device was pruned.
		assert.NotEqual(t, uuid.Nil, prunedID)

		require.Len(t, f.appended, 1)
		row := f.appended[0]
		require.NotNil(t, row.ServerID)
		assert.Equal(t, serverID, *row.ServerID)
		assert.Nil(t, row.UserID)

		pairs := entity.ParseAuditDetails(row.Details)
		assert.Equal(t, strconv.Itoa(len(recipients)), pairs["recipients"])
		assert.Equal(t, "2", pairs["panels"])
		assert.Equal(t, "1", pairs["sent"])
		assert.Equal(t, "1", pairs["failed"])
	})

	t.Run("friend schedule switch off gates both the panel record and the push", func(t *testing.T) {
		f := createTestNotificationService(t)
		serverID := uuid.New()
		userID := uuid.New()

		pref := entity.DefaultNotificationPreference(userID)
		pref.FriendScheduleEnabled = false // global stays on

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return(map[uuid.UUID]*entity.NotificationPreference{userID: pref}, nil)

		err := f.service.NotifyMany(context.Background(), []uuid.UUID{userID}, entity.CategoryFriendSchedule, "A friend scheduled a game", &service.FanoutPayload{
			Kind:     service.PayloadKindTimetable,
			Game:     "raid-night",
			Slot:     "2026-08-29T20:00:00",
			ServerID: serverID.String(),
		}, &serverID)

		require.NoError(t, err)
		assert.Empty(t, f.panels)
		f.deviceRepo.AssertNotCalled(t, "FindActiveDevicesByUsers", mock.Anything, mock.Anything)
		f.pushService.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

		// The call is still summarized by exactly one audit row.
		require.Len(t, f.appended, 1)
		pairs := entity.ParseAuditDetails(f.appended[0].Details)
		assert.Equal(t, "friend_schedule", pairs["category"])
		assert.Equal(t, "1", pairs["recipients"])
		assert.Equal(t, "0", pairs["panels"])
		assert.Equal(t, "0", pairs["sent"])
		assert.Equal(t, "0", pairs["failed"])
	})

	t.Run("preference lookup failure degrades to defaults instead of dropping delivery", func(t *testing.T) {
		f := createTestNotificationService(t)
		userID := uuid.New()

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return(nil, assert.AnError)
		f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return([]*entity.UserDevice{device(userID, "tok-1")}, nil)
		f.pushService.EXPECT().SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(1, 0, nil, nil)

		err := f.service.NotifyMany(context.Background(), []uuid.UUID{userID}, entity.CategoryInvite, "Server invite", &service.FanoutPayload{
			Kind:     service.PayloadKindServerInvite,
			ServerID: uuid.NewString(),
		}, nil)

		require.NoError(t, err)
		require.Len(t, f.panels, 1)
		require.Len(t, f.appended, 1)
	})

	t.Run("push provider outage is absorbed and counted as failures", func(t *testing.T) {
		f := createTestNotificationService(t)
		userID := uuid.New()

		f.notificationRepo.EXPECT().FindPreferencesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return(map[uuid.UUID]*entity.NotificationPreference{}, nil)
		f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{userID}).
			Return([]*entity.UserDevice{device(userID, "tok-1")}, nil)
		f.pushService.EXPECT().SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, assert.AnError)

		err := f.service.NotifyMany(context.Background(), []uuid.UUID{userID}, entity.CategoryParty, "t", payload, nil)

		require.NoError(t, err)
		require.Len(t, f.appended, 1)

		pairs := entity.ParseAuditDetails(f.appended[0].Details)
		assert.Equal(t, "0", pairs["sent"])
		assert.Equal(t, "1", pairs["failed"])
	})
}

func TestNotificationService_ComposePushContent(t *testing.T) {
	f := createTestNotificationService(t)
	svc, ok := f.service.(*notificationService)
	require.True(t, ok)

	t.Run("friend schedule body names game and slot", func(t *testing.T) {
		body, link := svc.composePushContent(&service.FanoutPayload{
			Kind:     service.PayloadKindTimetable,
			Game:     "raid-night",
			Slot:     "2026-08-29T20:00:00",
			ServerID: "srv-1",
		})

		assert.Equal(t, "A friend scheduled raid-night at 2026-08-29T20:00:00.", body)
		assert.Equal(t, "gametable://server/srv-1/timetable", link)
	})

	t.Run("friend request link uses the https base", func(t *testing.T) {
		body, link := svc.composePushContent(&service.FanoutPayload{Kind: service.PayloadKindFriendRequest})

		assert.Equal(t, "You received a new friend request.", body)
		assert.Equal(t, "https://app.example.com/friends/requests", link)
	})

	t.Run("unknown kind falls back to truncated raw message", func(t *testing.T) {
		long := make([]byte, 400)
		for i := range long {
			long[i] = 'x'
		}

		body, link := svc.composePushContent(&service.FanoutPayload{Message: string(long)})

		assert.Len(t, body, maxPushBodyLen)
		assert.Empty(t, link)
	})

	t.Run("nil payload", func(t *testing.T) {
		body, link := svc.composePushContent(nil)

		assert.Empty(t, body)
		assert.Empty(t, link)
	})
}
