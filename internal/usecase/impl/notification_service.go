package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gametable/config"
	"gametable/internal/domain/entity"
	"gametable/internal/domain/repository"
	"gametable/internal/domain/service"
	"gametable/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// FCM multicast accepts at most 500 tokens per request.
const maxPushBatchSize = 500

// Push bodies are truncated to keep within provider display limits.
const maxPushBodyLen = 180

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	auditRepo        repository.AuditRepository
	pushService      service.PushService
	config           *config.Config
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	AuditRepo        repository.AuditRepository
	PushService      service.PushService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification gateway instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		auditRepo:        params.AuditRepo,
		pushService:      params.PushService,
		config:           params.Config,
		logger:           params.Logger,
	}
}

// deliveryCounts aggregates one gateway call for the audit summary row.
type deliveryCounts struct {
	recipients int
	panels     int
	sent       int
	failed     int
}

// Notify delivers to a single recipient. A recipient with the global switch
// off short-circuits before any record is written.
func (s *notificationService) Notify(ctx context.Context, recipientID uuid.UUID, category entity.NotificationCategory, title string, payload *service.FanoutPayload) error {
	pref := s.loadPreference(ctx, recipientID)
	if !pref.Enabled {
		return nil
	}

	counts := s.deliver(ctx, []*entity.NotificationPreference{pref}, category, title, payload)
	s.appendDispatchAudit(ctx, nil, &recipientID, category, counts)

	return nil
}

// NotifyMany delivers to many recipients, evaluating each one independently.
// One audit row summarizes the whole call regardless of recipient count.
func (s *notificationService) NotifyMany(ctx context.Context, recipientIDs []uuid.UUID, category entity.NotificationCategory, title string, payload *service.FanoutPayload, serverIDHint *uuid.UUID) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	stored, err := s.notificationRepo.FindPreferencesByUsers(ctx, recipientIDs)
	if err != nil {
		// Delivery stays best-effort: without preferences every recipient is
		// treated as defaults rather than dropped.
		s.logger.Error("preference lookup failed, using defaults",
			slog.Int("recipients", len(recipientIDs)), slog.Any("error", err))
		stored = map[uuid.UUID]*entity.NotificationPreference{}
	}

	eligible := make([]*entity.NotificationPreference, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		pref, ok := stored[id]
		if !ok {
			pref = entity.DefaultNotificationPreference(id)
		}
		if pref.Enabled {
			eligible = append(eligible, pref)
		}
	}

	counts := s.deliver(ctx, eligible, category, title, payload)
	counts.recipients = len(recipientIDs)
	s.appendDispatchAudit(ctx, serverIDHint, nil, category, counts)

	return nil
}

// deliver runs the panel and push legs for pre-filtered recipients (global
// switch already honored). Every failure is logged and absorbed.
func (s *notificationService) deliver(ctx context.Context, prefs []*entity.NotificationPreference, category entity.NotificationCategory, title string, payload *service.FanoutPayload) deliveryCounts {
	counts := deliveryCounts{recipients: len(prefs)}
	if len(prefs) == 0 {
		return counts
	}

	body, link := s.composePushContent(payload)

	pushTargets := make([]uuid.UUID, 0, len(prefs))
	for _, pref := range prefs {
		if pref.PanelEnabledFor(category) {
			row := &entity.PanelNotification{
				ID:        uuid.New(),
				UserID:    pref.UserID,
				Category:  category,
				Title:     title,
				Body:      body,
				LinkURL:   link,
				CreatedAt: time.Now(),
			}
			if err := s.notificationRepo.CreatePanelNotification(ctx, row); err != nil {
				s.logger.Error("panel record creation failed",
					slog.String("user_id", pref.UserID.String()), slog.Any("error", err))
			} else {
				counts.panels++
			}
		}

		if pref.PushEnabledFor(category) {
			pushTargets = append(pushTargets, pref.UserID)
		}
	}

	counts.sent, counts.failed = s.dispatchPush(ctx, pushTargets, category, title, body, link)

	return counts
}

// dispatchPush resolves the recipients' active devices, fans the push out in
// provider-sized batches and prunes tokens reported as permanently invalid.
func (s *notificationService) dispatchPush(ctx context.Context, userIDs []uuid.UUID, category entity.NotificationCategory, title, body, link string) (sent, failed int) {
	if len(userIDs) == 0 {
		return 0, 0
	}

	// Firebase is optional; without it delivery degrades to panel rows only.
	if s.pushService == nil {
		return 0, 0
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		s.logger.Error("device lookup failed", slog.Any("error", err))

		return 0, 0
	}
	if len(devices) == 0 {
		return 0, 0
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		if device.PushToken == "" {
			continue
		}
		tokens = append(tokens, device.PushToken)
		deviceByToken[device.PushToken] = device
	}

	data := map[string]string{
		"category": string(category),
	}
	if link != "" {
		data["link"] = link
	}

	for start := 0; start < len(tokens); start += maxPushBatchSize {
		end := min(start+maxPushBatchSize, len(tokens))
		batch := tokens[start:end]

		okCount, failCount, invalidTokens, err := s.pushService.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.logger.Error("push batch failed",
				slog.Int("tokens", len(batch)), slog.Any("error", err))
			failed += len(batch)

			continue
		}

		sent += okCount
		failed += failCount

		s.pruneInvalidTokens(ctx, invalidTokens, deviceByToken)
	}

	return sent, failed
}

// pruneInvalidTokens hard-deletes destinations the provider reported as
// unregistered so they are never retried.
func (s *notificationService) pruneInvalidTokens(ctx context.Context, invalidTokens []string, deviceByToken map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.logger.Error("invalid token prune failed",
				slog.String("device_id", device.ID.String()), slog.Any("error", err))

			continue
		}
		s.logger.Info("pruned invalid push destination",
			slog.String("device_id", device.ID.String()),
			slog.String("user_id", device.UserID.String()))
	}
}

// composePushContent builds the push body and deep link from the structured
// payload. Unknown kinds fall back to truncating the raw message.
func (s *notificationService) composePushContent(payload *service.FanoutPayload) (body, link string) {
	if payload == nil {
		return "", ""
	}

	base := s.config.Notification.LinkBaseURL
	scheme := s.config.Notification.DeepLinkScheme

	switch payload.Kind {
	case service.PayloadKindFriendRequest:
		body = "You received a new friend request."
		link = base + "/friends/requests"
	case service.PayloadKindServerInvite:
		body = "You were invited to join a server."
		link = base + "/servers/" + payload.ServerID + "/invites"
	case service.PayloadKindTimetable:
		body = fmt.Sprintf("A friend scheduled %s at %s.", payload.Game, payload.Slot)
		link = scheme + "://server/" + payload.ServerID + "/timetable"
	case service.PayloadKindParty:
		body = fmt.Sprintf("A party is recruiting for %s at %s.", payload.Game, payload.Slot)
		link = scheme + "://party/" + payload.PartyID
	default:
		body = payload.Message
	}

	if len(body) > maxPushBodyLen {
		body = body[:maxPushBodyLen]
	}

	return body, link
}

// appendDispatchAudit writes the single summary row for one gateway call. It
// goes through the root repository, outside any caller transaction, so a
// rolled-back caller never loses its delivery record and vice versa.
func (s *notificationService) appendDispatchAudit(ctx context.Context, serverID, userID *uuid.UUID, category entity.NotificationCategory, counts deliveryCounts) {
	entry := &entity.AuditLogEntry{
		ID:       uuid.New(),
		ServerID: serverID,
		UserID:   userID,
		Action:   entity.ActionNotifyDispatch,
		Details: entity.EncodeAuditDetail(entity.DeliverySummaryDetail{
			Category:   category,
			Recipients: counts.recipients,
			Panels:     counts.panels,
			Sent:       counts.sent,
			Failed:     counts.failed,
		}),
		OccurredAt: time.Now(),
	}

	if err := s.auditRepo.Append(ctx, entry); err != nil {
		s.logger.Error("dispatch audit append failed",
			slog.String("category", string(category)), slog.Any("error", err))
	}
}

// loadPreference fetches one user's preference, substituting defaults when no
// row exists or the lookup fails.
func (s *notificationService) loadPreference(ctx context.Context, userID uuid.UUID) *entity.NotificationPreference {
	stored, err := s.notificationRepo.FindPreferencesByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		s.logger.Error("preference lookup failed, using defaults",
			slog.String("user_id", userID.String()), slog.Any("error", err))

		return entity.DefaultNotificationPreference(userID)
	}
	if pref, ok := stored[userID]; ok {
		return pref
	}

	return entity.DefaultNotificationPreference(userID)
}
