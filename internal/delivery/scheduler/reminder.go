package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gametable/config"
	"gametable/internal/delivery"
	"gametable/internal/domain/entity"
	"gametable/internal/domain/repository"
	"gametable/internal/domain/service"
	"gametable/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reminderScheduler fires push-only reminders ahead of reserved slots. It
// scans every active entry each minute; a full-table scan is the simplest
// correct design at current entry counts.
type reminderScheduler struct {
	defaultLeadMinutes int
	logger             *slog.Logger
	timetableRepo      repository.TimetableRepository
	notificationRepo   repository.NotificationRepository
	notificationUC     usecase.NotificationUsecase
	now                func() time.Time
}

// ReminderSchedulerParams holds dependencies for the reminder scheduler
type ReminderSchedulerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	TimetableRepo    repository.TimetableRepository
	NotificationRepo repository.NotificationRepository
	NotificationUC   usecase.NotificationUsecase
}

// NewReminderScheduler creates the per-minute reminder dispatch scheduler
func NewReminderScheduler(params ReminderSchedulerParams) delivery.Delivery {
	s := &reminderScheduler{
		defaultLeadMinutes: params.Config.Scheduler.DefaultReminderLeadMinutes,
		logger:             params.Logger,
		timetableRepo:      params.TimetableRepo,
		notificationRepo:   params.NotificationRepo,
		notificationUC:     params.NotificationUC,
		now:                time.Now,
	}

	return &minuteTicker{
		name:   "reminder-dispatch",
		logger: params.Logger,
		now:    s.now,
		sweep:  s.sweep,
	}
}

// sweep fires a reminder for every entry whose slot minus the user's lead
// time lands exactly on this minute.
func (s *reminderScheduler) sweep(ctx context.Context, now time.Time) {
	entries, err := s.timetableRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Failed to list timetable entries", slog.Any("error", err))

		return
	}

	if len(entries) == 0 {
		return
	}

	userIDs := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		userIDs = append(userIDs, entry.UserID)
	}

	// Lead minutes come from preference rows; a lookup failure degrades to
	// the configured default for everyone rather than skipping the sweep.
	prefs, err := s.notificationRepo.FindPreferencesByUsers(ctx, userIDs)
	if err != nil {
		s.logger.Warn("[Scheduler] Failed to load reminder preferences, using defaults", slog.Any("error", err))
		prefs = nil
	}

	fired := 0
	for _, entry := range entries {
		lead := s.defaultLeadMinutes
		if pref, ok := prefs[entry.UserID]; ok && pref.ReminderLeadMinutes > 0 {
			lead = pref.ReminderLeadMinutes
		}

		target := entry.Slot.Add(-time.Duration(lead) * time.Minute).Truncate(time.Minute)
		if !target.Equal(now) {
			continue
		}

		s.fireReminder(ctx, entry, lead)
		fired++
	}

	if fired > 0 {
		s.logger.Info("[Scheduler] Reminders dispatched",
			slog.Int("fired", fired),
			slog.Int("scanned", len(entries)),
		)
	}
}

// fireReminder delivers one push-only reminder through the gateway. The
// gateway never creates a panel row for the reminder category.
func (s *reminderScheduler) fireReminder(ctx context.Context, entry *entity.TimetableEntry, lead int) {
	payload := &service.FanoutPayload{
		Game:     entry.Game,
		Slot:     entry.Slot.Format(entity.AuditSlotLayout),
		ServerID: entry.ServerID.String(),
		Message:  fmt.Sprintf("Your %s slot starts at %s.", entry.Game, entry.Slot.Format("15:04")),
	}

	if err := s.notificationUC.Notify(ctx, entry.UserID, entity.CategoryReminder, "Slot reminder", payload); err != nil {
		s.logger.Warn("[Scheduler] Failed to dispatch reminder",
			slog.String("user_id", entry.UserID.String()),
			slog.Int("lead_minutes", lead),
			slog.Any("error", err),
		)
	}
}
