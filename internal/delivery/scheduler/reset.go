package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gametable/internal/delivery"
	"gametable/internal/domain/entity"
	"gametable/internal/domain/repository"

	"go.uber.org/fx"
)

// resetScheduler wipes every timetable entry of servers whose configured
// reset time equals the current wall-clock minute. Parties deliberately
// survive the wipe; they act as standing reservation templates.
type resetScheduler struct {
	logger     *slog.Logger
	txManager  repository.TransactionManager
	serverRepo repository.ServerRepository
	now        func() time.Time
}

// ResetSchedulerParams holds dependencies for the reset scheduler
type ResetSchedulerParams struct {
	fx.In

	Logger     *slog.Logger
	TxManager  repository.TransactionManager
	ServerRepo repository.ServerRepository
}

// NewResetScheduler creates the per-minute slot reset scheduler
func NewResetScheduler(params ResetSchedulerParams) delivery.Delivery {
	s := &resetScheduler{
		logger:     params.Logger,
		txManager:  params.TxManager,
		serverRepo: params.ServerRepo,
		now:        time.Now,
	}

	return &minuteTicker{
		name:   "slot-reset",
		logger: params.Logger,
		now:    s.now,
		sweep:  s.sweep,
	}
}

// sweep wipes the timetable of every server due at this minute. Each server
// is reset in its own transaction so one failure never blocks the rest.
func (s *resetScheduler) sweep(ctx context.Context, now time.Time) {
	resetTime := now.Format(entity.ResetTimeLayout)

	servers, err := s.serverRepo.FindByResetTime(ctx, resetTime)
	if err != nil {
		s.logger.Error("[Scheduler] Failed to find servers due for reset",
			slog.String("reset_time", resetTime),
			slog.Any("error", err),
		)

		return
	}

	for _, server := range servers {
		if err := s.resetServer(ctx, server); err != nil {
			s.logger.Error("[Scheduler] Failed to reset server timetable",
				slog.String("server_id", server.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// resetServer wipes one server's entries and audits each removal. The audit
// rows are the durable record; statistics reconstruct activity from them.
func (s *resetScheduler) resetServer(ctx context.Context, server *entity.GameServer) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		wiped, err := f.NewTimetableRepository().DeleteByServer(ctx, server.ID)
		if err != nil {
			return err
		}

		auditRepo := f.NewAuditRepository()
		for _, entry := range wiped {
			row := entity.NewAuditLogEntry(entry.ServerID, entry.UserID, entity.ActionTimetableDelete, entity.RemovedDetail{
				Game:   entry.Game,
				Slot:   entry.Slot,
				Reason: entity.ReasonReset,
			})
			if err := auditRepo.Append(ctx, row); err != nil {
				return err
			}
		}

		s.logger.Info("[Scheduler] Server timetable reset",
			slog.String("server_id", server.ID.String()),
			slog.Int("wiped_entries", len(wiped)),
		)

		return nil
	})
}
