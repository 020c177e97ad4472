package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gametable/config"
	"gametable/internal/delivery"
	"gametable/internal/domain/repository"

	"go.uber.org/fx"
)

// cleanupScheduler prunes aged audit rows and expired auth-blacklist
// artifacts once per day. Purely additive safety; no invariant depends on it.
type cleanupScheduler struct {
	retentionDays      int
	cleanupHour        int
	logger             *slog.Logger
	auditRepo          repository.AuditRepository
	tokenBlacklistRepo repository.TokenBlacklistRepository
	now                func() time.Time
}

// CleanupSchedulerParams holds dependencies for the retention cleanup scheduler
type CleanupSchedulerParams struct {
	fx.In

	Config             *config.Config
	Logger             *slog.Logger
	AuditRepo          repository.AuditRepository
	TokenBlacklistRepo repository.TokenBlacklistRepository
}

// NewCleanupScheduler creates the daily retention cleanup scheduler
func NewCleanupScheduler(params CleanupSchedulerParams) delivery.Delivery {
	s := &cleanupScheduler{
		retentionDays:      params.Config.Scheduler.AuditRetentionDays,
		cleanupHour:        params.Config.Scheduler.CleanupHour,
		logger:             params.Logger,
		auditRepo:          params.AuditRepo,
		tokenBlacklistRepo: params.TokenBlacklistRepo,
		now:                time.Now,
	}

	return &minuteTicker{
		name:   "retention-cleanup",
		logger: params.Logger,
		now:    s.now,
		sweep:  s.sweep,
	}
}

// sweep runs once per day, at the first minute of the configured hour.
func (s *cleanupScheduler) sweep(ctx context.Context, now time.Time) {
	if now.Hour() != s.cleanupHour || now.Minute() != 0 {
		return
	}

	cutoff := now.AddDate(0, 0, -s.retentionDays)

	auditPruned, err := s.auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("[Scheduler] Failed to prune audit rows",
			slog.Time("cutoff", cutoff),
			slog.Any("error", err),
		)
	}

	tokensPruned, err := s.tokenBlacklistRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("[Scheduler] Failed to prune expired blacklist tokens", slog.Any("error", err))
	}

	s.logger.Info("[Scheduler] Retention cleanup completed",
		slog.Time("cutoff", cutoff),
		slog.Int64("audit_rows_pruned", auditPruned),
		slog.Int64("blacklist_tokens_pruned", tokensPruned),
	)
}
