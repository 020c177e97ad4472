package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockrepo "gametable/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

type cleanupFixture struct {
	auditRepo          *mockrepo.AuditRepository
	tokenBlacklistRepo *mockrepo.TokenBlacklistRepository

	scheduler *cleanupScheduler
}

func createCleanupFixture(t *testing.T) *cleanupFixture {
	t.Helper()

	f := &cleanupFixture{
		auditRepo:          mockrepo.NewAuditRepository(t),
		tokenBlacklistRepo: mockrepo.NewTokenBlacklistRepository(t),
	}

	f.scheduler = &cleanupScheduler{
		retentionDays:      90,
		cleanupHour:        4,
		logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		auditRepo:          f.auditRepo,
		tokenBlacklistRepo: f.tokenBlacklistRepo,
		now:                time.Now,
	}

	return f
}

func TestCleanupScheduler_Sweep(t *testing.T) {
	t.Run("prunes audit rows and expired blacklist tokens at the configured hour", func(t *testing.T) {
		f := createCleanupFixture(t)
		now := time.Date(2026, 8, 29, 4, 0, 0, 0, time.Local)
		cutoff := now.AddDate(0, 0, -90)

		f.auditRepo.EXPECT().DeleteOlderThan(mock.Anything, cutoff).Return(120, nil)
		f.tokenBlacklistRepo.EXPECT().DeleteExpired(mock.Anything, now).Return(7, nil)

		f.scheduler.sweep(context.Background(), now)
	})

	t.Run("does nothing outside the configured minute", func(t *testing.T) {
		for _, clock := range []time.Time{
			time.Date(2026, 8, 29, 4, 1, 0, 0, time.Local),
			time.Date(2026, 8, 29, 3, 0, 0, 0, time.Local),
			time.Date(2026, 8, 29, 5, 0, 0, 0, time.Local),
		} {
			f := createCleanupFixture(t)

			f.scheduler.sweep(context.Background(), clock)

			f.auditRepo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
			f.tokenBlacklistRepo.AssertNotCalled(t, "DeleteExpired", mock.Anything, mock.Anything)
		}
	})

	t.Run("a failing audit prune still sweeps the token blacklist", func(t *testing.T) {
		f := createCleanupFixture(t)
		now := time.Date(2026, 8, 29, 4, 0, 0, 0, time.Local)

		f.auditRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(0, errors.New("lock timeout"))
		f.tokenBlacklistRepo.EXPECT().DeleteExpired(mock.Anything, now).Return(0, nil)

		f.scheduler.sweep(context.Background(), now)
	})
}
