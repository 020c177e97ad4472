// Package scheduler hosts the ticker-driven background sweeps: the per-minute
// slot reset, the per-minute reminder dispatch and the daily retention
// cleanup. Each sweep is stateless; a tick never overlaps with itself.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// sweepFunc is one stateless pass, invoked with the minute-truncated tick time.
type sweepFunc func(ctx context.Context, now time.Time)

// minuteTicker drives a sweep once per wall-clock minute. Ticks run
// sequentially on one goroutine, so a slow sweep delays the next tick rather
// than racing it.
type minuteTicker struct {
	name   string
	logger *slog.Logger
	now    func() time.Time
	sweep  sweepFunc
}

// Serve aligns to the next wall-clock minute and then runs the sweep once per
// minute until the context ends.
func (t *minuteTicker) Serve(ctx context.Context) error {
	t.logger.Info("Starting scheduler", slog.String("scheduler", t.name))

	// Align the first tick to the next wall-clock minute boundary
	delay := t.now().Truncate(time.Minute).Add(time.Minute).Sub(t.now())
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	t.sweep(ctx, t.now().Truncate(time.Minute))

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Stopping scheduler", slog.String("scheduler", t.name))

			return ctx.Err()
		case <-ticker.C:
			t.sweep(ctx, t.now().Truncate(time.Minute))
		}
	}
}
