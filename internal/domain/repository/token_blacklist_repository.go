package repository

import (
	"context"
	"time"
)

// TokenBlacklistRepository prunes expired auth-blacklist artifacts. The core
// never reads or issues tokens; it only sweeps the table during retention
// cleanup.
type TokenBlacklistRepository interface {
	// DeleteExpired removes blacklist rows whose expiry is before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
