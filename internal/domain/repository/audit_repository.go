package repository

import (
	"context"
	"time"

	"gametable/internal/domain/entity"
)

// AuditRepository appends to the audit trail. Rows are never updated; safe
// for unordered concurrent writers.
type AuditRepository interface {
	// Append persists one audit row.
	Append(ctx context.Context, row *entity.AuditLogEntry) error

	// DeleteOlderThan prunes rows that occurred before the cutoff and
	// reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
