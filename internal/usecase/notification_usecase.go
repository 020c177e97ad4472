package usecase

import (
	"context"

	"gametable/internal/domain/entity"
	"gametable/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase is the notification gateway: best-effort delivery to
// one or many recipients honoring per-user category switches, producing one
// aggregated audit row per call and pruning unusable push destinations.
//
// Both methods are best-effort end to end: internal failures are logged and
// never propagated, so a committed slot operation can never be poisoned by
// its notification fan-out. The returned error is reserved for malformed
// input, not delivery trouble.
type NotificationUsecase interface {
	// Notify delivers to a single recipient. When the recipient's global
	// switch is off, it returns immediately with no record at all.
	Notify(ctx context.Context, recipientID uuid.UUID, category entity.NotificationCategory, title string, payload *service.FanoutPayload) error

	// NotifyMany delivers to many recipients, evaluating each one
	// independently, and appends a single audit row summarizing the whole
	// call. serverIDHint scopes the audit row when known.
	NotifyMany(ctx context.Context, recipientIDs []uuid.UUID, category entity.NotificationCategory, title string, payload *service.FanoutPayload, serverIDHint *uuid.UUID) error
}
