package repository

import (
	"context"

	"gametable/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository reads per-user preferences and persists panel
// records (the durable, user-visible notification rows).
type NotificationRepository interface {
	// FindPreferencesByUsers loads preference rows for the given users.
	// Users without a row are absent from the result; callers substitute
	// entity.DefaultNotificationPreference.
	FindPreferencesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.NotificationPreference, error)

	// CreatePanelNotification persists a panel record.
	CreatePanelNotification(ctx context.Context, row *entity.PanelNotification) error
}
