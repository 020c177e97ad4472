package repository

import (
	"context"
	"errors"

	"gametable/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device lookup matches nothing.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists push destinations.
type DeviceRepository interface {
	// CreateDevice persists a new push destination for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUsers retrieves all active destinations for the
	// given users in one query.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice removes a destination. The gateway calls this when the
	// push provider reports the token as permanently invalid.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
