package repository

import (
	"context"
	"errors"

	"gametable/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServerNotFound is returned when a server lookup matches nothing.
var ErrServerNotFound = errors.New("server not found")

// ServerRepository reads server rows. Server CRUD itself is admin plumbing
// outside the core; the core only needs reset-time lookups.
type ServerRepository interface {
	// FindByID retrieves a server, or ErrServerNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GameServer, error)

	// FindByResetTime returns every server whose configured reset time
	// equals the given "HH:MM" wall-clock minute.
	FindByResetTime(ctx context.Context, resetTime string) ([]*entity.GameServer, error)
}
