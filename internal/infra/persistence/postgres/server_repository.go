package postgres

import (
	"context"

	"gametable/internal/domain/entity"
	"gametable/internal/domain/repository"
	"gametable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// serverRepository implements the repository.ServerRepository interface.
type serverRepository struct {
	db *gorm.DB
}

// NewServerRepository is the constructor for serverRepository.
func NewServerRepository(db *gorm.DB) repository.ServerRepository {
	return &serverRepository{
		db: db,
	}
}

// FindByID retrieves a server by its unique ID.
func (repo *serverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GameServer, error) {
	var serverM model.GameServerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServerNotFound
		}

		return nil, errors.Wrap(err, "failed to find server by ID")
	}

	return toServerDomain(&serverM), nil
}

// FindByResetTime returns every server whose configured reset time equals the
// given "HH:MM" wall-clock minute. The reset sweep calls this once a minute.
func (repo *serverRepository) FindByResetTime(ctx context.Context, resetTime string) ([]*entity.GameServer, error) {
	var serverModels []*model.GameServerModel

	if err := repo.db.WithContext(ctx).
		Where("reset_time = ?", resetTime).
		Find(&serverModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find servers by reset time")
	}

	servers := make([]*entity.GameServer, 0, len(serverModels))
	for _, serverM := range serverModels {
		servers = append(servers, toServerDomain(serverM))
	}

	return servers, nil
}

// --- Mapper Functions ---

// toServerDomain converts a GORM GameServerModel to a domain GameServer entity.
func toServerDomain(data *model.GameServerModel) *entity.GameServer {
	if data == nil {
		return nil
	}

	return &entity.GameServer{
		ID:        data.ID,
		Name:      data.Name,
		ResetTime: data.ResetTime,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
