package postgres

import (
	"context"
	"time"

	"gametable/internal/domain/repository"
	"gametable/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenBlacklistRepository implements the repository.TokenBlacklistRepository interface.
type tokenBlacklistRepository struct {
	db *gorm.DB
}

// NewTokenBlacklistRepository is the constructor for tokenBlacklistRepository.
func NewTokenBlacklistRepository(db *gorm.DB) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{
		db: db,
	}
}

// DeleteExpired removes blacklist rows whose expiry is before now.
func (repo *tokenBlacklistRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.TokenBlacklistModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune expired blacklist rows")
	}

	return result.RowsAffected, nil
}
