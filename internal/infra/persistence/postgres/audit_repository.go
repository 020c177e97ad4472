package postgres

import (
	"context"
	"time"

	"gametable/internal/domain/entity"
	domainerrors "gametable/internal/domain/errors"
	"gametable/internal/domain/repository"
	"gametable/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// Append persists one audit row. Rows are insert-only.
func (repo *auditRepository) Append(ctx context.Context, row *entity.AuditLogEntry) error {
	rowM := fromAuditDomain(row)

	if err := repo.db.WithContext(ctx).Create(rowM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit row")
	}

	row.ID = rowM.ID

	return nil
}

// DeleteOlderThan prunes rows that occurred before the cutoff.
func (repo *auditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("occurred_at < ?", cutoff).
		Delete(&model.AuditLogModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune audit rows")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// fromAuditDomain converts a domain AuditLogEntry to a GORM AuditLogModel.
func fromAuditDomain(data *entity.AuditLogEntry) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:         data.ID,
		ServerID:   data.ServerID,
		UserID:     data.UserID,
		Action:     string(data.Action),
		Details:    data.Details,
		OccurredAt: data.OccurredAt,
	}
}
