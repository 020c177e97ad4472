package postgres

import (
	"context"
	"time"

	"gametable/internal/domain/entity"
	domainerrors "gametable/internal/domain/errors"
	"gametable/internal/domain/repository"
	"gametable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// timetableRepository implements the repository.TimetableRepository interface.
type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository is the constructor for timetableRepository.
func NewTimetableRepository(db *gorm.DB) repository.TimetableRepository {
	return &timetableRepository{
		db: db,
	}
}

// Upsert inserts the entry, replacing any prior entry for the same
// (server, user) pair. Last write wins, by policy.
func (repo *timetableRepository) Upsert(ctx context.Context, entry *entity.TimetableEntry) error {
	entryM := fromTimetableDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "server_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"slot":       entryM.Slot,
				"game":       entryM.Game,
				"updated_at": time.Now(),
			}),
		}).
		Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert timetable entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByServerAndUser retrieves the active entry for a (server, user) pair.
func (repo *timetableRepository) FindByServerAndUser(ctx context.Context, serverID, userID uuid.UUID) (*entity.TimetableEntry, error) {
	var entryM model.TimetableEntryModel

	if err := repo.db.WithContext(ctx).
		Where("server_id = ? AND user_id = ?", serverID, userID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find timetable entry")
	}

	return toTimetableDomain(&entryM), nil
}

// Delete removes the entry for a (server, user) pair. Missing rows are not an
// error: removal is idempotent.
func (repo *timetableRepository) Delete(ctx context.Context, serverID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("server_id = ? AND user_id = ?", serverID, userID).
		Delete(&model.TimetableEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete timetable entry")
	}

	return nil
}

// DeleteByServer wipes every entry of a server and returns the removed
// entries so the reset sweep can audit each one.
func (repo *timetableRepository) DeleteByServer(ctx context.Context, serverID uuid.UUID) ([]*entity.TimetableEntry, error) {
	var entryModels []*model.TimetableEntryModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("server_id = ?", serverID).
		Delete(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to wipe timetable entries")
	}

	entries := make([]*entity.TimetableEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toTimetableDomain(entryM))
	}

	return entries, nil
}

// ListAll returns every active entry. The reminder sweep accepts a full scan
// per minute at current entry counts.
func (repo *timetableRepository) ListAll(ctx context.Context) ([]*entity.TimetableEntry, error) {
	var entryModels []*model.TimetableEntryModel

	if err := repo.db.WithContext(ctx).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list timetable entries")
	}

	entries := make([]*entity.TimetableEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toTimetableDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toTimetableDomain converts a GORM TimetableEntryModel to a domain TimetableEntry entity.
func toTimetableDomain(data *model.TimetableEntryModel) *entity.TimetableEntry {
	if data == nil {
		return nil
	}

	return &entity.TimetableEntry{
		ID:        data.ID,
		ServerID:  data.ServerID,
		UserID:    data.UserID,
		Slot:      data.Slot,
		Game:      data.Game,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTimetableDomain converts a domain TimetableEntry entity to a GORM TimetableEntryModel.
func fromTimetableDomain(data *entity.TimetableEntry) *model.TimetableEntryModel {
	if data == nil {
		return nil
	}

	return &model.TimetableEntryModel{
		ID:        data.ID,
		ServerID:  data.ServerID,
		UserID:    data.UserID,
		Slot:      data.Slot,
		Game:      data.Game,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
