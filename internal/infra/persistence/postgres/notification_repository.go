package postgres

import (
	"context"

	"gametable/internal/domain/entity"
	domainerrors "gametable/internal/domain/errors"
	"gametable/internal/domain/repository"
	"gametable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// FindPreferencesByUsers loads preference rows for the given users in one
// query. Users without a row are absent from the result; the gateway
// substitutes defaults.
func (repo *notificationRepository) FindPreferencesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.NotificationPreference, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]*entity.NotificationPreference{}, nil
	}

	var prefModels []*model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&prefModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification preferences")
	}

	prefs := make(map[uuid.UUID]*entity.NotificationPreference, len(prefModels))
	for _, prefM := range prefModels {
		prefs[prefM.UserID] = toPreferenceDomain(prefM)
	}

	return prefs, nil
}

// CreatePanelNotification persists a panel record.
func (repo *notificationRepository) CreatePanelNotification(ctx context.Context, row *entity.PanelNotification) error {
	rowM := fromPanelDomain(row)

	if err := repo.db.WithContext(ctx).Create(rowM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create panel notification")
	}

	row.ID = rowM.ID
	row.CreatedAt = rowM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM NotificationPreferenceModel to a domain NotificationPreference entity.
func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreference{
		UserID:                data.UserID,
		Enabled:               data.Enabled,
		InviteEnabled:         data.InviteEnabled,
		FriendRequestEnabled:  data.FriendRequestEnabled,
		FriendScheduleEnabled: data.FriendScheduleEnabled,
		PartyEnabled:          data.PartyEnabled,
		ReminderLeadMinutes:   data.ReminderLeadMinutes,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromPanelDomain converts a domain PanelNotification to a GORM PanelNotificationModel.
func fromPanelDomain(data *entity.PanelNotification) *model.PanelNotificationModel {
	if data == nil {
		return nil
	}

	return &model.PanelNotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Category:  string(data.Category),
		Title:     data.Title,
		Body:      data.Body,
		LinkURL:   data.LinkURL,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}
