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
)

// partyRepository implements the repository.PartyRepository interface.
type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository is the constructor for partyRepository.
func NewPartyRepository(db *gorm.DB) repository.PartyRepository {
	return &partyRepository{
		db: db,
	}
}

// Create persists a new party (without participants).
func (repo *partyRepository) Create(ctx context.Context, party *entity.Party) error {
	partyM := fromPartyDomain(party)

	if err := repo.db.WithContext(ctx).Create(partyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create party")
	}

	party.ID = partyM.ID
	party.CreatedAt = partyM.CreatedAt

	return nil
}

// FindByID retrieves a party with its participants.
func (repo *partyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var partyM model.PartyModel

	if err := repo.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		First(&partyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartyNotFound
		}

		return nil, errors.Wrap(err, "failed to find party by ID")
	}

	return toPartyDomain(&partyM), nil
}

// FindByParticipant retrieves the single party the user currently belongs to,
// anywhere in the system.
func (repo *partyRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) (*entity.Party, error) {
	var participantM model.PartyParticipantModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&participantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartyNotFound
		}

		return nil, errors.Wrap(err, "failed to find party membership")
	}

	return repo.FindByID(ctx, participantM.PartyID)
}

// AddParticipant records the user as a participant of the party. The unique
// index on user_id backs the one-membership-system-wide rule at the storage
// level too.
func (repo *partyRepository) AddParticipant(ctx context.Context, partyID, userID uuid.UUID) error {
	participantM := &model.PartyParticipantModel{
		PartyID:  partyID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(participantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPartyMembershipConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add participant")
	}

	return nil
}

// RemoveParticipant removes the user from the party. Missing rows are not an
// error.
func (repo *partyRepository) RemoveParticipant(ctx context.Context, partyID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("party_id = ? AND user_id = ?", partyID, userID).
		Delete(&model.PartyParticipantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove participant")
	}

	return nil
}

// Delete removes the party row and its participant rows.
func (repo *partyRepository) Delete(ctx context.Context, partyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Delete(&model.PartyParticipantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete party participants")
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", partyID).
		Delete(&model.PartyModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete party")
	}

	return nil
}

// --- Mapper Functions ---

// toPartyDomain converts a GORM PartyModel to a domain Party entity.
func toPartyDomain(data *model.PartyModel) *entity.Party {
	if data == nil {
		return nil
	}

	participants := make([]uuid.UUID, 0, len(data.Participants))
	for _, participantM := range data.Participants {
		participants = append(participants, participantM.UserID)
	}

	return &entity.Party{
		ID:           data.ID,
		ServerID:     data.ServerID,
		CreatorID:    data.CreatorID,
		Slot:         data.Slot,
		Capacity:     data.Capacity,
		Game:         data.Game,
		Participants: participants,
		CreatedAt:    data.CreatedAt,
	}
}

// fromPartyDomain converts a domain Party entity to a GORM PartyModel.
// Participant rows are managed separately through AddParticipant.
func fromPartyDomain(data *entity.Party) *model.PartyModel {
	if data == nil {
		return nil
	}

	return &model.PartyModel{
		ID:        data.ID,
		ServerID:  data.ServerID,
		CreatorID: data.CreatorID,
		Slot:      data.Slot,
		Capacity:  data.Capacity,
		Game:      data.Game,
		CreatedAt: data.CreatedAt,
	}
}
