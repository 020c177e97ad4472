package postgres

import (
	"context"

	"gametable/internal/domain/repository"
	"gametable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendRepository implements the repository.FriendRepository interface.
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository is the constructor for friendRepository.
func NewFriendRepository(db *gorm.DB) repository.FriendRepository {
	return &friendRepository{
		db: db,
	}
}

// FindFriendIDs returns the ids of the user's confirmed friends. Friendships
// are stored mirrored, so one indexed lookup suffices.
func (repo *friendRepository) FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var friendIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &friendIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friend ids")
	}

	return friendIDs, nil
}

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindMemberIDs returns the ids of every member of the server.
func (repo *memberRepository) FindMemberIDs(ctx context.Context, serverID uuid.UUID) ([]uuid.UUID, error) {
	var memberIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ServerMemberModel{}).
		Where("server_id = ?", serverID).
		Pluck("user_id", &memberIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find member ids")
	}

	return memberIDs, nil
}
