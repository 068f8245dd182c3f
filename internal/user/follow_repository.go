package user

import (
	"context"

	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

// FollowRepository reads the learner-follows-teacher edge maintained by
// the social service. The engine only consumes it as a precondition.
type FollowRepository interface {
	UserFollowsTeacher(ctx context.Context, userID, teacherID uint64) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) UserFollowsTeacher(ctx context.Context, userID, teacherID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID).
		Count(&count).Error
	return count > 0, err
}
