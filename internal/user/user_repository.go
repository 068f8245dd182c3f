package user

import (
	"context"

	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

type UserRepository interface {
	ByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	Exists(ctx context.Context, userID uint64) (bool, error)
	AllExist(ctx context.Context, userIDs []uint64) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) ByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var u dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Exists(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) AllExist(ctx context.Context, userIDs []uint64) (bool, error) {
	if len(userIDs) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("user_id IN ? AND status = ?", userIDs, "active").
		Count(&count).Error
	return count == int64(len(userIDs)), err
}
