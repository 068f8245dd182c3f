package repository

import (
	"context"

	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository interface {
	Add(ctx context.Context, reaction *dbmysql.MessageReaction) error
	Remove(ctx context.Context, messageID string, userID uint64, emoji string) error
	ListByMessage(ctx context.Context, messageID string) ([]*dbmysql.MessageReaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Add upserts on the (message_id, user_id, emoji) unique key; repeating
// the same reaction is a no-op.
func (r *reactionRepository) Add(ctx context.Context, reaction *dbmysql.MessageReaction) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(reaction).Error
}

// Remove deletes the matching tuple; removing an absent reaction is not
// an error.
func (r *reactionRepository) Remove(ctx context.Context, messageID string, userID uint64, emoji string) error {
	return r.db.WithContext(ctx).
		Where("message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji).
		Delete(&dbmysql.MessageReaction{}).Error
}

func (r *reactionRepository) ListByMessage(ctx context.Context, messageID string) ([]*dbmysql.MessageReaction, error) {
	var reactions []*dbmysql.MessageReaction
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}
