package repository

import (
	"context"

	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReadReceiptRepository interface {
	MarkRead(ctx context.Context, receipt *dbmysql.MessageRead) error
	ListByMessage(ctx context.Context, messageID string) ([]*dbmysql.MessageRead, error)
	CountUnread(ctx context.Context, conversationID string, userID uint64) (int64, error)
}

type readReceiptRepository struct {
	db *gorm.DB
}

func NewReadReceiptRepository(db *gorm.DB) ReadReceiptRepository {
	return &readReceiptRepository{db: db}
}

// MarkRead upserts on the (message_id, user_id) unique key. The receipt
// keeps the first read time; re-reading does not move the marker.
func (r *readReceiptRepository) MarkRead(ctx context.Context, receipt *dbmysql.MessageRead) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(receipt).Error
}

func (r *readReceiptRepository) ListByMessage(ctx context.Context, messageID string) ([]*dbmysql.MessageRead, error) {
	var receipts []*dbmysql.MessageRead
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("read_at ASC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// CountUnread counts live messages from other senders without a receipt
// for the user
func (r *readReceiptRepository) CountUnread(ctx context.Context, conversationID string, userID uint64) (int64, error) {
	var count int64

	read := r.db.Model(&dbmysql.MessageRead{}).
		Select("message_id").
		Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND deleted_at IS NULL", conversationID, userID).
		Where("id NOT IN (?)", read).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
