package repository

import (
	"context"
	"strings"
	"time"

	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

// SearchFilter combines with AND; zero values mean "not filtered"
type SearchFilter struct {
	SenderID            *uint64
	DateFrom            *time.Time
	DateTo              *time.Time
	Text                string
	MessageType         common.MessageType
	OnlyWithAttachments bool
}

type MessageRepository interface {
	Append(ctx context.Context, msg *dbmysql.Message, unhide bool) error
	ByID(ctx context.Context, id string) (*dbmysql.Message, error)
	ListByConversation(ctx context.Context, conversationID string, since *time.Time, limit, offset int) ([]*dbmysql.Message, error)
	Search(ctx context.Context, conversationID string, filter SearchFilter, limit, offset int) ([]*dbmysql.Message, error)
	SetEdited(ctx context.Context, id, content string, at time.Time) error
	SetDeleted(ctx context.Context, id string, by uint64, at time.Time) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Append inserts the message, bumps the conversation's activity marker
// and, when unhide is set, clears hidden_at for every hidden participant
// of the conversation. The three writes share one transaction; a failed
// send never leaves a committed message behind.
func (r *messageRepository) Append(ctx context.Context, msg *dbmysql.Message, unhide bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		if unhide {
			if err := tx.Model(&dbmysql.Participant{}).
				Where("conversation_id = ? AND hidden_at IS NOT NULL", msg.ConversationID).
				Update("hidden_at", nil).Error; err != nil {
				return err
			}
		}

		return tx.Model(&dbmysql.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", msg.SentAt).Error
	})
}

// ByID excludes soft-deleted rows; deleted messages are invisible on
// every read path and only kept for audit.
func (r *messageRepository) ByID(ctx context.Context, id string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListByConversation returns messages newest first. A non-nil since
// bounds the window to messages sent at or after it (the hidden-at
// truncation for direct participants).
func (r *messageRepository) ListByConversation(ctx context.Context, conversationID string, since *time.Time, limit, offset int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message

	query := r.db.WithContext(ctx).
		Where("conversation_id = ? AND deleted_at IS NULL", conversationID).
		Order("sent_at DESC")

	if since != nil {
		query = query.Where("sent_at >= ?", *since)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Search(ctx context.Context, conversationID string, filter SearchFilter, limit, offset int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message

	query := r.db.WithContext(ctx).
		Where("conversation_id = ? AND deleted_at IS NULL", conversationID).
		Order("sent_at DESC")

	if filter.SenderID != nil {
		query = query.Where("sender_id = ?", *filter.SenderID)
	}
	if filter.DateFrom != nil {
		query = query.Where("sent_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("sent_at <= ?", *filter.DateTo)
	}
	if filter.Text != "" {
		query = query.Where("LOWER(content) LIKE ?", "%"+strings.ToLower(filter.Text)+"%")
	}
	if filter.MessageType != "" {
		query = query.Where("message_type = ?", filter.MessageType)
	}
	if filter.OnlyWithAttachments {
		query = query.Where("attachments IS NOT NULL")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) SetEdited(ctx context.Context, id, content string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"content":   content,
			"edited_at": at,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *messageRepository) SetDeleted(ctx context.Context, id string, by uint64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": at,
			"deleted_by": by,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
