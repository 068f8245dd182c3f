package repository

import (
	"context"

	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

type ConversationRepository interface {
	CreateWithParticipants(ctx context.Context, conv *dbmysql.Conversation, participants []*dbmysql.Participant) error
	ByID(ctx context.Context, id string) (*dbmysql.Conversation, error)
	DirectBetween(ctx context.Context, userA, userB uint64) (*dbmysql.Conversation, error)
	ListForUser(ctx context.Context, userID uint64, limit, offset int) ([]*dbmysql.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateWithParticipants inserts the conversation row and every
// participant row in one transaction; no partially created conversation
// is ever observable.
func (r *conversationRepository) CreateWithParticipants(ctx context.Context, conv *dbmysql.Conversation, participants []*dbmysql.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		for _, p := range participants {
			p.ConversationID = conv.ID
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *conversationRepository) ByID(ctx context.Context, id string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// DirectBetween finds the direct conversation containing exactly the two
// users. Direct conversations never gain participants, so matching both
// ids is sufficient.
func (r *conversationRepository) DirectBetween(ctx context.Context, userA, userB uint64) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Select("conversations.*").
		Joins("JOIN participants ON participants.conversation_id = conversations.id").
		Where("conversations.type = ?", common.ConversationDirect).
		Where("participants.user_id IN ?", []uint64{userA, userB}).
		Group("conversations.id").
		Having("COUNT(DISTINCT participants.user_id) = 2").
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListForUser returns the caller's visible conversations, newest activity
// first. Hidden direct conversations stay out of the list until a new
// message unhides them.
func (r *conversationRepository) ListForUser(ctx context.Context, userID uint64, limit, offset int) ([]*dbmysql.Conversation, error) {
	var conversations []*dbmysql.Conversation

	query := r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Select("conversations.*").
		Joins("JOIN participants ON participants.conversation_id = conversations.id").
		Where("participants.user_id = ? AND participants.hidden_at IS NULL", userID).
		Order("conversations.updated_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}
