package repository

import (
	"context"

	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PinnedMessage pairs a pin with the message it highlights
type PinnedMessage struct {
	Pin     *dbmysql.MessagePin
	Message *dbmysql.Message
}

type PinRepository interface {
	Pin(ctx context.Context, pin *dbmysql.MessagePin) error
	Unpin(ctx context.Context, messageID string) error
	ByMessage(ctx context.Context, messageID string) (*dbmysql.MessagePin, error)
	ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]*PinnedMessage, error)
}

type pinRepository struct {
	db *gorm.DB
}

func NewPinRepository(db *gorm.DB) PinRepository {
	return &pinRepository{db: db}
}

// Pin inserts the singleton pin row; the unique key on message_id makes
// the first pinner win and every later attempt a no-op.
func (r *pinRepository) Pin(ctx context.Context, pin *dbmysql.MessagePin) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(pin).Error
}

func (r *pinRepository) Unpin(ctx context.Context, messageID string) error {
	return r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Delete(&dbmysql.MessagePin{}).Error
}

func (r *pinRepository) ByMessage(ctx context.Context, messageID string) (*dbmysql.MessagePin, error) {
	var pin dbmysql.MessagePin
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		First(&pin).Error
	if err != nil {
		return nil, err
	}
	return &pin, nil
}

// ListByConversation returns pins newest first with the pinned message
// embedded; pins of soft-deleted messages are skipped.
func (r *pinRepository) ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]*PinnedMessage, error) {
	var pins []*dbmysql.MessagePin

	query := r.db.WithContext(ctx).
		Model(&dbmysql.MessagePin{}).
		Select("message_pins.*").
		Joins("JOIN messages ON messages.id = message_pins.message_id").
		Where("message_pins.conversation_id = ? AND messages.deleted_at IS NULL", conversationID).
		Order("message_pins.pinned_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&pins).Error; err != nil {
		return nil, err
	}
	if len(pins) == 0 {
		return []*PinnedMessage{}, nil
	}

	ids := make([]string, 0, len(pins))
	for _, p := range pins {
		ids = append(ids, p.MessageID)
	}

	var messages []*dbmysql.Message
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&messages).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*dbmysql.Message, len(messages))
	for _, m := range messages {
		byID[m.ID] = m
	}

	result := make([]*PinnedMessage, 0, len(pins))
	for _, p := range pins {
		result = append(result, &PinnedMessage{Pin: p, Message: byID[p.MessageID]})
	}
	return result, nil
}
