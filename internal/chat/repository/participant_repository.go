package repository

import (
	"context"
	"time"

	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepository interface {
	CreateIfAbsent(ctx context.Context, p *dbmysql.Participant) error
	Find(ctx context.Context, conversationID string, userID uint64) (*dbmysql.Participant, error)
	List(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Participant, error)
	Count(ctx context.Context, conversationID string) (int64, error)
	Remove(ctx context.Context, conversationID string, userID uint64) error
	LeaveGroup(ctx context.Context, conversationID string, userID uint64) (remaining int64, deactivated bool, err error)
	Hide(ctx context.Context, conversationID string, userID uint64, at time.Time) error
	Unhide(ctx context.Context, conversationID string, userID uint64) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// CreateIfAbsent relies on the (conversation_id, user_id) unique key;
// repeating an identical insert is a no-op, not an error.
func (r *participantRepository) CreateIfAbsent(ctx context.Context, p *dbmysql.Participant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p).Error
}

func (r *participantRepository) Find(ctx context.Context, conversationID string, userID uint64) (*dbmysql.Participant, error) {
	var p dbmysql.Participant
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) List(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Participant, error) {
	var participants []*dbmysql.Participant

	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("joined_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) Count(ctx context.Context, conversationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	return count, err
}

// Remove hard-deletes the participant row (kick)
func (r *participantRepository) Remove(ctx context.Context, conversationID string, userID uint64) error {
	result := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&dbmysql.Participant{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LeaveGroup deletes the participant row, recounts the remaining members
// and deactivates the conversation when the count reaches zero, all under
// a row lock on the conversation. Two concurrent last-leavers serialize
// on the lock, so the deactivation happens exactly once.
func (r *participantRepository) LeaveGroup(ctx context.Context, conversationID string, userID uint64) (int64, bool, error) {
	var remaining int64
	deactivated := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv dbmysql.Conversation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", conversationID).
			First(&conv).Error; err != nil {
			return err
		}

		result := tx.Where("conversation_id = ? AND user_id = ?", conversationID, userID).
			Delete(&dbmysql.Participant{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&dbmysql.Participant{}).
			Where("conversation_id = ?", conversationID).
			Count(&remaining).Error; err != nil {
			return err
		}

		if remaining == 0 && conv.IsActive {
			if err := tx.Model(&dbmysql.Conversation{}).
				Where("id = ?", conversationID).
				Update("is_active", false).Error; err != nil {
				return err
			}
			deactivated = true
		}
		return nil
	})

	if err != nil {
		return 0, false, err
	}
	return remaining, deactivated, nil
}

// Hide marks a direct participant as soft-left. left_at keeps the hide
// timestamp permanently; an unhide only clears hidden_at, so messages
// sent before the hide stay out of the participant's window for good.
func (r *participantRepository) Hide(ctx context.Context, conversationID string, userID uint64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Updates(map[string]interface{}{
			"hidden_at": at,
			"left_at":   at,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Unhide puts the conversation back in the participant's list; left_at
// is deliberately untouched so the pre-hide history stays invisible.
func (r *participantRepository) Unhide(ctx context.Context, conversationID string, userID uint64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Update("hidden_at", nil).Error
}
