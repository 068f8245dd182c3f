package repository

import (
	"context"
	"errors"
	"time"

	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JoinRequestRepository interface {
	CreatePending(ctx context.Context, req *dbmysql.JoinRequest) (*dbmysql.JoinRequest, bool, error)
	ByID(ctx context.Context, id string) (*dbmysql.JoinRequest, error)
	ListPending(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.JoinRequest, error)
	Resolve(ctx context.Context, id string, status common.JoinRequestStatus, participant *dbmysql.Participant) (bool, error)
}

type joinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

// CreatePending inserts the request unless a pending one already exists
// for the same (conversation, invited user) pair, in which case the
// existing row is returned and the bool is false. The check and the
// insert run in one transaction holding a row lock on the conversation,
// so two concurrent invites for the same target cannot both insert.
func (r *joinRequestRepository) CreatePending(ctx context.Context, req *dbmysql.JoinRequest) (*dbmysql.JoinRequest, bool, error) {
	var existing dbmysql.JoinRequest
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv dbmysql.Conversation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", req.ConversationID).
			First(&conv).Error; err != nil {
			return err
		}

		err := tx.Where("conversation_id = ? AND invited_user_id = ? AND status = ?",
			req.ConversationID, req.InvitedUserID, common.JoinRequestPending).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(req).Error; err != nil {
			return err
		}
		created = true
		return nil
	})

	if err != nil {
		return nil, false, err
	}
	if created {
		return req, true, nil
	}
	return &existing, false, nil
}

func (r *joinRequestRepository) ByID(ctx context.Context, id string) (*dbmysql.JoinRequest, error) {
	var req dbmysql.JoinRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *joinRequestRepository) ListPending(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.JoinRequest, error) {
	var requests []*dbmysql.JoinRequest

	query := r.db.WithContext(ctx).
		Where("conversation_id = ? AND status = ?", conversationID, common.JoinRequestPending).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Resolve transitions pending -> approved/rejected with a compare-and-swap
// on status and, on approval, inserts the participant row in the same
// transaction. The returned bool reports whether this call won the swap;
// a concurrent resolver of the same request loses and gets false.
func (r *joinRequestRepository) Resolve(ctx context.Context, id string, status common.JoinRequestStatus, participant *dbmysql.Participant) (bool, error) {
	won := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&dbmysql.JoinRequest{}).
			Where("id = ? AND status = ?", id, common.JoinRequestPending).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		won = true

		if participant != nil {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(participant).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return false, err
	}
	return won, nil
}
