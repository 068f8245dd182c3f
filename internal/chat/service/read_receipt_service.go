package service

import (
	"context"
	"errors"
	"time"

	"eduverse/internal/chat/repository"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

// ReadReceiptService records per-user read markers
type ReadReceiptService interface {
	MarkRead(ctx context.Context, messageID string, userID uint64) error
	ListReceipts(ctx context.Context, messageID string, userID uint64) ([]*dbmysql.MessageRead, error)
	CountUnread(ctx context.Context, conversationID string, userID uint64) (int64, error)
}

type readReceiptService struct {
	receipts     repository.ReadReceiptRepository
	messages     repository.MessageRepository
	participants repository.ParticipantRepository
}

func NewReadReceiptService(
	receipts repository.ReadReceiptRepository,
	messages repository.MessageRepository,
	participants repository.ParticipantRepository,
) ReadReceiptService {
	return &readReceiptService{
		receipts:     receipts,
		messages:     messages,
		participants: participants,
	}
}

// MarkRead upserts the receipt; marking an already-read message again is
// a no-op success.
func (s *readReceiptService) MarkRead(ctx context.Context, messageID string, userID uint64) error {
	msg, err := s.messages.ByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFoundf("message %s not found", messageID)
		}
		return common.Internalf(err, "failed to load message")
	}
	if _, err := requireParticipant(ctx, s.participants, msg.ConversationID, userID); err != nil {
		return err
	}

	receipt := &dbmysql.MessageRead{
		MessageID: msg.ID,
		UserID:    userID,
		ReadAt:    time.Now().UTC(),
	}
	if err := s.receipts.MarkRead(ctx, receipt); err != nil {
		return common.Internalf(err, "failed to mark message read")
	}
	return nil
}

func (s *readReceiptService) ListReceipts(ctx context.Context, messageID string, userID uint64) ([]*dbmysql.MessageRead, error) {
	msg, err := s.messages.ByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("message %s not found", messageID)
		}
		return nil, common.Internalf(err, "failed to load message")
	}
	if _, err := requireParticipant(ctx, s.participants, msg.ConversationID, userID); err != nil {
		return nil, err
	}

	receipts, err := s.receipts.ListByMessage(ctx, msg.ID)
	if err != nil {
		return nil, common.Internalf(err, "failed to list receipts")
	}
	return receipts, nil
}

func (s *readReceiptService) CountUnread(ctx context.Context, conversationID string, userID uint64) (int64, error) {
	if _, err := requireParticipant(ctx, s.participants, conversationID, userID); err != nil {
		return 0, err
	}

	count, err := s.receipts.CountUnread(ctx, conversationID, userID)
	if err != nil {
		return 0, common.Internalf(err, "failed to count unread messages")
	}
	return count, nil
}
