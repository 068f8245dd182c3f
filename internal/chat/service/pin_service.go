package service

import (
	"context"
	"errors"

	"eduverse/internal/chat/repository"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

// PinService keeps the singleton highlight per message
type PinService interface {
	PinMessage(ctx context.Context, messageID string, userID uint64) (*dbmysql.MessagePin, error)
	UnpinMessage(ctx context.Context, messageID string, userID uint64) error
	ListPinnedMessages(ctx context.Context, conversationID string, userID uint64, limit, offset int) ([]*repository.PinnedMessage, error)
}

type pinService struct {
	pins         repository.PinRepository
	messages     repository.MessageRepository
	participants repository.ParticipantRepository
}

func NewPinService(
	pins repository.PinRepository,
	messages repository.MessageRepository,
	participants repository.ParticipantRepository,
) PinService {
	return &pinService{
		pins:         pins,
		messages:     messages,
		participants: participants,
	}
}

// PinMessage creates the pin when absent; when a pin already exists the
// original pinner is kept and the existing row is returned.
func (s *pinService) PinMessage(ctx context.Context, messageID string, userID uint64) (*dbmysql.MessagePin, error) {
	msg, err := s.memberMessage(ctx, messageID, userID)
	if err != nil {
		return nil, err
	}

	pin := &dbmysql.MessagePin{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		PinnedBy:       userID,
	}
	if err := s.pins.Pin(ctx, pin); err != nil {
		return nil, common.Internalf(err, "failed to pin message")
	}

	// Re-read so a lost insert reports the winning pin, not ours. When a
	// concurrent unpin removed the row in between, our own pin is the
	// best answer left.
	current, err := s.pins.ByMessage(ctx, msg.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pin, nil
		}
		return nil, common.Internalf(err, "failed to load pin")
	}
	return current, nil
}

// UnpinMessage removes the pin; any participant may unpin
func (s *pinService) UnpinMessage(ctx context.Context, messageID string, userID uint64) error {
	msg, err := s.memberMessage(ctx, messageID, userID)
	if err != nil {
		return err
	}

	if err := s.pins.Unpin(ctx, msg.ID); err != nil {
		return common.Internalf(err, "failed to unpin message")
	}
	return nil
}

func (s *pinService) ListPinnedMessages(ctx context.Context, conversationID string, userID uint64, limit, offset int) ([]*repository.PinnedMessage, error) {
	if _, err := requireParticipant(ctx, s.participants, conversationID, userID); err != nil {
		return nil, err
	}

	pinned, err := s.pins.ListByConversation(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, common.Internalf(err, "failed to list pinned messages")
	}
	return pinned, nil
}

func (s *pinService) memberMessage(ctx context.Context, messageID string, userID uint64) (*dbmysql.Message, error) {
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
	return msg, nil
}
