package service

import (
	"context"
	"errors"
	"time"

	"eduverse/internal/chat/repository"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageService is the append-only message log plus its read paths
type MessageService interface {
	SendMessage(ctx context.Context, conversationID string, senderID uint64, content string, messageType common.MessageType, replyToMessageID *string, attachments []dbmysql.Attachment) (*dbmysql.Message, error)
	ListMessages(ctx context.Context, conversationID string, userID uint64, limit, offset int) ([]*dbmysql.Message, error)
	SearchMessages(ctx context.Context, conversationID string, userID uint64, filter repository.SearchFilter, limit, offset int) ([]*dbmysql.Message, error)
	EditMessage(ctx context.Context, messageID string, userID uint64, content string) (*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, messageID string, userID uint64) error
}

type messageService struct {
	messages      repository.MessageRepository
	participants  repository.ParticipantRepository
	conversations repository.ConversationRepository
}

func NewMessageService(
	messages repository.MessageRepository,
	participants repository.ParticipantRepository,
	conversations repository.ConversationRepository,
) MessageService {
	return &messageService{
		messages:      messages,
		participants:  participants,
		conversations: conversations,
	}
}

// SendMessage appends an immutable row. Hidden participants may send; a
// new message in a direct conversation unhides everyone in it.
func (s *messageService) SendMessage(ctx context.Context, conversationID string, senderID uint64, content string, messageType common.MessageType, replyToMessageID *string, attachments []dbmysql.Attachment) (*dbmysql.Message, error) {
	if content == "" {
		return nil, common.InvalidArgumentf("message content cannot be empty")
	}
	if messageType == "" {
		messageType = common.MessageTypeText
	}
	if !messageType.IsValid() {
		return nil, common.InvalidArgumentf("unknown message type %q", messageType)
	}

	if _, err := requireParticipant(ctx, s.participants, conversationID, senderID); err != nil {
		return nil, err
	}

	conv, err := s.conversations.ByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("conversation %s not found", conversationID)
		}
		return nil, common.Internalf(err, "failed to load conversation")
	}

	if replyToMessageID != nil {
		parent, err := s.messages.ByID(ctx, *replyToMessageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.InvalidArgumentf("reply target %s not found", *replyToMessageID)
			}
			return nil, common.Internalf(err, "failed to load reply target")
		}
		if parent.ConversationID != conversationID {
			return nil, common.InvalidArgumentf("reply target belongs to another conversation")
		}
	}

	now := time.Now().UTC()
	msg := &dbmysql.Message{
		ID:               uuid.NewString(),
		ConversationID:   conversationID,
		SenderID:         senderID,
		Content:          content,
		MessageType:      messageType,
		ReplyToMessageID: replyToMessageID,
		SentAt:           now,
	}
	if err := msg.SetAttachments(attachments); err != nil {
		return nil, common.InvalidArgumentf("invalid attachment metadata")
	}

	// Insert, activity bump and the direct-conversation unhide land in
	// one transaction; either the message is fully visible or nothing is.
	if err := s.messages.Append(ctx, msg, conv.Type == common.ConversationDirect); err != nil {
		return nil, common.Internalf(err, "failed to save message")
	}

	return msg, nil
}

// ListMessages returns the visible window newest first. A direct
// participant who hid the conversation only sees messages sent at or
// after their hide point; the boundary is the retained left_at, so it
// survives the auto-unhide a new message triggers.
func (s *messageService) ListMessages(ctx context.Context, conversationID string, userID uint64, limit, offset int) ([]*dbmysql.Message, error) {
	p, err := requireParticipant(ctx, s.participants, conversationID, userID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListByConversation(ctx, conversationID, p.LeftAt, limit, offset)
	if err != nil {
		return nil, common.Internalf(err, "failed to list messages")
	}
	return messages, nil
}

func (s *messageService) SearchMessages(ctx context.Context, conversationID string, userID uint64, filter repository.SearchFilter, limit, offset int) ([]*dbmysql.Message, error) {
	if _, err := requireParticipant(ctx, s.participants, conversationID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messages.Search(ctx, conversationID, filter, limit, offset)
	if err != nil {
		return nil, common.Internalf(err, "failed to search messages")
	}
	return messages, nil
}

func (s *messageService) EditMessage(ctx context.Context, messageID string, userID uint64, content string) (*dbmysql.Message, error) {
	if content == "" {
		return nil, common.InvalidArgumentf("message content cannot be empty")
	}

	msg, err := s.resolveMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != userID {
		return nil, common.Forbiddenf("only the sender may edit a message")
	}

	now := time.Now().UTC()
	if err := s.messages.SetEdited(ctx, messageID, content, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("message %s not found", messageID)
		}
		return nil, common.Internalf(err, "failed to edit message")
	}
	msg.Content = content
	msg.EditedAt = &now
	return msg, nil
}

// DeleteMessage soft-deletes; the row stays for audit but vanishes from
// every read path. The sender or a conversation moderator may delete.
func (s *messageService) DeleteMessage(ctx context.Context, messageID string, userID uint64) error {
	msg, err := s.resolveMessage(ctx, messageID)
	if err != nil {
		return err
	}

	if msg.SenderID != userID {
		caller, err := requireParticipant(ctx, s.participants, msg.ConversationID, userID)
		if err != nil {
			return err
		}
		if !caller.Role.CanModerate() {
			return common.Forbiddenf("only the sender or a moderator may delete a message")
		}
	}

	if err := s.messages.SetDeleted(ctx, messageID, userID, time.Now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFoundf("message %s not found", messageID)
		}
		return common.Internalf(err, "failed to delete message")
	}
	return nil
}

func (s *messageService) resolveMessage(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	msg, err := s.messages.ByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("message %s not found", messageID)
		}
		return nil, common.Internalf(err, "failed to load message")
	}
	return msg, nil
}
