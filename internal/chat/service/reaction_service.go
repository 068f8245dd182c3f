package service

import (
	"context"
	"errors"

	"eduverse/internal/chat/repository"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

// ReactionService tracks per-user emoji annotations on messages
type ReactionService interface {
	React(ctx context.Context, messageID string, userID uint64, emoji string) error
	Unreact(ctx context.Context, messageID string, userID uint64, emoji string) error
	ListReactions(ctx context.Context, messageID string, userID uint64) ([]*dbmysql.MessageReaction, error)
}

type reactionService struct {
	reactions    repository.ReactionRepository
	messages     repository.MessageRepository
	participants repository.ParticipantRepository
}

func NewReactionService(
	reactions repository.ReactionRepository,
	messages repository.MessageRepository,
	participants repository.ParticipantRepository,
) ReactionService {
	return &reactionService{
		reactions:    reactions,
		messages:     messages,
		participants: participants,
	}
}

// React upserts the (message, user, emoji) tuple; repeating an identical
// reaction succeeds without effect.
func (s *reactionService) React(ctx context.Context, messageID string, userID uint64, emoji string) error {
	if emoji == "" {
		return common.InvalidArgumentf("emoji cannot be empty")
	}

	msg, err := s.memberMessage(ctx, messageID, userID)
	if err != nil {
		return err
	}

	reaction := &dbmysql.MessageReaction{
		MessageID: msg.ID,
		UserID:    userID,
		Emoji:     emoji,
	}
	if err := s.reactions.Add(ctx, reaction); err != nil {
		return common.Internalf(err, "failed to add reaction")
	}
	return nil
}

// Unreact removes the tuple when present; removing an absent reaction is
// a no-op success.
func (s *reactionService) Unreact(ctx context.Context, messageID string, userID uint64, emoji string) error {
	msg, err := s.memberMessage(ctx, messageID, userID)
	if err != nil {
		return err
	}

	if err := s.reactions.Remove(ctx, msg.ID, userID, emoji); err != nil {
		return common.Internalf(err, "failed to remove reaction")
	}
	return nil
}

func (s *reactionService) ListReactions(ctx context.Context, messageID string, userID uint64) ([]*dbmysql.MessageReaction, error) {
	msg, err := s.memberMessage(ctx, messageID, userID)
	if err != nil {
		return nil, err
	}

	reactions, err := s.reactions.ListByMessage(ctx, msg.ID)
	if err != nil {
		return nil, common.Internalf(err, "failed to list reactions")
	}
	return reactions, nil
}

// memberMessage resolves the message and re-verifies membership against
// its conversation before any mutation.
func (s *reactionService) memberMessage(ctx context.Context, messageID string, userID uint64) (*dbmysql.Message, error) {
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
