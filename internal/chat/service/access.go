package service

import (
	"context"
	"errors"

	"eduverse/internal/chat/repository"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"gorm.io/gorm"
)

// requireParticipant resolves the caller's membership row or fails with
// Forbidden. Hidden participants still pass: they remain members.
func requireParticipant(ctx context.Context, participants repository.ParticipantRepository, conversationID string, userID uint64) (*dbmysql.Participant, error) {
	p, err := participants.Find(ctx, conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.Forbiddenf("user %d is not a participant of conversation %s", userID, conversationID)
		}
		return nil, common.Internalf(err, "failed to load participant")
	}
	return p, nil
}

// requireModerator additionally checks the moderator capability
func requireModerator(ctx context.Context, participants repository.ParticipantRepository, conversationID string, userID uint64) (*dbmysql.Participant, error) {
	p, err := requireParticipant(ctx, participants, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !p.Role.CanModerate() {
		return nil, common.Forbiddenf("user %d is not a moderator of conversation %s", userID, conversationID)
	}
	return p, nil
}
