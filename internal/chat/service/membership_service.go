package service

import (
	"context"
	"errors"
	"time"

	"eduverse/internal/chat/repository"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"
	"eduverse/internal/user"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// InviteResult reports how an invite was settled: a moderator invite
// creates the participant directly, a member invite parks a pending
// join request.
type InviteResult struct {
	Approved    bool                 `json:"approved"`
	Participant *dbmysql.Participant `json:"participant,omitempty"`
	Request     *dbmysql.JoinRequest `json:"request,omitempty"`
}

// LeaveResult distinguishes the direct soft-leave from the group hard
// leave.
type LeaveResult struct {
	Hidden      bool  `json:"hidden"`
	Remaining   int64 `json:"remaining"`
	Deactivated bool  `json:"deactivated"`
}

// MembershipService owns participants, roles and the invite/approval
// workflow.
type MembershipService interface {
	CreateConversation(ctx context.Context, creatorID uint64, convType common.ConversationType, participantIDs []uint64, title, description string) (*dbmysql.Conversation, error)
	CreateOrGetDirect(ctx context.Context, userID, peerID uint64) (*dbmysql.Conversation, error)
	InviteMember(ctx context.Context, conversationID string, inviterID, targetUserID uint64) (*InviteResult, error)
	ApproveJoinRequest(ctx context.Context, requestID string, moderatorID uint64, approve bool) (*dbmysql.JoinRequest, error)
	KickMember(ctx context.Context, conversationID string, moderatorID, targetUserID uint64) error
	LeaveConversation(ctx context.Context, conversationID string, userID uint64) (*LeaveResult, error)
	UnhideParticipant(ctx context.Context, conversationID string, userID uint64) error
	ListMembers(ctx context.Context, conversationID string, userID uint64, limit, offset int) ([]*dbmysql.Participant, error)
	ListPendingMembers(ctx context.Context, conversationID string, moderatorID uint64, limit, offset int) ([]*dbmysql.JoinRequest, error)
	ListConversations(ctx context.Context, userID uint64, limit, offset int) ([]*dbmysql.Conversation, error)
}

type membershipService struct {
	conversations repository.ConversationRepository
	participants  repository.ParticipantRepository
	joinRequests  repository.JoinRequestRepository
	users         user.UserRepository
	follows       user.FollowRepository
}

func NewMembershipService(
	conversations repository.ConversationRepository,
	participants repository.ParticipantRepository,
	joinRequests repository.JoinRequestRepository,
	users user.UserRepository,
	follows user.FollowRepository,
) MembershipService {
	return &membershipService{
		conversations: conversations,
		participants:  participants,
		joinRequests:  joinRequests,
		users:         users,
		follows:       follows,
	}
}

func (s *membershipService) CreateConversation(ctx context.Context, creatorID uint64, convType common.ConversationType, participantIDs []uint64, title, description string) (*dbmysql.Conversation, error) {
	if !convType.IsValid() {
		return nil, common.InvalidArgumentf("unknown conversation type %q", convType)
	}

	memberIDs := lo.Uniq(append(participantIDs, creatorID))
	if convType == common.ConversationDirect && len(memberIDs) != 2 {
		return nil, common.InvalidArgumentf("direct conversations need exactly two distinct participants")
	}

	ok, err := s.users.AllExist(ctx, memberIDs)
	if err != nil {
		return nil, common.Internalf(err, "failed to verify participants")
	}
	if !ok {
		return nil, common.InvalidArgumentf("one or more participants do not exist")
	}

	conv := &dbmysql.Conversation{
		ID:        uuid.NewString(),
		Type:      convType,
		IsActive:  true,
		CreatedBy: creatorID,
	}
	if title != "" {
		conv.Title = &title
	}
	if description != "" {
		conv.Description = &description
	}

	participants := make([]*dbmysql.Participant, 0, len(memberIDs))
	for _, id := range memberIDs {
		role := common.RoleMember
		if id == creatorID {
			role = common.RoleModerator
		}
		participants = append(participants, &dbmysql.Participant{
			UserID: id,
			Role:   role,
		})
	}

	if err := s.conversations.CreateWithParticipants(ctx, conv, participants); err != nil {
		return nil, common.Internalf(err, "failed to create conversation")
	}
	return conv, nil
}

// CreateOrGetDirect is idempotent per user pair: the existing direct
// conversation is returned when one exists. When one side is a teacher,
// the other must follow them first.
func (s *membershipService) CreateOrGetDirect(ctx context.Context, userID, peerID uint64) (*dbmysql.Conversation, error) {
	if userID == peerID {
		return nil, common.InvalidArgumentf("cannot start a direct conversation with yourself")
	}

	peer, err := s.users.ByID(ctx, peerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.InvalidArgumentf("user %d does not exist", peerID)
		}
		return nil, common.Internalf(err, "failed to load user")
	}

	existing, err := s.conversations.DirectBetween(ctx, userID, peerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.Internalf(err, "failed to look up direct conversation")
	}

	if err := s.checkFollowGate(ctx, userID, peer); err != nil {
		return nil, err
	}

	conv := &dbmysql.Conversation{
		ID:        uuid.NewString(),
		Type:      common.ConversationDirect,
		IsActive:  true,
		CreatedBy: userID,
	}
	participants := []*dbmysql.Participant{
		{UserID: userID, Role: common.RoleMember},
		{UserID: peerID, Role: common.RoleMember},
	}
	if err := s.conversations.CreateWithParticipants(ctx, conv, participants); err != nil {
		return nil, common.Internalf(err, "failed to create direct conversation")
	}
	return conv, nil
}

// checkFollowGate requires an established follow edge before a learner
// and a teacher may open a direct conversation, in either direction.
func (s *membershipService) checkFollowGate(ctx context.Context, callerID uint64, peer *dbmysql.User) error {
	if !peer.IsTeacher {
		return nil
	}
	follows, err := s.follows.UserFollowsTeacher(ctx, callerID, peer.UserID)
	if err != nil {
		return common.Internalf(err, "failed to check follow relationship")
	}
	if !follows {
		return common.Forbiddenf("user %d does not follow teacher %d", callerID, peer.UserID)
	}
	return nil
}

func (s *membershipService) InviteMember(ctx context.Context, conversationID string, inviterID, targetUserID uint64) (*InviteResult, error) {
	if inviterID == targetUserID {
		return nil, common.InvalidArgumentf("cannot invite yourself")
	}

	inviter, err := requireParticipant(ctx, s.participants, conversationID, inviterID)
	if err != nil {
		return nil, err
	}

	conv, err := s.conversations.ByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("conversation %s not found", conversationID)
		}
		return nil, common.Internalf(err, "failed to load conversation")
	}
	if conv.Type == common.ConversationDirect {
		return nil, common.InvalidArgumentf("direct conversations cannot gain participants")
	}

	exists, err := s.users.Exists(ctx, targetUserID)
	if err != nil {
		return nil, common.Internalf(err, "failed to verify invite target")
	}
	if !exists {
		return nil, common.InvalidArgumentf("user %d does not exist", targetUserID)
	}

	if _, err := s.participants.Find(ctx, conversationID, targetUserID); err == nil {
		return nil, common.InvalidArgumentf("user %d is already a member", targetUserID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.Internalf(err, "failed to check membership")
	}

	// Moderators admit directly; the unique membership key absorbs a
	// repeated identical invite.
	if inviter.Role.CanModerate() {
		p := &dbmysql.Participant{
			ConversationID: conversationID,
			UserID:         targetUserID,
			Role:           common.RoleMember,
		}
		if err := s.participants.CreateIfAbsent(ctx, p); err != nil {
			return nil, common.Internalf(err, "failed to add participant")
		}
		return &InviteResult{Approved: true, Participant: p}, nil
	}

	// A member's invite becomes a pending request. The repository checks
	// for an existing pending row and inserts in one transaction, so a
	// re-invite (concurrent or not) returns the existing request instead
	// of creating a second pending row for the same target.
	req := &dbmysql.JoinRequest{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		RequesterID:    inviterID,
		InvitedUserID:  targetUserID,
		Status:         common.JoinRequestPending,
	}
	current, _, err := s.joinRequests.CreatePending(ctx, req)
	if err != nil {
		return nil, common.Internalf(err, "failed to create join request")
	}
	return &InviteResult{Approved: false, Request: current}, nil
}

func (s *membershipService) ApproveJoinRequest(ctx context.Context, requestID string, moderatorID uint64, approve bool) (*dbmysql.JoinRequest, error) {
	req, err := s.joinRequests.ByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("join request %s not found", requestID)
		}
		return nil, common.Internalf(err, "failed to load join request")
	}

	if _, err := requireModerator(ctx, s.participants, req.ConversationID, moderatorID); err != nil {
		return nil, err
	}

	if req.Status != common.JoinRequestPending {
		return nil, common.Conflictf("join request %s already resolved", requestID)
	}

	status := common.JoinRequestRejected
	var participant *dbmysql.Participant
	if approve {
		status = common.JoinRequestApproved
		participant = &dbmysql.Participant{
			ConversationID: req.ConversationID,
			UserID:         req.InvitedUserID,
			Role:           common.RoleMember,
		}
	}

	// The status swap and the participant insert share one transaction;
	// only the call that wins the swap creates the row.
	won, err := s.joinRequests.Resolve(ctx, requestID, status, participant)
	if err != nil {
		return nil, common.Internalf(err, "failed to resolve join request")
	}
	if !won {
		return nil, common.Conflictf("join request %s already resolved", requestID)
	}

	req.Status = status
	return req, nil
}

func (s *membershipService) KickMember(ctx context.Context, conversationID string, moderatorID, targetUserID uint64) error {
	if moderatorID == targetUserID {
		return common.InvalidArgumentf("cannot kick yourself, leave instead")
	}

	if _, err := requireModerator(ctx, s.participants, conversationID, moderatorID); err != nil {
		return err
	}

	if err := s.participants.Remove(ctx, conversationID, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFoundf("user %d is not a participant of conversation %s", targetUserID, conversationID)
		}
		return common.Internalf(err, "failed to remove participant")
	}
	return nil
}

// LeaveConversation hides direct conversations and hard-leaves groups.
// The group path deletes, recounts and possibly deactivates inside a
// single transaction so the last-leaver deactivation fires exactly once.
func (s *membershipService) LeaveConversation(ctx context.Context, conversationID string, userID uint64) (*LeaveResult, error) {
	conv, err := s.conversations.ByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFoundf("conversation %s not found", conversationID)
		}
		return nil, common.Internalf(err, "failed to load conversation")
	}

	if _, err := requireParticipant(ctx, s.participants, conversationID, userID); err != nil {
		return nil, err
	}

	if conv.Type == common.ConversationDirect {
		if err := s.participants.Hide(ctx, conversationID, userID, time.Now().UTC()); err != nil {
			return nil, common.Internalf(err, "failed to hide participant")
		}
		return &LeaveResult{Hidden: true}, nil
	}

	remaining, deactivated, err := s.participants.LeaveGroup(ctx, conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.Forbiddenf("user %d is not a participant of conversation %s", userID, conversationID)
		}
		return nil, common.Internalf(err, "failed to leave conversation")
	}
	return &LeaveResult{Hidden: false, Remaining: remaining, Deactivated: deactivated}, nil
}

func (s *membershipService) UnhideParticipant(ctx context.Context, conversationID string, userID uint64) error {
	if _, err := requireParticipant(ctx, s.participants, conversationID, userID); err != nil {
		return err
	}
	if err := s.participants.Unhide(ctx, conversationID, userID); err != nil {
		return common.Internalf(err, "failed to unhide participant")
	}
	return nil
}

func (s *membershipService) ListMembers(ctx context.Context, conversationID string, userID uint64, limit, offset int) ([]*dbmysql.Participant, error) {
	if _, err := requireParticipant(ctx, s.participants, conversationID, userID); err != nil {
		return nil, err
	}
	members, err := s.participants.List(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, common.Internalf(err, "failed to list members")
	}
	return members, nil
}

func (s *membershipService) ListPendingMembers(ctx context.Context, conversationID string, moderatorID uint64, limit, offset int) ([]*dbmysql.JoinRequest, error) {
	if _, err := requireModerator(ctx, s.participants, conversationID, moderatorID); err != nil {
		return nil, err
	}
	pending, err := s.joinRequests.ListPending(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, common.Internalf(err, "failed to list pending members")
	}
	return pending, nil
}

func (s *membershipService) ListConversations(ctx context.Context, userID uint64, limit, offset int) ([]*dbmysql.Conversation, error) {
	conversations, err := s.conversations.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, common.Internalf(err, "failed to list conversations")
	}
	return conversations, nil
}
