package service

import (
	"context"
	"errors"
	"testing"

	"eduverse/internal/chat/service/mocks"
	"eduverse/internal/common"
	"eduverse/internal/dbmysql"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type membershipFixture struct {
	conversations *mocks.MockConversationRepository
	participants  *mocks.MockParticipantRepository
	joinRequests  *mocks.MockJoinRequestRepository
	users         *mocks.MockUserRepository
	follows       *mocks.MockFollowRepository
	svc           MembershipService
}

func newMembershipFixture(t *testing.T) *membershipFixture {
	ctrl := gomock.NewController(t)
	f := &membershipFixture{
		conversations: mocks.NewMockConversationRepository(ctrl),
		participants:  mocks.NewMockParticipantRepository(ctrl),
		joinRequests:  mocks.NewMockJoinRequestRepository(ctrl),
		users:         mocks.NewMockUserRepository(ctrl),
		follows:       mocks.NewMockFollowRepository(ctrl),
	}
	f.svc = NewMembershipService(f.conversations, f.participants, f.joinRequests, f.users, f.follows)
	return f
}

func TestMembershipService_CreateConversation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		convType     common.ConversationType
		participants []uint64
		setup        func(f *membershipFixture)
		wantKind     common.Kind
	}{
		{
			name:         "group success",
			convType:     common.ConversationGroup,
			participants: []uint64{2, 3},
			setup: func(f *membershipFixture) {
				f.users.EXPECT().AllExist(ctx, gomock.Any()).Return(true, nil)
				f.conversations.EXPECT().CreateWithParticipants(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, conv *dbmysql.Conversation, ps []*dbmysql.Participant) error {
						require.Len(t, ps, 3)
						for _, p := range ps {
							if p.UserID == 1 {
								require.Equal(t, common.RoleModerator, p.Role)
							} else {
								require.Equal(t, common.RoleMember, p.Role)
							}
						}
						return nil
					})
			},
		},
		{
			name:         "duplicate participant ids collapse",
			convType:     common.ConversationGroup,
			participants: []uint64{2, 2, 1},
			setup: func(f *membershipFixture) {
				f.users.EXPECT().AllExist(ctx, gomock.Any()).Return(true, nil)
				f.conversations.EXPECT().CreateWithParticipants(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, conv *dbmysql.Conversation, ps []*dbmysql.Participant) error {
						require.Len(t, ps, 2)
						return nil
					})
			},
		},
		{
			name:         "direct needs exactly two",
			convType:     common.ConversationDirect,
			participants: []uint64{2, 3},
			setup:        func(f *membershipFixture) {},
			wantKind:     common.KindInvalidArgument,
		},
		{
			name:         "unknown type",
			convType:     common.ConversationType("broadcast"),
			participants: []uint64{2},
			setup:        func(f *membershipFixture) {},
			wantKind:     common.KindInvalidArgument,
		},
		{
			name:         "missing participant",
			convType:     common.ConversationGroup,
			participants: []uint64{2, 99},
			setup: func(f *membershipFixture) {
				f.users.EXPECT().AllExist(ctx, gomock.Any()).Return(false, nil)
			},
			wantKind: common.KindInvalidArgument,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newMembershipFixture(t)
			tc.setup(f)

			conv, err := f.svc.CreateConversation(ctx, 1, tc.convType, tc.participants, "study group", "")
			if tc.wantKind != "" {
				require.Error(t, err)
				require.Equal(t, tc.wantKind, common.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, conv.ID)
			require.Equal(t, uint64(1), conv.CreatedBy)
			require.True(t, conv.IsActive)
		})
	}
}

func TestMembershipService_CreateOrGetDirect_ReturnsExisting(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(t)

	existing := &dbmysql.Conversation{ID: "conv-1", Type: common.ConversationDirect}
	f.users.EXPECT().ByID(ctx, uint64(2)).Return(&dbmysql.User{UserID: 2}, nil).Times(2)
	f.conversations.EXPECT().DirectBetween(ctx, uint64(1), uint64(2)).Return(existing, nil).Times(2)

	// Calling twice yields the same conversation and never creates a second one.
	first, err := f.svc.CreateOrGetDirect(ctx, 1, 2)
	require.NoError(t, err)
	second, err := f.svc.CreateOrGetDirect(ctx, 1, 2)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestMembershipService_CreateOrGetDirect_CreatesWhenAbsent(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(t)

	f.users.EXPECT().ByID(ctx, uint64(2)).Return(&dbmysql.User{UserID: 2}, nil)
	f.conversations.EXPECT().DirectBetween(ctx, uint64(1), uint64(2)).Return(nil, gorm.ErrRecordNotFound)
	f.conversations.EXPECT().CreateWithParticipants(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, conv *dbmysql.Conversation, ps []*dbmysql.Participant) error {
			require.Equal(t, common.ConversationDirect, conv.Type)
			require.Len(t, ps, 2)
			require.Equal(t, common.RoleMember, ps[0].Role)
			require.Equal(t, common.RoleMember, ps[1].Role)
			return nil
		})

	conv, err := f.svc.CreateOrGetDirect(ctx, 1, 2)
	require.NoError(t, err)
	require.NotEmpty(t, conv.ID)
}

func TestMembershipService_CreateOrGetDirect_FollowGate(t *testing.T) {
	ctx := context.Background()
	teacher := &dbmysql.User{UserID: 7, IsTeacher: true}

	t.Run("blocked without follow", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().ByID(ctx, uint64(7)).Return(teacher, nil)
		f.conversations.EXPECT().DirectBetween(ctx, uint64(1), uint64(7)).Return(nil, gorm.ErrRecordNotFound)
		f.follows.EXPECT().UserFollowsTeacher(ctx, uint64(1), uint64(7)).Return(false, nil)

		_, err := f.svc.CreateOrGetDirect(ctx, 1, 7)
		require.True(t, common.IsForbidden(err))
	})

	t.Run("allowed with follow", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().ByID(ctx, uint64(7)).Return(teacher, nil)
		f.conversations.EXPECT().DirectBetween(ctx, uint64(1), uint64(7)).Return(nil, gorm.ErrRecordNotFound)
		f.follows.EXPECT().UserFollowsTeacher(ctx, uint64(1), uint64(7)).Return(true, nil)
		f.conversations.EXPECT().CreateWithParticipants(ctx, gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.CreateOrGetDirect(ctx, 1, 7)
		require.NoError(t, err)
	})

	t.Run("gate skipped for existing conversation", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().ByID(ctx, uint64(7)).Return(teacher, nil)
		f.conversations.EXPECT().DirectBetween(ctx, uint64(1), uint64(7)).
			Return(&dbmysql.Conversation{ID: "conv-7"}, nil)

		conv, err := f.svc.CreateOrGetDirect(ctx, 1, 7)
		require.NoError(t, err)
		require.Equal(t, "conv-7", conv.ID)
	})
}

func TestMembershipService_CreateOrGetDirect_Self(t *testing.T) {
	f := newMembershipFixture(t)
	_, err := f.svc.CreateOrGetDirect(context.Background(), 5, 5)
	require.True(t, common.IsInvalidArgument(err))
}

func TestMembershipService_InviteMember(t *testing.T) {
	ctx := context.Background()
	const convID = "conv-1"
	groupConv := &dbmysql.Conversation{ID: convID, Type: common.ConversationGroup}

	moderator := &dbmysql.Participant{ConversationID: convID, UserID: 1, Role: common.RoleModerator}
	member := &dbmysql.Participant{ConversationID: convID, UserID: 1, Role: common.RoleMember}

	t.Run("moderator admits directly", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)
		f.conversations.EXPECT().ByID(ctx, convID).Return(groupConv, nil)
		f.users.EXPECT().Exists(ctx, uint64(3)).Return(true, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(3)).Return(nil, gorm.ErrRecordNotFound)
		f.participants.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(nil)

		res, err := f.svc.InviteMember(ctx, convID, 1, 3)
		require.NoError(t, err)
		require.True(t, res.Approved)
		require.NotNil(t, res.Participant)
		require.Equal(t, common.RoleMember, res.Participant.Role)
		require.Nil(t, res.Request)
	})

	t.Run("member invite creates pending request", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(member, nil)
		f.conversations.EXPECT().ByID(ctx, convID).Return(groupConv, nil)
		f.users.EXPECT().Exists(ctx, uint64(3)).Return(true, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(3)).Return(nil, gorm.ErrRecordNotFound)
		f.joinRequests.EXPECT().CreatePending(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req *dbmysql.JoinRequest) (*dbmysql.JoinRequest, bool, error) {
				require.Equal(t, common.JoinRequestPending, req.Status)
				require.Equal(t, uint64(1), req.RequesterID)
				require.Equal(t, uint64(3), req.InvitedUserID)
				return req, true, nil
			})

		res, err := f.svc.InviteMember(ctx, convID, 1, 3)
		require.NoError(t, err)
		require.False(t, res.Approved)
		require.NotNil(t, res.Request)
	})

	t.Run("repeated member invite returns existing request", func(t *testing.T) {
		f := newMembershipFixture(t)
		pending := &dbmysql.JoinRequest{ID: "req-1", ConversationID: convID, InvitedUserID: 3, Status: common.JoinRequestPending}
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(member, nil)
		f.conversations.EXPECT().ByID(ctx, convID).Return(groupConv, nil)
		f.users.EXPECT().Exists(ctx, uint64(3)).Return(true, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(3)).Return(nil, gorm.ErrRecordNotFound)
		// The transactional check finds the earlier pending row and hands
		// it back instead of inserting a second one for the same target.
		f.joinRequests.EXPECT().CreatePending(ctx, gomock.Any()).Return(pending, false, nil)

		res, err := f.svc.InviteMember(ctx, convID, 1, 3)
		require.NoError(t, err)
		require.False(t, res.Approved)
		require.Equal(t, "req-1", res.Request.ID)
	})

	t.Run("target already member", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)
		f.conversations.EXPECT().ByID(ctx, convID).Return(groupConv, nil)
		f.users.EXPECT().Exists(ctx, uint64(3)).Return(true, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(3)).
			Return(&dbmysql.Participant{ConversationID: convID, UserID: 3}, nil)

		_, err := f.svc.InviteMember(ctx, convID, 1, 3)
		require.True(t, common.IsInvalidArgument(err))
	})

	t.Run("direct conversation rejects invites", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)
		f.conversations.EXPECT().ByID(ctx, convID).
			Return(&dbmysql.Conversation{ID: convID, Type: common.ConversationDirect}, nil)

		_, err := f.svc.InviteMember(ctx, convID, 1, 3)
		require.True(t, common.IsInvalidArgument(err))
	})

	t.Run("non-participant inviter forbidden", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.InviteMember(ctx, convID, 9, 3)
		require.True(t, common.IsForbidden(err))
	})

	t.Run("self invite", func(t *testing.T) {
		f := newMembershipFixture(t)
		_, err := f.svc.InviteMember(ctx, convID, 1, 1)
		require.True(t, common.IsInvalidArgument(err))
	})
}

func TestMembershipService_ApproveJoinRequest(t *testing.T) {
	ctx := context.Background()
	const convID = "conv-1"
	moderator := &dbmysql.Participant{ConversationID: convID, UserID: 1, Role: common.RoleModerator}

	pendingReq := func() *dbmysql.JoinRequest {
		return &dbmysql.JoinRequest{
			ID:             "req-1",
			ConversationID: convID,
			RequesterID:    2,
			InvitedUserID:  3,
			Status:         common.JoinRequestPending,
		}
	}

	t.Run("approve wins and inserts participant", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.joinRequests.EXPECT().ByID(ctx, "req-1").Return(pendingReq(), nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)
		f.joinRequests.EXPECT().Resolve(ctx, "req-1", common.JoinRequestApproved, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ common.JoinRequestStatus, p *dbmysql.Participant) (bool, error) {
				require.NotNil(t, p)
				require.Equal(t, uint64(3), p.UserID)
				require.Equal(t, common.RoleMember, p.Role)
				return true, nil
			})

		req, err := f.svc.ApproveJoinRequest(ctx, "req-1", 1, true)
		require.NoError(t, err)
		require.Equal(t, common.JoinRequestApproved, req.Status)
	})

	t.Run("reject skips participant insert", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.joinRequests.EXPECT().ByID(ctx, "req-1").Return(pendingReq(), nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)
		f.joinRequests.EXPECT().Resolve(ctx, "req-1", common.JoinRequestRejected, nil).Return(true, nil)

		req, err := f.svc.ApproveJoinRequest(ctx, "req-1", 1, false)
		require.NoError(t, err)
		require.Equal(t, common.JoinRequestRejected, req.Status)
	})

	t.Run("losing the resolve race conflicts", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.joinRequests.EXPECT().ByID(ctx, "req-1").Return(pendingReq(), nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)
		f.joinRequests.EXPECT().Resolve(ctx, "req-1", common.JoinRequestApproved, gomock.Any()).Return(false, nil)

		_, err := f.svc.ApproveJoinRequest(ctx, "req-1", 1, true)
		require.True(t, common.IsConflict(err))
	})

	t.Run("already resolved conflicts before the swap", func(t *testing.T) {
		f := newMembershipFixture(t)
		resolved := pendingReq()
		resolved.Status = common.JoinRequestApproved
		f.joinRequests.EXPECT().ByID(ctx, "req-1").Return(resolved, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).Return(moderator, nil)

		_, err := f.svc.ApproveJoinRequest(ctx, "req-1", 1, true)
		require.True(t, common.IsConflict(err))
	})

	t.Run("plain member cannot approve", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.joinRequests.EXPECT().ByID(ctx, "req-1").Return(pendingReq(), nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(5)).
			Return(&dbmysql.Participant{ConversationID: convID, UserID: 5, Role: common.RoleMember}, nil)

		_, err := f.svc.ApproveJoinRequest(ctx, "req-1", 5, true)
		require.True(t, common.IsForbidden(err))
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.joinRequests.EXPECT().ByID(ctx, "req-x").Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.ApproveJoinRequest(ctx, "req-x", 1, true)
		require.True(t, common.IsNotFound(err))
	})
}

func TestMembershipService_KickMember(t *testing.T) {
	ctx := context.Background()
	const convID = "conv-1"

	t.Run("moderator kicks member", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).
			Return(&dbmysql.Participant{UserID: 1, Role: common.RoleModerator}, nil)
		f.participants.EXPECT().Remove(ctx, convID, uint64(3)).Return(nil)

		require.NoError(t, f.svc.KickMember(ctx, convID, 1, 3))
	})

	t.Run("member cannot kick", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(2)).
			Return(&dbmysql.Participant{UserID: 2, Role: common.RoleMember}, nil)

		err := f.svc.KickMember(ctx, convID, 2, 3)
		require.True(t, common.IsForbidden(err))
	})

	t.Run("self kick", func(t *testing.T) {
		f := newMembershipFixture(t)
		err := f.svc.KickMember(ctx, convID, 1, 1)
		require.True(t, common.IsInvalidArgument(err))
	})

	t.Run("target not a member", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).
			Return(&dbmysql.Participant{UserID: 1, Role: common.RoleModerator}, nil)
		f.participants.EXPECT().Remove(ctx, convID, uint64(3)).Return(gorm.ErrRecordNotFound)

		err := f.svc.KickMember(ctx, convID, 1, 3)
		require.True(t, common.IsNotFound(err))
	})
}

func TestMembershipService_LeaveConversation(t *testing.T) {
	ctx := context.Background()
	const convID = "conv-1"

	t.Run("direct leave hides", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.conversations.EXPECT().ByID(ctx, convID).
			Return(&dbmysql.Conversation{ID: convID, Type: common.ConversationDirect}, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).
			Return(&dbmysql.Participant{UserID: 1, Role: common.RoleMember}, nil)
		f.participants.EXPECT().Hide(ctx, convID, uint64(1), gomock.Any()).Return(nil)

		res, err := f.svc.LeaveConversation(ctx, convID, 1)
		require.NoError(t, err)
		require.True(t, res.Hidden)
	})

	t.Run("group leave with remaining members", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.conversations.EXPECT().ByID(ctx, convID).
			Return(&dbmysql.Conversation{ID: convID, Type: common.ConversationGroup}, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).
			Return(&dbmysql.Participant{UserID: 1, Role: common.RoleMember}, nil)
		f.participants.EXPECT().LeaveGroup(ctx, convID, uint64(1)).Return(int64(2), false, nil)

		res, err := f.svc.LeaveConversation(ctx, convID, 1)
		require.NoError(t, err)
		require.False(t, res.Hidden)
		require.Equal(t, int64(2), res.Remaining)
		require.False(t, res.Deactivated)
	})

	t.Run("last leaver deactivates", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.conversations.EXPECT().ByID(ctx, convID).
			Return(&dbmysql.Conversation{ID: convID, Type: common.ConversationGroup}, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).
			Return(&dbmysql.Participant{UserID: 1, Role: common.RoleMember}, nil)
		f.participants.EXPECT().LeaveGroup(ctx, convID, uint64(1)).Return(int64(0), true, nil)

		res, err := f.svc.LeaveConversation(ctx, convID, 1)
		require.NoError(t, err)
		require.Equal(t, int64(0), res.Remaining)
		require.True(t, res.Deactivated)
	})

	t.Run("non-participant forbidden", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.conversations.EXPECT().ByID(ctx, convID).
			Return(&dbmysql.Conversation{ID: convID, Type: common.ConversationGroup}, nil)
		f.participants.EXPECT().Find(ctx, convID, uint64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.LeaveConversation(ctx, convID, 9)
		require.True(t, common.IsForbidden(err))
	})
}

func TestMembershipService_ListPendingMembers(t *testing.T) {
	ctx := context.Background()
	const convID = "conv-1"

	t.Run("moderator lists", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(1)).
			Return(&dbmysql.Participant{UserID: 1, Role: common.RoleModerator}, nil)
		f.joinRequests.EXPECT().ListPending(ctx, convID, 50, 0).
			Return([]*dbmysql.JoinRequest{{ID: "req-1"}}, nil)

		pending, err := f.svc.ListPendingMembers(ctx, convID, 1, 50, 0)
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("member forbidden", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.participants.EXPECT().Find(ctx, convID, uint64(2)).
			Return(&dbmysql.Participant{UserID: 2, Role: common.RoleMember}, nil)

		_, err := f.svc.ListPendingMembers(ctx, convID, 2, 50, 0)
		require.True(t, common.IsForbidden(err))
	})
}

func TestMembershipService_ListMembers_RequiresParticipant(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(t)
	f.participants.EXPECT().Find(ctx, "conv-1", uint64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.ListMembers(ctx, "conv-1", 9, 50, 0)
	require.True(t, common.IsForbidden(err))
}

func TestMembershipService_RepositoryFailuresSurfaceInternal(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(t)
	dbErr := errors.New("connection reset")
	f.users.EXPECT().AllExist(ctx, gomock.Any()).Return(false, dbErr)

	_, err := f.svc.CreateConversation(ctx, 1, common.ConversationGroup, []uint64{2}, "", "")
	require.Error(t, err)
	require.Equal(t, common.KindInternal, common.KindOf(err))
	require.ErrorIs(t, err, dbErr)
}
