package common

// Role is a participant's role inside a conversation
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleModerator
}

// CanModerate reports whether the role may approve join requests,
// auto-approve invites and kick members.
func (r Role) CanModerate() bool {
	return r == RoleModerator
}

// ConversationType distinguishes pairwise and group conversations
type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

func (ct ConversationType) String() string {
	return string(ct)
}

func (ct ConversationType) IsValid() bool {
	return ct == ConversationDirect || ct == ConversationGroup
}

// JoinRequestStatus tracks the invite approval workflow
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

func (s JoinRequestStatus) String() string {
	return string(s)
}

// MessageType classifies message content
type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeImage  MessageType = "image"
	MessageTypeFile   MessageType = "file"
	MessageTypeSystem MessageType = "system"
)

func (mt MessageType) String() string {
	return string(mt)
}

func (mt MessageType) IsValid() bool {
	switch mt {
	case MessageTypeText, MessageTypeImage, MessageTypeFile, MessageTypeSystem:
		return true
	}
	return false
}
