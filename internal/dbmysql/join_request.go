package dbmysql

import (
	"time"

	"eduverse/internal/common"
)

// JoinRequest is a pending invitation awaiting moderator approval. At most
// one pending row may exist per (conversation, invited user); the invite
// path checks and inserts under a conversation row lock to keep it that way.
type JoinRequest struct {
	ID             string                   `gorm:"primaryKey;size:36" json:"id"`
	ConversationID string                   `gorm:"column:conversation_id;size:36;not null;index:idx_conversation_invited" json:"conversation_id"`
	RequesterID    uint64                   `gorm:"column:requester_id;not null" json:"requester_id"`
	InvitedUserID  uint64                   `gorm:"column:invited_user_id;not null;index:idx_conversation_invited" json:"invited_user_id"`
	Status         common.JoinRequestStatus `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending';index" json:"status"`
	CreatedAt      time.Time                `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time                `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
