package dbmysql

import (
	"time"

	"eduverse/internal/common"
)

// Conversation is never hard-deleted; a group with no members left is
// flipped to inactive instead.
type Conversation struct {
	ID          string                  `gorm:"primaryKey;size:36" json:"id"`
	Type        common.ConversationType `gorm:"column:type;type:enum('direct','group');not null;index" json:"type"`
	Title       *string                 `gorm:"column:title;size:100" json:"title,omitempty"`
	Description *string                 `gorm:"column:description;type:text" json:"description,omitempty"`
	IsActive    bool                    `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedBy   uint64                  `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Participant links a user to a conversation. HiddenAt is the DIRECT
// soft-leave marker and clears on unhide; LeftAt keeps the hide point
// permanently and bounds the visible message window after a re-entry.
type Participant struct {
	ID             uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID string      `gorm:"column:conversation_id;size:36;not null;index:idx_conversation_user,unique" json:"conversation_id"`
	UserID         uint64      `gorm:"column:user_id;not null;index:idx_conversation_user,unique" json:"user_id"`
	Role           common.Role `gorm:"column:role;type:enum('member','moderator');default:'member'" json:"role"`
	JoinedAt       time.Time   `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
	HiddenAt       *time.Time  `gorm:"column:hidden_at" json:"hidden_at,omitempty"`
	LeftAt         *time.Time  `gorm:"column:left_at" json:"left_at,omitempty"`
}
