package dbmysql

import (
	"encoding/json"
	"time"

	"eduverse/internal/common"
)

// Message rows are immutable except for the edit/delete markers.
// Attachment blobs live in the external media store; only their metadata
// is kept here, JSON-encoded.
type Message struct {
	ID               string             `gorm:"primaryKey;size:36" json:"id"`
	ConversationID   string             `gorm:"column:conversation_id;size:36;not null;index" json:"conversation_id"`
	SenderID         uint64             `gorm:"column:sender_id;not null;index" json:"sender_id"`
	Content          string             `gorm:"column:content;type:text;not null" json:"content"`
	MessageType      common.MessageType `gorm:"column:message_type;type:enum('text','image','file','system');default:'text'" json:"message_type"`
	Attachments      *string            `gorm:"column:attachments;type:json" json:"-"`
	ReplyToMessageID *string            `gorm:"column:reply_to_message_id;size:36" json:"reply_to_message_id,omitempty"`
	EditedAt         *time.Time         `gorm:"column:edited_at" json:"edited_at,omitempty"`
	DeletedAt        *time.Time         `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
	DeletedBy        *uint64            `gorm:"column:deleted_by" json:"deleted_by,omitempty"`
	SentAt           time.Time          `gorm:"column:sent_at;not null;index" json:"sent_at"`
}

// Attachment is the metadata snapshot of a file held by the media store
type Attachment struct {
	FileID   string `json:"file_id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// SetAttachments encodes the attachment metadata onto the row
func (m *Message) SetAttachments(attachments []Attachment) error {
	if len(attachments) == 0 {
		m.Attachments = nil
		return nil
	}
	raw, err := json.Marshal(attachments)
	if err != nil {
		return err
	}
	encoded := string(raw)
	m.Attachments = &encoded
	return nil
}

// AttachmentList decodes the attachment metadata; nil when there is none
func (m *Message) AttachmentList() ([]Attachment, error) {
	if m.Attachments == nil {
		return nil, nil
	}
	var attachments []Attachment
	if err := json.Unmarshal([]byte(*m.Attachments), &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// MessageRead is the per-user read receipt; one row per (message, user)
type MessageRead struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID string    `gorm:"column:message_id;size:36;not null;index:idx_message_reader,unique" json:"message_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_message_reader,unique" json:"user_id"`
	ReadAt    time.Time `gorm:"column:read_at;not null" json:"read_at"`
}

// MessageReaction is a per-user emoji annotation; the (message, user,
// emoji) tuple is unique so re-applying the same emoji is a no-op.
type MessageReaction struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID string    `gorm:"column:message_id;size:36;not null;index:idx_message_user_emoji,unique" json:"message_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_message_user_emoji,unique" json:"user_id"`
	Emoji     string    `gorm:"column:emoji;size:32;not null;index:idx_message_user_emoji,unique" json:"emoji"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// MessagePin is the singleton pin per message; the unique index makes the
// first successful pin win.
type MessagePin struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID      string    `gorm:"column:message_id;size:36;not null;uniqueIndex" json:"message_id"`
	ConversationID string    `gorm:"column:conversation_id;size:36;not null;index" json:"conversation_id"`
	PinnedBy       uint64    `gorm:"column:pinned_by;not null" json:"pinned_by"`
	PinnedAt       time.Time `gorm:"column:pinned_at;autoCreateTime" json:"pinned_at"`
}
