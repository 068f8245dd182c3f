package dbmysql

import (
	"time"
)

// User rows are owned by the identity service; this engine only reads
// them to validate invite targets and direct-message peers.
type User struct {
	UserID    uint64    `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Handle    string    `gorm:"column:handle;uniqueIndex;size:50;not null" json:"handle"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	IsTeacher bool      `gorm:"column:is_teacher;default:false" json:"is_teacher"`
	Status    string    `gorm:"column:status;type:enum('active','banned','deleted');default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Follow is the learner-follows-teacher edge maintained by the social
// service, consumed here as a precondition for direct conversations.
type Follow struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_teacher,unique" json:"user_id"`
	TeacherID uint64    `gorm:"column:teacher_id;not null;index:idx_user_teacher,unique" json:"teacher_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
