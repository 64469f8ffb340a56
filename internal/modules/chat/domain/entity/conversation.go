package entity

import (
	"database/sql"
	"time"
)

// Conversation status values. Validated in the service layer.
const (
	StatusOpen     = "OPEN"
	StatusPending  = "PENDING"
	StatusResolved = "RESOLVED"
)

// Conversation is the per-room aggregate, one row per visitor session within a
// tenant. Created implicitly by the first message to an unseen room.
type Conversation struct {
	Id     string `gorm:"column:id;primaryKey;type:char(24)"`
	RoomId string `gorm:"column:room_id;uniqueIndex;type:varchar(64);not null"`
	TeamId string `gorm:"column:team_id;index;type:varchar(64);not null"`

	// Denormalized display fields, written only by the ingest pipeline.
	LastSender    string       `gorm:"column:last_sender;type:varchar(120)"`
	LastPreview   string       `gorm:"column:last_preview;type:varchar(120)"`
	LastMessageAt sql.NullTime `gorm:"column:last_message_at;index"`

	// Read state. Incremented by the pipeline, zeroed only by mark-read.
	UnreadCount       int            `gorm:"column:unread_count;not null;default:0"`
	LastAgentReadAt   sql.NullTime   `gorm:"column:last_agent_read_at"`
	LastReadByAgentId sql.NullString `gorm:"column:last_read_by_agent_id;type:varchar(64)"`

	// Workflow fields, written by agent actions.
	InboxId    sql.NullString `gorm:"column:inbox_id;index;type:char(24)"`
	Status     string         `gorm:"column:status;type:varchar(16);not null;default:OPEN"`
	AssigneeId sql.NullString `gorm:"column:assignee_id;type:varchar(64)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (Conversation) TableName() string {
	return "conversation"
}
