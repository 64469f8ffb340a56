package entity

import "time"

// Message is append-only: rows are never mutated or deleted once persisted.
// Sender is a display tag, not a foreign key; visitors are anonymous.
type Message struct {
	Id        string    `gorm:"column:id;primaryKey;type:char(24)"`
	RoomId    string    `gorm:"column:room_id;index;type:varchar(64);not null"`
	TeamId    string    `gorm:"column:team_id;index;type:varchar(64);not null"`
	Content   string    `gorm:"column:content;type:text;not null"`
	Sender    string    `gorm:"column:sender;type:varchar(120);not null"`
	CreatedAt time.Time `gorm:"column:created_at;index;not null"`
}

func (Message) TableName() string {
	return "message"
}
