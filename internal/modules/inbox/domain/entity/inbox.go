package entity

import "time"

// Inbox groups conversations inside a team's dashboard. Deleting one never
// deletes its conversations, they are detached instead.
type Inbox struct {
	Id        string    `gorm:"column:id;primaryKey;type:char(36)"`
	TeamId    string    `gorm:"column:team_id;index;type:varchar(64);not null"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (Inbox) TableName() string {
	return "inbox"
}
