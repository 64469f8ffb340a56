package entity

import (
	"database/sql"
	"time"
)

// Etiquette is a tenant-scoped conversation label.
type Etiquette struct {
	Id          string         `gorm:"column:id;primaryKey;type:char(36)"`
	TeamId      string         `gorm:"column:team_id;type:varchar(64);not null;uniqueIndex:idx_team_slug"`
	Name        string         `gorm:"column:name;type:varchar(120);not null"`
	Color       string         `gorm:"column:color;type:varchar(16);not null;default:'#22c55e'"`
	Slug        string         `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:idx_team_slug"`
	Description sql.NullString `gorm:"column:description;type:varchar(255)"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;not null"`
}

func (Etiquette) TableName() string {
	return "etiquette"
}

// ConversationEtiquette links a label to a conversation.
type ConversationEtiquette struct {
	Id             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ConversationId string    `gorm:"column:conversation_id;type:char(24);not null;uniqueIndex:idx_conv_etiquette"`
	EtiquetteId    string    `gorm:"column:etiquette_id;type:char(36);not null;uniqueIndex:idx_conv_etiquette"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

func (ConversationEtiquette) TableName() string {
	return "conversation_etiquette"
}
