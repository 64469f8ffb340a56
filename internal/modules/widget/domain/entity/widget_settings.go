package entity

import "time"

// WidgetSettings holds the per-team appearance of the embeddable widget.
type WidgetSettings struct {
	Id                string    `gorm:"column:id;primaryKey;type:char(36)"`
	TeamId            string    `gorm:"column:team_id;uniqueIndex;type:varchar(64);not null"`
	LauncherColor     string    `gorm:"column:launcher_color;type:varchar(16);not null;default:'#22c55e'"`
	LauncherTextColor string    `gorm:"column:launcher_text_color;type:varchar(16);not null;default:'#020617'"`
	LauncherPosition  string    `gorm:"column:launcher_position;type:varchar(8);not null;default:'right'"`
	LauncherLabel     string    `gorm:"column:launcher_label;type:varchar(40);not null;default:'Chat'"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"`
}

func (WidgetSettings) TableName() string {
	return "widget_settings"
}
