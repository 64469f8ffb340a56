package repository

import "LiveDesk/internal/modules/widget/domain/entity"

type WidgetSettingsRepository interface {
	GetByTeam(teamID string) (*entity.WidgetSettings, error)
	// Upsert creates or refreshes the single row a team owns.
	Upsert(settings *entity.WidgetSettings) error
}
