package persistence

import (
	widgetEntity "LiveDesk/internal/modules/widget/domain/entity"
	widgetRepository "LiveDesk/internal/modules/widget/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type widgetSettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewWidgetSettingsRepository(db *gorm.DB) widgetRepository.WidgetSettingsRepository {
	return &widgetSettingsRepositoryImpl{db: db}
}

func (r *widgetSettingsRepositoryImpl) GetByTeam(teamID string) (*widgetEntity.WidgetSettings, error) {
	var settings widgetEntity.WidgetSettings
	if err := r.db.Where("team_id = ?", teamID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *widgetSettingsRepositoryImpl) Upsert(settings *widgetEntity.WidgetSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"launcher_color":      settings.LauncherColor,
			"launcher_text_color": settings.LauncherTextColor,
			"launcher_position":   settings.LauncherPosition,
			"updated_at":          settings.UpdatedAt,
		}),
	}).Create(settings).Error
}
