package persistence

import (
	etiquetteEntity "LiveDesk/internal/modules/etiquette/domain/entity"
	etiquetteRepository "LiveDesk/internal/modules/etiquette/domain/repository"

	"gorm.io/gorm"
)

type etiquetteRepositoryImpl struct {
	db *gorm.DB
}

func NewEtiquetteRepository(db *gorm.DB) etiquetteRepository.EtiquetteRepository {
	return &etiquetteRepositoryImpl{db: db}
}

func (r *etiquetteRepositoryImpl) ListByTeam(teamID string) ([]etiquetteEntity.Etiquette, error) {
	var out []etiquetteEntity.Etiquette
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *etiquetteRepositoryImpl) GetByID(teamID string, id string) (*etiquetteEntity.Etiquette, error) {
	var e etiquetteEntity.Etiquette
	if err := r.db.Where("team_id = ? AND id = ?", teamID, id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *etiquetteRepositoryImpl) GetBySlug(teamID string, slug string) (*etiquetteEntity.Etiquette, error) {
	var e etiquetteEntity.Etiquette
	if err := r.db.Where("team_id = ? AND slug = ?", teamID, slug).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *etiquetteRepositoryImpl) Create(etiquette *etiquetteEntity.Etiquette) error {
	return r.db.Create(etiquette).Error
}

func (r *etiquetteRepositoryImpl) Update(teamID string, id string, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&etiquetteEntity.Etiquette{}).
		Where("team_id = ? AND id = ?", teamID, id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *etiquetteRepositoryImpl) Delete(teamID string, id string) (int64, error) {
	res := r.db.Where("team_id = ? AND id = ?", teamID, id).Delete(&etiquetteEntity.Etiquette{})
	return res.RowsAffected, res.Error
}

func (r *etiquetteRepositoryImpl) CreateLink(link *etiquetteEntity.ConversationEtiquette) error {
	return r.db.Create(link).Error
}

func (r *etiquetteRepositoryImpl) DeleteLink(conversationID string, etiquetteID string) (int64, error) {
	res := r.db.
		Where("conversation_id = ? AND etiquette_id = ?", conversationID, etiquetteID).
		Delete(&etiquetteEntity.ConversationEtiquette{})
	return res.RowsAffected, res.Error
}

func (r *etiquetteRepositoryImpl) DeleteLinksByEtiquette(etiquetteID string) error {
	return r.db.
		Where("etiquette_id = ?", etiquetteID).
		Delete(&etiquetteEntity.ConversationEtiquette{}).Error
}
