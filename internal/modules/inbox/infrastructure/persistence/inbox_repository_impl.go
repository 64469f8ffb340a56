package persistence

import (
	inboxEntity "LiveDesk/internal/modules/inbox/domain/entity"
	inboxRepository "LiveDesk/internal/modules/inbox/domain/repository"

	"gorm.io/gorm"
)

type inboxRepositoryImpl struct {
	db *gorm.DB
}

func NewInboxRepository(db *gorm.DB) inboxRepository.InboxRepository {
	return &inboxRepositoryImpl{db: db}
}

func (r *inboxRepositoryImpl) ListByTeam(teamID string) ([]inboxEntity.Inbox, error) {
	var out []inboxEntity.Inbox
	err := r.db.
		Where("team_id = ?", teamID).
		Order("is_default DESC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inboxRepositoryImpl) GetByID(teamID string, id string) (*inboxEntity.Inbox, error) {
	var inbox inboxEntity.Inbox
	if err := r.db.Where("team_id = ? AND id = ?", teamID, id).First(&inbox).Error; err != nil {
		return nil, err
	}
	return &inbox, nil
}

func (r *inboxRepositoryImpl) Create(inbox *inboxEntity.Inbox) error {
	return r.db.Create(inbox).Error
}

func (r *inboxRepositoryImpl) Rename(teamID string, id string, name string) (int64, error) {
	res := r.db.Model(&inboxEntity.Inbox{}).
		Where("team_id = ? AND id = ?", teamID, id).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *inboxRepositoryImpl) Delete(teamID string, id string) (int64, error) {
	res := r.db.Where("team_id = ? AND id = ?", teamID, id).Delete(&inboxEntity.Inbox{})
	return res.RowsAffected, res.Error
}
