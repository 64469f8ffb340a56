package persistence

import (
	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	chatRepository "LiveDesk/internal/modules/chat/domain/repository"

	"gorm.io/gorm"
)

type messageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) chatRepository.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

func (r *messageRepositoryImpl) Create(message *chatEntity.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepositoryImpl) List(roomID string, teamID string, limit int) ([]chatEntity.Message, error) {
	if limit <= 0 {
		limit = 200
	}

	q := r.db.Model(&chatEntity.Message{})
	if roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	if teamID != "" {
		q = q.Where("team_id = ?", teamID)
	}

	var msgs []chatEntity.Message
	err := q.Order("created_at ASC").Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
