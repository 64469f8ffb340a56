package persistence

import (
	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	chatRepository "LiveDesk/internal/modules/chat/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type conversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) chatRepository.ConversationRepository {
	return &conversationRepositoryImpl{db: db}
}

func (r *conversationRepositoryImpl) UpsertOnMessage(conv *chatEntity.Conversation, fromCustomer bool) error {
	assignments := map[string]interface{}{
		"last_sender":     conv.LastSender,
		"last_preview":    conv.LastPreview,
		"last_message_at": conv.LastMessageAt,
		"updated_at":      conv.UpdatedAt,
	}
	if fromCustomer {
		// Relative increment: concurrent sends to the same room must not lose
		// counts, so this is never a read-modify-write in the application.
		assignments["unread_count"] = gorm.Expr("unread_count + ?", 1)
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(conv).Error
}

func (r *conversationRepositoryImpl) GetByRoomID(roomID string) (*chatEntity.Conversation, error) {
	var conv chatEntity.Conversation
	if err := r.db.Where("room_id = ?", roomID).First(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepositoryImpl) GetByIDOrRoom(teamID string, key string) (*chatEntity.Conversation, error) {
	var conv chatEntity.Conversation
	err := r.db.
		Where("team_id = ? AND (id = ? OR room_id = ?)", teamID, key, key).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepositoryImpl) ListByTeam(teamID string, limit int) ([]chatEntity.Conversation, error) {
	var convs []chatEntity.Conversation
	q := r.db.Where("team_id = ?", teamID).Order("last_message_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&convs).Error; err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *conversationRepositoryImpl) UpdateFields(teamID string, conversationID string, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&chatEntity.Conversation{}).
		Where("team_id = ? AND id = ?", teamID, conversationID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *conversationRepositoryImpl) DetachFromInbox(teamID string, inboxID string) error {
	return r.db.Model(&chatEntity.Conversation{}).
		Where("team_id = ? AND inbox_id = ?", teamID, inboxID).
		Update("inbox_id", nil).Error
}
