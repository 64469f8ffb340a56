package repository

import "LiveDesk/internal/modules/chat/domain/entity"

type MessageRepository interface {
	Create(message *entity.Message) error
	// List returns messages ordered by created_at ascending, capped at limit.
	// Empty roomID or teamID skips the corresponding filter; the public widget
	// path passes only roomID, the dashboard path adds teamID.
	List(roomID string, teamID string, limit int) ([]entity.Message, error)
}
