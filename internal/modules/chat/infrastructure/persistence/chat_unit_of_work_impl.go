package persistence

import (
	chatRepository "LiveDesk/internal/modules/chat/domain/repository"

	"gorm.io/gorm"
)

type chatUnitOfWorkImpl struct {
	db *gorm.DB
}

func NewChatUnitOfWork(db *gorm.DB) chatRepository.ChatUnitOfWork {
	return &chatUnitOfWorkImpl{db: db}
}

func (u *chatUnitOfWorkImpl) Transaction(fn func(messageRepo chatRepository.MessageRepository, conversationRepo chatRepository.ConversationRepository) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		messageRepo := NewMessageRepository(tx)
		conversationRepo := NewConversationRepository(tx)
		return fn(messageRepo, conversationRepo)
	})
}
