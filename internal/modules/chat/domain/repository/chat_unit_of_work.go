package repository

// ChatUnitOfWork runs fn with message and conversation repositories bound to a
// single transaction, so the insert and the aggregate upsert commit or roll
// back together.
type ChatUnitOfWork interface {
	Transaction(fn func(messageRepo MessageRepository, conversationRepo ConversationRepository) error) error
}
