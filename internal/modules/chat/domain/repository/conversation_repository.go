package repository

import "LiveDesk/internal/modules/chat/domain/entity"

type ConversationRepository interface {
	// UpsertOnMessage creates the conversation for conv.RoomId or refreshes its
	// display fields. When fromCustomer is true the unread counter is moved with
	// a relative SQL increment so concurrent sends cannot lose updates.
	UpsertOnMessage(conv *entity.Conversation, fromCustomer bool) error

	// GetByRoomID looks a room up across tenants; callers own the tenant check.
	GetByRoomID(roomID string) (*entity.Conversation, error)

	// GetByIDOrRoom resolves id or roomId within a tenant.
	GetByIDOrRoom(teamID string, key string) (*entity.Conversation, error)

	ListByTeam(teamID string, limit int) ([]entity.Conversation, error)

	// UpdateFields applies fields to the conversation only when it belongs to
	// teamID, returning the number of rows touched.
	UpdateFields(teamID string, conversationID string, fields map[string]interface{}) (int64, error)

	// DetachFromInbox clears inbox_id for every conversation of the inbox.
	DetachFromInbox(teamID string, inboxID string) error
}
