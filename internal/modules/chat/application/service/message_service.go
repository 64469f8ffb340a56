package service

import (
	"time"

	"LiveDesk/internal/config"
	chatRespond "LiveDesk/internal/modules/chat/application/dto/respond"
	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	chatRepository "LiveDesk/internal/modules/chat/domain/repository"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"
)

type MessageService interface {
	// PublicHistory serves the widget: scoped by roomId alone, which is an
	// unguessable generated identifier.
	PublicHistory(roomID string) ([]chatRespond.MessageItem, error)

	// History serves the dashboard: additionally scoped by teamId.
	History(roomID string, teamID string) ([]chatRespond.MessageItem, error)

	// ListRooms returns the team's most recently active conversations.
	ListRooms(teamID string) ([]chatRespond.ConversationItem, error)
}

type messageServiceImpl struct {
	messageRepo      chatRepository.MessageRepository
	conversationRepo chatRepository.ConversationRepository
}

func NewMessageService(messageRepo chatRepository.MessageRepository, conversationRepo chatRepository.ConversationRepository) MessageService {
	return &messageServiceImpl{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
	}
}

func (s *messageServiceImpl) PublicHistory(roomID string) ([]chatRespond.MessageItem, error) {
	if roomID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	return s.history(roomID, "")
}

func (s *messageServiceImpl) History(roomID string, teamID string) ([]chatRespond.MessageItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	return s.history(roomID, teamID)
}

func (s *messageServiceImpl) history(roomID string, teamID string) ([]chatRespond.MessageItem, error) {
	limit := config.GetConfig().ChatConfig.HistoryLimitOrDefault()
	msgs, err := s.messageRepo.List(roomID, teamID, limit)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	out := make([]chatRespond.MessageItem, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chatRespond.MessageItem{
			Id:        m.Id,
			RoomId:    m.RoomId,
			TeamId:    m.TeamId,
			Content:   m.Content,
			Sender:    m.Sender,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *messageServiceImpl) ListRooms(teamID string) ([]chatRespond.ConversationItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	limit := config.GetConfig().ChatConfig.RoomsLimitOrDefault()
	convs, err := s.conversationRepo.ListByTeam(teamID, limit)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	out := make([]chatRespond.ConversationItem, 0, len(convs))
	for _, conv := range convs {
		out = append(out, toConversationItem(conv))
	}
	return out, nil
}

func toConversationItem(conv chatEntity.Conversation) chatRespond.ConversationItem {
	item := chatRespond.ConversationItem{
		Id:          conv.Id,
		RoomId:      conv.RoomId,
		TeamId:      conv.TeamId,
		LastSender:  conv.LastSender,
		LastPreview: conv.LastPreview,
		UnreadCount: conv.UnreadCount,
		Status:      conv.Status,
		CreatedAt:   conv.CreatedAt.Format(time.RFC3339),
	}
	if conv.LastMessageAt.Valid {
		item.LastMessageAt = conv.LastMessageAt.Time.Format(time.RFC3339)
	}
	if conv.InboxId.Valid {
		item.InboxId = conv.InboxId.String
	}
	if conv.AssigneeId.Valid {
		item.AssigneeId = conv.AssigneeId.String
	}
	if conv.LastAgentReadAt.Valid {
		item.LastAgentReadAt = conv.LastAgentReadAt.Time.Format(time.RFC3339)
	}
	if conv.LastReadByAgentId.Valid {
		item.LastReadByAgentId = conv.LastReadByAgentId.String
	}
	return item
}
