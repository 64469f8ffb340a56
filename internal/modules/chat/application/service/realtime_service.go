package service

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"LiveDesk/internal/config"
	chatRequest "LiveDesk/internal/modules/chat/application/dto/request"
	chatRespond "LiveDesk/internal/modules/chat/application/dto/respond"
	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	chatRepository "LiveDesk/internal/modules/chat/domain/repository"
	"LiveDesk/pkg/util"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"gorm.io/gorm"
)

// Sender tags that mark a message as authored by the team side. Anything else
// counts as a customer/visitor message and bumps the unread counter.
const (
	senderTagAgent  = "agent"
	senderTagSystem = "system"
)

// Broadcaster fans a stored message out to live connections. Implemented by
// pkg/ws.Hub; injected so tests can substitute a fake.
type Broadcaster interface {
	BroadcastToRoom(roomID string, payload interface{})
	BroadcastToTeam(teamID string, payload interface{})
}

type RealtimeService interface {
	// Ingest persists the message and updates the owning conversation
	// atomically. It never broadcasts.
	Ingest(req chatRequest.SendMessageRequest, teamID string) (*chatRespond.MessageItem, error)

	// SendMessage runs Ingest and, only on success, fans the message out to
	// the room subscribers and the tenant group.
	SendMessage(req chatRequest.SendMessageRequest, teamID string) (*chatRespond.MessageItem, error)

	// AuthorizeJoin decides whether a connection of teamID may subscribe to
	// roomID. A room owned by another tenant is reported as not found.
	AuthorizeJoin(teamID string, roomID string) error
}

type realtimeServiceImpl struct {
	uow              chatRepository.ChatUnitOfWork
	conversationRepo chatRepository.ConversationRepository
	broadcaster      Broadcaster
}

func NewRealtimeService(
	uow chatRepository.ChatUnitOfWork,
	conversationRepo chatRepository.ConversationRepository,
	broadcaster Broadcaster,
) RealtimeService {
	return &realtimeServiceImpl{
		uow:              uow,
		conversationRepo: conversationRepo,
		broadcaster:      broadcaster,
	}
}

// IsFromCustomer classifies the author of a message by its sender tag.
func IsFromCustomer(sender string) bool {
	if sender == "" {
		return false
	}
	tag := strings.ToLower(sender)
	return tag != senderTagAgent && tag != senderTagSystem
}

func (s *realtimeServiceImpl) Ingest(req chatRequest.SendMessageRequest, teamID string) (*chatRespond.MessageItem, error) {
	if teamID == "" || req.RoomId == "" || req.Content == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	// A room owned by another tenant is not writable either; the same check
	// that gates joins gates writes.
	if err := s.AuthorizeJoin(teamID, req.RoomId); err != nil {
		return nil, err
	}

	fromCustomer := IsFromCustomer(req.Sender)
	now := time.Now()
	preview := util.TruncateRunes(req.Content, config.GetConfig().ChatConfig.PreviewLengthOrDefault())

	msg := &chatEntity.Message{
		Id:        util.GenerateMessageID(),
		RoomId:    req.RoomId,
		TeamId:    teamID,
		Content:   req.Content,
		Sender:    req.Sender,
		CreatedAt: now,
	}

	unread := 0
	if fromCustomer {
		unread = 1
	}
	conv := &chatEntity.Conversation{
		Id:            util.GenerateConversationID(),
		RoomId:        req.RoomId,
		TeamId:        teamID,
		LastSender:    req.Sender,
		LastPreview:   preview,
		LastMessageAt: sql.NullTime{Time: now, Valid: true},
		UnreadCount:   unread,
		Status:        chatEntity.StatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.uow.Transaction(func(messageRepo chatRepository.MessageRepository, conversationRepo chatRepository.ConversationRepository) error {
		if err := messageRepo.Create(msg); err != nil {
			return err
		}
		return conversationRepo.UpsertOnMessage(conv, fromCustomer)
	})
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	return &chatRespond.MessageItem{
		Id:        msg.Id,
		RoomId:    msg.RoomId,
		TeamId:    msg.TeamId,
		Content:   msg.Content,
		Sender:    msg.Sender,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *realtimeServiceImpl) SendMessage(req chatRequest.SendMessageRequest, teamID string) (*chatRespond.MessageItem, error) {
	item, err := s.Ingest(req, teamID)
	if err != nil {
		return nil, err
	}

	event := chatRespond.NewMessageEvent{
		Type:        chatRespond.EventNewMessage,
		MessageItem: *item,
	}
	// Two sends of the same immutable payload: the room (visitor widget plus
	// any agent who opened it) and the tenant group (inbox badges).
	s.broadcaster.BroadcastToRoom(req.RoomId, event)
	s.broadcaster.BroadcastToTeam(teamID, event)

	return item, nil
}

func (s *realtimeServiceImpl) AuthorizeJoin(teamID string, roomID string) error {
	if teamID == "" || roomID == "" {
		return xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	conv, err := s.conversationRepo.GetByRoomID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unseen room: joinable, the conversation appears with the first
			// message and is owned by the joining tenant's handshake.
			return nil
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if conv.TeamId != teamID {
		// Do not reveal that the room exists under another tenant.
		return xerr.New(xerr.NotFound, "conversation not found")
	}
	return nil
}
