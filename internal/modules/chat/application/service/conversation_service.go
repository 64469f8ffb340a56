package service

import (
	"errors"
	"time"

	chatRespond "LiveDesk/internal/modules/chat/application/dto/respond"
	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	chatRepository "LiveDesk/internal/modules/chat/domain/repository"
	etiquetteEntity "LiveDesk/internal/modules/etiquette/domain/entity"
	etiquetteRepository "LiveDesk/internal/modules/etiquette/domain/repository"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"gorm.io/gorm"
)

type ConversationService interface {
	ListForTeam(teamID string) ([]chatRespond.ConversationItem, error)
	FindByRoom(teamID string, roomID string) (*chatRespond.ConversationItem, error)

	// MoveToInbox, Assign and UpdateStatus are agent workflow actions. A nil
	// target detaches/unassigns.
	MoveToInbox(teamID string, conversationID string, inboxID *string) (*chatRespond.ConversationItem, error)
	Assign(teamID string, conversationID string, assigneeID *string) (*chatRespond.ConversationItem, error)
	UpdateStatus(teamID string, conversationID string, status string) (*chatRespond.ConversationItem, error)

	// MarkRead zeroes the unread counter and records who read and when.
	// Accepts the conversation id or its roomId. Idempotent.
	MarkRead(teamID string, idOrRoomID string, agentID string) (*chatRespond.ConversationItem, error)

	AddEtiquette(teamID string, conversationID string, etiquetteID string) error
	RemoveEtiquette(teamID string, conversationID string, etiquetteID string) error
}

type conversationServiceImpl struct {
	conversationRepo chatRepository.ConversationRepository
	etiquetteRepo    etiquetteRepository.EtiquetteRepository
}

func NewConversationService(
	conversationRepo chatRepository.ConversationRepository,
	etiquetteRepo etiquetteRepository.EtiquetteRepository,
) ConversationService {
	return &conversationServiceImpl{
		conversationRepo: conversationRepo,
		etiquetteRepo:    etiquetteRepo,
	}
}

func (s *conversationServiceImpl) ListForTeam(teamID string) ([]chatRespond.ConversationItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	convs, err := s.conversationRepo.ListByTeam(teamID, 0)
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

func (s *conversationServiceImpl) FindByRoom(teamID string, roomID string) (*chatRespond.ConversationItem, error) {
	if teamID == "" || roomID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	conv, err := s.getOwned(teamID, roomID)
	if err != nil {
		return nil, err
	}
	item := toConversationItem(*conv)
	return &item, nil
}

func (s *conversationServiceImpl) MoveToInbox(teamID string, conversationID string, inboxID *string) (*chatRespond.ConversationItem, error) {
	var target interface{}
	if inboxID != nil {
		target = *inboxID
	}
	return s.update(teamID, conversationID, map[string]interface{}{"inbox_id": target})
}

func (s *conversationServiceImpl) Assign(teamID string, conversationID string, assigneeID *string) (*chatRespond.ConversationItem, error) {
	var target interface{}
	if assigneeID != nil {
		target = *assigneeID
	}
	return s.update(teamID, conversationID, map[string]interface{}{"assignee_id": target})
}

func (s *conversationServiceImpl) UpdateStatus(teamID string, conversationID string, status string) (*chatRespond.ConversationItem, error) {
	switch status {
	case chatEntity.StatusOpen, chatEntity.StatusPending, chatEntity.StatusResolved:
	default:
		return nil, xerr.New(xerr.BadRequest, "invalid status")
	}
	return s.update(teamID, conversationID, map[string]interface{}{"status": status})
}

func (s *conversationServiceImpl) MarkRead(teamID string, idOrRoomID string, agentID string) (*chatRespond.ConversationItem, error) {
	if agentID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	return s.update(teamID, idOrRoomID, map[string]interface{}{
		"unread_count":          0,
		"last_agent_read_at":    time.Now(),
		"last_read_by_agent_id": agentID,
	})
}

func (s *conversationServiceImpl) AddEtiquette(teamID string, conversationID string, etiquetteID string) error {
	conv, err := s.getOwned(teamID, conversationID)
	if err != nil {
		return err
	}
	if _, err := s.etiquetteRepo.GetByID(teamID, etiquetteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.New(xerr.NotFound, "etiquette not found")
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	link := &etiquetteEntity.ConversationEtiquette{
		ConversationId: conv.Id,
		EtiquetteId:    etiquetteID,
		CreatedAt:      time.Now(),
	}
	if err := s.etiquetteRepo.CreateLink(link); err != nil {
		// Unique pair index makes double-attach a no-op for the caller.
		zlog.Warn(err.Error())
	}
	return nil
}

func (s *conversationServiceImpl) RemoveEtiquette(teamID string, conversationID string, etiquetteID string) error {
	conv, err := s.getOwned(teamID, conversationID)
	if err != nil {
		return err
	}
	if _, err := s.etiquetteRepo.DeleteLink(conv.Id, etiquetteID); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

// getOwned resolves id or roomId within the tenant; a miss and a foreign-tenant
// row are indistinguishable to the caller.
func (s *conversationServiceImpl) getOwned(teamID string, idOrRoomID string) (*chatEntity.Conversation, error) {
	conv, err := s.conversationRepo.GetByIDOrRoom(teamID, idOrRoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.NotFound, "conversation not found for this team")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return conv, nil
}

func (s *conversationServiceImpl) update(teamID string, idOrRoomID string, fields map[string]interface{}) (*chatRespond.ConversationItem, error) {
	if teamID == "" || idOrRoomID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	conv, err := s.getOwned(teamID, idOrRoomID)
	if err != nil {
		return nil, err
	}

	if _, err := s.conversationRepo.UpdateFields(teamID, conv.Id, fields); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	updated, err := s.getOwned(teamID, conv.Id)
	if err != nil {
		return nil, err
	}
	item := toConversationItem(*updated)
	return &item, nil
}
