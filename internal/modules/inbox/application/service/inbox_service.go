package service

import (
	"errors"
	"strings"
	"time"

	chatRepository "LiveDesk/internal/modules/chat/domain/repository"
	inboxRespond "LiveDesk/internal/modules/inbox/application/dto/respond"
	inboxEntity "LiveDesk/internal/modules/inbox/domain/entity"
	inboxRepository "LiveDesk/internal/modules/inbox/domain/repository"
	"LiveDesk/pkg/util"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"gorm.io/gorm"
)

const defaultInboxName = "Main inbox"

type InboxService interface {
	// ListForTeam provisions the default inbox on first read, so every team
	// always has at least one.
	ListForTeam(teamID string) ([]inboxRespond.InboxItem, error)
	Create(teamID string, name string) (*inboxRespond.InboxItem, error)
	Rename(teamID string, id string, name string) (*inboxRespond.InboxItem, error)
	// Delete detaches the inbox's conversations and removes the inbox.
	Delete(teamID string, id string) error
}

type inboxServiceImpl struct {
	inboxRepo        inboxRepository.InboxRepository
	conversationRepo chatRepository.ConversationRepository
}

func NewInboxService(inboxRepo inboxRepository.InboxRepository, conversationRepo chatRepository.ConversationRepository) InboxService {
	return &inboxServiceImpl{
		inboxRepo:        inboxRepo,
		conversationRepo: conversationRepo,
	}
}

func (s *inboxServiceImpl) ListForTeam(teamID string) ([]inboxRespond.InboxItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	inboxes, err := s.inboxRepo.ListByTeam(teamID)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	if len(inboxes) == 0 {
		created := &inboxEntity.Inbox{
			Id:        util.GenerateUUID(),
			TeamId:    teamID,
			Name:      defaultInboxName,
			IsDefault: true,
			CreatedAt: time.Now(),
		}
		if err := s.inboxRepo.Create(created); err != nil {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		inboxes = []inboxEntity.Inbox{*created}
	}

	out := make([]inboxRespond.InboxItem, 0, len(inboxes))
	for _, in := range inboxes {
		out = append(out, toItem(in))
	}
	return out, nil
}

func (s *inboxServiceImpl) Create(teamID string, name string) (*inboxRespond.InboxItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, xerr.New(xerr.BadRequest, "name is required")
	}

	inbox := &inboxEntity.Inbox{
		Id:        util.GenerateUUID(),
		TeamId:    teamID,
		Name:      name,
		IsDefault: false,
		CreatedAt: time.Now(),
	}
	if err := s.inboxRepo.Create(inbox); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	item := toItem(*inbox)
	return &item, nil
}

func (s *inboxServiceImpl) Rename(teamID string, id string, name string) (*inboxRespond.InboxItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, xerr.New(xerr.BadRequest, "name is required")
	}

	rows, err := s.inboxRepo.Rename(teamID, id, name)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if rows == 0 {
		return nil, xerr.New(xerr.NotFound, "inbox not found for this team")
	}

	inbox, err := s.inboxRepo.GetByID(teamID, id)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	item := toItem(*inbox)
	return &item, nil
}

func (s *inboxServiceImpl) Delete(teamID string, id string) error {
	if _, err := s.inboxRepo.GetByID(teamID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.New(xerr.NotFound, "inbox not found for this team")
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	// Conversations survive an inbox deletion; they only lose the grouping.
	if err := s.conversationRepo.DetachFromInbox(teamID, id); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if _, err := s.inboxRepo.Delete(teamID, id); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func toItem(in inboxEntity.Inbox) inboxRespond.InboxItem {
	return inboxRespond.InboxItem{
		Id:        in.Id,
		TeamId:    in.TeamId,
		Name:      in.Name,
		IsDefault: in.IsDefault,
		CreatedAt: in.CreatedAt.Format(time.RFC3339),
	}
}
