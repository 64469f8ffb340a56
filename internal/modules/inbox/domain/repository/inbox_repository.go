package repository

import "LiveDesk/internal/modules/inbox/domain/entity"

type InboxRepository interface {
	// ListByTeam orders default inboxes first, then by creation time.
	ListByTeam(teamID string) ([]entity.Inbox, error)
	GetByID(teamID string, id string) (*entity.Inbox, error)
	Create(inbox *entity.Inbox) error
	Rename(teamID string, id string, name string) (int64, error)
	Delete(teamID string, id string) (int64, error)
}
