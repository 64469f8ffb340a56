package repository

import "LiveDesk/internal/modules/etiquette/domain/entity"

type EtiquetteRepository interface {
	ListByTeam(teamID string) ([]entity.Etiquette, error)
	GetByID(teamID string, id string) (*entity.Etiquette, error)
	GetBySlug(teamID string, slug string) (*entity.Etiquette, error)
	Create(etiquette *entity.Etiquette) error
	Update(teamID string, id string, fields map[string]interface{}) (int64, error)
	Delete(teamID string, id string) (int64, error)

	CreateLink(link *entity.ConversationEtiquette) error
	DeleteLink(conversationID string, etiquetteID string) (int64, error)
	DeleteLinksByEtiquette(etiquetteID string) error
}
