package service

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	etiquetteRequest "LiveDesk/internal/modules/etiquette/application/dto/request"
	etiquetteRespond "LiveDesk/internal/modules/etiquette/application/dto/respond"
	etiquetteEntity "LiveDesk/internal/modules/etiquette/domain/entity"
	etiquetteRepository "LiveDesk/internal/modules/etiquette/domain/repository"
	"LiveDesk/pkg/util"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"gorm.io/gorm"
)

const defaultColor = "#22c55e"

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

type EtiquetteService interface {
	ListForTeam(teamID string) ([]etiquetteRespond.EtiquetteItem, error)
	Create(teamID string, req etiquetteRequest.CreateEtiquetteRequest) (*etiquetteRespond.EtiquetteItem, error)
	Update(teamID string, id string, req etiquetteRequest.UpdateEtiquetteRequest) (*etiquetteRespond.EtiquetteItem, error)
	Delete(teamID string, id string) error
}

type etiquetteServiceImpl struct {
	repo etiquetteRepository.EtiquetteRepository
}

func NewEtiquetteService(repo etiquetteRepository.EtiquetteRepository) EtiquetteService {
	return &etiquetteServiceImpl{repo: repo}
}

// NormalizeSlug lowercases, collapses runs of non-alphanumerics to a dash and
// trims leading/trailing dashes.
func NormalizeSlug(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *etiquetteServiceImpl) ListForTeam(teamID string) ([]etiquetteRespond.EtiquetteItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, "missing team context")
	}

	etiquettes, err := s.repo.ListByTeam(teamID)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	out := make([]etiquetteRespond.EtiquetteItem, 0, len(etiquettes))
	for _, e := range etiquettes {
		out = append(out, toItem(e))
	}
	return out, nil
}

func (s *etiquetteServiceImpl) Create(teamID string, req etiquetteRequest.CreateEtiquetteRequest) (*etiquetteRespond.EtiquetteItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, "missing team context")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerr.New(xerr.BadRequest, "name is required")
	}

	slugSource := req.Slug
	if strings.TrimSpace(slugSource) == "" {
		slugSource = name
	}
	slug := NormalizeSlug(slugSource)
	if slug == "" {
		return nil, xerr.New(xerr.BadRequest, "slug could not be generated")
	}

	if err := s.ensureSlugFree(teamID, slug); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = defaultColor
	}

	now := time.Now()
	e := &etiquetteEntity.Etiquette{
		Id:        util.GenerateUUID(),
		TeamId:    teamID,
		Name:      name,
		Color:     color,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != "" {
		e.Description = sql.NullString{String: req.Description, Valid: true}
	}

	if err := s.repo.Create(e); err != nil {
		// The (team_id, slug) unique index is the last line of defense against
		// a concurrent create with the same slug.
		zlog.Error(err.Error())
		return nil, xerr.New(xerr.BadRequest, "slug already exists for this team")
	}

	item := toItem(*e)
	return &item, nil
}

func (s *etiquetteServiceImpl) Update(teamID string, id string, req etiquetteRequest.UpdateEtiquetteRequest) (*etiquetteRespond.EtiquetteItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, "missing team context")
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Slug != nil {
		slug := NormalizeSlug(*req.Slug)
		if slug == "" {
			return nil, xerr.New(xerr.BadRequest, "slug cannot be empty")
		}
		existing, err := s.repo.GetBySlug(teamID, slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		if existing != nil && existing.Id != id {
			return nil, xerr.New(xerr.BadRequest, "slug already exists for this team")
		}
		fields["slug"] = slug
	}

	rows, err := s.repo.Update(teamID, id, fields)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if rows == 0 {
		return nil, xerr.New(xerr.NotFound, "etiquette not found for this team")
	}

	e, err := s.repo.GetByID(teamID, id)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	item := toItem(*e)
	return &item, nil
}

func (s *etiquetteServiceImpl) Delete(teamID string, id string) error {
	if teamID == "" {
		return xerr.New(xerr.BadRequest, "missing team context")
	}

	if _, err := s.repo.GetByID(teamID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.New(xerr.NotFound, "etiquette not found")
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	// Conversation links go first so no dangling references survive.
	if err := s.repo.DeleteLinksByEtiquette(id); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if _, err := s.repo.Delete(teamID, id); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *etiquetteServiceImpl) ensureSlugFree(teamID string, slug string) error {
	_, err := s.repo.GetBySlug(teamID, slug)
	if err == nil {
		return xerr.New(xerr.BadRequest, "slug already exists for this team")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	zlog.Error(err.Error())
	return xerr.ErrServerError
}

func toItem(e etiquetteEntity.Etiquette) etiquetteRespond.EtiquetteItem {
	item := etiquetteRespond.EtiquetteItem{
		Id:        e.Id,
		TeamId:    e.TeamId,
		Name:      e.Name,
		Color:     e.Color,
		Slug:      e.Slug,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
	if e.Description.Valid {
		item.Description = e.Description.String
	}
	return item
}
