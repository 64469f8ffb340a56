package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	widgetRequest "LiveDesk/internal/modules/widget/application/dto/request"
	widgetRespond "LiveDesk/internal/modules/widget/application/dto/respond"
	widgetEntity "LiveDesk/internal/modules/widget/domain/entity"
	widgetRepository "LiveDesk/internal/modules/widget/domain/repository"
	"LiveDesk/pkg/redis"
	"LiveDesk/pkg/util"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"gorm.io/gorm"
)

const (
	defaultLauncherColor = "#22c55e"
	defaultTextColor     = "#020617"
	defaultLabel         = "Chat"

	publicCacheTTL = time.Minute
)

type WidgetSettingsService interface {
	GetForTeam(teamID string) (*widgetRespond.WidgetSettingsItem, error)
	UpdateForTeam(teamID string, req widgetRequest.UpdateWidgetSettingsRequest) (*widgetRespond.WidgetSettingsItem, error)
	// PublicGet serves the embeddable widget; reads go through a short-lived
	// redis cache when one is configured.
	PublicGet(teamID string) (*widgetRespond.WidgetSettingsItem, error)
}

type widgetSettingsServiceImpl struct {
	repo widgetRepository.WidgetSettingsRepository
}

func NewWidgetSettingsService(repo widgetRepository.WidgetSettingsRepository) WidgetSettingsService {
	return &widgetSettingsServiceImpl{repo: repo}
}

func defaults() *widgetRespond.WidgetSettingsItem {
	return &widgetRespond.WidgetSettingsItem{
		Position:      "bottom-right",
		LauncherColor: defaultLauncherColor,
		TextColor:     defaultTextColor,
		LauncherLabel: defaultLabel,
	}
}

func toItem(settings *widgetEntity.WidgetSettings) *widgetRespond.WidgetSettingsItem {
	position := "bottom-right"
	if settings.LauncherPosition == "left" {
		position = "bottom-left"
	}
	return &widgetRespond.WidgetSettingsItem{
		Position:      position,
		LauncherColor: settings.LauncherColor,
		TextColor:     settings.LauncherTextColor,
		LauncherLabel: settings.LauncherLabel,
	}
}

func (s *widgetSettingsServiceImpl) GetForTeam(teamID string) (*widgetRespond.WidgetSettingsItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	settings, err := s.repo.GetByTeam(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaults(), nil
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return toItem(settings), nil
}

func (s *widgetSettingsServiceImpl) UpdateForTeam(teamID string, req widgetRequest.UpdateWidgetSettingsRequest) (*widgetRespond.WidgetSettingsItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	position := "right"
	if req.Position == "bottom-left" {
		position = "left"
	}
	launcherColor := req.LauncherColor
	if launcherColor == "" {
		launcherColor = defaultLauncherColor
	}
	textColor := req.TextColor
	if textColor == "" {
		textColor = defaultTextColor
	}

	now := time.Now()
	settings := &widgetEntity.WidgetSettings{
		Id:                util.GenerateUUID(),
		TeamId:            teamID,
		LauncherColor:     launcherColor,
		LauncherTextColor: textColor,
		LauncherPosition:  position,
		LauncherLabel:     defaultLabel,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Upsert(settings); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	s.invalidateCache(teamID)
	return toItem(settings), nil
}

func (s *widgetSettingsServiceImpl) PublicGet(teamID string) (*widgetRespond.WidgetSettingsItem, error) {
	if teamID == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	if redis.IsConnected() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if raw, err := redis.Get(ctx, cacheKey(teamID)); err == nil {
			var item widgetRespond.WidgetSettingsItem
			if json.Unmarshal([]byte(raw), &item) == nil {
				return &item, nil
			}
		}
	}

	item, err := s.GetForTeam(teamID)
	if err != nil {
		return nil, err
	}

	if redis.IsConnected() {
		if raw, err := json.Marshal(item); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = redis.Set(ctx, cacheKey(teamID), raw, publicCacheTTL)
		}
	}
	return item, nil
}

func (s *widgetSettingsServiceImpl) invalidateCache(teamID string) {
	if !redis.IsConnected() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := redis.Del(ctx, cacheKey(teamID)); err != nil {
		zlog.Warn("widget settings cache invalidation failed: " + err.Error())
	}
}

func cacheKey(teamID string) string {
	return "widget:settings:" + teamID
}
