package handler

import (
	widgetRequest "LiveDesk/internal/modules/widget/application/dto/request"
	widgetService "LiveDesk/internal/modules/widget/application/service"
	"LiveDesk/pkg/back"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type WidgetSettingsHandler struct {
	svc widgetService.WidgetSettingsService
}

func NewWidgetSettingsHandler(svc widgetService.WidgetSettingsService) *WidgetSettingsHandler {
	return &WidgetSettingsHandler{svc: svc}
}

func (h *WidgetSettingsHandler) Get(c *gin.Context) {
	data, err := h.svc.GetForTeam(c.GetString("team_id"))
	back.Result(c, data, err)
}

func (h *WidgetSettingsHandler) Update(c *gin.Context) {
	var req widgetRequest.UpdateWidgetSettingsRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.UpdateForTeam(c.GetString("team_id"), req)
	back.Result(c, data, err)
}

// PublicGet is consumed by the embeddable widget before any authentication.
func (h *WidgetSettingsHandler) PublicGet(c *gin.Context) {
	data, err := h.svc.PublicGet(c.Query("team_id"))
	back.Result(c, data, err)
}
