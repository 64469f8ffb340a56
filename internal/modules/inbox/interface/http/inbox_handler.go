package handler

import (
	inboxRequest "LiveDesk/internal/modules/inbox/application/dto/request"
	inboxService "LiveDesk/internal/modules/inbox/application/service"
	"LiveDesk/pkg/back"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type InboxHandler struct {
	svc inboxService.InboxService
}

func NewInboxHandler(svc inboxService.InboxService) *InboxHandler {
	return &InboxHandler{svc: svc}
}

func (h *InboxHandler) List(c *gin.Context) {
	data, err := h.svc.ListForTeam(c.GetString("team_id"))
	back.Result(c, data, err)
}

func (h *InboxHandler) Create(c *gin.Context) {
	var req inboxRequest.CreateInboxRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Create(c.GetString("team_id"), req.Name)
	back.Result(c, data, err)
}

func (h *InboxHandler) Rename(c *gin.Context) {
	var req inboxRequest.RenameInboxRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Rename(c.GetString("team_id"), c.Param("id"), req.Name)
	back.Result(c, data, err)
}

func (h *InboxHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.GetString("team_id"), c.Param("id"))
	back.Result(c, gin.H{"success": err == nil}, err)
}
