package handler

import (
	chatRequest "LiveDesk/internal/modules/chat/application/dto/request"
	chatService "LiveDesk/internal/modules/chat/application/service"
	"LiveDesk/pkg/back"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	svc chatService.ConversationService
}

func NewConversationHandler(svc chatService.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

func (h *ConversationHandler) List(c *gin.Context) {
	data, err := h.svc.ListForTeam(c.GetString("team_id"))
	back.Result(c, data, err)
}

func (h *ConversationHandler) GetByRoom(c *gin.Context) {
	data, err := h.svc.FindByRoom(c.GetString("team_id"), c.Param("roomId"))
	back.Result(c, data, err)
}

func (h *ConversationHandler) MoveInbox(c *gin.Context) {
	var req chatRequest.MoveInboxRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.MoveToInbox(c.GetString("team_id"), c.Param("id"), req.InboxId)
	back.Result(c, data, err)
}

func (h *ConversationHandler) Assign(c *gin.Context) {
	var req chatRequest.AssignRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Assign(c.GetString("team_id"), c.Param("id"), req.AssigneeId)
	back.Result(c, data, err)
}

func (h *ConversationHandler) UpdateStatus(c *gin.Context) {
	var req chatRequest.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.UpdateStatus(c.GetString("team_id"), c.Param("id"), req.Status)
	back.Result(c, data, err)
}

// MarkRead accepts the conversation id or its roomId in the path.
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	data, err := h.svc.MarkRead(c.GetString("team_id"), c.Param("id"), c.GetString("user_id"))
	back.Result(c, data, err)
}

func (h *ConversationHandler) AddEtiquette(c *gin.Context) {
	err := h.svc.AddEtiquette(c.GetString("team_id"), c.Param("id"), c.Param("etiquetteId"))
	back.Result(c, gin.H{"success": err == nil}, err)
}

func (h *ConversationHandler) RemoveEtiquette(c *gin.Context) {
	err := h.svc.RemoveEtiquette(c.GetString("team_id"), c.Param("id"), c.Param("etiquetteId"))
	back.Result(c, gin.H{"success": err == nil}, err)
}
