package handler

import (
	chatRequest "LiveDesk/internal/modules/chat/application/dto/request"
	chatService "LiveDesk/internal/modules/chat/application/service"
	"LiveDesk/pkg/back"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageSvc  chatService.MessageService
	realtimeSvc chatService.RealtimeService
}

func NewMessageHandler(messageSvc chatService.MessageService, realtimeSvc chatService.RealtimeService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc, realtimeSvc: realtimeSvc}
}

// PublicHistory serves the unauthenticated widget history path.
func (h *MessageHandler) PublicHistory(c *gin.Context) {
	data, err := h.messageSvc.PublicHistory(c.Query("room_id"))
	back.Result(c, data, err)
}

func (h *MessageHandler) History(c *gin.Context) {
	teamID := c.GetString("team_id")
	data, err := h.messageSvc.History(c.Query("room_id"), teamID)
	back.Result(c, data, err)
}

// Send is the REST fallback when no realtime connection exists. It still fans
// out so live connections observe REST-originated messages.
func (h *MessageHandler) Send(c *gin.Context) {
	var req chatRequest.SendMessageRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	teamID := c.GetString("team_id")
	data, err := h.realtimeSvc.SendMessage(req, teamID)
	back.Result(c, data, err)
}

func (h *MessageHandler) ListRooms(c *gin.Context) {
	teamID := c.GetString("team_id")
	data, err := h.messageSvc.ListRooms(teamID)
	back.Result(c, data, err)
}
