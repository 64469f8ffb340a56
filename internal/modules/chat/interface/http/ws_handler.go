package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	chatRequest "LiveDesk/internal/modules/chat/application/dto/request"
	chatRespond "LiveDesk/internal/modules/chat/application/dto/respond"
	chatService "LiveDesk/internal/modules/chat/application/service"
	"LiveDesk/pkg/back"
	"LiveDesk/pkg/redis"
	"LiveDesk/pkg/util/myjwt"
	"LiveDesk/pkg/ws"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WsHandler struct {
	hub *ws.Hub
	svc chatService.RealtimeService
}

func NewWsHandler(hub *ws.Hub, svc chatService.RealtimeService) *WsHandler {
	return &WsHandler{hub: hub, svc: svc}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect is the gate every realtime connection passes once. The handshake
// carries either a bearer token (agent) or a tenant id (visitor) as query
// params, since browser WebSocket clients cannot set custom headers.
func (h *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	teamID := c.Query("team_id")

	var identity ws.Identity
	switch {
	case token != "":
		claims, err := myjwt.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		identity = ws.Identity{Kind: ws.KindAgent, TeamID: claims.TeamId, UserID: claims.UserId}
	case teamID != "":
		// Widget path: a raw team id today, a public key later.
		identity = ws.Identity{Kind: ws.KindVisitor, TeamID: teamID}
	default:
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error(err.Error())
		return
	}

	client := ws.NewClient(identity, conn)
	h.hub.Register(client)
	h.presenceOnline(identity)

	defer func() {
		h.hub.Unregister(client)
		h.presenceOffline(identity)
	}()

	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	go client.WritePump()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zlog.Warn(err.Error())
			}
			return
		}

		var ev chatRequest.ClientEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			// Parse failures are recoverable; answer and keep the connection.
			client.SendJSON(chatRespond.NewError("malformed event"))
			continue
		}

		switch ev.Type {
		case chatRequest.EventJoin:
			if err := h.svc.AuthorizeJoin(identity.TeamID, ev.RoomId); err != nil {
				client.SendJSON(chatRespond.NewError(clientMessage(err)))
				continue
			}
			h.hub.JoinRoom(client, ev.RoomId)

		case chatRequest.EventSendMessage:
			req := chatRequest.SendMessageRequest{
				RoomId:  ev.RoomId,
				Content: ev.Content,
				Sender:  ev.Sender,
			}
			if _, err := h.svc.SendMessage(req, identity.TeamID); err != nil {
				client.SendJSON(chatRespond.NewError(clientMessage(err)))
			}

		default:
			client.SendJSON(chatRespond.NewError("unknown event type"))
		}
	}
}

func clientMessage(err error) string {
	if e, ok := err.(*xerr.CodeError); ok {
		return e.Message
	}
	return xerr.ErrServerError.Message
}

func presenceKey(teamID string) string {
	return "presence:team:" + teamID
}

// OnlineAgents lists the agent ids of the team with a live connection. Without
// redis the list is empty rather than an error; presence is best-effort.
func (h *WsHandler) OnlineAgents(c *gin.Context) {
	teamID := c.GetString("team_id")
	if teamID == "" {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	agents := []string{}
	if redis.IsConnected() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		members, err := redis.SMembers(ctx, presenceKey(teamID))
		if err != nil {
			zlog.Error(err.Error())
			back.Error(c, xerr.InternalServerError, xerr.ErrServerError.Message)
			return
		}
		agents = members
	}
	back.Success(c, agents)
}

func (h *WsHandler) presenceOnline(identity ws.Identity) {
	if identity.Kind != ws.KindAgent || !redis.IsConnected() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := redis.SAdd(ctx, presenceKey(identity.TeamID), identity.UserID); err != nil {
		zlog.Warn("presence online update failed: " + err.Error())
	}
}

func (h *WsHandler) presenceOffline(identity ws.Identity) {
	if identity.Kind != ws.KindAgent || !redis.IsConnected() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := redis.SRem(ctx, presenceKey(identity.TeamID), identity.UserID); err != nil {
		zlog.Warn("presence offline update failed: " + err.Error())
	}
}
