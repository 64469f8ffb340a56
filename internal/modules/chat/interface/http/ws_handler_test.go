package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chatRequest "LiveDesk/internal/modules/chat/application/dto/request"
	chatRespond "LiveDesk/internal/modules/chat/application/dto/respond"
	"LiveDesk/pkg/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type fakeRealtime struct{}

func (f *fakeRealtime) Ingest(req chatRequest.SendMessageRequest, teamID string) (*chatRespond.MessageItem, error) {
	return &chatRespond.MessageItem{Id: "M1", RoomId: req.RoomId, Content: req.Content, Sender: req.Sender}, nil
}

func (f *fakeRealtime) SendMessage(req chatRequest.SendMessageRequest, teamID string) (*chatRespond.MessageItem, error) {
	return f.Ingest(req, teamID)
}

func (f *fakeRealtime) AuthorizeJoin(teamID string, roomID string) error {
	return nil
}

func dialTestServer(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewWsHandler(ws.NewHub(), &fakeRealtime{})
	r := gin.New()
	r.GET("/ws", h.Connect)
	srv := httptest.NewServer(r)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?team_id=team-1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame map[string]interface{}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return frame
}

func TestMalformedFrameKeepsConnection(t *testing.T) {
	conn, done := dialTestServer(t)
	defer done()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	frame := readFrame(t, conn)
	if frame["type"] != chatRespond.EventError {
		t.Fatalf("frame = %v, want error frame", frame)
	}

	// The connection survives and still handles events.
	if err := conn.WriteJSON(map[string]string{"type": "bogus"}); err != nil {
		t.Fatalf("write after malformed frame: %v", err)
	}
	frame = readFrame(t, conn)
	if frame["type"] != chatRespond.EventError || frame["message"] != "unknown event type" {
		t.Fatalf("frame = %v", frame)
	}
}

func TestConnectRejectsAnonymousHandshake(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewWsHandler(ws.NewHub(), &fakeRealtime{})
	r := gin.New()
	r.GET("/ws", h.Connect)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	if _, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Fatal("handshake without token or team_id accepted")
	}
}

func TestOnlineAgentsWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewWsHandler(ws.NewHub(), &fakeRealtime{})
	r := gin.New()
	r.GET("/presence/agents", func(c *gin.Context) {
		c.Set("team_id", "team-1")
		h.OnlineAgents(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/presence/agents", nil))
	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Code int      `json:"code"`
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Code != 200 || len(body.Data) != 0 {
		t.Fatalf("body = %s", w.Body.String())
	}
}
