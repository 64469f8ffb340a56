package ws

import (
	"encoding/json"
	"sync"
	"time"

	"LiveDesk/pkg/zlog"

	"github.com/gorilla/websocket"
)

const (
	KindAgent   = "agent"
	KindVisitor = "visitor"
)

// Identity is the session context resolved once at connection time and never
// re-inferred downstream. Visitors have no UserID.
type Identity struct {
	Kind   string
	TeamID string
	UserID string
}

type Client struct {
	Identity

	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	closeOnce sync.Once
}

func NewClient(id Identity, conn *websocket.Conn) *Client {
	return &Client{
		Identity: id,
		conn:     conn,
		send:     make(chan []byte, 64),
		done:     make(chan struct{}),
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// enqueue hands a payload to the write pump. Returns false when the client is
// closed or its buffer is full.
func (c *Client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// SendJSON marshals v through the hub-independent path, used for direct
// per-connection frames such as error acknowledgments.
func (c *Client) SendJSON(v interface{}) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		zlog.Error("ws frame marshal failed: " + err.Error())
		return false
	}
	return c.enqueue(payload)
}

func (c *Client) WritePump() {
	if c.conn == nil {
		return
	}
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				zlog.Error(err.Error())
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
