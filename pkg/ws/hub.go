package ws

import (
	"encoding/json"
	"sync"
	"time"

	"LiveDesk/pkg/zlog"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// TeamGroup is the broadcast group every agent of a tenant joins at connect time.
func TeamGroup(teamID string) string {
	return "team:" + teamID
}

// Hub tracks which live connections are subscribed to which rooms, plus the
// tenant-wide agent groups. Purely in-process; clients re-subscribe on reconnect.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	groups map[string]map[*Client]struct{}
	joined map[*Client]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		groups: make(map[string]map[*Client]struct{}),
		joined: make(map[*Client]map[string]struct{}),
	}
}

// Register attaches a connection. Agents are placed into their tenant group so
// they observe every message of the team without joining each room.
func (h *Hub) Register(c *Client) {
	if c == nil || c.TeamID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.joined[c] = make(map[string]struct{})
	if c.Kind == KindAgent {
		group := TeamGroup(c.TeamID)
		set := h.groups[group]
		if set == nil {
			set = make(map[*Client]struct{})
			h.groups[group] = set
		}
		set[c] = struct{}{}
	}
}

// JoinRoom subscribes the connection to a room. Idempotent.
func (h *Hub) JoinRoom(c *Client, roomID string) {
	if c == nil || roomID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.joined[c]; !ok {
		// not registered (or already unregistered)
		return
	}
	set := h.rooms[roomID]
	if set == nil {
		set = make(map[*Client]struct{})
		h.rooms[roomID] = set
	}
	set[c] = struct{}{}
	h.joined[c][roomID] = struct{}{}
}

// Unregister removes the connection from every room and group and closes it.
func (h *Hub) Unregister(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	for roomID := range h.joined[c] {
		set := h.rooms[roomID]
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, roomID)
		}
	}
	delete(h.joined, c)
	if c.Kind == KindAgent {
		group := TeamGroup(c.TeamID)
		set := h.groups[group]
		delete(set, c)
		if len(set) == 0 {
			delete(h.groups, group)
		}
	}
	h.mu.Unlock()
	c.Close()
}

// BroadcastToRoom delivers v to every connection subscribed to the room.
func (h *Hub) BroadcastToRoom(roomID string, v interface{}) {
	h.mu.RLock()
	targets := snapshot(h.rooms[roomID])
	h.mu.RUnlock()
	h.deliver(targets, v)
}

// BroadcastToTeam delivers v to every agent connection of the tenant group.
func (h *Hub) BroadcastToTeam(teamID string, v interface{}) {
	h.mu.RLock()
	targets := snapshot(h.groups[TeamGroup(teamID)])
	h.mu.RUnlock()
	h.deliver(targets, v)
}

// RoomSize reports the current number of subscribers of a room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func snapshot(set map[*Client]struct{}) []*Client {
	if len(set) == 0 {
		return nil
	}
	out := make([]*Client, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// deliver is best-effort and at-most-once per connection: a client whose send
// buffer is full is dropped without affecting the remaining subscribers.
func (h *Hub) deliver(targets []*Client, v interface{}) {
	if len(targets) == 0 {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		zlog.Error("ws broadcast marshal failed: " + err.Error())
		return
	}
	for _, c := range targets {
		if !c.enqueue(payload) {
			h.Unregister(c)
		}
	}
}
