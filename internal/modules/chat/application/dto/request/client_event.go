package request

// Client event types on the realtime channel.
const (
	EventJoin        = "join"
	EventSendMessage = "send_message"
)

// ClientEvent is the single inbound frame shape; Type selects the handling.
type ClientEvent struct {
	Type    string `json:"type"`
	RoomId  string `json:"room_id"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
}
