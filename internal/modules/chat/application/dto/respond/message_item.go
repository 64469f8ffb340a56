package respond

type MessageItem struct {
	Id        string `json:"id"`
	RoomId    string `json:"room_id"`
	TeamId    string `json:"team_id,omitempty"`
	Content   string `json:"content"`
	Sender    string `json:"sender"`
	CreatedAt string `json:"created_at"`
}

// Server event types on the realtime channel.
const (
	EventNewMessage = "new_message"
	EventError      = "error"
)

// NewMessageEvent is the fan-out frame: the same immutable payload goes to the
// room subscribers and to the tenant group.
type NewMessageEvent struct {
	Type string `json:"type"`
	MessageItem
}

// ErrorEvent acknowledges a malformed or rejected client event.
type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) ErrorEvent {
	return ErrorEvent{Type: EventError, Message: message}
}
