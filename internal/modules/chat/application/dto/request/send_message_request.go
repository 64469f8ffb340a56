package request

// SendMessageRequest is shared by the realtime send_message event and the REST
// fallback POST /messages.
type SendMessageRequest struct {
	RoomId  string `json:"room_id"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
}
