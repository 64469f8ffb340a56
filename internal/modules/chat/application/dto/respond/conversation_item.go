package respond

type ConversationItem struct {
	Id                string `json:"id"`
	RoomId            string `json:"room_id"`
	TeamId            string `json:"team_id"`
	LastSender        string `json:"last_sender,omitempty"`
	LastPreview       string `json:"last_preview,omitempty"`
	LastMessageAt     string `json:"last_message_at,omitempty"`
	UnreadCount       int    `json:"unread_count"`
	InboxId           string `json:"inbox_id,omitempty"`
	Status            string `json:"status"`
	AssigneeId        string `json:"assignee_id,omitempty"`
	LastAgentReadAt   string `json:"last_agent_read_at,omitempty"`
	LastReadByAgentId string `json:"last_read_by_agent_id,omitempty"`
	CreatedAt         string `json:"created_at"`
}
