package respond

type InboxItem struct {
	Id        string `json:"id"`
	TeamId    string `json:"team_id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}
