package respond

type EtiquetteItem struct {
	Id          string `json:"id"`
	TeamId      string `json:"team_id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}
