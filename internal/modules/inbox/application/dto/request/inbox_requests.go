package request

type CreateInboxRequest struct {
	Name string `json:"name"`
}

type RenameInboxRequest struct {
	Name string `json:"name"`
}
