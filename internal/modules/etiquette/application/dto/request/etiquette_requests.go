package request

type CreateEtiquetteRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Pointer fields distinguish "not provided" from "set to empty".
type UpdateEtiquetteRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}
