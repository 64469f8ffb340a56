package request

// UpdateWidgetSettingsRequest mirrors what the dashboard sends: a widget-side
// position plus the launcher colors.
type UpdateWidgetSettingsRequest struct {
	Position      string `json:"position"` // "bottom-right" | "bottom-left"
	LauncherColor string `json:"launcher_color"`
	TextColor     string `json:"text_color"`
}
