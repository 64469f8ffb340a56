package respond

type WidgetSettingsItem struct {
	Position      string `json:"position"`
	LauncherColor string `json:"launcher_color"`
	TextColor     string `json:"text_color"`
	LauncherLabel string `json:"launcher_label"`
}
