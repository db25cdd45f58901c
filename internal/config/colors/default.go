package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent:     "#874BFD",
		Background: "#1C1C1C",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Selection
		SelectedFg: "#FFFFFF",
		SelectedBg: "#3A3A3A",

		// Notifications
		SuccessFg: "#5FD75F",
		SuccessBg: "#005F00",
		FailureFg: "#FF0000",
		FailureBg: "#5F0000",
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
	}
}
