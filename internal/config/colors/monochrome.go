package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#121212",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		SelectedFg: "#121212",
		SelectedBg: "#D0D0D0",

		SuccessFg: "#FFFFFF",
		SuccessBg: "#1C1C1C",
		FailureFg: "#FFFFFF",
		FailureBg: "#3A3A3A",
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
	}
}
