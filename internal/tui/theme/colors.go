package theme

import "github.com/thenoetrevino/phonebook/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Background string
	Title      string
	Subtle     string
	Normal     string
	SelectedFg string
	SelectedBg string
	SuccessFg  string
	SuccessBg  string
	FailureFg  string
	FailureBg  string
	InfoFg     string
	InfoBg     string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	FailureFg = colors.FailureFg
	FailureBg = colors.FailureBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
}
