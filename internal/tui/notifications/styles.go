package notifications

import "github.com/thenoetrevino/phonebook/internal/tui/theme"

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func (s Severity) style() style {
	switch s {
	case Success:
		return style{
			icon:       "✓",
			title:      "Success",
			foreground: theme.SuccessFg,
			background: theme.SuccessBg,
		}
	case Failure:
		return style{
			icon:       "✕",
			title:      "Failure",
			foreground: theme.FailureFg,
			background: theme.FailureBg,
		}
	default:
		return style{
			icon:       "🔔",
			title:      "Info",
			foreground: theme.InfoFg,
			background: theme.InfoBg,
		}
	}
}
