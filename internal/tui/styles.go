package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/phonebook/internal/tui/theme"
)

// Style definitions for the contact list UI.
// Built on demand so a theme loaded after startup is picked up.

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Padding(0, 1)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		MarginTop(1)
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func rowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		PaddingLeft(2)
}

func selectedRowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg))
}

func buttonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)
}

func formBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)
}

func statusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		MarginTop(1)
}
