package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/phonebook/internal/tui/theme"
)

const (
	fieldName = iota
	fieldNumber
	fieldCount
)

// ContactForm collects a name and a number for a new contact
type ContactForm struct {
	name   textinput.Model
	number textinput.Model
	focus  int

	// Err is shown under the form when the last submit was refused
	Err string
}

// NewContactForm creates an empty form with the name field focused
func NewContactForm() *ContactForm {
	name := textinput.New()
	name.Placeholder = "Rosie Simpson"
	name.CharLimit = 100

	number := textinput.New()
	number.Placeholder = "459-12-56"
	number.CharLimit = 30

	return &ContactForm{name: name, number: number}
}

// Open resets the form and focuses the name field
func (f *ContactForm) Open() tea.Cmd {
	f.name.Reset()
	f.number.Reset()
	f.Err = ""
	f.focus = fieldName
	f.number.Blur()
	return f.name.Focus()
}

// Close blurs both inputs
func (f *ContactForm) Close() {
	f.name.Blur()
	f.number.Blur()
}

// NextField moves focus forward, wrapping around
func (f *ContactForm) NextField() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// PrevField moves focus backward, wrapping around
func (f *ContactForm) PrevField() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *ContactForm) setFocus(field int) tea.Cmd {
	f.focus = field
	if field == fieldName {
		f.number.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.number.Focus()
}

// OnLastField reports whether the number field has focus
func (f *ContactForm) OnLastField() bool {
	return f.focus == fieldNumber
}

// Update forwards a message to the focused input
func (f *ContactForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.number, cmd = f.number.Update(msg)
	}
	return cmd
}

// Name returns the trimmed name value
func (f *ContactForm) Name() string {
	return strings.TrimSpace(f.name.Value())
}

// Number returns the trimmed number value
func (f *ContactForm) Number() string {
	return strings.TrimSpace(f.number.Value())
}

// View renders both fields with their labels
func (f *ContactForm) View() string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.FailureFg))

	parts := []string{
		label.Render("Name"),
		f.name.View(),
		label.Render("Number"),
		f.number.View(),
	}
	if f.Err != "" {
		parts = append(parts, errStyle.Render(f.Err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FilterInput is the single-line "find contacts by name" input
type FilterInput struct {
	input textinput.Model
}

// NewFilterInput creates an unfocused filter input
func NewFilterInput() *FilterInput {
	input := textinput.New()
	input.Placeholder = "type a name"
	input.CharLimit = 100
	return &FilterInput{input: input}
}

// Open focuses the input, starting from the current filter text
func (fi *FilterInput) Open(current string) tea.Cmd {
	fi.input.SetValue(current)
	fi.input.CursorEnd()
	return fi.input.Focus()
}

// Close blurs the input
func (fi *FilterInput) Close() {
	fi.input.Blur()
}

// Update forwards a message to the input
func (fi *FilterInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fi.input, cmd = fi.input.Update(msg)
	return cmd
}

// Value returns the raw input text
func (fi *FilterInput) Value() string {
	return fi.input.Value()
}

// SetValue replaces the input text
func (fi *FilterInput) SetValue(v string) {
	fi.input.SetValue(v)
}

// View renders the input
func (fi *FilterInput) View() string {
	return fi.input.View()
}
