package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode
	AddFormMode             // Entering a new contact
	FilterMode              // Typing into the filter input
	HelpMode                // Displaying help screen
)

// String returns a short mode label for the status line
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case AddFormMode:
		return "ADD"
	case FilterMode:
		return "FILTER"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// UIState manages the user interface state.
// This includes the selected row, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted row in the visible (filtered) list
	selected int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// loadingDefaults is true while the seed set is pending behind its delay
	loadingDefaults bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Selected returns the highlighted row index
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected sets the highlighted row index without bounds checks
func (s *UIState) SetSelected(i int) {
	s.selected = i
}

// MoveSelection moves the highlight by delta, staying inside [0, count).
func (s *UIState) MoveSelection(delta, count int) {
	s.selected += delta
	s.ClampSelection(count)
}

// ClampSelection keeps the highlighted row inside a list of count rows.
func (s *UIState) ClampSelection(count int) {
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetWindowSize records the terminal dimensions
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// LoadingDefaults reports whether the seed set is pending
func (s *UIState) LoadingDefaults() bool {
	return s.loadingDefaults
}

// SetLoadingDefaults marks the seed set as pending or done
func (s *UIState) SetLoadingDefaults(loading bool) {
	s.loadingDefaults = loading
}
