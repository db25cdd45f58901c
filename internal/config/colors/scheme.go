package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, selection marker)
	Accent string `yaml:"accent"`

	// Background for the whole screen
	Background string `yaml:"background"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Selected row
	SelectedFg string `yaml:"selected_fg"`
	SelectedBg string `yaml:"selected_bg"`

	// Notification colors (foreground/background pairs)
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	FailureFg string `yaml:"failure_fg"`
	FailureBg string `yaml:"failure_bg"`
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.SelectedFg, preset.SelectedFg)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.SuccessFg, preset.SuccessFg)
	fill(&c.SuccessBg, preset.SuccessBg)
	fill(&c.FailureFg, preset.FailureFg)
	fill(&c.FailureBg, preset.FailureBg)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
}

// MergeFrom overrides colors with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.SelectedFg, other.SelectedFg)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.SuccessFg, other.SuccessFg)
	merge(&c.SuccessBg, other.SuccessBg)
	merge(&c.FailureFg, other.FailureFg)
	merge(&c.FailureBg, other.FailureBg)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
}
