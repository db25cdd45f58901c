package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Contacts
	AddContact    string `yaml:"add_contact"`
	DeleteContact string `yaml:"delete_contact"`
	LoadDefaults  string `yaml:"load_defaults"`

	// Filtering
	Filter      string `yaml:"filter"`
	ClearFilter string `yaml:"clear_filter"`

	// Navigation
	NextContact string `yaml:"next_contact"`
	PrevContact string `yaml:"prev_contact"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddContact:    "a",
		DeleteContact: "d",
		LoadDefaults:  "D",

		Filter:      "/",
		ClearFilter: "c",

		NextContact: "j",
		PrevContact: "k",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddContact == "" {
		k.AddContact = defaults.AddContact
	}
	if k.DeleteContact == "" {
		k.DeleteContact = defaults.DeleteContact
	}
	if k.LoadDefaults == "" {
		k.LoadDefaults = defaults.LoadDefaults
	}
	if k.Filter == "" {
		k.Filter = defaults.Filter
	}
	if k.ClearFilter == "" {
		k.ClearFilter = defaults.ClearFilter
	}
	if k.NextContact == "" {
		k.NextContact = defaults.NextContact
	}
	if k.PrevContact == "" {
		k.PrevContact = defaults.PrevContact
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
