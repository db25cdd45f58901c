package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLoadDelay is how long the UI shows "Loading" before reading the store
	DefaultLoadDelay = 500 * time.Millisecond
	// DefaultDefaultsDelay is how long the UI waits before applying the seed set
	DefaultDefaultsDelay = 500 * time.Millisecond
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	Storage     StorageConfig `yaml:"storage"`
}

// StorageConfig controls where contacts are persisted and the artificial UI delays
type StorageConfig struct {
	// Path to the SQLite database; empty means ~/.phonebook/phonebook.db
	Path          string        `yaml:"path"`
	LoadDelay     time.Duration `yaml:"load_delay"`
	DefaultsDelay time.Duration `yaml:"defaults_delay"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from PHONEBOOK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("PHONEBOOK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides that win over the config file
func applyEnv(config *Config) {
	if dbPath := os.Getenv("PHONEBOOK_DB"); dbPath != "" {
		config.Storage.Path = dbPath
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path.
// A missing file yields the defaults.
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath, creating parent directories
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load reads and Save writes the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "phonebook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "phonebook", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Storage.applyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.LoadDelay <= 0 {
		s.LoadDelay = DefaultLoadDelay
	}
	if s.DefaultsDelay <= 0 {
		s.DefaultsDelay = DefaultDefaultsDelay
	}
}
