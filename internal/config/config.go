package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultDateFormat      = "2006-01-02 15:04"
	DefaultErrorClearDelay = 10
	DefaultMaxLogFiles     = 1000
	DefaultPaging          = "auto"
	DefaultStyle           = "auto"
)

// Valid enum values
var (
	ValidPagingModes = []string{"auto", "always", "never"}
	ValidStyles      = []string{"auto", "light", "dark"}
)

// Colors holds the graph colour names or ANSI codes
type Colors struct {
	Graph1 string `yaml:"graph1"`
	Graph2 string `yaml:"graph2"`
	Head   string `yaml:"head"`
}

// GitConfig holds extra log producer arguments
type GitConfig struct {
	DefaultRange string   `yaml:"default_range,omitempty"`
	ExtraArgs    []string `yaml:"extra_args,omitempty"`
}

// Config represents the structure of ~/.config/gittree/config.yml
type Config struct {
	Cache            bool              `yaml:"cache"`
	Colors           Colors            `yaml:"colors"`
	ConfirmDangerous bool              `yaml:"confirm_dangerous"`
	DateFormat       string            `yaml:"date_format"`
	Debug            bool              `yaml:"debug,omitempty"`
	ErrorClearDelay  int               `yaml:"error_clear_delay"`
	Git              GitConfig         `yaml:"git"`
	Keys             KeyBindingsConfig `yaml:"keys,omitempty"`
	MaxLogFiles      int               `yaml:"max_log_files"`
	NoColor          bool              `yaml:"no_color"`
	Paging           string            `yaml:"paging"`
	Style            string            `yaml:"style"`
	Unicode          bool              `yaml:"unicode"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Cache: true,
		Colors: Colors{
			Graph1: "blue",
			Graph2: "magenta",
			Head:   "cyan",
		},
		ConfirmDangerous: true,
		DateFormat:       DefaultDateFormat,
		ErrorClearDelay:  DefaultErrorClearDelay,
		MaxLogFiles:      DefaultMaxLogFiles,
		Paging:           DefaultPaging,
		Style:            DefaultStyle,
	}
}

// Load reads the config file at path over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enum fields and numeric bounds
func (c *Config) Validate() error {
	if !contains(ValidStyles, c.Style) {
		return fmt.Errorf("style must be one of %v, got '%s'", ValidStyles, c.Style)
	}
	if !contains(ValidPagingModes, c.Paging) {
		return fmt.Errorf("paging must be one of %v, got '%s'", ValidPagingModes, c.Paging)
	}
	if c.DateFormat == "" {
		return fmt.Errorf("date_format cannot be empty")
	}
	if c.ErrorClearDelay < 0 {
		return fmt.Errorf("error_clear_delay cannot be negative")
	}
	if c.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative")
	}
	return nil
}

// Save writes the config to path while holding an exclusive file lock
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
