// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hy4ri/widget-tui/internal/colorpick"
	"gopkg.in/yaml.v3"
)

// Widget names accepted by UIConfig.StartWidget.
const (
	WidgetColor = "color"
	WidgetTodo  = "todo"
)

// ErrInvalidColor is returned by Validate for a malformed color entry.
var ErrInvalidColor = errors.New("invalid color")

// Config represents the application configuration.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Color ColorConfig `yaml:"color"`
	Log   LogConfig   `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode     bool   `yaml:"vim_mode"`
	StartWidget string `yaml:"start_widget,omitempty"` // "color" or "todo"
}

// ColorConfig seeds the color selector.
type ColorConfig struct {
	Initial string   `yaml:"initial,omitempty"`
	Palette []string `yaml:"palette,omitempty"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so
// logs are always written to a file.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	palette := make([]string, len(colorpick.DefaultPalette))
	copy(palette, colorpick.DefaultPalette)

	return &Config{
		UI: UIConfig{
			VimMode:     true,
			StartWidget: WidgetColor,
		},
		Color: ColorConfig{
			Initial: colorpick.DefaultColor,
			Palette: palette,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "widget-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the default configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath returns the log file to use, falling back to the config directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "widget-tui.log"), nil
}

// Load reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that the UI cannot recover from at runtime.
func (c *Config) Validate() error {
	switch c.UI.StartWidget {
	case "", WidgetColor, WidgetTodo:
	default:
		return fmt.Errorf("unknown start_widget %q", c.UI.StartWidget)
	}

	if _, err := colorpick.ParseHex(c.Color.Initial); err != nil {
		return fmt.Errorf("%w: color.initial: %w", ErrInvalidColor, err)
	}
	for i, p := range c.Color.Palette {
		if _, err := colorpick.ParseHex(p); err != nil {
			return fmt.Errorf("%w: color.palette[%d]: %w", ErrInvalidColor, i, err)
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
