// Package config handles input viewer configuration loading and management.
package config

import (
	"fmt"
	"strings"
)

// Input backends.
const (
	BackendSDL    = "sdl"
	BackendEbiten = "ebiten"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// InputConfig holds input tracking settings.
type InputConfig struct {
	Backend string `yaml:"backend"` // "sdl" or "ebiten"

	// Logical size handed to the pointer tracker every frame.
	// Zero means the current drawable size.
	LogicalWidth  int `yaml:"logical_width"`
	LogicalHeight int `yaml:"logical_height"`

	TraceEdges bool `yaml:"trace_edges"` // log every press/release at debug level
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Input View",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Input: InputConfig{
			Backend: BackendSDL,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate normalizes the config and rejects values the viewer cannot use.
func (c *Config) Validate() error {
	c.Input.Backend = strings.ToLower(strings.TrimSpace(c.Input.Backend))
	switch c.Input.Backend {
	case BackendSDL, BackendEbiten:
	default:
		return fmt.Errorf("unknown input backend %q", c.Input.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Input.LogicalWidth < 0 || c.Input.LogicalHeight < 0 {
		return fmt.Errorf("invalid logical size %dx%d", c.Input.LogicalWidth, c.Input.LogicalHeight)
	}
	return nil
}
