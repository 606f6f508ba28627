// Package config implements the user configuration document (§6): window
// size, fullscreen, logical resolution, console styling, and input
// bindings, persisted as JSON under the platform's user-data root.
//
// Grounded on the original engine's core/config.c static GameConfig
// defaults, translated from C struct literals to a Go struct with
// encoding/json tags (no JSON library appears anywhere in the example
// corpus, so the standard library is used — see DESIGN.md).
package config

import (
	"encoding/json"
	"fmt"

	"github.com/qbradq/boomer/input"
)

// Config is the full user-config document (§6 "User config JSON").
type Config struct {
	WindowSize        int    `json:"window_size"`
	Fullscreen        bool   `json:"fullscreen"`
	LogicalResolution [2]int `json:"logical_resolution"`
	ConsoleBackground string `json:"console_background"`
	ConsoleText       string `json:"console_text"`
	ConsoleFont       string `json:"console_font"`
	ConsoleFontSize   int    `json:"console_font_size"`

	Bindings *input.Bindings `json:"-"`
}

// Default returns the builtin configuration, matching the original
// engine's static initializer in core/config.c.
func Default() *Config {
	return &Config{
		WindowSize:        3,
		Fullscreen:        false,
		LogicalResolution: [2]int{320, 180},
		ConsoleBackground: "#000000AA",
		ConsoleText:       "#FFFFFFFF",
		ConsoleFont:       "fonts/unscii-8-thin.ttf",
		ConsoleFontSize:   8,
		Bindings:          input.NewBindings(),
	}
}

// wireConfig mirrors Config's JSON-visible fields plus the raw "input"
// object, which is decoded separately through input.LoadBindings so that
// an unknown key name degrades gracefully instead of failing the whole
// document.
type wireConfig struct {
	WindowSize        int             `json:"window_size"`
	Fullscreen        bool            `json:"fullscreen"`
	LogicalResolution [2]int          `json:"logical_resolution"`
	ConsoleBackground string          `json:"console_background"`
	ConsoleText       string          `json:"console_text"`
	ConsoleFont       string          `json:"console_font"`
	ConsoleFontSize   int             `json:"console_font_size"`
	Input             json.RawMessage `json:"input,omitempty"`
}

// Load parses data into a Config, falling back to Default() entirely on
// a parse failure (§7 "JSON parse failure: the whole file is ignored,
// defaults remain").
func Load(data []byte) *Config {
	cfg := Default()
	if len(data) == 0 {
		return cfg
	}
	var wire wireConfig
	if err := json.Unmarshal(data, &wire); err != nil {
		return Default()
	}
	cfg.WindowSize = wire.WindowSize
	cfg.Fullscreen = wire.Fullscreen
	cfg.LogicalResolution = wire.LogicalResolution
	cfg.ConsoleBackground = wire.ConsoleBackground
	cfg.ConsoleText = wire.ConsoleText
	cfg.ConsoleFont = wire.ConsoleFont
	cfg.ConsoleFontSize = wire.ConsoleFontSize
	if len(wire.Input) > 0 {
		if b, err := input.LoadBindings(wire.Input); err == nil {
			cfg.Bindings = b
		}
	}
	return cfg
}

// Save serializes cfg to the §6 JSON shape.
func Save(cfg *Config) ([]byte, error) {
	inputData, err := input.SaveBindings(cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("config: save input bindings: %w", err)
	}
	wire := wireConfig{
		WindowSize:        cfg.WindowSize,
		Fullscreen:        cfg.Fullscreen,
		LogicalResolution: cfg.LogicalResolution,
		ConsoleBackground: cfg.ConsoleBackground,
		ConsoleText:       cfg.ConsoleText,
		ConsoleFont:       cfg.ConsoleFont,
		ConsoleFontSize:   cfg.ConsoleFontSize,
		Input:             inputData,
	}
	return json.MarshalIndent(&wire, "", "  ")
}
