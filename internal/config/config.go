// Package config stores the otp settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer"
)

// AppConfig stores persistent application settings
type AppConfig struct {
	Theme string `json:"theme"` // display name, see renderer.ThemeNames

	// Display options
	Sketch        bool   `json:"sketch_text"`
	HighContrast  bool   `json:"high_contrast"`
	ActiveLayer   string `json:"active_layer"`
	ShowInvisible bool   `json:"show_invisible_text"`
	ShowAnchors   bool   `json:"show_anchors"`

	// HitAccuracy is the pick tolerance in mm.
	HitAccuracy float64 `json:"hit_accuracy"`
}

// Default returns the settings used when no file exists.
func Default() *AppConfig {
	return &AppConfig{
		Theme:       renderer.ThemeClassic.String(),
		ActiveLayer: pcb.LayerFrontSilk,
		ShowAnchors: true,
		HitAccuracy: 0.1,
	}
}

// DefaultPath returns the platform config file path
// (%APPDATA%\OpenTracePCB\config.json or ~/.config/opentracepcb/config.json).
func DefaultPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "OpenTracePCB", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "opentracepcb", "config.json"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// fields missing from the file keep their default values.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that cannot be used as is.
func (c *AppConfig) Validate() error {
	if _, err := renderer.ParseTheme(c.Theme); err != nil {
		return err
	}
	if c.HitAccuracy < 0 {
		return fmt.Errorf("hit_accuracy must not be negative, got %v", c.HitAccuracy)
	}
	return nil
}

// ViewSettings builds the renderer view from the config.
func (c *AppConfig) ViewSettings() *renderer.ViewSettings {
	theme, err := renderer.ParseTheme(c.Theme)
	if err != nil {
		theme = renderer.ThemeClassic
	}
	v := renderer.NewViewSettings(theme)
	v.SetElementVisible(pcb.ElementModTextInvisible, c.ShowInvisible)
	v.SetElementVisible(pcb.ElementAnchor, c.ShowAnchors)
	return v
}

// DisplayOptions builds the renderer display options from the config.
func (c *AppConfig) DisplayOptions() renderer.DisplayOptions {
	opts := renderer.DefaultDisplayOptions()
	opts.ContrastMode = c.HighContrast
	if c.ActiveLayer != "" {
		opts.ActiveLayer = c.ActiveLayer
	}
	if c.Sketch {
		opts.TextFill = renderer.FillSketch
	}
	return opts
}
