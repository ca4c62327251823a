package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	want := Default()
	want.Theme = "Nord"
	want.Sketch = true
	want.HighContrast = true
	want.ActiveLayer = "B.SilkS"
	want.ShowInvisible = true
	want.HitAccuracy = 0.25

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": "eagle"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Theme != "eagle" || cfg.HitAccuracy != 0.1 || !cfg.ShowAnchors {
		t.Errorf("Load() = %+v, want theme set and other defaults kept", cfg)
	}
	if v := cfg.ViewSettings(); v.Theme != renderer.ThemeEagle {
		t.Errorf("ViewSettings().Theme = %v, want Eagle", v.Theme)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad json", `{"theme": `, "failed to parse config"},
		{"unknown theme", `{"theme": "solarized"}`, "unknown color theme"},
		{"negative accuracy", `{"hit_accuracy": -1}`, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDisplayOptions(t *testing.T) {
	cfg := Default()
	cfg.Sketch = true
	cfg.HighContrast = true
	cfg.ActiveLayer = "F.Fab"

	opts := cfg.DisplayOptions()
	if opts.TextFill != renderer.FillSketch || !opts.ContrastMode || opts.ActiveLayer != "F.Fab" || !opts.AllowHighContrast {
		t.Errorf("DisplayOptions() = %+v", opts)
	}

	cfg.ShowAnchors = false
	v := cfg.ViewSettings()
	if v.IsElementVisible(pcb.ElementAnchor) || v.IsElementVisible(pcb.ElementModTextInvisible) {
		t.Error("anchors and invisible texts should be hidden")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", "/home/test")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() unexpected error: %v", err)
	}
	if want := filepath.Join("/home/test", ".config", "opentracepcb", "config.json"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
