package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

// LayerConfig controls which layers are visible during rendering.
// Layers without an explicit setting follow the default, which starts
// out visible.
type LayerConfig struct {
	visible       map[string]bool
	hideByDefault bool
}

// NewLayerConfig creates a new layer configuration with all layers visible by default
func NewLayerConfig() *LayerConfig {
	return &LayerConfig{
		visible: make(map[string]bool),
	}
}

// SetVisible sets the visibility of a specific layer
func (lc *LayerConfig) SetVisible(layer string, visible bool) {
	lc.visible[layer] = visible
}

// IsVisible returns whether a layer is visible
func (lc *LayerConfig) IsVisible(layer string) bool {
	if visible, exists := lc.visible[layer]; exists {
		return visible
	}
	return !lc.hideByDefault
}

// HideAll hides all layers
func (lc *LayerConfig) HideAll() {
	lc.visible = make(map[string]bool)
	lc.hideByDefault = true
}

// ShowAll shows all layers
func (lc *LayerConfig) ShowAll() {
	lc.visible = make(map[string]bool)
	lc.hideByDefault = false
}

// ShowOnly shows only the specified layers, hiding all others
func (lc *LayerConfig) ShowOnly(layers ...string) {
	lc.HideAll()
	for _, layer := range layers {
		lc.SetVisible(layer, true)
	}
}

// ShowSilkscreenOnly shows the silkscreen layers of both sides.
func (lc *LayerConfig) ShowSilkscreenOnly() {
	lc.ShowOnly(pcb.LayerFrontSilk, pcb.LayerBackSilk)
}

// ShowFabOnly shows the fabrication layers of both sides.
func (lc *LayerConfig) ShowFabOnly() {
	lc.ShowOnly(pcb.LayerFrontFab, pcb.LayerBackFab)
}

// HideSilkscreen hides the silkscreen layers, leaving the rest as is.
func (lc *LayerConfig) HideSilkscreen() {
	lc.SetVisible(pcb.LayerFrontSilk, false)
	lc.SetVisible(pcb.LayerBackSilk, false)
}

// layerPresets are the layer groups selectable by name.
var layerPresets = map[string]func(*LayerConfig){
	"all":     (*LayerConfig).ShowAll,
	"silk":    (*LayerConfig).ShowSilkscreenOnly,
	"fab":     (*LayerConfig).ShowFabOnly,
	"no-silk": (*LayerConfig).HideSilkscreen,
}

// PresetNames lists the names ApplyPreset accepts, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(layerPresets))
	for name := range layerPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset applies a named layer group: all, silk, fab or no-silk.
func (lc *LayerConfig) ApplyPreset(name string) error {
	apply, ok := layerPresets[name]
	if !ok {
		return fmt.Errorf("unknown layer preset '%s' (want one of %s)", name, strings.Join(PresetNames(), ", "))
	}
	apply(lc)
	return nil
}

// HideSide hides every layer of one board side ("F." or "B." prefix)
// that the board defines.
func (lc *LayerConfig) HideSide(layers []pcb.Layer, back bool) {
	for _, l := range layers {
		if (back && pcb.IsBackLayer(l.Name)) || (!back && pcb.IsFrontLayer(l.Name)) {
			lc.SetVisible(l.Name, false)
		}
	}
}
