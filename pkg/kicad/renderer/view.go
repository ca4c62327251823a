package renderer

import (
	"image/color"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

// BoardView answers the visibility and colour questions asked while
// drawing board items.
type BoardView interface {
	LayerColor(layer string) color.NRGBA
	IsLayerVisible(layer string) bool
	IsElementVisible(e pcb.Element) bool
	ElementColor(e pcb.Element) color.NRGBA
}

// ViewSettings is the BoardView used by the viewer and the PNG export:
// a theme, per-layer visibility and per-element toggles.
type ViewSettings struct {
	Theme  ColorTheme
	Layers *LayerConfig

	hiddenElements map[pcb.Element]bool
	elementColors  map[pcb.Element]color.NRGBA
}

// NewViewSettings shows every layer and element. Invisible texts are
// hidden, as in KiCad's default view.
func NewViewSettings(theme ColorTheme) *ViewSettings {
	v := &ViewSettings{
		Theme:          theme,
		Layers:         NewLayerConfig(),
		hiddenElements: make(map[pcb.Element]bool),
		elementColors:  make(map[pcb.Element]color.NRGBA),
	}
	v.SetElementVisible(pcb.ElementModTextInvisible, false)
	return v
}

func (v *ViewSettings) LayerColor(layer string) color.NRGBA {
	return v.Theme.LayerColor(layer)
}

func (v *ViewSettings) IsLayerVisible(layer string) bool {
	return v.Layers.IsVisible(layer)
}

func (v *ViewSettings) IsElementVisible(e pcb.Element) bool {
	return !v.hiddenElements[e]
}

// SetElementVisible toggles a display element.
func (v *ViewSettings) SetElementVisible(e pcb.Element, visible bool) {
	v.hiddenElements[e] = !visible
}

func (v *ViewSettings) ElementColor(e pcb.Element) color.NRGBA {
	if c, ok := v.elementColors[e]; ok {
		return c
	}
	if c, ok := elementColors[e]; ok {
		return c
	}
	return ColorUnknown
}

// SetElementColor overrides the theme colour of a display element.
func (v *ViewSettings) SetElementColor(e pcb.Element, c color.NRGBA) {
	v.elementColors[e] = c
}

// FillMode selects how glyphs are drawn.
type FillMode int

const (
	FillFilled FillMode = iota
	FillSketch          // outlines only
)

func (m FillMode) String() string {
	if m == FillSketch {
		return "sketch"
	}
	return "filled"
}

// DisplayOptions are the per-view drawing switches.
type DisplayOptions struct {
	// ContrastMode dims everything that is not on ActiveLayer.
	ContrastMode bool
	ActiveLayer  string

	// AllowHighContrast is cleared by callers drawing transient items
	// (a text being dragged) that must keep their colour.
	AllowHighContrast bool

	TextFill FillMode
}

// DefaultDisplayOptions returns filled texts, no high contrast.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{AllowHighContrast: true, ActiveLayer: pcb.LayerFrontSilk}
}
