package renderer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

// ColorTheme selects one of the built in layer palettes.
type ColorTheme int

const (
	ThemeClassic ColorTheme = iota
	ThemeKiCad2020
	ThemeBlueTone
	ThemeEagle
	ThemeNord
)

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 255} }

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

// palette is the colour set of one theme. Layers missing from a palette
// use the classic colour.
type palette struct {
	name      string
	substrate color.NRGBA
	layers    map[string]color.NRGBA
}

var palettes = map[ColorTheme]palette{
	ThemeClassic: {
		name:      "Classic",
		substrate: rgb(20, 90, 50),
		layers: map[string]color.NRGBA{
			pcb.LayerFrontCu: rgb(200, 52, 52),
			pcb.LayerBackCu:  rgb(77, 127, 196),
			"In1.Cu":         rgb(127, 200, 127),
			"In2.Cu":         rgb(206, 125, 44),

			pcb.LayerFrontSilk: rgb(242, 237, 161),
			pcb.LayerBackSilk:  rgb(232, 178, 167),
			"F.Fab":            rgb(175, 175, 175),
			"B.Fab":            rgb(88, 93, 132),
			"F.CrtYd":          rgb(255, 38, 226),
			"B.CrtYd":          rgb(38, 233, 255),

			"F.Mask":  rgba(216, 100, 255, 102),
			"B.Mask":  rgba(2, 255, 238, 102),
			"F.Paste": rgba(180, 160, 154, 230),
			"B.Paste": rgba(0, 194, 194, 230),
			"F.Adhes": rgb(132, 0, 132),
			"B.Adhes": rgb(0, 0, 132),

			"Dwgs.User": rgb(194, 194, 194),
			"Cmts.User": rgb(89, 148, 220),
			"Eco1.User": rgb(180, 219, 210),
			"Eco2.User": rgb(216, 200, 82),
			"Edge.Cuts": rgb(208, 210, 205),
			"Margin":    rgb(255, 38, 226),
		},
	},
	ThemeKiCad2020: {
		name:      "KiCad 2020",
		substrate: rgb(25, 95, 55),
		layers: map[string]color.NRGBA{
			pcb.LayerFrontCu: rgb(179, 31, 31),
			pcb.LayerBackCu:  rgb(12, 98, 179),
			"In1.Cu":         rgb(194, 194, 0),
			"In2.Cu":         rgb(194, 0, 194),
			"F.Mask":         rgba(132, 0, 132, 102),
			"B.Mask":         rgba(2, 132, 132, 102),
			"Edge.Cuts":      rgb(255, 255, 0),
			"F.CrtYd":        rgb(255, 0, 255),
			"B.CrtYd":        rgb(0, 255, 255),
			"F.Fab":          rgb(128, 128, 128),
			"B.Fab":          rgb(64, 64, 128),
			"Dwgs.User":      rgb(255, 255, 255),
			"Cmts.User":      rgb(0, 150, 255),
		},
	},
	ThemeBlueTone: {
		name:      "Blue Tone",
		substrate: rgb(20, 60, 90),
		layers: map[string]color.NRGBA{
			pcb.LayerFrontCu:   rgb(72, 72, 200),
			pcb.LayerBackCu:    rgb(0, 132, 132),
			pcb.LayerFrontSilk: rgb(242, 242, 255),
			pcb.LayerBackSilk:  rgb(178, 178, 232),
			"Edge.Cuts":        rgb(208, 210, 255),
			"F.CrtYd":          rgb(150, 150, 255),
			"B.CrtYd":          rgb(38, 200, 255),
			"F.Fab":            rgb(175, 175, 200),
			"B.Fab":            rgb(88, 93, 180),
			"Dwgs.User":        rgb(194, 194, 255),
			"Cmts.User":        rgb(89, 148, 255),
		},
	},
	ThemeEagle: {
		name:      "Eagle",
		substrate: rgb(0, 0, 0),
		layers: map[string]color.NRGBA{
			pcb.LayerFrontCu:   rgb(204, 0, 0),
			pcb.LayerBackCu:    rgb(0, 0, 204),
			pcb.LayerFrontSilk: rgb(255, 255, 255),
			pcb.LayerBackSilk:  rgb(200, 200, 200),
			"Edge.Cuts":        rgb(255, 255, 0),
			"F.Fab":            rgb(200, 200, 200),
			"B.Fab":            rgb(100, 100, 150),
			"Cmts.User":        rgb(132, 132, 132),
		},
	},
	ThemeNord: {
		name:      "Nord",
		substrate: rgb(46, 52, 64), // nord0
		layers: map[string]color.NRGBA{
			pcb.LayerFrontCu:   rgb(191, 97, 106),  // nord11
			pcb.LayerBackCu:    rgb(129, 161, 193), // nord9
			pcb.LayerFrontSilk: rgb(236, 239, 244), // nord6
			pcb.LayerBackSilk:  rgb(216, 222, 233), // nord4
			"Edge.Cuts":        rgb(229, 233, 240), // nord5
			"F.CrtYd":          rgb(180, 142, 173), // nord15
			"B.CrtYd":          rgb(136, 192, 208), // nord8
			"F.Fab":            rgb(216, 222, 233),
			"B.Fab":            rgb(143, 188, 187), // nord7
			"Cmts.User":        rgb(94, 129, 172),  // nord10
		},
	},
}

// ThemeNames maps each theme to its display name.
var ThemeNames = func() map[ColorTheme]string {
	names := make(map[ColorTheme]string, len(palettes))
	for t, p := range palettes {
		names[t] = p.name
	}
	return names
}()

func (t ColorTheme) String() string {
	if p, ok := palettes[t]; ok {
		return p.name
	}
	return fmt.Sprintf("ColorTheme(%d)", int(t))
}

// ParseTheme looks a theme up by display name, ignoring case, spaces and
// dashes ("kicad2020", "blue-tone" and "Blue Tone" all work).
func ParseTheme(name string) (ColorTheme, error) {
	key := normalizeThemeName(name)
	for t, p := range palettes {
		if normalizeThemeName(p.name) == key {
			return t, nil
		}
	}
	return ThemeClassic, fmt.Errorf("unknown color theme %q", name)
}

func normalizeThemeName(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.ToLower(s))
}

// Special colors
var (
	ColorBackground = rgb(0, 16, 35)
	ColorPad        = rgb(227, 183, 46)
	ColorDrill      = rgb(0, 0, 0)
	ColorUnknown    = rgb(128, 128, 128)

	// ColorDimmed replaces the colour of texts off the active layer in
	// high contrast mode.
	ColorDimmed = rgb(72, 72, 72)

	// ColorUmbilical is the link drawn from a footprint to a text being moved.
	ColorUmbilical = rgb(84, 84, 255)
)

// Display element colours, shared by all themes.
var elementColors = map[pcb.Element]color.NRGBA{
	pcb.ElementModTextFront:     rgb(242, 237, 161),
	pcb.ElementModTextBack:      rgb(232, 178, 167),
	pcb.ElementModTextInvisible: rgb(132, 132, 132),
	pcb.ElementAnchor:           rgb(255, 38, 226),
	pcb.ElementModReferences:    rgb(0, 194, 194),
	pcb.ElementModValues:        rgb(194, 194, 0),
	pcb.ElementModFront:         rgb(200, 52, 52),
	pcb.ElementModBack:          rgb(77, 127, 196),
}

// SubstrateColor returns the board colour of the theme.
func (t ColorTheme) SubstrateColor() color.NRGBA {
	if p, ok := palettes[t]; ok {
		return p.substrate
	}
	return palettes[ThemeClassic].substrate
}

// LayerColor returns the color of a layer in the theme. Layers the theme
// does not define fall back to the classic palette, then to gray.
func (t ColorTheme) LayerColor(layer string) color.NRGBA {
	if c, ok := palettes[t].layers[layer]; ok {
		return c
	}
	if c, ok := palettes[ThemeClassic].layers[layer]; ok {
		return c
	}
	return ColorUnknown
}
