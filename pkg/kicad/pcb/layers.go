package pcb

import "strings"

// Default silkscreen layers for footprint texts.
const (
	LayerFrontSilk = "F.SilkS"
	LayerBackSilk  = "B.SilkS"
	LayerFrontFab  = "F.Fab"
	LayerBackFab   = "B.Fab"
	LayerFrontCu   = "F.Cu"
	LayerBackCu    = "B.Cu"
)

// IsFrontLayer reports whether layer is on the component side ("F.*").
func IsFrontLayer(layer string) bool {
	return strings.HasPrefix(layer, "F.")
}

// IsBackLayer reports whether layer is on the solder side ("B.*").
func IsBackLayer(layer string) bool {
	return strings.HasPrefix(layer, "B.")
}

// FlipLayer returns the layer's counterpart on the other side of the
// board. Inner and user layers have no counterpart and are returned as is.
func FlipLayer(layer string) string {
	switch {
	case IsFrontLayer(layer):
		return "B." + layer[2:]
	case IsBackLayer(layer):
		return "F." + layer[2:]
	}
	return layer
}

// Element identifies a display element: a visibility toggle that is not a
// board layer (anchors, invisible texts, per-side footprint texts...).
type Element int

const (
	ElementModTextFront Element = iota
	ElementModTextBack
	ElementModTextInvisible
	ElementAnchor
	ElementModReferences
	ElementModValues
	ElementModFront
	ElementModBack
	elementCount
)

var elementNames = [...]string{
	ElementModTextFront:     "mod_text_front",
	ElementModTextBack:      "mod_text_back",
	ElementModTextInvisible: "mod_text_invisible",
	ElementAnchor:           "anchor",
	ElementModReferences:    "mod_references",
	ElementModValues:        "mod_values",
	ElementModFront:         "mod_front",
	ElementModBack:          "mod_back",
}

func (e Element) String() string {
	if e < 0 || e >= elementCount {
		return "unknown"
	}
	return elementNames[e]
}

// ParseElement is the inverse of Element.String.
func ParseElement(name string) (Element, bool) {
	for i, n := range elementNames {
		if n == name {
			return Element(i), true
		}
	}
	return 0, false
}

// Elements lists every display element.
func Elements() []Element {
	out := make([]Element, elementCount)
	for i := range out {
		out[i] = Element(i)
	}
	return out
}

// ElementVisibility answers per-element visibility queries.
type ElementVisibility interface {
	IsElementVisible(e Element) bool
}
