package pcb

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// Shared geometry types, re-exported so callers of the board model rarely
// need to import sexp directly.
type Position = sexp.Position
type Size = sexp.Size
type BoundingBox = sexp.BoundingBox
type DeciDegree = sexp.DeciDegree

// Re-export BoundingBox constructor
var NewBoundingBox = sexp.NewBoundingBox

// Layer represents a PCB layer
type Layer struct {
	Number   int    // Layer number (ordinal)
	Name     string // Layer name (e.g., "F.Cu", "B.Cu", "F.SilkS")
	Type     string // Layer type (e.g., "signal", "user")
	UserName string // Optional display name
}

// LayerMap provides efficient lookup of layers by number or name
type LayerMap struct {
	byNumber map[int]*Layer
	byName   map[string]*Layer
}

// NewLayerMap creates a LayerMap from a slice of layers
func NewLayerMap(layers []Layer) *LayerMap {
	lm := &LayerMap{
		byNumber: make(map[int]*Layer),
		byName:   make(map[string]*Layer),
	}

	for i := range layers {
		layer := &layers[i]
		lm.byNumber[layer.Number] = layer
		lm.byName[layer.Name] = layer
	}

	return lm
}

// GetByName retrieves a layer by its name (e.g., "F.SilkS")
func (lm *LayerMap) GetByName(name string) (*Layer, bool) {
	layer, ok := lm.byName[name]
	return layer, ok
}

// GetByNumber retrieves a layer by its number
func (lm *LayerMap) GetByNumber(num int) (*Layer, bool) {
	layer, ok := lm.byNumber[num]
	return layer, ok
}
