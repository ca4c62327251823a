// Package sexp provides shared S-expression parsing infrastructure and the
// planar geometry used by the KiCad board model.
package sexp

import "math"

// Board files store millimetres and degrees; the model keeps millimetres and
// tenths of a degree.
const (
	DecidegreesToDegrees = 0.1
	DegreesToDecidegrees = 10.0
)

// Position represents a 2D coordinate in the board coordinate system.
// X grows to the right and Y grows downwards, as in KiCad.
type Position struct {
	X float64 // X coordinate in mm
	Y float64 // Y coordinate in mm
}

// Add returns p translated by v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p - v.
func (p Position) Sub(v Position) Position {
	return Position{X: p.X - v.X, Y: p.Y - v.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Position) Dist(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size represents dimensions
type Size struct {
	Width  float64 // Width in mm
	Height float64 // Height in mm
}

// UUID represents a unique identifier (used in KiCad v6+ files)
type UUID string

// Effects represents text effects (font, justification, visibility)
type Effects struct {
	Font    Font
	Justify Justify
	Hide    bool
}

// Font represents font properties
type Font struct {
	Face      string  // Font face name (optional)
	Size      Size    // Font size
	Thickness float64 // Stroke thickness in mm (0 when the file omits it)
	Bold      bool
	Italic    bool
}

// Justify represents text justification
type Justify struct {
	Horizontal string // left, center, right
	Vertical   string // top, center, bottom
	Mirror     bool
}
