package pcb

import "unicode/utf8"

// TextMetrics measures one line of text. Implementations must be pure: the
// same input always gives the same result.
type TextMetrics interface {
	// Advance is the pen travel over the line, used for justification.
	Advance(line string, size Size, thickness float64, bold bool) float64
	// Ink is the extent of the line's glyphs relative to the start of its
	// baseline, Y down, before italic slant and pen thickness. A line
	// with nothing to draw gives an empty box.
	Ink(line string, size Size) BoundingBox
}

// FixedPitchMetrics approximates KiCad's stroke font: every rune advances
// by the glyph width. Bold text gets a little extra room per rune.
type FixedPitchMetrics struct{}

func (FixedPitchMetrics) Advance(line string, size Size, thickness float64, bold bool) float64 {
	n := float64(utf8.RuneCountInString(line))
	w := n * size.Width
	if bold {
		w += n * thickness / 4
	}
	return w
}

// Ink covers the cap height above the baseline and StrokeDescent below it,
// whether or not the line has descenders.
func (FixedPitchMetrics) Ink(line string, size Size) BoundingBox {
	if line == "" {
		return NewBoundingBox()
	}
	n := float64(utf8.RuneCountInString(line))
	return BoundingBox{
		Min: Position{X: 0, Y: -size.Height},
		Max: Position{X: n * size.Width, Y: StrokeDescent * size.Height},
	}
}

// DefaultMetrics is used by texts that have no metrics of their own.
var DefaultMetrics TextMetrics = FixedPitchMetrics{}

const (
	// LineSpacing is the distance between baselines of a multi-line text,
	// as a factor of the glyph height.
	LineSpacing = 1.62

	// StrokeDescent is how far descenders reach below the baseline, as a
	// factor of the glyph height.
	StrokeDescent = 0.3

	// ItalicSlant is the horizontal shift of italic glyphs per unit of
	// height above the baseline.
	ItalicSlant = 0.2
)

// FirstBaseline returns the offset, Y down, from the anchor to the
// baseline of the first of n lines of height h. The block spans from the
// cap line of the first line to the baseline of the last.
func FirstBaseline(v VJustify, h float64, n int) float64 {
	block := h + float64(max(n, 1)-1)*LineSpacing*h
	switch v {
	case JustifyTop:
		return h
	case JustifyBottom:
		return h - block
	default:
		return h - block/2
	}
}

// LineStart returns the pen start of a line of advance w relative to the
// anchor, before mirroring.
func LineStart(j HJustify, w float64) float64 {
	switch j {
	case JustifyCenter:
		return -w / 2
	case JustifyRight:
		return -w
	default:
		return 0
	}
}
