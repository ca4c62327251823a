package pcb

import (
	"strings"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// TextBox returns the unrotated extent of the shown text as drawn, anchored
// at the board position according to the justification. Every line covers
// its cap block and its glyph ink, so descenders and italic overhang stay
// inside. A mirrored text grows in the opposite horizontal direction: a
// left justified mirrored text extends to the left of its anchor.
func (t *FootprintText) TextBox() BoundingBox {
	lines := strings.Split(t.ShownText(), "\n")
	m := t.textMetrics()
	h := t.size.Height
	y0 := FirstBaseline(t.vJustify, h, len(lines))

	box := NewBoundingBox()
	for i, line := range lines {
		w := m.Advance(line, t.size, t.thickness, t.bold)
		lb := BoundingBox{Min: Position{Y: -h}, Max: Position{X: w}}
		lb.ExpandBox(m.Ink(line, t.size))
		if t.italic {
			// x shifts by -y * slant, and y is negative above the baseline.
			lb.Min.X -= lb.Max.Y * ItalicSlant
			lb.Max.X -= lb.Min.Y * ItalicSlant
		}
		base := y0 + float64(i)*LineSpacing*h
		box.ExpandBox(lb.Translated(Position{X: LineStart(t.hJustify, w), Y: base}))
	}
	if t.mirrored {
		box.Min.X, box.Max.X = -box.Max.X, -box.Min.X
	}
	return box.Inflate(t.thickness / 2).Translated(t.pos)
}

// BoundingBox returns the axis aligned box enclosing the text as drawn.
func (t *FootprintText) BoundingBox() BoundingBox {
	box := t.TextBox()
	if a := t.DrawRotation(); a != 0 {
		box = box.Rotated(t.pos, a)
	}
	return box
}

// HitTest reports whether p lies within accuracy of the text. The query
// point is turned back into the text frame instead of rotating the box.
func (t *FootprintText) HitTest(p Position, accuracy float64) bool {
	box := t.TextBox().Inflate(accuracy)
	return box.Contains(sexp.RotateAround(p, t.pos, -t.DrawRotation()))
}

// HitTestRect tests the text against a selection rectangle grown by
// accuracy. With contains set the rectangle must enclose the whole
// bounding box; otherwise touching the rotated text box is enough.
func (t *FootprintText) HitTestRect(r BoundingBox, contains bool, accuracy float64) bool {
	r = r.Inflate(accuracy)
	if contains {
		return r.ContainsBox(t.BoundingBox())
	}
	return r.IntersectsRotated(t.TextBox(), t.pos, t.DrawRotation())
}
