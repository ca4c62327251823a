package renderer

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

// DrawFootprintText draws one footprint text, shifted by -offset (the
// drag offset while the text is being moved). It reports whether
// anything was drawn.
//
// Texts on hidden layers, or on a side whose texts are switched off, are
// skipped. Invisible texts are still drawn, in the invisible-text colour,
// when that element is on: they have to stay editable.
func DrawFootprintText(s Surface, view BoardView, opts DisplayOptions, t *pcb.FootprintText, offset pcb.Position) bool {
	layer := t.Layer()
	if !view.IsLayerVisible(layer) ||
		(pcb.IsFrontLayer(layer) && !view.IsElementVisible(pcb.ElementModTextFront)) ||
		(pcb.IsBackLayer(layer) && !view.IsElementVisible(pcb.ElementModTextBack)) {
		return false
	}

	c := view.LayerColor(layer)
	if !t.IsVisible() {
		if !view.IsElementVisible(pcb.ElementModTextInvisible) {
			return false
		}
		c = view.ElementColor(pcb.ElementModTextInvisible)
	}

	if opts.AllowHighContrast && opts.ContrastMode && !t.IsOnLayer(opts.ActiveLayer) {
		c = ColorDimmed
	}

	width := t.Thickness()
	if opts.TextFill == FillSketch {
		width = -width
	}

	pos := t.Position().Sub(offset)

	if view.IsElementVisible(pcb.ElementAnchor) {
		s.DrawAnchor(pos, AnchorSize, view.ElementColor(pcb.ElementAnchor))
	}

	size := t.Size()
	if t.IsMirrored() {
		size.Width = -size.Width
	}

	s.DrawText(TextDrawParams{
		Position: pos,
		Color:    c,
		Text:     t.ShownText(),
		Angle:    t.DrawRotation(),
		Size:     size,
		HJustify: t.HJustify(),
		VJustify: t.VJustify(),
		Width:    width,
		Italic:   t.IsItalic(),
		Bold:     t.IsBold(),
	})
	return true
}

// DrawUmbilical draws the overlay link from the parent footprint anchor
// to the text (shifted by offset). Detached texts have no link.
func DrawUmbilical(s Surface, t *pcb.FootprintText, offset pcb.Position) {
	fp := t.Parent()
	if fp == nil {
		return
	}
	s.DrawLine(fp.Position(), t.Position().Add(offset), 0, ColorUmbilical, ModeXOR)
}
