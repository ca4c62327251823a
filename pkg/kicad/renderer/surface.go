package renderer

import (
	"fmt"
	"image/color"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

// DrawMode is the raster operation used for lines.
type DrawMode int

const (
	ModeCopy DrawMode = iota
	ModeXOR           // overlay drawn while dragging; surfaces without XOR blend it
)

// AnchorSize is the half length of the anchor cross arms, in mm.
const AnchorSize = 0.25

// TextDrawParams is everything a surface needs to draw one text item.
type TextDrawParams struct {
	Position pcb.Position // anchor, board coordinates
	Color    color.NRGBA
	Text     string         // already resolved, may hold newlines
	Angle    pcb.DeciDegree // draw rotation, counter-clockwise
	Size     pcb.Size       // Width < 0 draws the glyphs mirrored
	HJustify pcb.HJustify
	VJustify pcb.VJustify
	Width    float64 // stroke width; < 0 means outline only
	Italic   bool
	Bold     bool
}

// Mirrored reports whether the glyphs are drawn mirrored.
func (p TextDrawParams) Mirrored() bool { return p.Size.Width < 0 }

// Sketch reports whether only glyph outlines are drawn.
func (p TextDrawParams) Sketch() bool { return p.Width < 0 }

// Surface is a drawing target in board coordinates (mm).
type Surface interface {
	DrawText(p TextDrawParams)
	DrawLine(from, to pcb.Position, width float64, c color.NRGBA, mode DrawMode)
	DrawAnchor(at pcb.Position, size float64, c color.NRGBA)
	FillPolygon(points []pcb.Position, c color.NRGBA)
}

// DrawOp is one call recorded by a RecordingSurface.
type DrawOp struct {
	Kind   string // "text", "line", "anchor" or "polygon"
	Text   TextDrawParams
	Points []pcb.Position
	Width  float64
	Color  color.NRGBA
	Mode   DrawMode
}

func (op DrawOp) String() string {
	switch op.Kind {
	case "text":
		return fmt.Sprintf("text %q at (%.3f, %.3f) angle %.1f", op.Text.Text,
			op.Text.Position.X, op.Text.Position.Y, op.Text.Angle.Degrees())
	case "line":
		return fmt.Sprintf("line (%.3f, %.3f) -> (%.3f, %.3f)",
			op.Points[0].X, op.Points[0].Y, op.Points[1].X, op.Points[1].Y)
	case "anchor":
		return fmt.Sprintf("anchor (%.3f, %.3f)", op.Points[0].X, op.Points[0].Y)
	}
	return fmt.Sprintf("%s with %d points", op.Kind, len(op.Points))
}

// RecordingSurface keeps every draw call in order.
type RecordingSurface struct {
	Ops []DrawOp
}

func (r *RecordingSurface) DrawText(p TextDrawParams) {
	r.Ops = append(r.Ops, DrawOp{Kind: "text", Text: p, Color: p.Color, Width: p.Width})
}

func (r *RecordingSurface) DrawLine(from, to pcb.Position, width float64, c color.NRGBA, mode DrawMode) {
	r.Ops = append(r.Ops, DrawOp{Kind: "line", Points: []pcb.Position{from, to}, Width: width, Color: c, Mode: mode})
}

func (r *RecordingSurface) DrawAnchor(at pcb.Position, size float64, c color.NRGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: "anchor", Points: []pcb.Position{at}, Width: size, Color: c})
}

func (r *RecordingSurface) FillPolygon(points []pcb.Position, c color.NRGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: "polygon", Points: append([]pcb.Position(nil), points...), Color: c})
}

// Texts returns the recorded text draws.
func (r *RecordingSurface) Texts() []TextDrawParams {
	var out []TextDrawParams
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of kind were recorded.
func (r *RecordingSurface) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *RecordingSurface) Reset() { r.Ops = r.Ops[:0] }
