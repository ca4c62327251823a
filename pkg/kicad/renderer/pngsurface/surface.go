// Package pngsurface rasterises boards and footprint texts to images with
// gogpu/gg. Texts are drawn from the outlines of the Go Regular font.
package pngsurface

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer/glyphs"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// Surface is a renderer.Surface backed by a gg context. Board millimetres
// map to pixels through a fixed scale and origin.
type Surface struct {
	dc      *gg.Context
	origin  pcb.Position // board point drawn at pixel (0, 0)
	scale   float64      // pixels per mm
	metrics *glyphs.OutlineMetrics
	err     error
}

// New creates a width x height surface showing area, centred, with the
// aspect ratio kept. The background is filled with bg.
func New(width, height int, area pcb.BoundingBox, bg color.Color) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if area.IsEmpty() || area.Width() <= 0 || area.Height() <= 0 {
		return nil, fmt.Errorf("nothing to draw: empty area")
	}

	metrics, err := glyphs.Default()
	if err != nil {
		return nil, err
	}

	scale := math.Min(float64(width)/area.Width(), float64(height)/area.Height())
	c := area.Center()
	origin := pcb.Position{
		X: c.X - float64(width)/scale/2,
		Y: c.Y - float64(height)/scale/2,
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(bg))
	dc.SetFillRule(gg.FillRuleNonZero)

	return &Surface{
		dc:      dc,
		origin:  origin,
		scale:   scale,
		metrics: metrics,
	}, nil
}

// Metrics returns the text metrics matching the glyphs this surface draws.
func (s *Surface) Metrics() *glyphs.OutlineMetrics { return s.metrics }

// Scale returns the pixels per mm.
func (s *Surface) Scale() float64 { return s.scale }

// ToPixel maps a board position to image coordinates.
func (s *Surface) ToPixel(p pcb.Position) (float64, float64) {
	return (p.X - s.origin.X) * s.scale, (p.Y - s.origin.Y) * s.scale
}

// Err returns the first drawing error, if any.
func (s *Surface) Err() error { return s.err }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Close releases the context.
func (s *Surface) Close() error { return s.dc.Close() }

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) lineWidth(mm float64) float64 {
	return math.Max(mm*s.scale, 1)
}

func (s *Surface) DrawLine(from, to pcb.Position, width float64, c color.NRGBA, mode renderer.DrawMode) {
	if mode == renderer.ModeXOR {
		c.A = 160
	}
	x1, y1 := s.ToPixel(from)
	x2, y2 := s.ToPixel(to)

	s.dc.SetColor(c)
	s.dc.SetLineWidth(s.lineWidth(width))
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.record(s.dc.Stroke())
}

func (s *Surface) DrawAnchor(at pcb.Position, size float64, c color.NRGBA) {
	s.DrawLine(at.Add(pcb.Position{X: -size}), at.Add(pcb.Position{X: size}), 0, c, renderer.ModeCopy)
	s.DrawLine(at.Add(pcb.Position{Y: -size}), at.Add(pcb.Position{Y: size}), 0, c, renderer.ModeCopy)
}

func (s *Surface) FillPolygon(points []pcb.Position, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	s.dc.ClearPath()
	s.dc.MoveTo(s.ToPixel(points[0]))
	for _, p := range points[1:] {
		s.dc.LineTo(s.ToPixel(p))
	}
	s.dc.ClosePath()
	s.dc.SetColor(c)
	s.record(s.dc.Fill())
}

// DrawText builds the glyph outlines of every line, justified about the
// anchor, then slanted, stretched, mirrored and rotated in board space.
// Filled mode fills the outlines (bold adds a stroke of the text
// thickness); sketch mode strokes them with a thin pen. Lines are laid out
// exactly as pcb.FootprintText.TextBox measures them.
func (s *Surface) DrawText(p renderer.TextDrawParams) {
	if p.Text == "" || p.Size.Height <= 0 {
		return
	}

	h := p.Size.Height
	size := pcb.Size{Width: math.Abs(p.Size.Width), Height: h}
	unit := s.metrics.EmSize(h) / glyphs.ReferencePPEM // mm per outline unit
	stretch := size.Width / h
	sign := 1.0
	if p.Mirrored() {
		sign = -1
	}

	lines := strings.Split(p.Text, "\n")
	y0 := pcb.FirstBaseline(p.VJustify, h, len(lines))

	// Maps a point given along a baseline (stretched x from the anchor,
	// and dy above or below it) to pixels.
	place := func(x, base, dy float64) (float64, float64) {
		if p.Italic {
			x -= dy * pcb.ItalicSlant
		}
		local := pcb.Position{X: x * sign, Y: base + dy}
		return s.ToPixel(sexp.RotatePoint(local, p.Angle).Add(p.Position))
	}

	face := s.metrics.Face()
	s.dc.ClearPath()
	for i, line := range lines {
		x0 := pcb.LineStart(p.HJustify, s.metrics.Advance(line, size, math.Abs(p.Width), p.Bold))
		base := y0 + float64(i)*pcb.LineSpacing*h

		for g := range face.Glyphs(line) {
			outline := s.metrics.Outline(g.GID)
			if outline == nil {
				continue
			}
			gx := g.X
			s.appendOutline(outline, func(pt text.OutlinePoint) (float64, float64) {
				return place(x0+(gx+float64(pt.X))*unit*stretch, base, float64(pt.Y)*unit)
			})
		}
	}

	s.dc.SetColor(p.Color)
	if p.Sketch() {
		s.dc.SetLineWidth(1)
		s.record(s.dc.Stroke())
		return
	}
	if p.Bold && p.Width > 0 {
		s.record(s.dc.FillPreserve())
		s.dc.SetLineWidth(s.lineWidth(p.Width / 2))
		s.record(s.dc.Stroke())
		return
	}
	s.record(s.dc.Fill())
}

// appendOutline adds the glyph contours to the current path.
func (s *Surface) appendOutline(o *text.GlyphOutline, pt func(text.OutlinePoint) (float64, float64)) {
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				s.dc.ClosePath()
			}
			s.dc.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			s.dc.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			x, y := pt(seg.Points[1])
			s.dc.QuadraticTo(cx, cy, x, y)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			x, y := pt(seg.Points[2])
			s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		s.dc.ClosePath()
	}
}

// Render draws a whole board into a new surface sized to fit it. The board
// is measured and drawn with the surface's glyph metrics; each text gets
// its own metrics back before Render returns.
func Render(b *pcb.Board, width, height int, view *renderer.ViewSettings, opts renderer.DisplayOptions) (*Surface, error) {
	metrics, err := glyphs.Default()
	if err != nil {
		return nil, err
	}
	defer b.SetTextMetrics(metrics)()

	area := b.GetBoundingBox()
	if area.IsEmpty() {
		return nil, fmt.Errorf("board has nothing to draw")
	}
	area = area.Inflate(math.Max(area.Width(), area.Height()) * 0.05)

	s, err := New(width, height, area, view.Theme.SubstrateColor())
	if err != nil {
		return nil, err
	}

	renderer.DrawBoard(s, b, view, opts)
	pcb.Logger().Debug("rendered board", "width", width, "height", height, "scale", s.scale)
	return s, s.Err()
}

var _ renderer.Surface = (*Surface)(nil)
