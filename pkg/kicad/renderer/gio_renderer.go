package renderer

import (
	"image/color"
	"math"
	"strings"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"golang.org/x/image/math/fixed"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/renderer/glyphs"
)

// italicShear slants italic texts in Gio's shear convention.
var italicShear = -float32(math.Atan(pcb.ItalicSlant))

// GioFont pairs a Gio shaper loaded with Go Regular with the metrics of
// the same font, so what is drawn matches what is hit tested.
type GioFont struct {
	Shaper  *text.Shaper
	Metrics *glyphs.OutlineMetrics
}

// NewGioFont loads Go Regular. Create it once and reuse it across frames.
func NewGioFont() (*GioFont, error) {
	m, err := glyphs.Default()
	if err != nil {
		return nil, err
	}
	return &GioFont{
		Shaper:  text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Regular())),
		Metrics: m,
	}, nil
}

// GioSurface draws into a Gio operation list through a camera.
type GioSurface struct {
	ops    *op.Ops
	camera *Camera
	font   *GioFont
}

// NewGioSurface returns a surface drawing into gtx.Ops.
func NewGioSurface(gtx layout.Context, camera *Camera, f *GioFont) *GioSurface {
	return &GioSurface{ops: gtx.Ops, camera: camera, font: f}
}

// RenderBoard renders the entire board using Gio operations
func RenderBoard(gtx layout.Context, camera *Camera, f *GioFont, board *pcb.Board, view *ViewSettings, opts DisplayOptions) {
	paint.FillShape(gtx.Ops, ColorBackground, clip.Rect{Max: gtx.Constraints.Max}.Op())
	DrawBoard(NewGioSurface(gtx, camera, f), board, view, opts)
}

func (s *GioSurface) screen(p pcb.Position) f32.Point {
	x, y := s.camera.WorldToScreen(p)
	return f32.Pt(float32(x), float32(y))
}

func (s *GioSurface) DrawLine(from, to pcb.Position, width float64, c color.NRGBA, mode DrawMode) {
	px := s.camera.ScreenLength(width)
	if px < 1 {
		px = 1
	}
	if mode == ModeXOR {
		c.A = 160
	}

	var path clip.Path
	path.Begin(s.ops)
	path.MoveTo(s.screen(from))
	path.LineTo(s.screen(to))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(px),
	}.Op()
	paint.FillShape(s.ops, c, stroke)
}

func (s *GioSurface) DrawAnchor(at pcb.Position, size float64, c color.NRGBA) {
	s.DrawLine(at.Add(pcb.Position{X: -size}), at.Add(pcb.Position{X: size}), 0, c, ModeCopy)
	s.DrawLine(at.Add(pcb.Position{Y: -size}), at.Add(pcb.Position{Y: size}), 0, c, ModeCopy)
}

func (s *GioSurface) FillPolygon(points []pcb.Position, c color.NRGBA) {
	if len(points) < 3 {
		return
	}

	var path clip.Path
	path.Begin(s.ops)
	path.MoveTo(s.screen(points[0]))
	for _, p := range points[1:] {
		path.LineTo(s.screen(p))
	}
	path.Close()

	paint.FillShape(s.ops, c, clip.Outline{Path: path.End()}.Op())
}

// DrawText shapes every line with Go Regular and lays the lines out as
// pcb.FootprintText.TextBox measures them: each line is stretched,
// slanted, moved to its justified baseline, then mirrored and rotated.
// Bold fills and strokes the outlines; sketch mode only strokes them.
func (s *GioSurface) DrawText(p TextDrawParams) {
	h := p.Size.Height
	pxPerMM := s.camera.ScreenLength(1)
	if h*pxPerMM < 1 || p.Text == "" {
		return
	}

	m := s.font.Metrics
	size := pcb.Size{Width: math.Abs(p.Size.Width), Height: h}
	params := text.Parameters{
		PxPerEm:  fixed.Int26_6(m.EmSize(h) * pxPerMM * 64),
		MaxWidth: math.MaxInt32,
	}

	angle, mirror := s.camera.ScreenAngle(p.Angle)
	sign := float32(1)
	if mirror != p.Mirrored() {
		sign = -1
	}

	width := float32(s.camera.ScreenLength(math.Abs(p.Width)))
	if width < 1 {
		width = 1
	}

	lines := strings.Split(p.Text, "\n")
	y0 := pcb.FirstBaseline(p.VJustify, h, len(lines))
	for i, line := range lines {
		gl := s.shapeLine(params, line)
		if len(gl) == 0 {
			continue
		}
		x0 := pcb.LineStart(p.HJustify, m.Advance(line, size, math.Abs(p.Width), p.Bold))
		base := y0 + float64(i)*pcb.LineSpacing*h

		tr := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(float32(size.Width/h), 1))
		if p.Italic {
			tr = tr.Shear(f32.Point{}, italicShear, 0)
		}
		tr = tr.Offset(f32.Pt(float32(x0*pxPerMM), float32(base*pxPerMM))).
			Scale(f32.Point{}, f32.Pt(sign, 1)).
			Rotate(f32.Point{}, float32(angle)).
			Offset(s.screen(p.Position))

		t := op.Affine(tr).Push(s.ops)
		switch {
		case p.Sketch():
			paint.FillShape(s.ops, p.Color, clip.Stroke{Path: s.font.Shaper.Shape(gl), Width: width}.Op())
		case p.Bold:
			paint.FillShape(s.ops, p.Color, clip.Outline{Path: s.font.Shaper.Shape(gl)}.Op())
			paint.FillShape(s.ops, p.Color, clip.Stroke{Path: s.font.Shaper.Shape(gl), Width: width / 2}.Op())
		default:
			paint.FillShape(s.ops, p.Color, clip.Outline{Path: s.font.Shaper.Shape(gl)}.Op())
		}
		t.Pop()
	}
}

// shapeLine returns the glyphs of one line with the pen starting at the
// origin of its baseline.
func (s *GioSurface) shapeLine(params text.Parameters, line string) []text.Glyph {
	if line == "" {
		return nil
	}
	s.font.Shaper.LayoutString(params, line)

	var gl []text.Glyph
	for g, ok := s.font.Shaper.NextGlyph(); ok; g, ok = s.font.Shaper.NextGlyph() {
		g.Y = 0
		gl = append(gl, g)
	}
	return gl
}
