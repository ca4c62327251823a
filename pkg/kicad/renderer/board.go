package renderer

import (
	"math"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// DrawBoard draws the board outline, footprint outlines, pads and
// footprint texts, bottom to top.
func DrawBoard(s Surface, b *pcb.Board, view BoardView, opts DisplayOptions) {
	if view.IsLayerVisible("Edge.Cuts") {
		c := view.LayerColor("Edge.Cuts")
		for _, e := range b.Edges {
			s.DrawLine(e.Start, e.End, e.Width, c, ModeCopy)
		}
	}

	// Back side first so front items end up on top.
	for _, back := range []bool{true, false} {
		for _, fp := range b.Footprints {
			if pcb.IsBackLayer(fp.Layer) != back {
				continue
			}
			drawFootprintLines(s, fp, view)
			drawPads(s, fp, view)
		}
	}

	for _, fp := range b.Footprints {
		for _, t := range fp.AllTexts() {
			if t.LevelOfDetailHidden(view) {
				continue
			}
			DrawFootprintText(s, view, opts, t, pcb.Position{})
		}
	}
}

func drawFootprintLines(s Surface, fp *pcb.Footprint, view BoardView) {
	for _, l := range fp.Lines {
		if !view.IsLayerVisible(l.Layer) {
			continue
		}
		s.DrawLine(fp.TransformPosition(l.Start), fp.TransformPosition(l.End), l.Width, view.LayerColor(l.Layer), ModeCopy)
	}
}

func drawPads(s Surface, fp *pcb.Footprint, view BoardView) {
	copper := pcb.LayerFrontCu
	if pcb.IsBackLayer(fp.Layer) {
		copper = pcb.LayerBackCu
	}
	if !view.IsLayerVisible(copper) {
		return
	}

	for _, pad := range fp.Pads {
		outline := padOutline(pad)
		for i, p := range outline {
			outline[i] = fp.TransformPosition(p)
		}
		s.FillPolygon(outline, ColorPad)

		if pad.Drill > 0 {
			hole := ellipse(pad.Position, pad.Drill/2, pad.Drill/2)
			for i, p := range hole {
				hole[i] = fp.TransformPosition(p)
			}
			s.FillPolygon(hole, ColorDrill)
		}
	}
}

// padOutline returns the pad shape as a polygon in the footprint frame.
// Round shapes are approximated.
func padOutline(pad pcb.Pad) []pcb.Position {
	var pts []pcb.Position
	switch pad.Shape {
	case "circle", "oval":
		pts = ellipse(pcb.Position{}, pad.Size.Width/2, pad.Size.Height/2)
	default:
		half := pcb.Position{X: pad.Size.Width / 2, Y: pad.Size.Height / 2}
		c := sexp.BoxFromCorners(pcb.Position{X: -half.X, Y: -half.Y}, half).Corners()
		pts = c[:]
	}

	out := make([]pcb.Position, len(pts))
	for i, p := range pts {
		out[i] = sexp.RotatePoint(p, pad.Angle).Add(pad.Position)
	}
	return out
}

const ellipseSegments = 24

func ellipse(center pcb.Position, rx, ry float64) []pcb.Position {
	pts := make([]pcb.Position, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = pcb.Position{X: center.X + rx*math.Cos(a), Y: center.Y + ry*math.Sin(a)}
	}
	return pts
}
