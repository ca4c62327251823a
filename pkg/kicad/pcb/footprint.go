package pcb

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// Footprint is a component placed on the board. It owns its texts: the
// reference and value texts always exist, user texts are optional.
//
// Position and orientation are only changed through methods so that the
// owned texts follow.
type Footprint struct {
	Library string // Library name
	Name    string // Footprint name
	Layer   string // F.Cu or B.Cu
	Attr    string // smd, through_hole, ...

	ReferenceText *FootprintText
	ValueText     *FootprintText
	Texts         []*FootprintText // user texts

	Pads  []Pad
	Lines []Line // silkscreen and fab outline, footprint frame

	pos    Position
	orient DeciDegree
}

// Pad is a footprint pad. Position and Angle are in the footprint frame.
type Pad struct {
	Number   string
	Type     string // thru_hole, smd, connect, np_thru_hole
	Shape    string // circle, rect, oval, roundrect...
	Position Position
	Angle    DeciDegree
	Size     Size
	Drill    float64
	Layers   []string
}

// Line is a footprint outline segment in the footprint frame.
type Line struct {
	Start Position
	End   Position
	Width float64
	Layer string
}

// NewFootprint creates a front side footprint with empty reference and
// value texts.
func NewFootprint(name string) *Footprint {
	fp := &Footprint{Name: name, Layer: LayerFrontCu}
	fp.ReferenceText = NewFootprintText(fp, TextReference)
	fp.ValueText = NewFootprintText(fp, TextValue)
	return fp
}

// Position returns the footprint anchor on the board.
func (fp *Footprint) Position() Position { return fp.pos }

// Orientation returns the footprint rotation, in [0, 3600).
func (fp *Footprint) Orientation() DeciDegree { return fp.orient }

// Reference returns the reference designator, e.g. "R1".
func (fp *Footprint) Reference() string {
	if fp.ReferenceText == nil {
		return ""
	}
	return fp.ReferenceText.Text()
}

// Value returns the component value, e.g. "10k".
func (fp *Footprint) Value() string {
	if fp.ValueText == nil {
		return ""
	}
	return fp.ValueText.Text()
}

func (fp *Footprint) SetReference(s string) { fp.ReferenceText.SetText(s) }
func (fp *Footprint) SetValue(s string)     { fp.ValueText.SetText(s) }

// AllTexts returns the reference, value and user texts in that order.
func (fp *Footprint) AllTexts() []*FootprintText {
	out := make([]*FootprintText, 0, len(fp.Texts)+2)
	if fp.ReferenceText != nil {
		out = append(out, fp.ReferenceText)
	}
	if fp.ValueText != nil {
		out = append(out, fp.ValueText)
	}
	return append(out, fp.Texts...)
}

// AddText attaches t to the footprint, keeping its local position. A
// reference or value text replaces the current one.
func (fp *Footprint) AddText(t *FootprintText) {
	switch t.Kind() {
	case TextReference:
		fp.ReferenceText = t
	case TextValue:
		fp.ValueText = t
	default:
		fp.Texts = append(fp.Texts, t)
	}
	t.SetParent(fp)
}

// RemoveText detaches a user text. The text keeps its board position.
// Reference and value texts cannot be removed.
func (fp *Footprint) RemoveText(t *FootprintText) bool {
	for i, ut := range fp.Texts {
		if ut == t {
			fp.Texts = append(fp.Texts[:i], fp.Texts[i+1:]...)
			t.detach()
			return true
		}
	}
	return false
}

// SetPosition moves the footprint anchor; texts follow.
func (fp *Footprint) SetPosition(p Position) {
	fp.pos = p
	fp.syncTexts()
}

// SetOrientation sets the footprint rotation; texts follow.
func (fp *Footprint) SetOrientation(a DeciDegree) {
	fp.orient = a.Normalize360()
	fp.syncTexts()
}

// Move translates the footprint by v.
func (fp *Footprint) Move(v Position) {
	fp.SetPosition(fp.pos.Add(v))
}

// Rotate turns the footprint about center. Text angles are relative to
// the footprint and do not change.
func (fp *Footprint) Rotate(center Position, angle DeciDegree) {
	fp.pos = sexp.RotateAround(fp.pos, center, angle)
	fp.SetOrientation(fp.orient + angle)
}

// Flip moves the footprint to the other side of the board, mirroring Y
// about center.Y.
func (fp *Footprint) Flip(center Position) {
	fp.SetPosition(Position{X: fp.pos.X, Y: sexp.MirrorCoord(fp.pos.Y, center.Y)})

	fp.Layer = FlipLayer(fp.Layer)
	fp.orient = (-fp.orient).Normalize360()

	for i := range fp.Pads {
		pad := &fp.Pads[i]
		pad.Position.Y = -pad.Position.Y
		pad.Angle = (-pad.Angle).Normalize360()
		for j, l := range pad.Layers {
			pad.Layers[j] = FlipLayer(l)
		}
	}
	for i := range fp.Lines {
		l := &fp.Lines[i]
		l.Start.Y, l.End.Y = -l.Start.Y, -l.End.Y
		l.Layer = FlipLayer(l.Layer)
	}

	// The texts still carry board positions computed with the old
	// orientation; flipping them about the new anchor lands them in place.
	for _, t := range fp.AllTexts() {
		t.Flip(fp.pos)
	}
}

// TransformPosition maps a point from the footprint frame to the board.
func (fp *Footprint) TransformPosition(local Position) Position {
	return sexp.RotatePoint(local, fp.orient).Add(fp.pos)
}

func (fp *Footprint) syncTexts() {
	for _, t := range fp.AllTexts() {
		t.SyncGlobalFromLocal()
	}
}

// GetBoundingBox returns the board extent of pads, outline and visible texts.
func (fp *Footprint) GetBoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	bbox.Expand(fp.pos)

	for _, pad := range fp.Pads {
		half := Position{X: pad.Size.Width / 2, Y: pad.Size.Height / 2}
		local := sexp.BoxFromCorners(pad.Position.Sub(half), pad.Position.Add(half))
		bbox.ExpandBox(local.Rotated(pad.Position, pad.Angle).Rotated(Position{}, fp.orient).Translated(fp.pos))
	}
	for _, l := range fp.Lines {
		bbox.Expand(fp.TransformPosition(l.Start))
		bbox.Expand(fp.TransformPosition(l.End))
	}
	for _, t := range fp.AllTexts() {
		if t.IsVisible() {
			bbox.ExpandBox(t.BoundingBox())
		}
	}

	return bbox
}
