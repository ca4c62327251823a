package pcb

import "github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"

// SyncGlobalFromLocal re-derives the board position from the local one.
// Detached texts use the local position unchanged.
func (t *FootprintText) SyncGlobalFromLocal() {
	if t.parent == nil {
		t.pos = t.pos0
		return
	}
	t.pos = sexp.RotatePoint(t.pos0, t.parent.Orientation()).Add(t.parent.Position())
}

// SyncLocalFromGlobal re-derives the local position from the board one.
func (t *FootprintText) SyncLocalFromGlobal() {
	if t.parent == nil {
		t.pos0 = t.pos
		return
	}
	t.pos0 = sexp.RotatePoint(t.pos.Sub(t.parent.Position()), -t.parent.Orientation())
}

// Move translates the text by v on the board.
func (t *FootprintText) Move(v Position) {
	t.pos = t.pos.Add(v)
	t.SyncLocalFromGlobal()
}

// Rotate turns the text about center and adds angle to its own angle.
func (t *FootprintText) Rotate(center Position, angle DeciDegree) {
	t.pos = sexp.RotateAround(t.pos, center, angle)
	t.SetAngle(t.angle + angle)
	t.SyncLocalFromGlobal()
}

// Mirror reflects the position about center: around the X axis when
// aroundXAxis is set (Y changes), otherwise around the Y axis. The glyphs
// themselves are left alone so the text stays readable.
func (t *FootprintText) Mirror(center Position, aroundXAxis bool) {
	if aroundXAxis {
		t.pos.Y = sexp.MirrorCoord(t.pos.Y, center.Y)
	} else {
		t.pos.X = sexp.MirrorCoord(t.pos.X, center.X)
	}
	t.SyncLocalFromGlobal()
}

// Flip moves the text to the other side of the board: Y is mirrored about
// center.Y, the angle is negated and the layer swapped. Back side texts
// are drawn mirrored.
func (t *FootprintText) Flip(center Position) {
	t.pos.Y = sexp.MirrorCoord(t.pos.Y, center.Y)
	t.SetAngle(-t.angle)
	t.layer = FlipLayer(t.layer)
	t.mirrored = IsBackLayer(t.layer)
	t.SyncLocalFromGlobal()
}

// DrawRotation is the angle the text is drawn at: its own angle plus the
// footprint orientation, folded into (-90, 90] degrees so it never reads
// upside down.
func (t *FootprintText) DrawRotation() DeciDegree {
	a := t.angle
	if t.parent != nil {
		a += t.parent.Orientation()
	}
	return a.Readable()
}
