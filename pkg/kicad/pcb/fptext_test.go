package pcb

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Position) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func placedFootprint(pos Position, orient DeciDegree) *Footprint {
	fp := NewFootprint("R_0603")
	fp.SetReference("R1")
	fp.SetValue("10k")
	fp.SetPosition(pos)
	fp.SetOrientation(orient)
	return fp
}

func TestNewFootprintTextDefaults(t *testing.T) {
	fp := placedFootprint(Position{X: 10, Y: 20}, 0)
	txt := NewFootprintText(fp, TextUser)

	if txt.Position() != fp.Position() {
		t.Errorf("Position() = %v, want parent position %v", txt.Position(), fp.Position())
	}
	if txt.LocalPosition() != (Position{}) {
		t.Errorf("LocalPosition() = %v, want origin", txt.LocalPosition())
	}
	if txt.Layer() != LayerFrontSilk || txt.IsMirrored() {
		t.Errorf("layer = %s mirrored = %v, want %s unmirrored", txt.Layer(), txt.IsMirrored(), LayerFrontSilk)
	}
	if txt.Thickness() != DefaultTextThickness {
		t.Errorf("Thickness() = %v, want %v", txt.Thickness(), DefaultTextThickness)
	}
	if !txt.IsVisible() {
		t.Error("new text should be visible")
	}

	fp.Layer = LayerBackCu
	back := NewFootprintText(fp, TextValue)
	if back.Layer() != LayerBackSilk || !back.IsMirrored() {
		t.Errorf("back text layer = %s mirrored = %v, want %s mirrored", back.Layer(), back.IsMirrored(), LayerBackSilk)
	}
}

func TestNewFootprintTextInvalidKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewFootprintText with invalid kind did not panic")
		}
	}()
	NewFootprintText(nil, TextKind(7))
}

func TestCoordinateRoundTrip(t *testing.T) {
	placements := []struct {
		pos    Position
		orient DeciDegree
	}{
		{Position{}, 0},
		{Position{X: 100, Y: 50}, 0},
		{Position{X: 100, Y: 50}, 900},
		{Position{X: -3.5, Y: 12.25}, 1800},
		{Position{X: 7, Y: 7}, 2700},
		{Position{X: 42.1, Y: -8.3}, 453},
		{Position{X: 0.5, Y: 0.5}, 3599},
	}
	locals := []Position{
		{}, {X: 1, Y: 0}, {X: 0, Y: -1.43}, {X: 2.5, Y: 3.75}, {X: -10, Y: 4},
	}

	for _, p := range placements {
		for _, l := range locals {
			fp := placedFootprint(p.pos, p.orient)
			txt := NewFootprintText(fp, TextUser)
			txt.SetLocalPosition(l)

			txt.SyncGlobalFromLocal()
			txt.SyncLocalFromGlobal()
			if !near(txt.LocalPosition(), l) {
				t.Errorf("placement %v/%d: local %v round-tripped to %v", p.pos, p.orient, l, txt.LocalPosition())
			}
		}
	}
}

func TestSyncGlobalFromLocal(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		orient DeciDegree
		local  Position
		want   Position
	}{
		{"unrotated", Position{X: 10, Y: 10}, 0, Position{X: 1, Y: 2}, Position{X: 11, Y: 12}},
		{"quarter turn", Position{X: 10, Y: 10}, 900, Position{X: 1, Y: 0}, Position{X: 10, Y: 9}},
		{"half turn", Position{X: 10, Y: 10}, 1800, Position{X: 1, Y: 2}, Position{X: 9, Y: 8}},
		{"three quarters", Position{X: 0, Y: 0}, 2700, Position{X: 0, Y: 1}, Position{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := placedFootprint(tt.pos, tt.orient)
			txt := NewFootprintText(fp, TextUser)
			txt.SetLocalPosition(tt.local)
			if !near(txt.Position(), tt.want) {
				t.Errorf("Position() = %v, want %v", txt.Position(), tt.want)
			}
		})
	}
}

func TestDetachedPositions(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	txt.SetPosition(Position{X: 3, Y: 4})
	if txt.LocalPosition() != txt.Position() {
		t.Errorf("detached local %v != global %v", txt.LocalPosition(), txt.Position())
	}
	txt.SetLocalPosition(Position{X: -1, Y: 2})
	if txt.Position() != (Position{X: -1, Y: 2}) {
		t.Errorf("detached global = %v, want (-1, 2)", txt.Position())
	}
}

func TestFootprintMovesTexts(t *testing.T) {
	fp := placedFootprint(Position{X: 10, Y: 10}, 0)
	fp.ReferenceText.SetLocalPosition(Position{X: 0, Y: -2})

	fp.Move(Position{X: 5, Y: 0})
	if !near(fp.ReferenceText.Position(), Position{X: 15, Y: 8}) {
		t.Errorf("after Move text at %v, want (15, 8)", fp.ReferenceText.Position())
	}

	fp.Rotate(fp.Position(), 900)
	if !near(fp.ReferenceText.Position(), Position{X: 13, Y: 10}) {
		t.Errorf("after Rotate text at %v, want (13, 10)", fp.ReferenceText.Position())
	}
	if fp.ReferenceText.LocalPosition() != (Position{X: 0, Y: -2}) {
		t.Errorf("local position changed to %v", fp.ReferenceText.LocalPosition())
	}
	if fp.ReferenceText.Angle() != 0 {
		t.Errorf("own angle changed to %d", fp.ReferenceText.Angle())
	}
	if fp.ReferenceText.DrawRotation() != 900 {
		t.Errorf("DrawRotation() = %d, want 900", fp.ReferenceText.DrawRotation())
	}
}

func TestMoveAndRotate(t *testing.T) {
	fp := placedFootprint(Position{X: 0, Y: 0}, 900)
	txt := NewFootprintText(fp, TextUser)
	txt.SetPosition(Position{X: 2, Y: 0})

	txt.Move(Position{X: 1, Y: 1})
	if !near(txt.Position(), Position{X: 3, Y: 1}) {
		t.Fatalf("Move: position %v, want (3, 1)", txt.Position())
	}
	// Local frame is rotated by the footprint: global (3, 1) is local (-1, 3).
	if !near(txt.LocalPosition(), Position{X: -1, Y: 3}) {
		t.Errorf("Move: local %v, want (-1, 3)", txt.LocalPosition())
	}

	txt.Rotate(Position{X: 3, Y: 0}, 1800)
	if !near(txt.Position(), Position{X: 3, Y: -1}) {
		t.Errorf("Rotate: position %v, want (3, -1)", txt.Position())
	}
	if txt.Angle() != 1800 {
		t.Errorf("Rotate: angle %d, want 1800", txt.Angle())
	}

	txt.Rotate(txt.Position(), 2700)
	if txt.Angle() != 900 {
		t.Errorf("Rotate wraps: angle %d, want 900", txt.Angle())
	}
}

func TestDrawRotationRange(t *testing.T) {
	for own := DeciDegree(-3600); own <= 3600; own += 75 {
		for _, orient := range []DeciDegree{0, 450, 900, 1800, 2700, 3150} {
			fp := placedFootprint(Position{}, orient)
			txt := NewFootprintText(fp, TextUser)
			txt.SetAngle(own)

			got := txt.DrawRotation()
			if got <= -900 || got > 900 {
				t.Fatalf("own %d orient %d: DrawRotation() = %d outside (-900, 900]", own, orient, got)
			}
			if got.Readable() != got {
				t.Fatalf("own %d orient %d: normalisation not idempotent: %d -> %d", own, orient, got, got.Readable())
			}
			if (own+orient-got)%1800 != 0 {
				t.Fatalf("own %d orient %d: DrawRotation() = %d is not a half-turn multiple away", own, orient, got)
			}
		}
	}
}

func TestDrawRotationThreeQuarterTurn(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	txt.SetAngle(2700)
	if got := txt.DrawRotation(); got != 900 {
		t.Errorf("DrawRotation() for 270 degrees = %d, want 900", got)
	}
}

func TestShownText(t *testing.T) {
	fp := placedFootprint(Position{}, 0)

	tests := []struct {
		name string
		kind TextKind
		in   string
		want string
	}{
		{"macros", TextUser, "%R-%V", "R1-10k"},
		{"escaped percent", TextUser, "100%% done", "100% done"},
		{"trailing percent", TextUser, "abc%", "abc"},
		{"unknown macro", TextUser, "%X%y", "??"},
		{"no percent", TextUser, "plain", "plain"},
		{"no re-expansion", TextUser, "%%R", "%R"},
		{"unicode", TextUser, "Ω%R", "ΩR1"},
		{"unicode after percent", TextUser, "%Ω.", "?."},
		{"invalid utf-8", TextUser, "a\xffb%R", "a\xffbR1"},
		{"invalid utf-8 after percent", TextUser, "%\xff%V", "?10k"},
		{"reference verbatim", TextReference, "%R", "%R"},
		{"value verbatim", TextValue, "50%%", "50%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewFootprintText(fp, tt.kind)
			txt.SetText(tt.in)
			if got := txt.ShownText(); got != tt.want {
				t.Errorf("ShownText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShownTextDetached(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	txt.SetText("[%R|%V]")
	if got := txt.ShownText(); got != "[|]" {
		t.Errorf("ShownText() = %q, want %q", got, "[|]")
	}
}

func TestTextBoxJustification(t *testing.T) {
	tests := []struct {
		name     string
		h        HJustify
		v        VJustify
		mirrored bool
		wantMin  Position
	}{
		{"center middle", JustifyCenter, JustifyMiddle, false, Position{X: -1.5, Y: -0.5}},
		{"left top", JustifyLeft, JustifyTop, false, Position{X: 0, Y: 0}},
		{"right bottom", JustifyRight, JustifyBottom, false, Position{X: -3, Y: -1}},
		{"left mirrored", JustifyLeft, JustifyTop, true, Position{X: -3, Y: 0}},
		{"right mirrored", JustifyRight, JustifyTop, true, Position{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewFootprintText(nil, TextUser)
			txt.SetText("abc")
			txt.SetThickness(0)
			txt.SetHJustify(tt.h)
			txt.SetVJustify(tt.v)
			txt.SetMirrored(tt.mirrored)

			box := txt.TextBox()
			if !near(box.Min, tt.wantMin) {
				t.Errorf("TextBox().Min = %v, want %v", box.Min, tt.wantMin)
			}
			if want := 1 + StrokeDescent; math.Abs(box.Width()-3) > eps || math.Abs(box.Height()-want) > eps {
				t.Errorf("TextBox() size = %vx%v, want 3x%v", box.Width(), box.Height(), want)
			}
		})
	}
}

func TestTextBoxMultiline(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	txt.SetText("ab\nabcd")
	txt.SetThickness(0)
	txt.SetHJustify(JustifyLeft)
	txt.SetVJustify(JustifyTop)
	txt.SetItalic(true)

	// The slant pushes the cap line right and the descent left.
	box := txt.TextBox()
	if want := 4 + ItalicSlant*(1+StrokeDescent); math.Abs(box.Width()-want) > eps {
		t.Errorf("width = %v, want %v", box.Width(), want)
	}
	if want := -StrokeDescent * ItalicSlant; math.Abs(box.Min.X-want) > eps {
		t.Errorf("left edge = %v, want %v", box.Min.X, want)
	}
	if want := 1 + LineSpacing + StrokeDescent; math.Abs(box.Height()-want) > eps {
		t.Errorf("height = %v, want %v", box.Height(), want)
	}
}

// overhangMetrics has glyphs that start before the pen, end past the
// advance and reach above the cap line and below the baseline.
type overhangMetrics struct{}

func (overhangMetrics) Advance(line string, size Size, thickness float64, bold bool) float64 {
	return FixedPitchMetrics{}.Advance(line, size, thickness, bold)
}

func (overhangMetrics) Ink(line string, size Size) BoundingBox {
	w := float64(len(line)) * size.Width
	return BoundingBox{
		Min: Position{X: -0.2, Y: -1.2 * size.Height},
		Max: Position{X: w + 0.1, Y: 0.4 * size.Height},
	}
}

func TestTextBoxEnclosesInk(t *testing.T) {
	tests := []struct {
		name     string
		mirrored bool
		italic   bool
		want     BoundingBox
	}{
		{"plain", false, false, BoundingBox{Min: Position{X: -1.2, Y: -0.7}, Max: Position{X: 1.1, Y: 0.9}}},
		{"mirrored", true, false, BoundingBox{Min: Position{X: -1.1, Y: -0.7}, Max: Position{X: 1.2, Y: 0.9}}},
		{"italic", false, true, BoundingBox{Min: Position{X: -1.28, Y: -0.7}, Max: Position{X: 1.34, Y: 0.9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewFootprintText(nil, TextUser)
			txt.SetText("ab")
			txt.SetThickness(0)
			txt.SetMirrored(tt.mirrored)
			txt.SetItalic(tt.italic)
			txt.SetMetrics(overhangMetrics{})

			box := txt.TextBox()
			if !near(box.Min, tt.want.Min) || !near(box.Max, tt.want.Max) {
				t.Errorf("TextBox() = %v, want %v", box, tt.want)
			}
		})
	}
}

func TestFirstBaseline(t *testing.T) {
	tests := []struct {
		v    VJustify
		n    int
		want float64
	}{
		{JustifyTop, 1, 2},
		{JustifyTop, 3, 2},
		{JustifyMiddle, 1, 1},
		{JustifyBottom, 1, 0},
		{JustifyBottom, 2, -LineSpacing * 2},
		{JustifyMiddle, 2, 1 - LineSpacing},
	}

	for _, tt := range tests {
		if got := FirstBaseline(tt.v, 2, tt.n); math.Abs(got-tt.want) > eps {
			t.Errorf("FirstBaseline(%v, 2, %d) = %v, want %v", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestHitTestPoint(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	txt.SetText("abcd") // 4 x 1 mm, centred
	txt.SetThickness(0)
	txt.SetPosition(Position{X: 10, Y: 10})

	tests := []struct {
		name     string
		p        Position
		accuracy float64
		want     bool
	}{
		{"centre", Position{X: 10, Y: 10}, 0, true},
		{"inside corner", Position{X: 11.9, Y: 10.4}, 0, true},
		{"just outside", Position{X: 12.2, Y: 10}, 0.1, false},
		{"within accuracy", Position{X: 12.05, Y: 10}, 0.1, true},
		{"above", Position{X: 10, Y: 9.3}, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := txt.HitTest(tt.p, tt.accuracy); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.p, tt.accuracy, got, tt.want)
			}
		})
	}
}

func TestHitTestRotated(t *testing.T) {
	for _, angle := range []DeciDegree{900, 2700} {
		txt := NewFootprintText(nil, TextUser)
		txt.SetText("abcd")
		txt.SetThickness(0)
		txt.SetPosition(Position{X: 10, Y: 10})
		txt.SetAngle(angle)

		if txt.DrawRotation() != 900 {
			t.Fatalf("angle %d: DrawRotation() = %d, want 900", angle, txt.DrawRotation())
		}
		// Vertical text: 4 mm tall, 1 mm of cap height plus the descent wide.
		if !txt.HitTest(Position{X: 10, Y: 11.9}, 0) {
			t.Errorf("angle %d: point along the rotated text missed", angle)
		}
		if txt.HitTest(Position{X: 11.9, Y: 10}, 0) {
			t.Errorf("angle %d: point along the unrotated extent hit", angle)
		}
		box := txt.BoundingBox()
		if want := 1 + StrokeDescent; math.Abs(box.Width()-want) > 1e-6 || math.Abs(box.Height()-4) > 1e-6 {
			t.Errorf("angle %d: BoundingBox() = %vx%v, want %vx4", angle, box.Width(), box.Height(), want)
		}
	}
}

func TestHitTestRect(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	txt.SetText("abcd")
	txt.SetThickness(0)
	txt.SetPosition(Position{X: 10, Y: 10})
	txt.SetAngle(450)

	big := BoundingBox{Min: Position{X: 0, Y: 0}, Max: Position{X: 20, Y: 20}}
	if !txt.HitTestRect(big, true, 0) {
		t.Error("enclosing rect should contain the text")
	}

	// Touches the unrotated box corner region but not the rotated text.
	corner := BoundingBox{Min: Position{X: 11.6, Y: 10.3}, Max: Position{X: 12.5, Y: 11}}
	if txt.HitTestRect(corner, false, 0) {
		t.Error("rect beside the rotated text should not intersect")
	}

	// Touches the rotated text near its upper right end.
	end := BoundingBox{Min: Position{X: 11.2, Y: 8.5}, Max: Position{X: 11.6, Y: 8.9}}
	if !txt.HitTestRect(end, false, 0) {
		t.Error("rect over the rotated text end should intersect")
	}
	if txt.HitTestRect(end, true, 0) {
		t.Error("small rect cannot contain the text")
	}
}

func TestFlipInvolution(t *testing.T) {
	fp := placedFootprint(Position{X: 5, Y: 5}, 300)
	txt := NewFootprintText(fp, TextUser)
	txt.SetPosition(Position{X: 7, Y: 3})
	txt.SetAngle(450)

	center := Position{X: 0, Y: 20}
	layer, angle, mirrored, pos := txt.Layer(), txt.Angle(), txt.IsMirrored(), txt.Position()

	txt.Flip(center)
	if txt.Layer() != LayerBackSilk || !txt.IsMirrored() {
		t.Errorf("after one Flip: layer %s mirrored %v", txt.Layer(), txt.IsMirrored())
	}
	if txt.Angle() != 3150 {
		t.Errorf("after one Flip: angle %d, want 3150", txt.Angle())
	}
	if !near(txt.Position(), Position{X: 7, Y: 37}) {
		t.Errorf("after one Flip: position %v, want (7, 37)", txt.Position())
	}

	txt.Flip(center)
	if txt.Layer() != layer || txt.Angle() != angle || txt.IsMirrored() != mirrored {
		t.Errorf("Flip twice: got %s/%d/%v, want %s/%d/%v",
			txt.Layer(), txt.Angle(), txt.IsMirrored(), layer, angle, mirrored)
	}
	if !near(txt.Position(), pos) {
		t.Errorf("Flip twice: position %v, want %v", txt.Position(), pos)
	}
}

func TestMirrorOnlyMovesPosition(t *testing.T) {
	tests := []struct {
		name        string
		aroundXAxis bool
		want        Position
	}{
		{"around X axis", true, Position{X: 3, Y: 16}},
		{"around Y axis", false, Position{X: 17, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewFootprintText(placedFootprint(Position{}, 0), TextUser)
			txt.SetPosition(Position{X: 3, Y: 4})
			txt.SetAngle(300)
			txt.SetMirrored(true)
			txt.SetHJustify(JustifyLeft)

			txt.Mirror(Position{X: 10, Y: 10}, tt.aroundXAxis)
			if !near(txt.Position(), tt.want) {
				t.Errorf("position %v, want %v", txt.Position(), tt.want)
			}
			if txt.Angle() != 300 || !txt.IsMirrored() || txt.HJustify() != JustifyLeft {
				t.Errorf("glyph attributes changed: angle %d mirrored %v justify %v",
					txt.Angle(), txt.IsMirrored(), txt.HJustify())
			}
			if !near(txt.LocalPosition(), txt.Position()) {
				t.Errorf("local %v not resynced to %v", txt.LocalPosition(), txt.Position())
			}
		})
	}
}

func TestFootprintFlipKeepsTextsConsistent(t *testing.T) {
	fp := placedFootprint(Position{X: 10, Y: 10}, 900)
	fp.ReferenceText.SetLocalPosition(Position{X: 1, Y: -2})
	fp.ReferenceText.SetAngle(300)

	fp.Flip(Position{X: 0, Y: 0})

	if fp.Layer != LayerBackCu {
		t.Errorf("footprint layer = %s, want %s", fp.Layer, LayerBackCu)
	}
	if fp.Position() != (Position{X: 10, Y: -10}) {
		t.Errorf("footprint position = %v", fp.Position())
	}
	if fp.Orientation() != 2700 {
		t.Errorf("footprint orientation = %d, want 2700", fp.Orientation())
	}

	ref := fp.ReferenceText
	if !near(ref.LocalPosition(), Position{X: 1, Y: 2}) {
		t.Errorf("local position = %v, want (1, 2)", ref.LocalPosition())
	}
	want := fp.TransformPosition(ref.LocalPosition())
	if !near(ref.Position(), want) {
		t.Errorf("global %v inconsistent with local, want %v", ref.Position(), want)
	}
	if ref.Layer() != LayerBackSilk || !ref.IsMirrored() {
		t.Errorf("text layer %s mirrored %v", ref.Layer(), ref.IsMirrored())
	}
	if ref.Angle() != 3300 {
		t.Errorf("text angle %d, want 3300", ref.Angle())
	}
}

func TestDescribe(t *testing.T) {
	if items := NewFootprintText(nil, TextUser).Describe(); items != nil {
		t.Errorf("detached Describe() = %v, want nil", items)
	}

	fp := placedFootprint(Position{}, 0)
	txt := NewFootprintText(fp, TextUser)
	txt.SetText("%V")
	txt.SetAngle(455)
	txt.SetVisible(false)

	got := map[string]string{}
	for _, it := range txt.Describe() {
		got[it.Label] = it.Value
	}

	want := map[string]string{
		"Footprint": "R1",
		"Text":      "10k",
		"Type":      "Text",
		"Display":   "No",
		"Layer":     LayerFrontSilk,
		"Mirror":    "No",
		"Angle":     "45.5",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Describe()[%s] = %q, want %q", k, got[k], v)
		}
	}
}

func TestSelectMenuText(t *testing.T) {
	fp := placedFootprint(Position{}, 0)

	user := NewFootprintText(fp, TextUser)
	user.SetText("a rather long silkscreen note")

	tests := []struct {
		name string
		txt  *FootprintText
		want string
	}{
		{"reference", fp.ReferenceText, "Reference R1"},
		{"value", fp.ValueText, "Value 10k of R1"},
		{"user", user, `Text "a rather long s..." on F.SilkS of R1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.txt.SelectMenuText(); got != tt.want {
				t.Errorf("SelectMenuText() = %q, want %q", got, tt.want)
			}
		})
	}
}

type elementSet map[Element]bool

func (s elementSet) IsElementVisible(e Element) bool { return !s[e] }

func TestLevelOfDetailHidden(t *testing.T) {
	fp := placedFootprint(Position{}, 0)
	back := NewFootprintText(fp, TextUser)
	back.SetLayer(LayerBackSilk)

	tests := []struct {
		name string
		txt  *FootprintText
		off  elementSet
		want bool
	}{
		{"all on", fp.ValueText, elementSet{}, false},
		{"values off", fp.ValueText, elementSet{ElementModValues: true}, true},
		{"references off", fp.ReferenceText, elementSet{ElementModReferences: true}, true},
		{"references off keeps values", fp.ValueText, elementSet{ElementModReferences: true}, false},
		{"front text off", fp.ReferenceText, elementSet{ElementModTextFront: true}, true},
		{"front footprints off", fp.ReferenceText, elementSet{ElementModFront: true}, true},
		{"back text off", back, elementSet{ElementModTextBack: true}, true},
		{"front off keeps back", back, elementSet{ElementModTextFront: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.txt.LevelOfDetailHidden(tt.off); got != tt.want {
				t.Errorf("LevelOfDetailHidden() = %v, want %v", got, tt.want)
			}
		})
	}

	if fp.ValueText.LevelOfDetailHidden(nil) {
		t.Error("nil view should hide nothing")
	}
}

func TestViewLayer(t *testing.T) {
	txt := NewFootprintText(nil, TextUser)
	if txt.ViewLayer() != LayerFrontSilk {
		t.Errorf("ViewLayer() = %s, want %s", txt.ViewLayer(), LayerFrontSilk)
	}
	txt.SetVisible(false)
	if txt.ViewLayer() != ElementModTextInvisible.String() {
		t.Errorf("hidden ViewLayer() = %s", txt.ViewLayer())
	}
}

func TestCloneIsDetachedCopy(t *testing.T) {
	fp := placedFootprint(Position{X: 1, Y: 1}, 0)
	txt := NewFootprintText(fp, TextUser)
	fp.AddText(txt)
	txt.SetText("%R")

	c := txt.Clone()
	if c == txt || c.ShownText() != "R1" || c.Position() != txt.Position() {
		t.Errorf("clone differs: %v vs %v", c, txt)
	}
	c.SetText("changed")
	if txt.Text() != "%R" {
		t.Error("editing the clone changed the original")
	}
	if len(fp.AllTexts()) != 3 {
		t.Errorf("footprint lists %d texts, want 3", len(fp.AllTexts()))
	}
}

func TestRemoveTextKeepsBoardPosition(t *testing.T) {
	fp := placedFootprint(Position{X: 10, Y: 0}, 900)
	txt := NewFootprintText(fp, TextUser)
	fp.AddText(txt)
	txt.SetLocalPosition(Position{X: 2, Y: 0})
	pos := txt.Position()

	if !fp.RemoveText(txt) {
		t.Fatal("RemoveText() = false")
	}
	if txt.Parent() != nil || txt.Position() != pos || txt.LocalPosition() != pos {
		t.Errorf("detached text: parent %v pos %v local %v, want pos %v", txt.Parent(), txt.Position(), txt.LocalPosition(), pos)
	}
	if fp.RemoveText(fp.ReferenceText) {
		t.Error("reference text must not be removable")
	}
}
