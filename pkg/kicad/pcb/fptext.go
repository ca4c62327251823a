package pcb

import (
	"fmt"
)

// TextKind tells what a footprint text stands for.
type TextKind int

const (
	TextReference TextKind = iota // reference designator, e.g. R1
	TextValue                     // component value, e.g. 10k
	TextUser                      // free text, may contain %R / %V macros
)

func (k TextKind) String() string {
	switch k {
	case TextReference:
		return "reference"
	case TextValue:
		return "value"
	case TextUser:
		return "user"
	}
	return fmt.Sprintf("TextKind(%d)", int(k))
}

// ParseTextKind maps the board file keyword to a TextKind.
func ParseTextKind(s string) (TextKind, bool) {
	switch s {
	case "reference":
		return TextReference, true
	case "value":
		return TextValue, true
	case "user":
		return TextUser, true
	}
	return 0, false
}

// HJustify is the horizontal anchoring of a text relative to its position.
type HJustify int

const (
	JustifyCenter HJustify = iota
	JustifyLeft
	JustifyRight
)

// VJustify is the vertical anchoring of a text relative to its position.
type VJustify int

const (
	JustifyMiddle VJustify = iota
	JustifyTop
	JustifyBottom
)

// Default attributes of a new footprint text.
const (
	DefaultTextThickness = 0.15 // mm
	DefaultTextSize      = 1.0  // mm, both width and height
)

// FootprintText is a reference, value or user text attached to a footprint.
//
// The local position (relative to the footprint origin, in the unrotated
// footprint frame) is the canonical value. The board position is a cache
// derived from it:
//
//	pos = RotatePoint(pos0, parent.Orientation()) + parent.Position()
//
// Every exported mutator keeps the two in step. A nil parent is a valid
// detached state (module editor buffer, clipboard, clone); in that state
// both positions are equal.
type FootprintText struct {
	kind TextKind

	pos0 Position // local
	pos  Position // board

	angle     DeciDegree // own angle, [0, 3600)
	thickness float64
	size      Size
	layer     string
	mirrored  bool
	visible   bool
	italic    bool
	bold      bool
	hJustify  HJustify
	vJustify  VJustify
	text      string

	metrics TextMetrics

	// parent is a non-owning back reference; the footprint owns the text.
	parent *Footprint
}

// NewFootprintText creates a text of the given kind. With a parent it
// starts at the parent's position and, when the parent sits on the back
// of the board, on the back silkscreen and mirrored. The text is not added
// to the parent's lists; see Footprint.AddText.
//
// kind must be one of the TextKind constants; anything else is a
// programming error and panics.
func NewFootprintText(parent *Footprint, kind TextKind) *FootprintText {
	if kind < TextReference || kind > TextUser {
		panic(fmt.Sprintf("pcb: invalid footprint text kind %d", int(kind)))
	}

	t := &FootprintText{
		kind:      kind,
		thickness: DefaultTextThickness,
		size:      Size{Width: DefaultTextSize, Height: DefaultTextSize},
		layer:     LayerFrontSilk,
		visible:   true,
		parent:    parent,
	}

	if parent != nil {
		t.pos = parent.Position()
		if IsBackLayer(parent.Layer) {
			t.layer = LayerBackSilk
			t.mirrored = true
		}
	}
	t.SyncLocalFromGlobal()

	return t
}

// Clone returns a copy with identical field values. The copy keeps the
// parent handle for macro expansion and coordinates, but the parent does
// not list or own it.
func (t *FootprintText) Clone() *FootprintText {
	c := *t
	return &c
}

// Kind returns the text kind fixed at construction.
func (t *FootprintText) Kind() TextKind { return t.kind }

// Parent returns the owning footprint, or nil when detached.
func (t *FootprintText) Parent() *Footprint { return t.parent }

// SetParent re-binds the text to another footprint (or detaches it with
// nil), keeping the local position and re-deriving the board position.
func (t *FootprintText) SetParent(fp *Footprint) {
	t.parent = fp
	t.SyncGlobalFromLocal()
}

// detach drops the parent, keeping the board position.
func (t *FootprintText) detach() {
	t.parent = nil
	t.SyncLocalFromGlobal()
}

// Text returns the raw text, macros unexpanded.
func (t *FootprintText) Text() string { return t.text }

// SetText replaces the raw text.
func (t *FootprintText) SetText(s string) { t.text = s }

// Position returns the board position.
func (t *FootprintText) Position() Position { return t.pos }

// SetPosition moves the text to a board position and updates the local one.
func (t *FootprintText) SetPosition(p Position) {
	t.pos = p
	t.SyncLocalFromGlobal()
}

// LocalPosition returns the position in the footprint frame.
func (t *FootprintText) LocalPosition() Position { return t.pos0 }

// SetLocalPosition sets the position in the footprint frame and updates
// the board position.
func (t *FootprintText) SetLocalPosition(p Position) {
	t.pos0 = p
	t.SyncGlobalFromLocal()
}

// Angle returns the text's own angle, without the footprint orientation.
func (t *FootprintText) Angle() DeciDegree { return t.angle }

// SetAngle sets the own angle, normalised into [0, 360) degrees.
func (t *FootprintText) SetAngle(a DeciDegree) { t.angle = a.Normalize360() }

func (t *FootprintText) Thickness() float64     { return t.thickness }
func (t *FootprintText) SetThickness(w float64) { t.thickness = w }

func (t *FootprintText) Size() Size      { return t.size }
func (t *FootprintText) SetSize(s Size)  { t.size = s }
func (t *FootprintText) Layer() string   { return t.layer }
func (t *FootprintText) SetLayer(l string) { t.layer = l }

// IsOnLayer reports whether the text is drawn on layer.
func (t *FootprintText) IsOnLayer(l string) bool { return t.layer == l }

func (t *FootprintText) IsMirrored() bool     { return t.mirrored }
func (t *FootprintText) SetMirrored(m bool)   { t.mirrored = m }
func (t *FootprintText) IsVisible() bool      { return t.visible }
func (t *FootprintText) SetVisible(v bool)    { t.visible = v }
func (t *FootprintText) IsItalic() bool       { return t.italic }
func (t *FootprintText) SetItalic(v bool)     { t.italic = v }
func (t *FootprintText) IsBold() bool         { return t.bold }
func (t *FootprintText) SetBold(v bool)       { t.bold = v }
func (t *FootprintText) HJustify() HJustify   { return t.hJustify }
func (t *FootprintText) SetHJustify(j HJustify) { t.hJustify = j }
func (t *FootprintText) VJustify() VJustify   { return t.vJustify }
func (t *FootprintText) SetVJustify(j VJustify) { t.vJustify = j }

// SetMetrics overrides the glyph metrics used for boxes and hit tests.
// nil restores DefaultMetrics.
func (t *FootprintText) SetMetrics(m TextMetrics) { t.metrics = m }

// Metrics returns the metrics set with SetMetrics, nil if none.
func (t *FootprintText) Metrics() TextMetrics { return t.metrics }

func (t *FootprintText) textMetrics() TextMetrics {
	if t.metrics == nil {
		return DefaultMetrics
	}
	return t.metrics
}

func (t *FootprintText) String() string {
	return fmt.Sprintf("%s %q at (%.3f, %.3f) on %s", t.kind, t.text, t.pos.X, t.pos.Y, t.layer)
}
