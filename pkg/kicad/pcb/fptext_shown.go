package pcb

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ShownText returns the text as displayed. Only user texts expand macros:
//
//	%%  a literal percent sign
//	%R  the footprint reference
//	%V  the footprint value
//
// Any other character after '%' shows as '?'. A trailing '%' is dropped.
// Expansion is a single pass; substituted values are not expanded again.
func (t *FootprintText) ShownText() string {
	if t.kind != TextUser || !strings.Contains(t.text, "%") {
		return t.text
	}

	var b strings.Builder
	b.Grow(len(t.text))

	// Macro letters are ASCII; every other byte is copied unchanged, so
	// text that is not valid UTF-8 survives.
	src := t.text
	for i := 0; i < len(src); i++ {
		if src[i] != '%' {
			b.WriteByte(src[i])
			continue
		}
		if i+1 == len(src) {
			break
		}
		r, n := utf8.DecodeRuneInString(src[i+1:])
		i += n
		switch r {
		case '%':
			b.WriteByte('%')
		case 'R':
			if t.parent != nil {
				b.WriteString(t.parent.Reference())
			}
		case 'V':
			if t.parent != nil {
				b.WriteString(t.parent.Value())
			}
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// MsgItem is one label/value row of the item information panel.
type MsgItem struct {
	Label string
	Value string
}

var kindLabels = [...]string{
	TextReference: "Ref.",
	TextValue:     "Value",
	TextUser:      "Text",
}

// Describe lists the properties shown when the text is selected. Detached
// texts have nothing to show.
func (t *FootprintText) Describe() []MsgItem {
	if t.parent == nil {
		return nil
	}

	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	return []MsgItem{
		{"Footprint", t.parent.Reference()},
		{"Text", t.ShownText()},
		{"Type", kindLabels[t.kind]},
		{"Display", yesNo(t.visible)},
		{"Layer", t.layer},
		{"Mirror", yesNo(t.mirrored)},
		{"Angle", fmt.Sprintf("%.1f", t.angle.Degrees())},
		{"Thickness", formatMM(t.thickness)},
		{"Width", formatMM(t.size.Width)},
		{"Height", formatMM(t.size.Height)},
	}
}

func formatMM(v float64) string {
	return fmt.Sprintf("%.4f mm", v)
}

// maxMenuText is the number of runes of a user text shown in menus.
const maxMenuText = 15

// SelectMenuText is the one line label used in disambiguation menus.
func (t *FootprintText) SelectMenuText() string {
	var ref string
	if t.parent != nil {
		ref = t.parent.Reference()
	}

	switch t.kind {
	case TextReference:
		return fmt.Sprintf("Reference %s", ref)
	case TextValue:
		return fmt.Sprintf("Value %s of %s", t.ShownText(), ref)
	}
	return fmt.Sprintf("Text \"%s\" on %s of %s", shortened(t.ShownText()), t.layer, ref)
}

// shortened cuts s to maxMenuText runes, flattening line breaks.
func shortened(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	r := []rune(s)
	if len(r) > maxMenuText {
		return string(r[:maxMenuText]) + "..."
	}
	return s
}

// ViewLayer is the layer the text is drawn on by a layered view. Hidden
// texts go to the invisible text element instead of their board layer.
func (t *FootprintText) ViewLayer() string {
	if !t.visible {
		return ElementModTextInvisible.String()
	}
	return t.layer
}

// LevelOfDetailHidden reports whether a view should skip the text entirely
// because the kind or board side it belongs to is switched off. A nil view
// hides nothing.
func (t *FootprintText) LevelOfDetailHidden(view ElementVisibility) bool {
	if view == nil {
		return false
	}

	switch t.kind {
	case TextValue:
		if !view.IsElementVisible(ElementModValues) {
			return true
		}
	case TextReference:
		if !view.IsElementVisible(ElementModReferences) {
			return true
		}
	}

	switch {
	case IsFrontLayer(t.layer):
		return !view.IsElementVisible(ElementModTextFront) || !view.IsElementVisible(ElementModFront)
	case IsBackLayer(t.layer):
		return !view.IsElementVisible(ElementModTextBack) || !view.IsElementVisible(ElementModBack)
	}
	return false
}
