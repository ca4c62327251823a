package pcb

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp/kicadsexp"
)

// parseFootprints extracts all footprint definitions from the root node.
// Footprints that fail to parse are logged and skipped.
func parseFootprints(root kicadsexp.Sexp) []*Footprint {
	nodes := sexp.FindAllNodes(root, "footprint")
	footprints := make([]*Footprint, 0, len(nodes))

	for i, n := range nodes {
		fp, err := parseFootprint(n)
		if err != nil {
			Logger().Warn("skipping footprint", "index", i, "err", err)
			continue
		}
		footprints = append(footprints, fp)
	}

	return footprints
}

// parseFootprint extracts a footprint (component) definition
// Expected format: (footprint "library:name" (layer "layer") (at x y [angle]) ...)
func parseFootprint(node kicadsexp.Sexp) (*Footprint, error) {
	if node.IsLeaf() {
		return nil, fmt.Errorf("expected footprint list, got leaf")
	}

	fpName, err := sexp.GetString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint name: %w", err)
	}

	fp := NewFootprint(fpName)
	// Example: "Resistor_SMD:R_0603_1608Metric"
	if lib, name, ok := strings.Cut(fpName, ":"); ok && lib != "" {
		fp.Library, fp.Name = lib, name
	}

	layerNode, found := sexp.FindNode(node, "layer")
	if !found {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	if fp.Layer, err = sexp.GetString(layerNode, 1); err != nil {
		return nil, fmt.Errorf("failed to parse layer: %w", err)
	}
	if IsBackLayer(fp.Layer) {
		// Re-create the default texts so they pick up the back side defaults.
		fp.ReferenceText = NewFootprintText(fp, TextReference)
		fp.ValueText = NewFootprintText(fp, TextValue)
	}

	atNode, found := sexp.FindNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	pos, angle, err := sexp.GetAt(atNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position: %w", err)
	}
	fp.SetPosition(pos)
	fp.SetOrientation(angle)

	if attrNode, found := sexp.FindNode(node, "attr"); found {
		fp.Attr, _ = sexp.GetString(attrNode, 1)
	}

	// KiCad 6/7 texts
	for _, n := range sexp.FindAllNodes(node, "fp_text") {
		kindName, err := sexp.GetString(n, 1)
		if err != nil {
			continue
		}
		kind, ok := ParseTextKind(kindName)
		if !ok {
			Logger().Warn("skipping footprint text", "footprint", fpName, "kind", kindName)
			continue
		}
		t, err := parseFootprintText(n, fp, kind)
		if err != nil {
			Logger().Warn("skipping footprint text", "footprint", fpName, "kind", kindName, "err", err)
			continue
		}
		fp.AddText(t)
	}

	// KiCad 8 stores reference and value as positioned properties.
	for _, n := range sexp.FindAllNodes(node, "property") {
		name, err := sexp.GetString(n, 1)
		if err != nil {
			continue
		}
		var kind TextKind
		switch name {
		case "Reference":
			kind = TextReference
		case "Value":
			kind = TextValue
		default:
			continue
		}

		if _, positioned := sexp.FindNode(n, "at"); !positioned {
			// Plain property: only the string is known.
			if v, err := sexp.GetString(n, 2); err == nil {
				if kind == TextReference && fp.Reference() == "" {
					fp.SetReference(v)
				} else if kind == TextValue && fp.Value() == "" {
					fp.SetValue(v)
				}
			}
			continue
		}

		t, err := parseFootprintText(n, fp, kind)
		if err != nil {
			Logger().Warn("skipping footprint property", "footprint", fpName, "property", name, "err", err)
			continue
		}
		fp.AddText(t)
	}

	for _, n := range sexp.FindAllNodes(node, "pad") {
		pad, err := parsePad(n)
		if err != nil {
			Logger().Debug("skipping pad", "footprint", fpName, "err", err)
			continue
		}
		fp.Pads = append(fp.Pads, *pad)
	}

	for _, key := range []string{"fp_line", "fp_rect"} {
		for _, n := range sexp.FindAllNodes(node, key) {
			lines, err := parseLines(n, key == "fp_rect")
			if err != nil {
				Logger().Debug("skipping outline", "footprint", fpName, "kind", key, "err", err)
				continue
			}
			fp.Lines = append(fp.Lines, lines...)
		}
	}

	Logger().Debug("parsed footprint",
		"name", fpName,
		"reference", fp.Reference(),
		"layer", fp.Layer,
		"texts", len(fp.AllTexts()),
		"pads", len(fp.Pads))

	return fp, nil
}

// parseFootprintText reads an fp_text or positioned property node:
//
//	(fp_text user "%R" (at x y [angle]) (layer "F.SilkS") [hide] (effects ...))
//	(property "Value" "10k" (at x y [angle]) (layer "F.Fab") [(hide yes)] (effects ...))
//
// The position is in the footprint frame. The stored angle includes the
// footprint orientation.
func parseFootprintText(node kicadsexp.Sexp, fp *Footprint, kind TextKind) (*FootprintText, error) {
	text, err := sexp.GetString(node, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text: %w", err)
	}

	t := NewFootprintText(fp, kind)
	t.SetText(text)

	atNode, found := sexp.FindNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	pos, angle, err := sexp.GetAt(atNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position: %w", err)
	}
	t.SetLocalPosition(pos)
	t.SetAngle(angle - fp.Orientation())

	if layerNode, found := sexp.FindNode(node, "layer"); found {
		layer, err := sexp.GetString(layerNode, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layer: %w", err)
		}
		t.SetLayer(layer)
		t.SetMirrored(IsBackLayer(layer))
	}

	hidden := sexp.HasFlag(node, "hide")
	if effectsNode, found := sexp.FindNode(node, "effects"); found {
		effects, err := sexp.GetEffects(effectsNode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse effects: %w", err)
		}
		applyEffects(t, effects)
		hidden = hidden || effects.Hide
	}
	t.SetVisible(!hidden)

	return t, nil
}

func applyEffects(t *FootprintText, e sexp.Effects) {
	if e.Font.Size.Height > 0 {
		t.SetSize(e.Font.Size)
	}
	if e.Font.Thickness > 0 {
		t.SetThickness(e.Font.Thickness)
	}
	t.SetBold(e.Font.Bold)
	t.SetItalic(e.Font.Italic)

	switch e.Justify.Horizontal {
	case "left":
		t.SetHJustify(JustifyLeft)
	case "right":
		t.SetHJustify(JustifyRight)
	default:
		t.SetHJustify(JustifyCenter)
	}
	switch e.Justify.Vertical {
	case "top":
		t.SetVJustify(JustifyTop)
	case "bottom":
		t.SetVJustify(JustifyBottom)
	default:
		t.SetVJustify(JustifyMiddle)
	}

	if e.Justify.Mirror {
		t.SetMirrored(true)
	}
}

// parsePad extracts a pad definition from a footprint
// Expected format: (pad "number" type shape (at x y [angle]) (size w h) (layers ...) ...)
func parsePad(node kicadsexp.Sexp) (*Pad, error) {
	if node.IsLeaf() {
		return nil, fmt.Errorf("expected pad list, got leaf")
	}

	pad := &Pad{}
	var err error

	if pad.Number, err = sexp.GetString(node, 1); err != nil {
		return nil, fmt.Errorf("failed to parse pad number: %w", err)
	}
	if pad.Type, err = sexp.GetString(node, 2); err != nil {
		return nil, fmt.Errorf("failed to parse pad type: %w", err)
	}
	if pad.Shape, err = sexp.GetString(node, 3); err != nil {
		return nil, fmt.Errorf("failed to parse pad shape: %w", err)
	}

	atNode, found := sexp.FindNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	if pad.Position, pad.Angle, err = sexp.GetAt(atNode); err != nil {
		return nil, fmt.Errorf("failed to parse pad position: %w", err)
	}

	sizeNode, found := sexp.FindNode(node, "size")
	if !found {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	w, err := sexp.GetFloat(sizeNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad width: %w", err)
	}
	h, err := sexp.GetFloat(sizeNode, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad height: %w", err)
	}
	pad.Size = Size{Width: w, Height: h}

	// Drill can be just a number or (drill oval w h)
	if drillNode, found := sexp.FindNode(node, "drill"); found {
		if d, err := sexp.GetFloat(drillNode, 1); err == nil {
			pad.Drill = d
		}
	}

	if layersNode, found := sexp.FindNode(node, "layers"); found {
		for _, item := range sexp.GetListItems(layersNode) {
			switch v := item.(type) {
			case kicadsexp.Symbol:
				pad.Layers = append(pad.Layers, string(v))
			case kicadsexp.Quoted:
				pad.Layers = append(pad.Layers, string(v))
			}
		}
	}

	return pad, nil
}

// parseLines reads a line or rectangle graphic. A rectangle becomes its
// four sides.
//
//	(fp_line (start x y) (end x y) (stroke (width w) ...) (layer "F.SilkS"))
//	(fp_line (start x y) (end x y) (layer "F.SilkS") (width w))
func parseLines(node kicadsexp.Sexp, rect bool) ([]Line, error) {
	start, err := parseXY(node, "start")
	if err != nil {
		return nil, err
	}
	end, err := parseXY(node, "end")
	if err != nil {
		return nil, err
	}

	layerNode, found := sexp.FindNode(node, "layer")
	if !found {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	layer, err := sexp.GetString(layerNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layer: %w", err)
	}

	width := 0.15
	if strokeNode, found := sexp.FindNode(node, "stroke"); found {
		if wn, found := sexp.FindNode(strokeNode, "width"); found {
			if w, err := sexp.GetFloat(wn, 1); err == nil {
				width = w
			}
		}
	} else if wn, found := sexp.FindNode(node, "width"); found {
		if w, err := sexp.GetFloat(wn, 1); err == nil {
			width = w
		}
	}

	if !rect {
		return []Line{{Start: start, End: end, Width: width, Layer: layer}}, nil
	}

	c := sexp.BoxFromCorners(start, end).Corners()
	lines := make([]Line, 4)
	for i := range c {
		lines[i] = Line{Start: c[i], End: c[(i+1)%4], Width: width, Layer: layer}
	}
	return lines, nil
}

// parseXY reads a (key x y) child.
func parseXY(node kicadsexp.Sexp, key string) (Position, error) {
	n, found := sexp.FindNode(node, key)
	if !found {
		return Position{}, fmt.Errorf("missing required '%s' position", key)
	}
	x, err := sexp.GetFloat(n, 1)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse %s X: %w", key, err)
	}
	y, err := sexp.GetFloat(n, 2)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse %s Y: %w", key, err)
	}
	return Position{X: x, Y: y}, nil
}
