package sexp

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation helpers

// Items returns the elements of a list node, or nil for atoms.
func Items(s kicadsexp.Sexp) []kicadsexp.Sexp {
	if l, ok := s.(*kicadsexp.List); ok {
		return l.Items()
	}
	return nil
}

// FindNode searches for a child list whose first symbol is key.
// Example: FindNode(sexp, "at") finds (at 100 50) in a list
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	for _, item := range Items(s) {
		if name, err := GetNodeName(item); err == nil && !item.IsLeaf() && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes finds all child lists whose first symbol is key
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	for _, item := range Items(s) {
		if item.IsLeaf() {
			continue
		}
		if name, err := GetNodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// GetListItems returns all items in a list (excluding the first symbol/key)
// Example: GetListItems((layers "F.Cu" "B.Cu")) returns ["F.Cu", "B.Cu"]
func GetListItems(s kicadsexp.Sexp) []kicadsexp.Sexp {
	items := Items(s)
	if len(items) <= 1 {
		return nil
	}
	return items[1:]
}

// Typed value extraction helpers

// GetString extracts the atom at index, quoted or not.
// Index 0 is the key, 1 is first value, etc.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	if s.IsLeaf() {
		return "", fmt.Errorf("expected list, got leaf")
	}

	items := Items(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}

	switch v := items[index].(type) {
	case kicadsexp.Symbol:
		return string(v), nil
	case kicadsexp.Quoted:
		return string(v), nil
	}
	return "", fmt.Errorf("expected atom at index %d, got %T", index, items[index])
}

// GetFloat extracts a float64 value at the given index
func GetFloat(s kicadsexp.Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

// HasSymbol checks if a list contains a specific bare symbol. Quoted atoms
// never match.
func HasSymbol(s kicadsexp.Sexp, symbol string) bool {
	for _, item := range Items(s) {
		if sym, ok := item.(kicadsexp.Symbol); ok && string(sym) == symbol {
			return true
		}
	}
	return false
}

// HasFlag reports whether s carries symbol either bare, as in KiCad 6
// (hide), or as a (symbol yes) child, as in KiCad 8.
func HasFlag(s kicadsexp.Sexp, symbol string) bool {
	if HasSymbol(s, symbol) {
		return true
	}
	if node, ok := FindNode(s, symbol); ok {
		v, err := GetString(node, 1)
		return err != nil || v == "yes"
	}
	return false
}

// GetNodeName returns the first symbol of a list (the node type/name)
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil node")
	}
	if s.IsLeaf() {
		if sym, ok := s.(kicadsexp.Symbol); ok {
			return string(sym), nil
		}
		return "", fmt.Errorf("expected symbol leaf")
	}

	if sym, ok := s.Head().(kicadsexp.Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("expected symbol at head of list")
}

// Domain-specific extraction helpers

// GetAt extracts position and optional angle from an (at X Y [angle]) node.
// The angle is stored in degrees in the file.
func GetAt(s kicadsexp.Sexp) (Position, DeciDegree, error) {
	if name, err := GetNodeName(s); err != nil || name != "at" {
		return Position{}, 0, fmt.Errorf("expected (at X Y [angle]) list")
	}

	x, err := GetFloat(s, 1)
	if err != nil {
		return Position{}, 0, fmt.Errorf("failed to parse X coordinate: %w", err)
	}
	y, err := GetFloat(s, 2)
	if err != nil {
		return Position{}, 0, fmt.Errorf("failed to parse Y coordinate: %w", err)
	}

	var angle DeciDegree
	if deg, err := GetFloat(s, 3); err == nil {
		angle = FromDegrees(deg)
	}

	return Position{X: x, Y: y}, angle, nil
}

// GetEffects extracts text effects from an (effects ...) node
func GetEffects(s kicadsexp.Sexp) (Effects, error) {
	effects := Effects{
		Justify: Justify{Horizontal: "center", Vertical: "center"},
	}

	if s.IsLeaf() {
		return effects, fmt.Errorf("expected (effects ...) list")
	}

	if fontNode, ok := FindNode(s, "font"); ok {
		font, err := GetFont(fontNode)
		if err != nil {
			return effects, fmt.Errorf("failed to parse font: %w", err)
		}
		effects.Font = font
	}

	if justifyNode, ok := FindNode(s, "justify"); ok {
		effects.Justify = GetJustify(justifyNode)
	}

	effects.Hide = HasFlag(s, "hide")

	return effects, nil
}

// GetFont extracts font properties from a (font ...) node.
// Size is written as (size HEIGHT WIDTH).
func GetFont(s kicadsexp.Sexp) (Font, error) {
	font := Font{}

	if s.IsLeaf() {
		return font, fmt.Errorf("expected (font ...) list")
	}

	if sizeNode, ok := FindNode(s, "size"); ok {
		h, err := GetFloat(sizeNode, 1)
		if err != nil {
			return font, fmt.Errorf("failed to parse font height: %w", err)
		}
		w, err := GetFloat(sizeNode, 2)
		if err != nil {
			w = h
		}
		font.Size = Size{Width: w, Height: h}
	}

	if thicknessNode, ok := FindNode(s, "thickness"); ok {
		t, err := GetFloat(thicknessNode, 1)
		if err != nil {
			return font, fmt.Errorf("failed to parse font thickness: %w", err)
		}
		font.Thickness = t
	}

	font.Bold = HasFlag(s, "bold")
	font.Italic = HasFlag(s, "italic")

	if faceNode, ok := FindNode(s, "face"); ok {
		face, _ := GetString(faceNode, 1)
		font.Face = face
	}

	return font, nil
}

// GetJustify extracts justification from a (justify ...) node
func GetJustify(s kicadsexp.Sexp) Justify {
	justify := Justify{
		Horizontal: "center",
		Vertical:   "center",
	}

	for _, item := range GetListItems(s) {
		sym, ok := item.(kicadsexp.Symbol)
		if !ok {
			continue
		}
		switch string(sym) {
		case "left", "right":
			justify.Horizontal = string(sym)
		case "top", "bottom":
			justify.Vertical = string(sym)
		case "mirror":
			justify.Mirror = true
		}
	}

	return justify
}
