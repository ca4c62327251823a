package sexp

// BoundingBox represents an axis-aligned rectangular boundary
type BoundingBox struct {
	Min Position // Minimum (top-left) corner
	Max Position // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},   // Start with very large values
		Max: Position{X: -1e9, Y: -1e9}, // Start with very small values
	}
}

// BoxFromCorners returns the normalized box spanning a and b.
func BoxFromCorners(a, b Position) BoundingBox {
	bb := NewBoundingBox()
	bb.Expand(a)
	bb.Expand(b)
	return bb
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Inflate grows the box by d on every side. A negative d shrinks it; the
// box collapses onto its centre rather than turning inside out.
func (bb BoundingBox) Inflate(d float64) BoundingBox {
	out := BoundingBox{
		Min: Position{X: bb.Min.X - d, Y: bb.Min.Y - d},
		Max: Position{X: bb.Max.X + d, Y: bb.Max.Y + d},
	}
	if out.Min.X > out.Max.X {
		c := bb.Center().X
		out.Min.X, out.Max.X = c, c
	}
	if out.Min.Y > out.Max.Y {
		c := bb.Center().Y
		out.Min.Y, out.Max.Y = c, c
	}
	return out
}

// Translated returns the box moved by v.
func (bb BoundingBox) Translated(v Position) BoundingBox {
	return BoundingBox{Min: bb.Min.Add(v), Max: bb.Max.Add(v)}
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(pos Position) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// ContainsBox reports whether other lies entirely inside bb.
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	return bb.Contains(other.Min) && bb.Contains(other.Max)
}

// Intersects checks if two bounding boxes intersect
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}

// Corners returns the four corners in drawing order starting at Min.
func (bb BoundingBox) Corners() [4]Position {
	return [4]Position{
		bb.Min,
		{X: bb.Max.X, Y: bb.Min.Y},
		bb.Max,
		{X: bb.Min.X, Y: bb.Max.Y},
	}
}

// Rotated returns the axis-aligned bounding box of bb after rotating it by
// angle about pivot.
func (bb BoundingBox) Rotated(pivot Position, angle DeciDegree) BoundingBox {
	out := NewBoundingBox()
	for _, c := range bb.Corners() {
		out.Expand(RotateAround(c, pivot, angle))
	}
	return out
}

// IntersectsRotated reports whether bb intersects the rectangle other after
// other has been rotated by angle about pivot.
func (bb BoundingBox) IntersectsRotated(other BoundingBox, pivot Position, angle DeciDegree) bool {
	if angle.Normalize360()%Deg90 == 0 {
		return bb.Intersects(other.Rotated(pivot, angle))
	}

	var poly [4]Position
	for i, c := range other.Corners() {
		poly[i] = RotateAround(c, pivot, angle)
	}

	// A corner of the rotated rectangle inside bb.
	for _, p := range poly {
		if bb.Contains(p) {
			return true
		}
	}

	// A corner of bb inside the rotated rectangle: undo the rotation and
	// test against the unrotated one.
	for _, c := range bb.Corners() {
		if other.Contains(RotateAround(c, pivot, -angle)) {
			return true
		}
	}

	// Edge crossings.
	edges := bb.Corners()
	for i := 0; i < 4; i++ {
		a1, a2 := poly[i], poly[(i+1)%4]
		for j := 0; j < 4; j++ {
			if segmentsIntersect(a1, a2, edges[j], edges[(j+1)%4]) {
				return true
			}
		}
	}
	return false
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

func cross(o, a, b Position) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(p, a, b Position) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

func segmentsIntersect(p1, p2, q1, q2 Position) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(p1, q1, q2):
		return true
	case d2 == 0 && onSegment(p2, q1, q2):
		return true
	case d3 == 0 && onSegment(q1, p1, p2):
		return true
	case d4 == 0 && onSegment(q2, p1, p2):
		return true
	}
	return false
}
