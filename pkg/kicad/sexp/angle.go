package sexp

import "math"

// DeciDegree is an angle in tenths of a degree. Counter-clockwise on screen
// (Y down), matching KiCad's internal orientation unit. All rotation math in
// the board model is done in this unit so that repeated edits do not drift.
type DeciDegree int

const (
	Deg90  DeciDegree = 900
	Deg180 DeciDegree = 1800
	Deg360 DeciDegree = 3600
)

// FromDegrees converts a floating point angle in degrees, rounding to the
// nearest tenth.
func FromDegrees(deg float64) DeciDegree {
	return DeciDegree(math.Round(deg * DegreesToDecidegrees))
}

// Degrees returns the angle in degrees.
func (a DeciDegree) Degrees() float64 {
	return float64(a) * DecidegreesToDegrees
}

// Radians returns the angle in radians.
func (a DeciDegree) Radians() float64 {
	return float64(a) * math.Pi / 1800.0
}

// Normalize360 maps the angle into [0, 3600).
func (a DeciDegree) Normalize360() DeciDegree {
	a %= Deg360
	if a < 0 {
		a += Deg360
	}
	return a
}

// Readable maps the angle into (-900, 900] by adding or subtracting 1800
// until it lands in range. Text drawn at the resulting angle is never upside
// down. Applying Readable to its own result returns the same value.
func (a DeciDegree) Readable() DeciDegree {
	for a > Deg90 {
		a -= Deg180
	}
	for a <= -Deg90 {
		a += Deg180
	}
	return a
}

// RotatePoint rotates p about the origin by angle. Quarter turns are exact.
func RotatePoint(p Position, angle DeciDegree) Position {
	switch angle.Normalize360() {
	case 0:
		return p
	case Deg90:
		return Position{X: p.Y, Y: -p.X}
	case Deg180:
		return Position{X: -p.X, Y: -p.Y}
	case 2700:
		return Position{X: -p.Y, Y: p.X}
	}

	s, c := math.Sincos(angle.Radians())
	return Position{
		X: p.Y*s + p.X*c,
		Y: p.Y*c - p.X*s,
	}
}

// RotateAround rotates p about centre by angle.
func RotateAround(p, centre Position, angle DeciDegree) Position {
	return RotatePoint(p.Sub(centre), angle).Add(centre)
}

// MirrorCoord reflects v about c.
func MirrorCoord(v, c float64) float64 {
	return 2*c - v
}
