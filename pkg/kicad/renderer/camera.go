package renderer

import (
	"math"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/sexp"
)

// Zoom limits, in pixels per mm.
const (
	minZoom = 0.1
	maxZoom = 1000.0
)

// Camera maps board millimetres to window pixels. Board coordinates grow to
// the right and downwards, like the screen.
type Camera struct {
	Center sexp.Position // board point shown at the middle of the window
	Zoom   float64       // pixels per mm

	ScreenWidth  int
	ScreenHeight int

	// The view is turned clockwise by Rotation and then mirrored left to
	// right when FlipView is set, both about Pivot.
	Rotation sexp.DeciDegree
	FlipView bool
	Pivot    sexp.Position

	InvertY bool // Y grows upwards on screen
}

// NewCamera creates a camera at 10 pixels per mm looking at the origin.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         10,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (c *Camera) halfScreen() sexp.Position {
	return sexp.Position{X: float64(c.ScreenWidth) / 2, Y: float64(c.ScreenHeight) / 2}
}

// WorldToScreen converts a board position to window pixels.
func (c *Camera) WorldToScreen(pos sexp.Position) (float64, float64) {
	v := c.toView(pos).Sub(c.Center)
	x := v.X*c.Zoom + c.halfScreen().X
	y := v.Y*c.Zoom + c.halfScreen().Y
	if c.InvertY {
		y = float64(c.ScreenHeight) - y
	}
	return x, y
}

// ScreenToWorld converts window pixels to a board position.
func (c *Camera) ScreenToWorld(screenX, screenY float64) sexp.Position {
	if c.InvertY {
		screenY = float64(c.ScreenHeight) - screenY
	}
	half := c.halfScreen()
	v := sexp.Position{X: (screenX - half.X) / c.Zoom, Y: (screenY - half.Y) / c.Zoom}
	return c.fromView(v.Add(c.Center))
}

// toView applies the view rotation and flip.
func (c *Camera) toView(p sexp.Position) sexp.Position {
	p = sexp.RotateAround(p, c.Pivot, -c.Rotation)
	if c.FlipView {
		p.X = sexp.MirrorCoord(p.X, c.Pivot.X)
	}
	return p
}

// fromView undoes toView.
func (c *Camera) fromView(p sexp.Position) sexp.Position {
	if c.FlipView {
		p.X = sexp.MirrorCoord(p.X, c.Pivot.X)
	}
	return sexp.RotateAround(p, c.Pivot, c.Rotation)
}

// Pan moves the view by a pixel offset.
func (c *Camera) Pan(deltaX, deltaY float64) {
	if c.InvertY {
		deltaY = -deltaY
	}
	c.Center = c.Center.Sub(sexp.Position{X: deltaX / c.Zoom, Y: deltaY / c.Zoom})
}

// ZoomAt scales the view by factor keeping the board point under the
// given pixel in place. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.toView(c.ScreenToWorld(screenX, screenY))
	c.Zoom = min(max(c.Zoom*factor, minZoom), maxZoom)
	after := c.toView(c.ScreenToWorld(screenX, screenY))
	c.Center = c.Center.Add(before.Sub(after))
}

// Fit centres the box and zooms so it fills 90% of the window. The box
// centre also becomes the pivot of later rotations and flips.
func (c *Camera) Fit(bbox sexp.BoundingBox) {
	w, h := bbox.Width(), bbox.Height()
	if w <= 0 || h <= 0 {
		return
	}
	c.Pivot = bbox.Center()
	c.Center = c.Pivot
	c.Zoom = min(float64(c.ScreenWidth)*0.9/w, float64(c.ScreenHeight)*0.9/h)
}

// UpdateScreenSize records a window resize.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// Flip toggles the mirrored view.
func (c *Camera) Flip() {
	c.FlipView = !c.FlipView
}

// Rotate turns the view clockwise by angle.
func (c *Camera) Rotate(angle sexp.DeciDegree) {
	c.Rotation = (c.Rotation + angle).Normalize360()
}

// VisibleBounds returns the board area covered by the window.
func (c *Camera) VisibleBounds() sexp.BoundingBox {
	w, h := float64(c.ScreenWidth), float64(c.ScreenHeight)
	bb := sexp.NewBoundingBox()
	for _, px := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		bb.Expand(c.ScreenToWorld(px[0], px[1]))
	}
	return bb
}

// ScreenLength converts a board length (mm) to pixels.
func (c *Camera) ScreenLength(mm float64) float64 {
	return mm * c.Zoom
}

// ScreenAngle converts a counter-clockwise board angle to the clockwise
// screen rotation in radians, accounting for the view rotation and flips.
// The second result reports whether glyphs must be mirrored (about their
// own vertical axis, before rotating).
func (c *Camera) ScreenAngle(a sexp.DeciDegree) (float64, bool) {
	deg := c.Rotation.Degrees() - a.Degrees()
	mirror := false
	if c.FlipView {
		deg = -deg
		mirror = true
	}
	if c.InvertY {
		deg = 180 - deg
		mirror = !mirror
	}
	return deg * math.Pi / 180, mirror
}
