// Package glyphs measures footprint texts with the outlines of the Go
// Regular font, the font every surface draws them with.
package glyphs

import (
	"fmt"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/kicad/pcb"
)

// ReferencePPEM is the pixels per em glyph outlines are extracted at
// before they are scaled to board millimetres.
const ReferencePPEM = 100

var (
	goRegularOnce sync.Once
	goRegular     *text.FontSource
	goRegularErr  error

	defaultOnce    sync.Once
	defaultMetrics *OutlineMetrics
)

// GoRegular returns the shared Go Regular font source.
func GoRegular() (*text.FontSource, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = text.NewFontSource(goregular.TTF)
		if goRegularErr != nil {
			goRegularErr = fmt.Errorf("failed to load Go Regular: %w", goRegularErr)
		}
	})
	return goRegular, goRegularErr
}

// Default returns metrics shared by everything that draws or measures
// with Go Regular.
func Default() (*OutlineMetrics, error) {
	src, err := GoRegular()
	if err != nil {
		return nil, err
	}
	defaultOnce.Do(func() { defaultMetrics = NewOutlineMetrics(src) })
	return defaultMetrics, nil
}

// OutlineMetrics measures text with a real font, so text boxes match what
// is drawn. It implements pcb.TextMetrics and caches glyph outlines.
type OutlineMetrics struct {
	src      *text.FontSource
	face     text.Face
	capRatio float64 // cap height / em

	mu        sync.Mutex
	extractor *text.OutlineExtractor
	outlines  map[text.GlyphID]*text.GlyphOutline
}

// NewOutlineMetrics measures with the given font source.
func NewOutlineMetrics(src *text.FontSource) *OutlineMetrics {
	face := src.Face(ReferencePPEM)
	ratio := face.Metrics().CapHeight / ReferencePPEM
	if ratio <= 0 {
		ratio = 0.7
	}
	return &OutlineMetrics{
		src:       src,
		face:      face,
		capRatio:  ratio,
		extractor: text.NewOutlineExtractor(),
		outlines:  make(map[text.GlyphID]*text.GlyphOutline),
	}
}

// Face returns the font face at ReferencePPEM.
func (m *OutlineMetrics) Face() text.Face { return m.face }

// CapRatio returns the cap height as a fraction of the em.
func (m *OutlineMetrics) CapRatio() float64 { return m.capRatio }

// EmSize returns the em size, in mm, of a text whose cap height is h.
func (m *OutlineMetrics) EmSize(h float64) float64 {
	return h / m.capRatio
}

// Outline returns the outline of gid at ReferencePPEM, Y down, or nil for
// glyphs with nothing to draw such as spaces.
func (m *OutlineMetrics) Outline(gid text.GlyphID) *text.GlyphOutline {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o, ok := m.outlines[gid]; ok {
		return o
	}
	o, err := m.extractor.ExtractOutline(m.src.Parsed(), gid, ReferencePPEM)
	if err != nil || o == nil || o.IsEmpty() {
		o = nil
	}
	m.outlines[gid] = o
	return o
}

// Advance implements pcb.TextMetrics.
func (m *OutlineMetrics) Advance(line string, size pcb.Size, thickness float64, bold bool) float64 {
	if line == "" || size.Height == 0 {
		return 0
	}
	w := m.face.Advance(line) * m.scaleX(size)
	if bold {
		w += float64(utf8.RuneCountInString(line)) * thickness / 4
	}
	return w
}

// Ink implements pcb.TextMetrics from the control points of the glyph
// outlines, which enclose the curves.
func (m *OutlineMetrics) Ink(line string, size pcb.Size) pcb.BoundingBox {
	box := pcb.NewBoundingBox()
	if line == "" || size.Height == 0 {
		return box
	}
	sx, sy := m.scaleX(size), m.EmSize(size.Height)/ReferencePPEM
	for g := range m.face.Glyphs(line) {
		o := m.Outline(g.GID)
		if o == nil {
			continue
		}
		box.Expand(pcb.Position{X: (g.X + o.Bounds.MinX) * sx, Y: o.Bounds.MinY * sy})
		box.Expand(pcb.Position{X: (g.X + o.Bounds.MaxX) * sx, Y: o.Bounds.MaxY * sy})
	}
	return box
}

// scaleX converts horizontal outline units to mm, including the stretch
// of texts whose width differs from their height.
func (m *OutlineMetrics) scaleX(size pcb.Size) float64 {
	return m.EmSize(size.Height) / ReferencePPEM * math.Abs(size.Width) / size.Height
}

var _ pcb.TextMetrics = (*OutlineMetrics)(nil)
