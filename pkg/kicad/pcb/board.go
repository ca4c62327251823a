package pcb

// Board represents a complete KiCad PCB
type Board struct {
	Version    int          // File format version
	Generator  string       // Generator info (e.g., "pcbnew")
	General    General      // General board properties
	Layers     []Layer      // Layer definitions
	Footprints []*Footprint // Component footprints
	Edges      []Line       // Edge.Cuts outline, board frame
}

// General contains general board properties
type General struct {
	Thickness float64 // Board thickness in mm
	Title     string  // Board title
	Date      string  // Design date
	Revision  string  // Board revision
	Company   string  // Company name
}

// FindFootprint returns the footprint with the given reference, or nil.
func (b *Board) FindFootprint(ref string) *Footprint {
	for _, fp := range b.Footprints {
		if fp.Reference() == ref {
			return fp
		}
	}
	return nil
}

// AllTexts returns every footprint text on the board.
func (b *Board) AllTexts() []*FootprintText {
	var texts []*FootprintText
	for _, fp := range b.Footprints {
		texts = append(texts, fp.AllTexts()...)
	}
	return texts
}

// SetTextMetrics gives every footprint text m and returns a function that
// restores the metrics each text had before.
func (b *Board) SetTextMetrics(m TextMetrics) (restore func()) {
	texts := b.AllTexts()
	prev := make([]TextMetrics, len(texts))
	for i, t := range texts {
		prev[i] = t.Metrics()
		t.SetMetrics(m)
	}
	return func() {
		for i, t := range texts {
			t.SetMetrics(prev[i])
		}
	}
}

// TextsAt returns the texts hit by a click at p. Hidden texts are skipped
// unless includeHidden is set.
func (b *Board) TextsAt(p Position, accuracy float64, includeHidden bool) []*FootprintText {
	var hits []*FootprintText
	for _, t := range b.AllTexts() {
		if !t.IsVisible() && !includeHidden {
			continue
		}
		if t.HitTest(p, accuracy) {
			hits = append(hits, t)
		}
	}
	return hits
}

// TextsInRect returns the texts selected by a rubber band rectangle.
func (b *Board) TextsInRect(r BoundingBox, contains bool, accuracy float64) []*FootprintText {
	var hits []*FootprintText
	for _, t := range b.AllTexts() {
		if t.HitTestRect(r, contains, accuracy) {
			hits = append(hits, t)
		}
	}
	return hits
}

// GetBoundingBox calculates the bounding box of the entire board:
// outline and footprints.
func (b *Board) GetBoundingBox() BoundingBox {
	bbox := NewBoundingBox()

	for _, l := range b.Edges {
		bbox.Expand(l.Start)
		bbox.Expand(l.End)
	}
	for _, fp := range b.Footprints {
		bbox.ExpandBox(fp.GetBoundingBox())
	}

	return bbox
}
