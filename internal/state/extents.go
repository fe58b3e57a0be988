package state

import "math"

// Size is a width and height in canvas units.
type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// DefaultCanvasMargin is the room left past the furthest ink so the user can
// keep drawing outward.
const DefaultCanvasMargin = 250

// FitCanvas returns the drawing surface size for doc: the larger of viewport
// and the ink's far edges, grown by margin. An empty document gets exactly
// the viewport.
func FitCanvas(doc *Document, viewport Size, margin float64) Size {
	r, ok := doc.Bounds()
	if !ok {
		return viewport
	}
	return Size{
		Width:  math.Max(viewport.Width, r.MaxX()) + margin,
		Height: math.Max(viewport.Height, r.MaxY()) + margin,
	}
}
