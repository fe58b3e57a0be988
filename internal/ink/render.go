package ink

import (
	"math"

	"honnef.co/go/curve"

	"inkboard/internal/state"
)

// Segment is one piece of a rendered stroke: a quadratic curve drawn with a
// single width. Straight pieces use the chord midpoint as control point.
type Segment struct {
	Curve curve.QuadBez
	Width float64
	Color string
}

// RenderStroke converts a committed stroke into smooth, tapered geometry.
// Every interior point becomes a quadratic from the midpoint with its
// predecessor, through the point as control, to the midpoint with its
// successor. The first and last points are joined to those midpoints by
// straight pieces, so the curve passes through the true endpoints. Each
// segment's width is its anchor point's pressure times the stroke width,
// never less than minPressure times the stroke width.
func RenderStroke(s state.Stroke, minPressure float64) []Segment {
	n := len(s.Path)
	if n == 0 {
		return nil
	}
	width := func(p state.Point) float64 {
		return math.Max(p.Pressure, minPressure) * s.Width
	}
	if n == 1 {
		p := s.Path[0].Pos()
		return []Segment{{Curve: curve.QuadBez{P0: p, P1: p, P2: p}, Width: width(s.Path[0]), Color: s.Color}}
	}

	segs := make([]Segment, 0, n)
	first, second := s.Path[0].Pos(), s.Path[1].Pos()
	segs = append(segs, Segment{
		Curve: straight(first, first.Midpoint(second)),
		Width: width(s.Path[0]),
		Color: s.Color,
	})
	for i := 1; i < n-1; i++ {
		prev, p, next := s.Path[i-1].Pos(), s.Path[i].Pos(), s.Path[i+1].Pos()
		segs = append(segs, Segment{
			Curve: curve.QuadBez{P0: prev.Midpoint(p), P1: p, P2: p.Midpoint(next)},
			Width: width(s.Path[i]),
			Color: s.Color,
		})
	}
	beforeLast, last := s.Path[n-2].Pos(), s.Path[n-1].Pos()
	segs = append(segs, Segment{
		Curve: straight(beforeLast.Midpoint(last), last),
		Width: width(s.Path[n-1]),
		Color: s.Color,
	})
	return segs
}

// RenderDocument renders every stroke of doc, bottom to top.
func RenderDocument(doc *state.Document, minPressure float64) []Segment {
	var segs []Segment
	for i := range doc.Len() {
		segs = append(segs, RenderStroke(doc.At(i), minPressure)...)
	}
	return segs
}

func straight(a, b curve.Point) curve.QuadBez {
	return curve.QuadBez{P0: a, P1: a.Midpoint(b), P2: b}
}
