package ink

import (
	"math"

	"honnef.co/go/curve"

	"inkboard/internal/state"
)

// HitTest returns the index of the topmost stroke of doc that passes within
// tolerance of p, measuring from the edge of the inked ribbon.
func HitTest(doc *state.Document, p curve.Point, tolerance float64) (int, bool) {
	for i := doc.Len() - 1; i >= 0; i-- {
		if strokeHit(doc.At(i), p, tolerance) {
			return i, true
		}
	}
	return -1, false
}

func strokeHit(s state.Stroke, p curve.Point, tolerance float64) bool {
	if len(s.Path) == 0 {
		return false
	}
	maxPressure := 0.0
	for _, pt := range s.Path {
		maxPressure = math.Max(maxPressure, pt.Pressure)
	}
	reach := tolerance + maxPressure*s.Width/2
	// Contains excludes the far edges; the extra unit keeps them in.
	if !s.Bounds().Inflate(reach+1, reach+1).Contains(p) {
		return false
	}

	if len(s.Path) == 1 {
		r := tolerance + s.Path[0].Pressure*s.Width/2
		return s.Path[0].Pos().DistanceSquared(p) <= r*r
	}
	for i := 1; i < len(s.Path); i++ {
		a, b := s.Path[i-1], s.Path[i]
		r := tolerance + math.Max(a.Pressure, b.Pressure)*s.Width/2
		distSq, _ := curve.Line{P0: a.Pos(), P1: b.Pos()}.Nearest(p, 0)
		if distSq <= r*r {
			return true
		}
	}
	return false
}
