package ink

import (
	"math"

	"inkboard/internal/state"
)

// Patch returns points with evenly spaced points inserted into every gap
// longer than dMin, so that no two consecutive points are more than dMin
// apart. Position, pressure and timestamp are interpolated linearly; the
// pointer kind is taken from the start of the gap.
func Patch(points []state.Point, dMin float64) []state.Point {
	if len(points) < 2 || dMin <= 0 {
		return clonePoints(points)
	}
	out := make([]state.Point, 0, len(points))
	for i, p := range points {
		out = append(out, p)
		if i == len(points)-1 {
			break
		}
		next := points[i+1]
		d := p.Distance(next)
		if d <= dMin {
			continue
		}
		n := int(math.Ceil(d / dMin))
		for j := 1; j < n; j++ {
			out = append(out, lerpPoint(p, next, float64(j)/float64(n)))
		}
	}
	return out
}

// Filter returns points without the samples that crowd their predecessor:
// walking from the first point, any point closer than dMax to the last kept
// point is dropped. The first and last points always survive; kept points
// that the last point crowds give way to it.
func Filter(points []state.Point, dMax float64) []state.Point {
	if len(points) < 2 {
		return clonePoints(points)
	}
	out := make([]state.Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1 : len(points)-1] {
		if p.Distance(out[len(out)-1]) >= dMax {
			out = append(out, p)
		}
	}
	last := points[len(points)-1]
	for len(out) > 1 && last.Distance(out[len(out)-1]) < dMax {
		out = out[:len(out)-1]
	}
	return append(out, last)
}

// Resample bounds point density: gaps wider than dMin are patched, the
// patched sequence is filtered at dMax, and any gap the filter reopened is
// patched again. With dMax at most dMin/2 every gap of the result lies in
// [dMax, dMin], except the single gap of a stroke shorter than dMax.
func Resample(points []state.Point, dMin, dMax float64) []state.Point {
	return Patch(Filter(Patch(points, dMin), dMax), dMin)
}

// ResampleUnpatched filters the raw input and ignores dMin, so sparse gaps
// stay open. It is the older contract and is kept only to contrast with
// Resample.
func ResampleUnpatched(points []state.Point, _, dMax float64) []state.Point {
	return Filter(points, dMax)
}

func lerpPoint(a, b state.Point, t float64) state.Point {
	pos := a.Pos().Lerp(b.Pos(), t)
	return state.Point{
		X:         pos.X,
		Y:         pos.Y,
		Pressure:  a.Pressure + (b.Pressure-a.Pressure)*t,
		Kind:      a.Kind,
		Timestamp: a.Timestamp + int64(math.Round(float64(b.Timestamp-a.Timestamp)*t)),
	}
}

func clonePoints(points []state.Point) []state.Point {
	return append([]state.Point(nil), points...)
}
