package ink

import (
	"math"
	"slices"

	"inkboard/internal/state"
)

// FloorPressure clamps every pressure to [floor, 1] in place, so that
// zero-pressure samples from hover and leave events keep a visible width.
// NaN pressures become floor.
func FloorPressure(points []state.Point, floor float64) {
	for i := range points {
		switch p := points[i].Pressure; {
		case p < floor || math.IsNaN(p):
			points[i].Pressure = floor
		case p > 1:
			points[i].Pressure = 1
		}
	}
}

// PressureExtrema returns the ascending indices of the local pressure
// extrema of points. The first and last index are always included. An index
// is an extremum when the pressure trend flips there; runs of equal values
// continue the current trend.
func PressureExtrema(points []state.Point) []int {
	n := len(points)
	if n == 0 {
		return nil
	}
	idx := []int{0, n - 1}
	rising := true
	trendKnown := false
	for i := 1; i < n; i++ {
		d := points[i].Pressure - points[i-1].Pressure
		if d == 0 {
			continue
		}
		up := d > 0
		if !trendKnown {
			rising, trendKnown = up, true
			continue
		}
		if up != rising {
			idx = append(idx, i-1)
			rising = up
		}
	}
	slices.Sort(idx)
	return slices.Compact(idx)
}

// SmoothPressure floors the pressure of points and then replaces every
// non-extremum pressure with a linear interpolation between its bracketing
// extrema, so pressure is monotonic between consecutive extrema. points is
// modified in place.
func SmoothPressure(points []state.Point, floor float64) {
	FloorPressure(points, floor)
	extrema := PressureExtrema(points)
	for k := 0; k+1 < len(extrema); k++ {
		below, above := extrema[k], extrema[k+1]
		lo := points[below].Pressure
		hi := points[above].Pressure
		span := float64(above - below)
		for i := below + 1; i < above; i++ {
			factor := float64(i-below) / span
			if hi < lo {
				factor = 1 - factor
			}
			points[i].Pressure = math.Min(lo, hi) + math.Abs(hi-lo)*factor
		}
	}
}
