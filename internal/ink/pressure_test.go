package ink

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"inkboard/internal/state"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func withPressures(ps ...float64) []state.Point {
	out := make([]state.Point, len(ps))
	for i, p := range ps {
		out[i] = state.Point{X: float64(i) * 5, Pressure: p, Kind: state.PointerPen, Timestamp: int64(i)}
	}
	return out
}

func pressures(points []state.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Pressure
	}
	return out
}

func TestSmoothPressureScenario(t *testing.T) {
	points := withPressures(0, 0.8, 0)
	SmoothPressure(points, 0.1)
	diff(t, []float64{0.1, 0.8, 0.1}, pressures(points), approx)
}

func TestFloorPressureClamps(t *testing.T) {
	points := withPressures(0, 0.05, 0.5, 1, 1.7, math.NaN(), math.Inf(1))
	FloorPressure(points, 0.1)
	diff(t, []float64{0.1, 0.1, 0.5, 1, 1, 0.1, 1}, pressures(points))
}

func TestPressureExtrema(t *testing.T) {
	tests := []struct {
		in   []float64
		want []int
	}{
		{[]float64{0.5}, []int{0}},
		{[]float64{0.2, 0.4}, []int{0, 1}},
		{[]float64{0.2, 0.4, 0.6, 0.3, 0.5}, []int{0, 2, 3, 4}},
		{[]float64{0.2, 0.5, 0.5, 0.2}, []int{0, 2, 3}},
		{[]float64{0.3, 0.3, 0.3}, []int{0, 2}},
		{[]float64{0.9, 0.7, 0.8, 0.6}, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		diff(t, tt.want, PressureExtrema(withPressures(tt.in...)))
	}
	if got := PressureExtrema(nil); got != nil {
		t.Errorf("extrema of empty input = %v", got)
	}
}

func TestSmoothPressureRising(t *testing.T) {
	points := withPressures(0.2, 0.25, 0.5, 0.6)
	SmoothPressure(points, 0.1)
	diff(t, []float64{0.2, 0.2 + 0.4/3, 0.2 + 0.8/3, 0.6}, pressures(points), approx)
}

func TestSmoothPressureFalling(t *testing.T) {
	points := withPressures(0.9, 0.5, 0.45, 0.3)
	SmoothPressure(points, 0.1)
	diff(t, []float64{0.9, 0.7, 0.5, 0.3}, pressures(points), approx)
}

func TestSmoothPressureKeepsPositions(t *testing.T) {
	points := withPressures(0.3, 0.1, 0.7, 0.2, 0.2, 0.9)
	before := append([]state.Point(nil), points...)
	SmoothPressure(points, 0.1)
	for i := range points {
		if points[i].X != before[i].X || points[i].Y != before[i].Y || points[i].Timestamp != before[i].Timestamp {
			t.Errorf("point %d moved: %+v -> %+v", i, before[i], points[i])
		}
	}
}

func TestSmoothPressureProperties(t *testing.T) {
	const floor = 0.1
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		n := 1 + rng.IntN(40)
		ps := make([]float64, n)
		for i := range ps {
			// Include exact zeros, as reported by hover and pointer-up events.
			if rng.IntN(5) == 0 {
				continue
			}
			ps[i] = rng.Float64()
		}
		points := withPressures(ps...)
		floored := append([]state.Point(nil), points...)
		FloorPressure(floored, floor)
		extrema := PressureExtrema(floored)
		SmoothPressure(points, floor)

		for i, p := range points {
			if p.Pressure < floor {
				t.Fatalf("pressure[%d] = %g below floor in %v", i, p.Pressure, ps)
			}
		}
		for _, i := range extrema {
			if points[i].Pressure != floored[i].Pressure {
				t.Fatalf("extremum %d changed from %g to %g", i, floored[i].Pressure, points[i].Pressure)
			}
		}
		for k := 0; k+1 < len(extrema); k++ {
			lo, hi := extrema[k], extrema[k+1]
			up, down := true, true
			for i := lo + 1; i <= hi; i++ {
				d := points[i].Pressure - points[i-1].Pressure
				if d < -1e-12 {
					up = false
				}
				if d > 1e-12 {
					down = false
				}
			}
			if !up && !down {
				t.Fatalf("pressure not monotonic between extrema %d and %d: %v", lo, hi, pressures(points[lo:hi+1]))
			}
		}
	}
}
