package ink

import (
	"errors"

	"inkboard/internal/config"
	"inkboard/internal/state"
)

// ErrEmptyStroke is returned by Finalize when nothing of a captured stroke
// survives hover-noise filtering. Callers drop such strokes silently.
var ErrEmptyStroke = errors.New("stroke has no inked points")

// Pipeline holds the tuning of stroke finalization.
type Pipeline struct {
	MinPressure    float64
	PatchDistance  float64
	FilterDistance float64
}

// NewPipeline returns the finalization tuning of cfg.
func NewPipeline(cfg config.Ink) Pipeline {
	return Pipeline{
		MinPressure:    cfg.MinPressure,
		PatchDistance:  cfg.PatchDistance,
		FilterDistance: cfg.FilterDistance,
	}
}

// DefaultPipeline returns the tuning of the built-in configuration.
func DefaultPipeline() Pipeline {
	return NewPipeline(config.Default().Ink)
}

// Finalize turns a captured stroke into its committed form. Nil samples and
// interior samples without pressure are hover noise and are removed; a
// stroke with no pressured sample at all is rejected with ErrEmptyStroke.
// The remaining points are floored, resampled and then pressure-smoothed, in
// that order, so smoothing sees the final point set.
func (pl Pipeline) Finalize(s state.Stroke, captured []*state.Point) (state.Stroke, error) {
	points := dropHoverNoise(captured)
	if len(points) == 0 {
		return state.Stroke{}, ErrEmptyStroke
	}
	FloorPressure(points, pl.MinPressure)
	resampled := Resample(points, pl.PatchDistance, pl.FilterDistance)
	SmoothPressure(resampled, pl.MinPressure)

	Logger().Debug("stroke finalized",
		"stroke", s.ID,
		"captured", len(captured),
		"inked", len(points),
		"committed", len(resampled))

	s.Path = resampled
	return s, nil
}

// dropHoverNoise copies the inked samples out of captured. Endpoints without
// pressure are kept, because pointer-up and first-contact events commonly
// report zero, but only if some sample carries pressure.
func dropHoverNoise(captured []*state.Point) []state.Point {
	var nonNil []state.Point
	inked := false
	for _, p := range captured {
		if p == nil {
			continue
		}
		nonNil = append(nonNil, *p)
		if p.Pressure > 0 {
			inked = true
		}
	}
	if !inked {
		return nil
	}
	out := make([]state.Point, 0, len(nonNil))
	for i, p := range nonNil {
		if p.Pressure > 0 || i == 0 || i == len(nonNil)-1 {
			out = append(out, p)
		}
	}
	return out
}
