package ink

import (
	"math"

	"honnef.co/go/curve"

	"inkboard/internal/state"
)

// Buttons is the set of pointer buttons held during an event.
type Buttons uint8

// PrimaryButton is the button, pen tip or finger that inks.
const PrimaryButton Buttons = 1

// PointerEvent is a pointer sample as delivered by the host.
type PointerEvent struct {
	state.Point
	Buttons Buttons
}

// CaptureState is the state of the live capture state machine.
type CaptureState uint8

const (
	Idle CaptureState = iota
	Drawing
)

func (s CaptureState) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Surface receives the raw, unsmoothed segments painted while a stroke is
// in progress. It is cleared whenever the committed document changes.
type Surface interface {
	DrawLine(from, to curve.Point, width float64, color string)
	Clear()
}

type nopSurface struct{}

func (nopSurface) DrawLine(curve.Point, curve.Point, float64, string) {}
func (nopSurface) Clear()                                             {}

// session is the in-progress stroke between pointer-down and
// pointer-up/cancel.
type session struct {
	stroke state.Stroke
	points []*state.Point
	prev   state.Point
}

func (s *session) add(p state.Point) {
	s.points = append(s.points, &p)
	s.prev = p
}

// State reports whether a stroke is being captured.
func (b *Board) State() CaptureState {
	if b.session != nil {
		return Drawing
	}
	return Idle
}

// PointerDown opens a new stroke at ev. In erase mode no stroke is opened;
// a press with the primary button erases under the pointer instead.
func (b *Board) PointerDown(ev PointerEvent) {
	if !b.accepts(ev.Kind) {
		return
	}
	if b.erasing {
		if ev.Buttons&PrimaryButton != 0 {
			b.EraseAt(ev.Pos())
		}
		return
	}
	if b.session != nil {
		// A down without an up in between; keep what was drawn.
		b.finish()
	}
	b.session = &session{stroke: state.NewStroke(b.color, b.width)}
	b.session.add(ev.Point)
}

// PointerMove extends the open stroke and paints the raw segment from the
// previous sample. In erase mode with the primary button held it erases
// under the pointer and paints nothing.
func (b *Board) PointerMove(ev PointerEvent) {
	if !b.accepts(ev.Kind) {
		return
	}
	if b.erasing {
		if ev.Buttons&PrimaryButton != 0 {
			b.EraseAt(ev.Pos())
		}
		return
	}
	if b.session == nil {
		return
	}
	b.drawLive(ev.Point)
	b.session.add(ev.Point)
}

// PointerUp paints the final segment and commits the stroke.
func (b *Board) PointerUp(ev PointerEvent) {
	if !b.accepts(ev.Kind) || b.session == nil {
		return
	}
	b.drawLive(ev.Point)
	b.session.add(ev.Point)
	b.finish()
}

// PointerLeave commits the open stroke without a final segment; the pointer
// has left the capture surface.
func (b *Board) PointerLeave() {
	b.finish()
}

// PointerCancel commits the open stroke without a final segment.
func (b *Board) PointerCancel() {
	b.finish()
}

// LiveWidth is the width of a raw segment between two samples: the stroke
// width scaled by their mean pressure, rounded down.
func LiveWidth(strokeWidth float64, from, to state.Point) float64 {
	return math.Floor(strokeWidth * (from.Pressure + to.Pressure) / 2)
}

func (b *Board) drawLive(p state.Point) {
	s := b.session
	b.surface.DrawLine(s.prev.Pos(), p.Pos(), LiveWidth(s.stroke.Width, s.prev, p), s.stroke.Color)
}

func (b *Board) finish() {
	s := b.session
	if s == nil {
		return
	}
	b.session = nil

	stroke, err := b.pipeline.Finalize(s.stroke, s.points)
	if err != nil {
		Logger().Debug("stroke discarded", "stroke", s.stroke.ID, "reason", err)
		b.surface.Clear()
		return
	}
	b.commit(stroke)
}

func (b *Board) accepts(k state.PointerKind) bool {
	return b.accept[k]
}
