package state

import (
	"fmt"

	"honnef.co/go/curve"
)

// Document is the ordered collection of committed strokes. Insertion order
// is z-order: later strokes render on top.
//
// A Document is owned by a single event loop and is not safe for
// concurrent use.
type Document struct {
	strokes []Stroke
}

// NewDocument returns a document holding copies of strokes.
func NewDocument(strokes ...Stroke) Document {
	var d Document
	d.Replace(strokes)
	return d
}

// Len returns the number of strokes.
func (d Document) Len() int { return len(d.strokes) }

// At returns the i-th stroke in z-order.
func (d Document) At(i int) Stroke { return d.strokes[i] }

// Strokes returns a copy of the stroke list.
func (d Document) Strokes() []Stroke {
	out := make([]Stroke, len(d.strokes))
	for i, s := range d.strokes {
		out[i] = s.Clone()
	}
	return out
}

// Append adds s on top of every other stroke.
func (d *Document) Append(s Stroke) error {
	if !s.Valid() {
		return ErrInvalidStroke
	}
	d.strokes = append(d.strokes, s.Clone())
	return nil
}

// RemoveAt deletes the stroke at index i and returns it.
func (d *Document) RemoveAt(i int) (Stroke, error) {
	if i < 0 || i >= len(d.strokes) {
		return Stroke{}, fmt.Errorf("stroke index %d out of range [0,%d)", i, len(d.strokes))
	}
	s := d.strokes[i]
	d.strokes = append(d.strokes[:i:i], d.strokes[i+1:]...)
	return s, nil
}

// Replace swaps the whole stroke list. Invalid strokes are skipped.
func (d *Document) Replace(strokes []Stroke) {
	d.strokes = make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		if s.Valid() {
			d.strokes = append(d.strokes, s.Clone())
		}
	}
}

// Clear removes every stroke.
func (d *Document) Clear() {
	d.strokes = nil
}

// Bounds returns the union of all stroke bounding boxes. ok is false for an
// empty document.
func (d Document) Bounds() (r curve.Rect, ok bool) {
	for i, s := range d.strokes {
		if i == 0 {
			r = s.Bounds()
			continue
		}
		r = r.Union(s.Bounds())
	}
	return r, len(d.strokes) > 0
}

// Equal reports whether d and o hold the same strokes in the same order.
func (d Document) Equal(o Document) bool {
	if len(d.strokes) != len(o.strokes) {
		return false
	}
	for i := range d.strokes {
		if !d.strokes[i].Equal(o.strokes[i]) {
			return false
		}
	}
	return true
}
