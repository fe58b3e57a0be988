package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"honnef.co/go/curve"
)

// ErrInvalidStroke is returned when a stroke without points or with a
// non-positive width is committed to a Document.
var ErrInvalidStroke = errors.New("invalid stroke")

// PointerKind identifies the device that produced a Point.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerPen
	PointerTouch
)

var pointerKindNames = [...]string{
	PointerMouse: "mouse",
	PointerPen:   "pen",
	PointerTouch: "touch",
}

func (k PointerKind) String() string {
	if int(k) < len(pointerKindNames) {
		return pointerKindNames[k]
	}
	return fmt.Sprintf("PointerKind(%d)", uint8(k))
}

// ParsePointerKind maps "pen", "mouse" or "touch" to its PointerKind.
func ParsePointerKind(s string) (PointerKind, error) {
	for k, name := range pointerKindNames {
		if name == s {
			return PointerKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown pointer kind %q", s)
}

func (k PointerKind) MarshalText() ([]byte, error) {
	if int(k) >= len(pointerKindNames) {
		return nil, fmt.Errorf("unknown pointer kind %d", uint8(k))
	}
	return []byte(pointerKindNames[k]), nil
}

func (k *PointerKind) UnmarshalText(b []byte) error {
	parsed, err := ParsePointerKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Point is a single captured pointer sample.
type Point struct {
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Pressure  float64     `json:"pressure"`
	Kind      PointerKind `json:"pointerKind"`
	Timestamp int64       `json:"timestamp"`
}

// Pos returns the position of p.
func (p Point) Pos() curve.Point {
	return curve.Pt(p.X, p.Y)
}

// Distance returns the straight-line distance between p and o.
func (p Point) Distance(o Point) float64 {
	return p.Pos().Distance(o.Pos())
}

// Stroke is one continuous line of ink.
type Stroke struct {
	ID    string  `json:"id,omitempty"`
	Color string  `json:"color"`
	Width float64 `json:"strokeWidth"`
	Path  []Point `json:"path"`
}

// NewStroke returns an empty stroke with a fresh ID.
func NewStroke(color string, width float64) Stroke {
	return Stroke{
		ID:    uuid.NewString(),
		Color: color,
		Width: width,
	}
}

// Valid reports whether s may be committed to a Document.
func (s Stroke) Valid() bool {
	return len(s.Path) > 0 && s.Width > 0
}

// Bounds returns the bounding box of the stroke's path. The stroke must
// not be empty.
func (s Stroke) Bounds() curve.Rect {
	r := curve.NewRectFromPoints(s.Path[0].Pos(), s.Path[0].Pos())
	for _, p := range s.Path[1:] {
		r = r.UnionPoint(p.Pos())
	}
	return r
}

// Clone returns a copy of s that shares no memory with it.
func (s Stroke) Clone() Stroke {
	s.Path = append([]Point(nil), s.Path...)
	return s
}

// Equal reports whether s and o describe the same ink.
func (s Stroke) Equal(o Stroke) bool {
	if s.ID != o.ID || s.Color != o.Color || s.Width != o.Width || len(s.Path) != len(o.Path) {
		return false
	}
	for i := range s.Path {
		if s.Path[i] != o.Path[i] {
			return false
		}
	}
	return true
}

// MarshalStrokes encodes strokes in the persisted layout.
func MarshalStrokes(strokes []Stroke) ([]byte, error) {
	if strokes == nil {
		strokes = []Stroke{}
	}
	return json.Marshal(strokes)
}

// UnmarshalStrokes decodes the persisted layout and rejects invalid strokes.
func UnmarshalStrokes(data []byte) ([]Stroke, error) {
	var strokes []Stroke
	if err := json.Unmarshal(data, &strokes); err != nil {
		return nil, fmt.Errorf("decoding strokes: %w", err)
	}
	for i, s := range strokes {
		if !s.Valid() {
			return nil, fmt.Errorf("stroke %d: %w", i, ErrInvalidStroke)
		}
	}
	return strokes, nil
}
