package ink

import (
	"testing"

	"honnef.co/go/curve"

	"inkboard/internal/state"
)

const hitTolerance = 4

func segment(id string, x0, y0, x1, y1 float64) state.Stroke {
	return state.Stroke{ID: id, Color: "black", Width: 4, Path: []state.Point{
		{X: x0, Y: y0, Pressure: 0.5},
		{X: x1, Y: y1, Pressure: 0.5},
	}}
}

func TestHitTestTopmostFirst(t *testing.T) {
	doc := state.NewDocument(
		segment("a", 0, 50, 100, 50),
		segment("b", 50, 0, 50, 100),
	)
	i, ok := HitTest(&doc, curve.Pt(50, 50), hitTolerance)
	if !ok || doc.At(i).ID != "b" {
		t.Fatalf("hit %d (ok=%v), want stroke b", i, ok)
	}

	i, ok = HitTest(&doc, curve.Pt(10, 52), hitTolerance)
	if !ok || doc.At(i).ID != "a" {
		t.Errorf("hit %d (ok=%v), want stroke a away from the overlap", i, ok)
	}
}

func TestHitTestMiss(t *testing.T) {
	doc := state.NewDocument(segment("a", 0, 0, 100, 0))
	if i, ok := HitTest(&doc, curve.Pt(50, 20), hitTolerance); ok {
		t.Errorf("hit stroke %d far from any ink", i)
	}
	// Inside the bounding box but beyond the segment's end.
	if i, ok := HitTest(&doc, curve.Pt(108, 0), hitTolerance); ok {
		t.Errorf("hit stroke %d past the end cap", i)
	}
	var empty state.Document
	if _, ok := HitTest(&empty, curve.Pt(0, 0), hitTolerance); ok {
		t.Error("hit in an empty document")
	}
}

func TestHitTestWidthCounts(t *testing.T) {
	wide := segment("w", 0, 0, 100, 0)
	wide.Width = 40
	for i := range wide.Path {
		wide.Path[i].Pressure = 1
	}
	doc := state.NewDocument(wide)
	if _, ok := HitTest(&doc, curve.Pt(50, 22), hitTolerance); !ok {
		t.Error("missed a point on the edge of a wide stroke")
	}
}

func TestHitTestDot(t *testing.T) {
	doc := state.NewDocument(state.Stroke{ID: "d", Color: "red", Width: 10, Path: []state.Point{{X: 20, Y: 20, Pressure: 1}}})
	if _, ok := HitTest(&doc, curve.Pt(26, 20), hitTolerance); !ok {
		t.Error("missed a single-point stroke")
	}
	if _, ok := HitTest(&doc, curve.Pt(30, 20), hitTolerance); ok {
		t.Error("hit outside a single-point stroke")
	}
}
