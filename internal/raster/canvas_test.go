package raster

import (
	"image/color"
	"testing"

	"honnef.co/go/curve"

	"inkboard/internal/ink"
	"inkboard/internal/state"
)

func inked(c color.RGBA, want color.RGBA) bool {
	near := func(a, b uint8) bool { return int(a)+8 >= int(b) && int(b)+8 >= int(a) }
	return near(c.R, want.R) && near(c.G, want.G) && near(c.B, want.B) && near(c.A, want.A)
}

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestDrawLine(t *testing.T) {
	c := New(40, 20, nil)
	c.DrawLine(curve.Pt(5, 10), curve.Pt(35, 10), 6, "red")

	if got := c.Image().RGBAAt(20, 10); !inked(got, color.RGBA{R: 255, A: 255}) {
		t.Errorf("centre pixel = %v, want opaque red", got)
	}
	if got := c.Image().RGBAAt(20, 2); got.A != 0 {
		t.Errorf("pixel outside the line = %v, want transparent", got)
	}
	// Round cap reaches past the end point.
	if got := c.Image().RGBAAt(36, 10); got.A == 0 {
		t.Error("round cap not painted")
	}
}

func TestDrawLineDot(t *testing.T) {
	c := New(20, 20, nil)
	c.DrawLine(curve.Pt(10, 10), curve.Pt(10, 10), 8, "blue")
	if got := c.Image().RGBAAt(10, 10); !inked(got, color.RGBA{B: 255, A: 255}) {
		t.Errorf("dot centre = %v, want opaque blue", got)
	}
}

func TestDrawLineOutsideCanvas(t *testing.T) {
	c := New(10, 10, nil)
	c.DrawLine(curve.Pt(100, 100), curve.Pt(200, 100), 4, "black")
	for y := range 10 {
		for x := range 10 {
			if c.Image().RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) painted by off-canvas line", x, y)
			}
		}
	}
}

func TestClearRestoresBackground(t *testing.T) {
	c := New(10, 10, color.White)
	c.DrawLine(curve.Pt(0, 5), curve.Pt(10, 5), 4, "black")
	c.Clear()
	if got := c.Image().RGBAAt(5, 5); got != white {
		t.Errorf("after Clear pixel = %v, want white", got)
	}
}

func TestRenderSegments(t *testing.T) {
	s := state.Stroke{Color: "black", Width: 10, Path: []state.Point{
		{X: 10, Y: 30, Pressure: 0.5},
		{X: 30, Y: 10, Pressure: 1},
		{X: 50, Y: 30, Pressure: 0.5},
	}}
	img := Render(ink.RenderStroke(s, 0.1), 60, 40, color.White, 0.25)

	for _, p := range []curve.Point{curve.Pt(10, 30), curve.Pt(50, 30)} {
		if got := img.RGBAAt(int(p.X), int(p.Y)); !inked(got, black) {
			t.Errorf("endpoint %v = %v, want black", p, got)
		}
	}
	// The curve passes below the middle control point, not through it.
	if got := img.RGBAAt(30, 15); !inked(got, black) {
		t.Errorf("curve apex = %v, want black", got)
	}
	if got := img.RGBAAt(30, 36); got != white {
		t.Errorf("pixel below the stroke = %v, want white", got)
	}
}

func TestDrawSegmentsStrokeWidth(t *testing.T) {
	c := New(60, 40, nil)
	seg := ink.Segment{
		Curve: curve.QuadBez{P0: curve.Pt(10, 20), P1: curve.Pt(30, 20), P2: curve.Pt(50, 20)},
		Width: 12,
		Color: "black",
	}
	c.DrawSegments([]ink.Segment{seg}, 0.25)

	if got := c.Image().RGBAAt(30, 24); !inked(got, black) {
		t.Errorf("pixel inside the stroke = %v, want black", got)
	}
	if got := c.Image().RGBAAt(30, 28); got.A != 0 {
		t.Errorf("pixel past the stroke edge = %v, want transparent", got)
	}
	if got := c.Image().RGBAAt(5, 20); got.A == 0 {
		t.Error("round cap not painted before the start point")
	}
}

func TestResize(t *testing.T) {
	c := New(10, 10, nil)
	c.Resize(30, 20)
	if b := c.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("bounds = %v, want 30x20", b)
	}
}
