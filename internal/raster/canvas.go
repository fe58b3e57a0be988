// Package raster paints ink onto pixel images. It backs the raw live surface
// used while a stroke is being captured and replays committed geometry for
// display.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"
	"slices"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"inkboard/internal/ink"
	"inkboard/internal/state"
)

// lineTolerance is the outline accuracy for live segments.
const lineTolerance = 0.25

// Canvas is an RGBA pixel surface. It implements ink.Surface.
type Canvas struct {
	img        *image.RGBA
	background color.Color
	z          vector.Rasterizer
}

var _ ink.Surface = (*Canvas)(nil)

// New returns a canvas of the given size filled with background. A nil
// background leaves the canvas transparent.
func New(width, height int, background color.Color) *Canvas {
	if background == nil {
		background = color.Transparent
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	c.Clear()
	return c
}

// Image returns the canvas pixels. The image is reused by later drawing.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) {
	if c.img.Bounds().Dx() == width && c.img.Bounds().Dy() == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.Clear()
}

// Clear fills the canvas with its background.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// DrawLine paints a straight, round-capped line. Widths below one pixel
// are painted one pixel wide.
func (c *Canvas) DrawLine(from, to curve.Point, width float64, col string) {
	var path curve.BezPath
	path.MoveTo(from)
	path.LineTo(to)
	c.fill(outline(path, math.Max(width, 1), lineTolerance), lineTolerance, image.NewUniform(state.ParseColor(col)))
}

// DrawSegments paints rendered stroke geometry. tolerance bounds the error
// of the stroked outline and of its flattening.
func (c *Canvas) DrawSegments(segs []ink.Segment, tolerance float64) {
	for _, seg := range segs {
		q := seg.Curve
		var path curve.BezPath
		path.MoveTo(q.P0)
		path.QuadTo(q.P1, q.P2)
		c.fill(outline(path, math.Max(seg.Width, 1), tolerance), tolerance, image.NewUniform(state.ParseColor(seg.Color)))
	}
}

// Render paints segs onto a fresh image of the given size.
func Render(segs []ink.Segment, width, height int, background color.Color, tolerance float64) *image.RGBA {
	c := New(width, height, background)
	c.DrawSegments(segs, tolerance)
	return c.Image()
}

// outline returns the fill area of path stroked at width with round caps
// and joins. A path of zero length becomes a disc.
func outline(path curve.BezPath, width, tolerance float64) iter.Seq[curve.PathElement] {
	if r := path.ControlBox(); r.Width() == 0 && r.Height() == 0 {
		return curve.Circle{Center: path[0].P0, Radius: width / 2}.PathElements(tolerance)
	}
	return curve.StrokePath(path.Elements(), curve.DefaultStroke.WithWidth(width), curve.StrokeOpts{}, tolerance)
}

// fill flattens area and rasterizes it over the pixels it covers.
func (c *Canvas) fill(area iter.Seq[curve.PathElement], tolerance float64, src image.Image) {
	path := curve.BezPath(slices.Collect(curve.Flatten(area, tolerance)))
	if len(path) == 0 {
		return
	}
	bb := path.ControlBox()
	box := image.Rect(
		int(math.Floor(bb.X0))-1,
		int(math.Floor(bb.Y0))-1,
		int(math.Ceil(bb.X1))+1,
		int(math.Ceil(bb.Y1))+1,
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)

	z := &c.z
	z.Reset(box.Dx(), box.Dy())
	open := false
	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(el.P0.X-ox), float32(el.P0.Y-oy))
			open = true
		case curve.LineToKind:
			z.LineTo(float32(el.P0.X-ox), float32(el.P0.Y-oy))
		case curve.ClosePathKind:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.DrawOp = draw.Over
	z.Draw(c.img, box, src, image.Point{})
}
