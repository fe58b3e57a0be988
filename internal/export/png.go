// Package export writes a snapshot of the committed drawing as an image.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"

	"inkboard/internal/ink"
	"inkboard/internal/raster"
	"inkboard/internal/state"
)

// ErrEmptyDocument is returned when there is nothing to size a snapshot by.
var ErrEmptyDocument = errors.New("empty document")

// Options control the snapshot.
type Options struct {
	// Size is the image size in canvas units. A zero size fits the ink
	// plus Margin.
	Size        state.Size
	Margin      float64
	Background  color.Color
	MinPressure float64
	Tolerance   float64
}

// PNG renders doc and encodes it to w.
func PNG(w io.Writer, doc *state.Document, opts Options) error {
	size := opts.Size
	if size.Width <= 0 || size.Height <= 0 {
		if doc.Len() == 0 {
			return fmt.Errorf("exporting snapshot: %w", ErrEmptyDocument)
		}
		size = state.FitCanvas(doc, state.Size{}, opts.Margin)
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	img := raster.Render(
		ink.RenderDocument(doc, opts.MinPressure),
		int(math.Ceil(size.Width)), int(math.Ceil(size.Height)),
		bg, opts.Tolerance)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
