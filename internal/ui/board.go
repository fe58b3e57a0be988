package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

var paper = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(paper)
	return r
}

// boardRenderer stacks the committed ink under the live surface. Both are
// sized to the fitted canvas, which can be larger than the widget when the
// board sits in a scroll container.
type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.committed, r.board.liveImage}
}

func (r *boardRenderer) Layout(size fyne.Size) {
	fit := r.MinSize()
	full := fyne.NewSize(max(size.Width, fit.Width), max(size.Height, fit.Height))
	r.background.Resize(full)
	r.board.committed.Resize(fit)
	r.board.liveImage.Resize(fit)
}

func (r *boardRenderer) MinSize() fyne.Size {
	s := r.board.size
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

func (r *boardRenderer) Refresh() {
	r.Layout(r.board.Size())
	canvas.Refresh(r.board.committed)
	canvas.Refresh(r.board.liveImage)
}

func (r *boardRenderer) Destroy() {}
