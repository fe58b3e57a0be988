package ui

import (
	"fmt"
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/config"
	"inkboard/internal/ink"
	"inkboard/internal/raster"
	"inkboard/internal/state"
)

// Pressure reported for devices without a pressure sensor while a button or
// finger is down. Releases report zero.
const contactPressure = 0.5

// BoardWidget hosts an ink.Board. It turns fyne mouse, drag and touch
// callbacks into pointer events and shows the committed ink under the raw
// live ink.
type BoardWidget struct {
	widget.BaseWidget

	// OnStatus receives short messages for the status bar.
	OnStatus func(string)

	board *ink.Board
	cfg   config.Config
	clock *state.Clock

	live      *raster.Canvas
	liveImage *canvas.Raster
	committed *canvas.Raster
	snapshot  image.Image
	stale     bool

	size    state.Size
	pressed bool
	kind    state.PointerKind
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

// NewBoardWidget returns a widget drawing into a board configured by cfg and
// persisted to store. The document is not loaded until Load is called.
func NewBoardWidget(cfg config.Config, store ink.DocumentStore) (*BoardWidget, error) {
	b := &BoardWidget{
		cfg:   cfg,
		clock: state.NewClock(),
		size:  cfg.Canvas.Viewport(),
		stale: true,
	}
	b.live = raster.New(int(math.Ceil(b.size.Width)), int(math.Ceil(b.size.Height)), nil)
	board, err := ink.NewBoard(cfg, b.live, store)
	if err != nil {
		return nil, err
	}
	board.OnChange = b.documentChanged
	b.board = board

	b.liveImage = canvas.NewRaster(func(w, h int) image.Image { return b.live.Image() })
	b.committed = canvas.NewRaster(b.renderCommitted)
	b.ExtendBaseWidget(b)
	return b, nil
}

// Board returns the ink board behind the widget.
func (b *BoardWidget) Board() *ink.Board { return b.board }

// Load restores the stored document. Strokes are saved only after this has
// run.
func (b *BoardWidget) Load() {
	b.board.Load()
	b.status("Loaded %d strokes", b.board.Document().Len())
}

// Clear wipes the drawing and its stored copy.
func (b *BoardWidget) Clear() {
	b.board.Clear()
	b.status("Cleared")
}

// CanvasSize returns the current drawing surface size.
func (b *BoardWidget) CanvasSize() state.Size { return b.size }

func (b *BoardWidget) documentChanged(doc state.Document) {
	b.size = state.FitCanvas(&doc, b.cfg.Canvas.Viewport(), b.cfg.Canvas.Margin)
	b.live.Resize(int(math.Ceil(b.size.Width)), int(math.Ceil(b.size.Height)))
	b.stale = true
	b.Refresh()
}

// renderCommitted replays the committed ink at canvas size; fyne scales the
// image to the device.
func (b *BoardWidget) renderCommitted(int, int) image.Image {
	if !b.stale && b.snapshot != nil {
		return b.snapshot
	}
	w, h := int(math.Ceil(b.size.Width)), int(math.Ceil(b.size.Height))
	b.snapshot = raster.Render(b.board.Segments(), w, h, nil, b.cfg.Ink.FlattenTolerance)
	b.stale = false
	return b.snapshot
}

func (b *BoardWidget) event(pos fyne.Position, pressure float64, buttons ink.Buttons) ink.PointerEvent {
	return ink.PointerEvent{
		Point: state.Point{
			X:         float64(pos.X),
			Y:         float64(pos.Y),
			Pressure:  pressure,
			Kind:      b.kind,
			Timestamp: b.clock.Tick(),
		},
		Buttons: buttons,
	}
}

func (b *BoardWidget) liveChanged() {
	canvas.Refresh(b.liveImage)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	b.kind = state.PointerMouse
	b.board.PointerDown(b.event(e.Position, contactPressure, ink.PrimaryButton))
	b.liveChanged()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.pressed {
		return
	}
	b.pressed = false
	b.board.PointerUp(b.event(e.Position, 0, 0))
	b.liveChanged()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	b.board.PointerMove(b.event(e.Position, contactPressure, ink.PrimaryButton))
	b.liveChanged()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved only sees hover; moves with a button held arrive as drags.
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.pressed {
		return
	}
	b.kind = state.PointerMouse
	b.board.PointerMove(b.event(e.Position, 0, 0))
}

func (b *BoardWidget) MouseOut() {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.board.PointerLeave()
	b.liveChanged()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.pressed = true
	b.kind = state.PointerTouch
	b.board.PointerDown(b.event(e.Position, contactPressure, ink.PrimaryButton))
	b.liveChanged()
}

func (b *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.board.PointerUp(b.event(e.Position, 0, 0))
	b.liveChanged()
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.pressed = false
	b.board.PointerCancel()
	b.liveChanged()
}

func (b *BoardWidget) status(format string, args ...any) {
	if b.OnStatus != nil {
		b.OnStatus(fmt.Sprintf(format, args...))
	}
}
