package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	OnTapped func(name string)
}

func newColorSwatch(name string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(state.ParseColor(s.Name))
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// NewToolbar builds the pen, eraser, colour, width, clear and export
// controls for board. onExport may be nil.
func NewToolbar(board *BoardWidget, onExport func()) fyne.CanvasObject {
	pen := board.Board()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			pen.SetErasing(false)
			board.status("Pen")
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			pen.SetErasing(true)
			board.status("Eraser")
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.Clear),
	)
	if onExport != nil {
		tb.Append(widget.NewToolbarAction(theme.DocumentSaveIcon(), onExport))
	}

	// --- Color Palette ---
	onColorTapped := func(name string) {
		pen.SetStrokeColor(name)
		pen.SetErasing(false)
	}
	colorBox := container.NewHBox()
	for _, name := range state.Palette {
		colorBox.Add(newColorSwatch(name, onColorTapped))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(board.cfg.Pen.MinWidth, board.cfg.Pen.MaxWidth)
	strokeSlider.SetValue(pen.StrokeWidth())
	strokeSlider.OnChanged = pen.SetStrokeWidth
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
