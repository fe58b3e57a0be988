package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/config"
	"inkboard/internal/export"
	"inkboard/internal/store"
)

// AppID keys the preferences the document is kept in.
const AppID = "io.github.inkboard"

// NewSlot returns the storage slot selected by cfg.
func NewSlot(cfg config.Storage, a fyne.App) store.Slot {
	if cfg.Backend == config.BackendPreferences && a != nil {
		return NewPreferencesSlot(a.Preferences())
	}
	return store.NewMemorySlot()
}

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(cfg config.Config, log *slog.Logger) error {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("InkBoard")

	st := store.New(NewSlot(cfg.Storage, myApp),
		store.WithKey(cfg.Storage.Key),
		store.WithLogger(log))
	log.Info("document storage", "backend", cfg.Storage.Backend, "key", st.Key())
	board, err := NewBoardWidget(cfg, st)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	statusBar := widget.NewLabel("Ready")
	board.OnStatus = statusBar.SetText

	exportPNG := func() {
		dialog.ShowFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil || w == nil {
				return
			}
			defer func() {
				if err := w.Close(); err != nil {
					log.Warn("closing snapshot", "uri", w.URI(), "err", err)
				}
			}()
			doc := board.Board().Document()
			opts := export.Options{
				Size:        board.CanvasSize(),
				MinPressure: cfg.Ink.MinPressure,
				Tolerance:   cfg.Ink.FlattenTolerance,
			}
			if err := export.PNG(w, &doc, opts); err != nil {
				log.Warn("exporting snapshot", "uri", w.URI(), "err", err)
				statusBar.SetText("Export failed")
				return
			}
			statusBar.SetText("Exported " + w.URI().Name())
		}, myWindow)
	}

	toolbar := NewToolbar(board, exportPNG)
	content := container.NewBorder(toolbar, statusBar, nil, nil, container.NewScroll(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+40, float32(cfg.Canvas.Height)+120))

	myApp.Lifecycle().SetOnStarted(board.Load)
	myApp.Lifecycle().SetOnStopped(func() {
		if cfg.Storage.KeepOnExit {
			return
		}
		if err := st.Clear(); err != nil {
			log.Warn("clearing stored document on exit", "key", st.Key(), "err", err)
		}
	})

	myWindow.ShowAndRun()
	return nil
}
