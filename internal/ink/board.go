package ink

import (
	"fmt"
	"math"

	"honnef.co/go/curve"

	"inkboard/internal/config"
	"inkboard/internal/state"
)

// DocumentStore persists the committed document between reloads of a
// session.
type DocumentStore interface {
	Load() state.Document
	Save(doc *state.Document) error
	Clear() error
}

// Board is the ink pipeline bound to one document. It is driven by a single
// event loop and is not safe for concurrent use.
type Board struct {
	// OnChange is called with a copy of the document after every mutation.
	OnChange func(doc state.Document)

	pipeline     Pipeline
	hitTolerance float64
	minWidth     float64
	maxWidth     float64

	doc     state.Document
	surface Surface
	store   DocumentStore
	loaded  bool

	session *session
	erasing bool
	color   string
	width   float64
	accept  map[state.PointerKind]bool
}

// NewBoard returns an empty board configured by cfg. surface and store may
// be nil.
func NewBoard(cfg config.Config, surface Surface, store DocumentStore) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuring board: %w", err)
	}
	kinds, err := cfg.AcceptedKinds()
	if err != nil {
		return nil, fmt.Errorf("configuring board: %w", err)
	}
	if surface == nil {
		surface = nopSurface{}
	}
	b := &Board{
		pipeline:     NewPipeline(cfg.Ink),
		hitTolerance: cfg.Ink.HitTolerance,
		minWidth:     cfg.Pen.MinWidth,
		maxWidth:     cfg.Pen.MaxWidth,
		surface:      surface,
		store:        store,
		color:        canonicalColor(cfg.Pen.Color),
		width:        cfg.Pen.Width,
	}
	b.SetAcceptedKinds(kinds...)
	return b, nil
}

// Load replaces the document with the stored one. Saving is enabled only
// once Load has run, so a session that has not been restored yet can never
// overwrite the stored document.
func (b *Board) Load() {
	if b.store != nil {
		b.doc = b.store.Load()
	}
	b.loaded = true
	b.surface.Clear()
	Logger().Info("document loaded", "strokes", b.doc.Len())
	b.notify()
}

// Loaded reports whether Load has completed.
func (b *Board) Loaded() bool { return b.loaded }

// Document returns a copy of the committed document.
func (b *Board) Document() state.Document {
	return state.NewDocument(b.doc.Strokes()...)
}

// Segments renders the committed document.
func (b *Board) Segments() []Segment {
	return RenderDocument(&b.doc, b.pipeline.MinPressure)
}

// MinPressure returns the pressure floor in use.
func (b *Board) MinPressure() float64 { return b.pipeline.MinPressure }

// EraseAt removes the topmost stroke under p, if any, and reports whether a
// stroke was removed.
func (b *Board) EraseAt(p curve.Point) bool {
	i, ok := HitTest(&b.doc, p, b.hitTolerance)
	if !ok {
		return false
	}
	removed, err := b.doc.RemoveAt(i)
	if err != nil {
		return false
	}
	Logger().Info("stroke erased", "stroke", removed.ID, "remaining", b.doc.Len())
	b.changed()
	return true
}

// Clear drops every stroke, the stored document and the raw surface.
func (b *Board) Clear() {
	b.session = nil
	b.doc.Clear()
	if b.store != nil {
		if err := b.store.Clear(); err != nil {
			Logger().Warn("clearing stored document", "err", err)
		}
	}
	b.surface.Clear()
	Logger().Info("document cleared")
	b.notify()
}

// SetErasing switches erase mode. A stroke in progress is committed first.
func (b *Board) SetErasing(on bool) {
	if on && b.session != nil {
		b.finish()
	}
	b.erasing = on
}

// Erasing reports whether erase mode is active.
func (b *Board) Erasing() bool { return b.erasing }

// SetStrokeColor sets the colour of strokes started from now on.
// Names outside the palette are stored as #rrggbb.
func (b *Board) SetStrokeColor(color string) { b.color = canonicalColor(color) }

// StrokeColor returns the colour of new strokes.
func (b *Board) StrokeColor() string { return b.color }

// SetStrokeWidth sets the width of strokes started from now on, clamped to
// the configured range.
func (b *Board) SetStrokeWidth(w float64) {
	b.width = math.Min(b.maxWidth, math.Max(b.minWidth, w))
}

// StrokeWidth returns the width of new strokes.
func (b *Board) StrokeWidth() float64 { return b.width }

// SetAcceptedKinds replaces the set of pointer kinds that may draw or erase.
func (b *Board) SetAcceptedKinds(kinds ...state.PointerKind) {
	b.accept = make(map[state.PointerKind]bool, len(kinds))
	for _, k := range kinds {
		b.accept[k] = true
	}
}

func (b *Board) commit(s state.Stroke) {
	if err := b.doc.Append(s); err != nil {
		Logger().Debug("stroke discarded", "stroke", s.ID, "reason", err)
		b.surface.Clear()
		return
	}
	Logger().Info("stroke committed",
		"stroke", s.ID,
		"points", len(s.Path),
		"color", s.Color,
		"width", s.Width)
	b.changed()
}

// changed persists and publishes a document mutation.
func (b *Board) changed() {
	b.save()
	b.surface.Clear()
	b.notify()
}

func (b *Board) save() {
	if b.store == nil {
		return
	}
	if !b.loaded {
		Logger().Debug("save skipped before load", "strokes", b.doc.Len())
		return
	}
	if err := b.store.Save(&b.doc); err != nil {
		Logger().Warn("saving document", "err", err)
	}
}

func (b *Board) notify() {
	if b.OnChange != nil {
		b.OnChange(b.Document())
	}
}

// canonicalColor spells a colour the way strokes store it: a palette name
// when there is one, #rrggbb otherwise.
func canonicalColor(s string) string {
	return state.FormatColor(state.ParseColor(s))
}
