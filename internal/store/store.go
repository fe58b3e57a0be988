// Package store keeps the committed document in a session-scoped key-value
// slot.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"inkboard/internal/state"
)

// DefaultKey is the slot key the document is stored under.
const DefaultKey = "strokes"

// ErrUnavailable is returned by a Slot whose backing storage cannot be
// reached.
var ErrUnavailable = errors.New("storage unavailable")

// Slot is a string-keyed value store.
type Slot interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Store serializes a Document to a single key of a Slot.
type Store struct {
	slot Slot
	key  string
	log  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey stores the document under key instead of DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger reports degraded loads and failed writes to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a store over slot.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot: slot,
		key:  DefaultKey,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the slot key in use.
func (s *Store) Key() string { return s.key }

// Load returns the stored document. A missing, unreadable or malformed value
// yields an empty document.
func (s *Store) Load() state.Document {
	data, ok, err := s.slot.Get(s.key)
	if err != nil {
		s.log.Warn("reading stored document", "key", s.key, "err", err)
		return state.Document{}
	}
	if !ok || len(data) == 0 {
		return state.Document{}
	}
	strokes, err := state.UnmarshalStrokes(data)
	if err != nil {
		s.log.Warn("discarding malformed stored document", "key", s.key, "err", err)
		return state.Document{}
	}
	return state.NewDocument(strokes...)
}

// Save overwrites the stored document with doc.
func (s *Store) Save(doc *state.Document) error {
	data, err := state.MarshalStrokes(doc.Strokes())
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := s.slot.Set(s.key, data); err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	s.log.Debug("document saved", "key", s.key, "strokes", doc.Len(), "bytes", len(data))
	return nil
}

// Clear removes the stored document.
func (s *Store) Clear() error {
	if err := s.slot.Delete(s.key); err != nil {
		return fmt.Errorf("deleting %s: %w", s.key, err)
	}
	return nil
}
