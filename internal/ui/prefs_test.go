package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"inkboard/internal/state"
	"inkboard/internal/store"
)

func TestPreferencesSlotRoundTrip(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	st := store.New(NewPreferencesSlot(a.Preferences()))
	if got := st.Load(); got.Len() != 0 {
		t.Fatalf("fresh preferences hold %d strokes", got.Len())
	}

	s := state.NewStroke("red", 6)
	s.Path = []state.Point{{X: 1, Y: 2, Pressure: 0.4, Kind: state.PointerMouse, Timestamp: 7}}
	doc := state.NewDocument(s)
	if err := st.Save(&doc); err != nil {
		t.Fatal(err)
	}
	got := st.Load()
	if !got.Equal(doc) {
		t.Errorf("loaded %v, want %v", got.Strokes(), doc.Strokes())
	}

	if err := st.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := st.Load(); got.Len() != 0 {
		t.Errorf("%d strokes after Clear", got.Len())
	}
}

func TestPreferencesSlotUnavailable(t *testing.T) {
	slot := NewPreferencesSlot(nil)
	if _, _, err := slot.Get("strokes"); !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("Get: got %v, want ErrUnavailable", err)
	}
	if err := slot.Set("strokes", []byte("[]")); !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("Set: got %v, want ErrUnavailable", err)
	}
	if got := store.New(slot).Load(); got.Len() != 0 {
		t.Error("unavailable preferences did not load as empty")
	}
}
