package ui

import (
	"fyne.io/fyne/v2"

	"inkboard/internal/store"
)

// PreferencesSlot keeps the document in the application's preferences, so it
// survives a restart when the store is not cleared on exit.
type PreferencesSlot struct {
	prefs fyne.Preferences
}

var _ store.Slot = (*PreferencesSlot)(nil)

// NewPreferencesSlot returns a slot over prefs. A nil prefs gives a slot
// whose every call fails with store.ErrUnavailable.
func NewPreferencesSlot(prefs fyne.Preferences) *PreferencesSlot {
	return &PreferencesSlot{prefs: prefs}
}

func (p *PreferencesSlot) Get(key string) ([]byte, bool, error) {
	if p.prefs == nil {
		return nil, false, store.ErrUnavailable
	}
	v := p.prefs.String(key)
	if v == "" {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (p *PreferencesSlot) Set(key string, value []byte) error {
	if p.prefs == nil {
		return store.ErrUnavailable
	}
	p.prefs.SetString(key, string(value))
	return nil
}

func (p *PreferencesSlot) Delete(key string) error {
	if p.prefs == nil {
		return store.ErrUnavailable
	}
	p.prefs.RemoveValue(key)
	return nil
}
