// Package config holds the settings consumed by the ink pipeline and its
// host, with defaults and TOML file loading.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"inkboard/internal/state"
)

// Config is the complete set of settings.
type Config struct {
	Pen     Pen     `toml:"pen"`
	Ink     Ink     `toml:"ink"`
	Canvas  Canvas  `toml:"canvas"`
	Storage Storage `toml:"storage"`
}

// Pen configures the stroke being drawn.
type Pen struct {
	Width    float64  `toml:"width"`
	Color    string   `toml:"color"`
	MinWidth float64  `toml:"min_width"`
	MaxWidth float64  `toml:"max_width"`
	Accept   []string `toml:"accept"`
}

// Ink tunes the stroke pipeline.
type Ink struct {
	// MinPressure is the pressure floor applied to every stored point.
	MinPressure float64 `toml:"min_pressure"`
	// PatchDistance is the gap above which points are inserted.
	PatchDistance float64 `toml:"patch_distance"`
	// FilterDistance is the gap below which points are dropped.
	FilterDistance float64 `toml:"filter_distance"`
	// HitTolerance is added to half the stroke width when erasing.
	HitTolerance float64 `toml:"hit_tolerance"`
	// FlattenTolerance bounds the chord error when rasterizing curves.
	FlattenTolerance float64 `toml:"flatten_tolerance"`
}

// Canvas describes the drawing surface.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// Storage selects where the document is kept during a session.
type Storage struct {
	Backend    string `toml:"backend"`
	Key        string `toml:"key"`
	KeepOnExit bool   `toml:"keep_on_exit"`
}

const (
	BackendMemory      = "memory"
	BackendPreferences = "preferences"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pen: Pen{
			Width:    10,
			Color:    "black",
			MinWidth: 1,
			MaxWidth: 40,
			Accept:   []string{"pen", "mouse"},
		},
		Ink: Ink{
			MinPressure:      0.1,
			PatchDistance:    10,
			FilterDistance:   2,
			HitTolerance:     4,
			FlattenTolerance: 0.25,
		},
		Canvas: Canvas{
			Width:  500,
			Height: 500,
			Margin: state.DefaultCanvasMargin,
		},
		Storage: Storage{
			Backend: BackendMemory,
			Key:     "strokes",
		},
	}
}

// Load reads a TOML file on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("loading config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable together.
func (c Config) Validate() error {
	switch {
	case c.Pen.MinWidth <= 0:
		return fmt.Errorf("pen.min_width must be positive, got %g", c.Pen.MinWidth)
	case c.Pen.MaxWidth < c.Pen.MinWidth:
		return fmt.Errorf("pen.max_width %g is below pen.min_width %g", c.Pen.MaxWidth, c.Pen.MinWidth)
	case c.Pen.Width < c.Pen.MinWidth || c.Pen.Width > c.Pen.MaxWidth:
		return fmt.Errorf("pen.width %g outside [%g, %g]", c.Pen.Width, c.Pen.MinWidth, c.Pen.MaxWidth)
	case len(c.Pen.Accept) == 0:
		return errors.New("pen.accept must name at least one pointer kind")
	case c.Ink.MinPressure <= 0 || c.Ink.MinPressure > 1:
		return fmt.Errorf("ink.min_pressure must be in (0, 1], got %g", c.Ink.MinPressure)
	case c.Ink.PatchDistance <= 0:
		return fmt.Errorf("ink.patch_distance must be positive, got %g", c.Ink.PatchDistance)
	case c.Ink.FilterDistance < 0 || c.Ink.FilterDistance > c.Ink.PatchDistance/2:
		return fmt.Errorf("ink.filter_distance must be in [0, patch_distance/2], got %g", c.Ink.FilterDistance)
	case c.Ink.HitTolerance < 0:
		return fmt.Errorf("ink.hit_tolerance must not be negative, got %g", c.Ink.HitTolerance)
	case c.Ink.FlattenTolerance <= 0:
		return fmt.Errorf("ink.flatten_tolerance must be positive, got %g", c.Ink.FlattenTolerance)
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas size %gx%g must be positive", c.Canvas.Width, c.Canvas.Height)
	case c.Storage.Key == "":
		return errors.New("storage.key must not be empty")
	}
	if _, err := c.AcceptedKinds(); err != nil {
		return err
	}
	switch c.Storage.Backend {
	case BackendMemory, BackendPreferences:
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}

// AcceptedKinds parses Pen.Accept.
func (c Config) AcceptedKinds() ([]state.PointerKind, error) {
	kinds := make([]state.PointerKind, 0, len(c.Pen.Accept))
	for _, name := range c.Pen.Accept {
		k, err := state.ParsePointerKind(name)
		if err != nil {
			return nil, fmt.Errorf("pen.accept: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Viewport returns the canvas size as a state.Size.
func (c Canvas) Viewport() state.Size {
	return state.Size{Width: c.Width, Height: c.Height}
}
