package state

import (
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the named stroke colours offered by the toolbar.
var Palette = []string{"black", "white", "red", "blue", "green", "yellow"}

var namedColors = map[string]color.NRGBA{
	"black":  {A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, A: 255},
	"blue":   {B: 255, A: 255},
	"green":  {G: 255, A: 255},
	"yellow": {R: 255, G: 255, A: 255},
}

// ParseColor converts a stroke colour, either a palette name or #rrggbb, to
// a colour value. Unknown colours render black.
func ParseColor(s string) color.NRGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
		}
	}
	return namedColors["black"]
}

// FormatColor returns the canonical name for c, or #rrggbb when c is not in
// the palette.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	for _, name := range Palette {
		if namedColors[name] == n {
			return name
		}
	}
	const hex = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{n.R, n.G, n.B} {
		b[1+2*i] = hex[v>>4]
		b[2+2*i] = hex[v&0xf]
	}
	return string(b)
}
