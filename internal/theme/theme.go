// Package theme holds the color palettes hosts draw with. Themes are plain
// values handed to renderers at construction; nothing here is global state.
package theme

import (
	"fmt"
	"image/color"
	"sort"
)

// Theme is one palette.
type Theme struct {
	Key        string
	Name       string
	Background color.RGBA
	Surface    color.RGBA
	Primary    color.RGBA
	Secondary  color.RGBA
	Accent     color.RGBA
	Text       color.RGBA
	// Token is the glyph terminal hosts draw for a collectible.
	Token rune
}

// Default is the theme used when none is selected.
const Default = "pink-romance"

var themes = map[string]Theme{
	"pink-romance": {
		Key:        "pink-romance",
		Name:       "Pink Romance",
		Background: hex(0xfe, 0xcf, 0xef),
		Surface:    hex(0xff, 0x9a, 0x9e),
		Primary:    hex(0xff, 0x69, 0xb4),
		Secondary:  hex(0xff, 0xc0, 0xcb),
		Accent:     hex(0xff, 0x14, 0x93),
		Text:       hex(0x2d, 0x1b, 0x69),
		Token:      '♥',
	},
	"purple-dreams": {
		Key:        "purple-dreams",
		Name:       "Purple Dreams",
		Background: hex(0x76, 0x4b, 0xa2),
		Surface:    hex(0x66, 0x7e, 0xea),
		Primary:    hex(0x9d, 0x4e, 0xdd),
		Secondary:  hex(0xc7, 0x7d, 0xff),
		Accent:     hex(0x72, 0x09, 0xb7),
		Text:       hex(0xff, 0xff, 0xff),
		Token:      '✦',
	},
	"midnight-noir": {
		Key:        "midnight-noir",
		Name:       "Midnight Noir",
		Background: hex(0x0c, 0x0c, 0x0c),
		Surface:    hex(0x2d, 0x2d, 0x2d),
		Primary:    hex(0xff, 0x6b, 0x6b),
		Secondary:  hex(0x4e, 0xcd, 0xc4),
		Accent:     hex(0x45, 0xb7, 0xd1),
		Text:       hex(0xff, 0xff, 0xff),
		Token:      '•',
	},
	"starry-hogwarts": {
		Key:        "starry-hogwarts",
		Name:       "Starry Hogwarts",
		Background: hex(0x0c, 0x14, 0x45),
		Surface:    hex(0x2a, 0x52, 0x98),
		Primary:    hex(0xff, 0xd7, 0x00),
		Secondary:  hex(0xff, 0xeb, 0x3b),
		Accent:     hex(0xff, 0x98, 0x00),
		Text:       hex(0xff, 0xff, 0xff),
		Token:      '*',
	},
}

// Lookup returns the theme registered under key.
func Lookup(key string) (Theme, error) {
	t, ok := themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (have %v)", key, Keys())
	}
	return t, nil
}

// MustLookup is Lookup for keys known at compile time.
func MustLookup(key string) Theme {
	t, err := Lookup(key)
	if err != nil {
		panic(err)
	}
	return t
}

// Keys lists the available theme keys in lexical order.
func Keys() []string {
	keys := make([]string, 0, len(themes))
	for k := range themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dim scales a color toward black by f in [0, 1].
func Dim(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}

func hex(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Setter is implemented by sims whose palette follows a theme.
type Setter interface {
	SetTheme(Theme)
}
