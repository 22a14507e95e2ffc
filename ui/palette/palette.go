// Package palette maps theme names to the colours every host draws with.
package palette

import (
	"sort"

	"snake-classic/game/entity"
)

// Color is an 8-bit RGBA colour, converted by each host to its own type
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha scaled by f (clamped to 0..1)
func (c Color) WithAlpha(f float64) Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float64(c.A) * f)
	return c
}

// Over flattens c onto the opaque colour bg, for hosts without alpha blending
func (c Color) Over(bg Color) Color {
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(fg)*a + float64(bg)*(1-a) + 0.5)
	}
	return RGB(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

type Palette struct {
	Name       string
	Title      string
	Background Color
	Grid       Color
	Snake      Color
	Text       Color
	Border     Color
	Glow       bool
}

const Default = "classic"

var themes = map[string]Palette{
	"classic": {
		Name:       "classic",
		Title:      "Classic",
		Background: RGB(0xec, 0xf0, 0xf1),
		Grid:       RGB(0xbd, 0xc3, 0xc7),
		Snake:      RGB(0x2c, 0x3e, 0x50),
		Text:       RGB(0x2c, 0x3e, 0x50),
		Border:     RGB(0x2c, 0x3e, 0x50),
	},
	"neon": {
		Name:       "neon",
		Title:      "Neon",
		Background: RGB(0x0a, 0x0a, 0x0a),
		Grid:       RGB(0x00, 0xff, 0x41),
		Snake:      RGB(0x00, 0xff, 0x41),
		Text:       RGB(0x00, 0xff, 0x41),
		Border:     RGB(0x00, 0xff, 0x41),
		Glow:       true,
	},
	"dark": {
		Name:       "dark",
		Title:      "Dark Mode",
		Background: RGB(0x2c, 0x3e, 0x50),
		Grid:       RGB(0x34, 0x49, 0x5e),
		Snake:      RGB(0x34, 0x98, 0xdb),
		Text:       RGB(0xec, 0xf0, 0xf1),
		Border:     RGB(0x34, 0x49, 0x5e),
	},
	"nature": {
		Name:       "nature",
		Title:      "Nature",
		Background: RGB(0x27, 0xae, 0x60),
		Grid:       RGB(0x2e, 0xcc, 0x71),
		Snake:      RGB(0x8b, 0x45, 0x13),
		Text:       RGB(0xff, 0xff, 0xff),
		Border:     RGB(0x2e, 0xcc, 0x71),
	},
}

// food colours do not depend on the theme
var foodColors = map[entity.Tier]Color{
	entity.Normal: RGB(0x27, 0xae, 0x60),
	entity.Bonus:  RGB(0xf3, 0x9c, 0x12),
	entity.Super:  RGB(0xe7, 0x4c, 0x3c),
}

// Lookup returns the named palette, or the classic one for unknown names
func Lookup(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes[Default]
}

func Exists(name string) bool {
	_, ok := themes[name]
	return ok
}

// Names lists the known themes in a stable order
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Next cycles to the theme after name
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return Default
}

// Segment returns the colour of body segment i (0 is the head). The body
// fades towards the tail but never below 30% opacity.
func (p Palette) Segment(i int) Color {
	if i == 0 {
		return p.Snake
	}
	alpha := 1 - float64(i)*0.05
	if alpha < 0.3 {
		alpha = 0.3
	}
	return p.Snake.WithAlpha(alpha)
}

func FoodColor(t entity.Tier) Color {
	if c, ok := foodColors[t]; ok {
		return c
	}
	return foodColors[entity.Normal]
}
