package heart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

var White = RGB{255, 255, 255}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// MustParsePalette parses a fixed palette and panics on a malformed entry.
func MustParsePalette(hexes []string) []RGB {
	out := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// Hex encodes the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Fade blends c toward white by (1 - transparency). A transparency of 1 keeps
// c, 0 gives white.
func (c RGB) Fade(transparency float64) RGB {
	return RGB{
		R: fadeChannel(c.R, transparency),
		G: fadeChannel(c.G, transparency),
		B: fadeChannel(c.B, transparency),
	}
}

func fadeChannel(c uint8, t float64) uint8 {
	v := math.Round(float64(c)*t + 255*(1-t))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FadeColor is Fade on hex strings.
func FadeColor(hex string, transparency float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return c.Fade(transparency).Hex(), nil
}
