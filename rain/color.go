package rain

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an opaque RGB color.
type Color struct{ R, G, B uint8 }

// ParseColor parses a "#rrggbb" or "#rgb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

// Colorful returns the color as a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c toward other; t=0 yields c and t=1 yields other.
func (c Color) Blend(other Color, t float64) Color {
	return FromColorful(c.Colorful().BlendRgb(other.Colorful(), t))
}

// Brighten moves the color toward white by factor in [0,1].
func (c Color) Brighten(factor float64) Color {
	return c.Blend(Color{255, 255, 255}, factor)
}

// Dim scales the brightness of the color by factor.
func (c Color) Dim(factor float64) Color {
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
