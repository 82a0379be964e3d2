package particles

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with an alpha channel in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// RGBA builds a Color from 8-bit channels.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, A: a}
}

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(hex string, alpha float64) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("particles: parse color %q: %w", hex, err)
	}
	return Color{Color: c, A: alpha}, nil
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// CSS renders c as a CSS rgba() value.
func (c Color) CSS() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatAlpha(c.A))
}

func formatAlpha(a float64) string {
	a = math.Max(0, math.Min(1, a))
	s := fmt.Sprintf("%.4f", a)
	// trim trailing zeros so 0.9500 renders as 0.95 and 1.0000 as 1
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// DefaultPalette is the four-color particle palette.
func DefaultPalette() []Color {
	return []Color{
		RGBA(245, 158, 11, 0.95),
		RGBA(245, 158, 11, 0.45),
		RGBA(201, 198, 191, 0.85),
		RGBA(255, 255, 255, 0.10),
	}
}
