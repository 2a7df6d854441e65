package core

import (
	"fmt"
	"math"
)

// Color is an RGBA color with components in [0, 1]. Games pick semantic
// colors (bubble hues, health tint); the platform decides how to map them
// onto the terminal's capabilities.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HSL creates an opaque color from hue (degrees), saturation and lightness.
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex returns the color as "#rrggbb", alpha pre-multiplied against black.
// Terminals have no alpha channel, so translucency becomes dimming.
func (c Color) Hex() string {
	to255 := func(v float64) int {
		return int(math.Round(ClampF(v*c.A, 0, 1) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B))
}

// Predefined colors for game elements.
var (
	ColorWhite  = RGB(1, 1, 1)
	ColorBlack  = RGB(0, 0, 0)
	ColorRed    = RGB(1, 0, 0)
	ColorOrange = RGB(1, 0.65, 0)
	ColorGray   = RGB(0.6, 0.6, 0.6)
)
