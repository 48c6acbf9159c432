package gfx

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) 8-bit color. It is the color type
// of configuration values ("ARGB") and brushes. Surfaces store the
// premultiplied form returned by Premul.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
)

// ARGB creates a color from alpha, red, green and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color. The returned values are premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Premul returns the premultiplied 8-bit form of c.
func (c Color) Premul() color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// IsTransparent reports whether the alpha channel is zero.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// String returns the color as "A,R,G,B".
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.A, c.R, c.G, c.B)
}

// FromColor converts any color.Color to a straight Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
