package geom

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an opaque RGB color with channels in [0,1].
type Color struct {
	R, G, B float64
}

var (
	Black   = Color{0, 0, 0}
	Gray    = Color{0.4, 0.4, 0.4}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0.1, 0.9, 0}
	Blue    = Color{0.1, 0.3, 1}
	Cyan    = Color{0, 0.8, 1}
	Magenta = Color{0.9, 0, 0.9}
	Yellow  = Color{1, 0.8, 0}
)

// Valid reports whether every channel lies in [0,1].
func (c Color) Valid() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

// Packed returns the color as 0xRRGGBB, the form renderers consume.
func (c Color) Packed() uint32 {
	return uint32(channel8(c.R))<<16 | uint32(channel8(c.G))<<8 | uint32(channel8(c.B))
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xff}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Packed())
}

// Unpack converts 0xRRGGBB back to a Color.
func Unpack(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
}

// PackedRGBA converts a packed color to an opaque image color.
func PackedRGBA(rgb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

func channel8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
