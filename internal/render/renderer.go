// Package render defines the drawing surface the editor talks to and two
// in-memory implementations of it.
package render

import "VectorBoard/internal/geom"

// Mode selects how DrawLine composites onto the surface.
type Mode int

const (
	// ModeNormal paints opaque lines in the current color.
	ModeNormal Mode = iota
	// ModeInvert XORs lines onto the surface, so drawing the same line twice
	// in the same color restores what was underneath.
	ModeInvert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInvert:
		return "invert"
	default:
		return "unknown"
	}
}

// Renderer is the device-space drawing surface.
type Renderer interface {
	// Clear wipes the surface to its background.
	Clear()
	// SetColor sets the packed 0xRRGGBB color for subsequent lines.
	SetColor(rgb uint32)
	SetMode(m Mode)
	DrawLine(x0, y0, x1, y1 float64)
	// Size reports the viewport in device units.
	Size() (width, height int)
}

// Segment is a line between two device points.
type Segment struct {
	A, B geom.Point
}

// Seg is shorthand for a Segment between two points.
func Seg(a, b geom.Point) Segment { return Segment{A: a, B: b} }

// Canonical orders the endpoints so that a segment and its reverse compare
// equal.
func (s Segment) Canonical() Segment {
	if s.B.X < s.A.X || (s.B.X == s.A.X && s.B.Y < s.A.Y) {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// Draw issues s to r.
func (s Segment) Draw(r Renderer) {
	r.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
}
