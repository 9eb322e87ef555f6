package geom

import "math"

// Bounds is an axis-aligned rectangle in model space. The zero value is
// empty and absorbs nothing until the first point is added.
type Bounds struct {
	Min, Max Point
	nonEmpty bool
}

// BoundsOf returns the smallest Bounds containing pts.
func BoundsOf(pts ...Point) Bounds {
	var b Bounds
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

func (b Bounds) Empty() bool { return !b.nonEmpty }

// Extend returns b grown to include p.
func (b Bounds) Extend(p Point) Bounds {
	if !b.nonEmpty {
		return Bounds{Min: p, Max: p, nonEmpty: true}
	}
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// Union returns the smallest Bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.Empty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Pad grows b by d on every side.
func (b Bounds) Pad(d float64) Bounds {
	if b.Empty() {
		return b
	}
	b.Min = b.Min.Sub(Point{d, d})
	b.Max = b.Max.Add(Point{d, d})
	return b
}

func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

func (b Bounds) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return b.nonEmpty &&
		p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Overlaps reports whether b and o share any point.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return !(b.Max.X < o.Min.X || o.Max.X < b.Min.X ||
		b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y)
}
