// Package geom holds the 2D primitives shared by the drawing model: points,
// colors, homogeneous matrices and the view transform between model and
// device space.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D position. Matrices treat it as the column vector (X, Y, 1).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of p × q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the distance of p from the origin.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the signed angle in radians that rotates the vector p onto q,
// positive counter-clockwise, in (-π, π].
func (p Point) Angle(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Near reports whether p and q differ by at most eps on each axis.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Centroid returns the arithmetic mean of pts, or the zero point when pts is
// empty.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	n := float64(len(pts))
	return Point{sum.X / n, sum.Y / n}
}
