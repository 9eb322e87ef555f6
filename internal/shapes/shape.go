// Package shapes is the drawing's data model: lines, triangles and polygons
// in model coordinates, and their line-oriented text records.
package shapes

import (
	"encoding"
	"errors"
	"fmt"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
)

// Kind identifies a shape variant.
type Kind int

const (
	KindLine Kind = iota + 1
	KindTriangle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindTriangle:
		return "triangle"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrTooFewVertices is returned when a polygon is built from fewer than
// three vertices.
var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

// Shape is implemented by *Line, *Triangle and *Polygon.
//
// Vertex and SetVertex panic on an out-of-range index, like slice indexing.
// Origin is always the centroid of the current vertices.
type Shape interface {
	Kind() Kind
	Color() geom.Color
	SetColor(c geom.Color)
	Origin() geom.Point
	Len() int
	Vertex(i int) geom.Point
	SetVertex(i int, p geom.Point)
	// Vertices returns a copy of the vertices in order.
	Vertices() []geom.Point
	// Draw maps the vertices through t and issues the shape's edges to r in
	// the shape's color.
	Draw(t geom.Transformer, r render.Renderer)
	// Clone returns an independent deep copy.
	Clone() Shape

	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// New returns a zero shape of the given kind, ready for UnmarshalText.
func New(k Kind) (Shape, error) {
	switch k {
	case KindLine:
		return &Line{}, nil
	case KindTriangle:
		return &Triangle{}, nil
	case KindPolygon:
		return &Polygon{}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %v", k)
	}
}

// drawEdges draws consecutive edges of verts, plus the edge from the last
// vertex back to the first when closed.
func drawEdges(t geom.Transformer, r render.Renderer, c geom.Color, verts []geom.Point, closed bool) {
	if len(verts) < 2 {
		return
	}
	dev := make([]geom.Point, len(verts))
	for i, v := range verts {
		dev[i] = t.ModelToDevice(v)
	}

	r.SetColor(c.Packed())
	for i := 0; i < len(dev)-1; i++ {
		render.Seg(dev[i], dev[i+1]).Draw(r)
	}
	if closed {
		render.Seg(dev[len(dev)-1], dev[0]).Draw(r)
	}
}
