package shapes

import (
	"fmt"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
)

// Polygon is an ordered vertex loop. Drawing closes it from the last vertex
// back to the first.
type Polygon struct {
	color geom.Color
	verts []geom.Point
}

var _ Shape = (*Polygon)(nil)

// NewPolygon copies verts into a new polygon.
func NewPolygon(verts []geom.Point, c geom.Color) (*Polygon, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("new polygon with %d vertices: %w", len(verts), ErrTooFewVertices)
	}
	return &Polygon{color: c, verts: append([]geom.Point(nil), verts...)}, nil
}

func (p *Polygon) Kind() Kind                    { return KindPolygon }
func (p *Polygon) Color() geom.Color             { return p.color }
func (p *Polygon) SetColor(c geom.Color)         { p.color = c }
func (p *Polygon) Origin() geom.Point            { return geom.Centroid(p.verts) }
func (p *Polygon) Len() int                      { return len(p.verts) }
func (p *Polygon) Vertex(i int) geom.Point       { return p.verts[i] }
func (p *Polygon) SetVertex(i int, v geom.Point) { p.verts[i] = v }

func (p *Polygon) Vertices() []geom.Point {
	return append([]geom.Point(nil), p.verts...)
}

func (p *Polygon) Draw(t geom.Transformer, r render.Renderer) {
	drawEdges(t, r, p.color, p.verts, len(p.verts) > 2)
}

func (p *Polygon) Clone() Shape {
	return &Polygon{color: p.color, verts: p.Vertices()}
}

func (p *Polygon) MarshalText() ([]byte, error) {
	return appendRecord(nil, p, FormatLegacy), nil
}

func (p *Polygon) UnmarshalText(text []byte) error {
	return p.decode(tokenize(text))
}

func (p *Polygon) decode(tok []string) error {
	h, err := parseHeader(tok, KindPolygon)
	if err != nil {
		return err
	}
	n, ok := vertexCount(len(tok))
	if !ok || n < 3 {
		return tokenCountError(len(tok), KindPolygon)
	}
	verts, err := parseVertices(tok, n)
	if err != nil {
		return err
	}
	p.color = h.color
	p.verts = verts
	return nil
}
