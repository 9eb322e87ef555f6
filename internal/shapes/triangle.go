package shapes

import (
	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
)

// Triangle is a closed three-vertex shape.
type Triangle struct {
	color geom.Color
	verts [3]geom.Point
}

var _ Shape = (*Triangle)(nil)

func NewTriangle(a, b, c geom.Point, col geom.Color) *Triangle {
	return &Triangle{color: col, verts: [3]geom.Point{a, b, c}}
}

func (t *Triangle) Kind() Kind                    { return KindTriangle }
func (t *Triangle) Color() geom.Color             { return t.color }
func (t *Triangle) SetColor(c geom.Color)         { t.color = c }
func (t *Triangle) Origin() geom.Point            { return geom.Centroid(t.verts[:]) }
func (t *Triangle) Len() int                      { return len(t.verts) }
func (t *Triangle) Vertex(i int) geom.Point       { return t.verts[i] }
func (t *Triangle) SetVertex(i int, p geom.Point) { t.verts[i] = p }

func (t *Triangle) Vertices() []geom.Point {
	return append([]geom.Point(nil), t.verts[:]...)
}

func (t *Triangle) Draw(tr geom.Transformer, r render.Renderer) {
	drawEdges(tr, r, t.color, t.verts[:], true)
}

func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

func (t *Triangle) MarshalText() ([]byte, error) {
	return appendRecord(nil, t, FormatLegacy), nil
}

func (t *Triangle) UnmarshalText(text []byte) error {
	return t.decode(tokenize(text))
}

func (t *Triangle) decode(tok []string) error {
	h, err := parseHeader(tok, KindTriangle)
	if err != nil {
		return err
	}
	if len(tok) != triangleTokens {
		return tokenCountError(len(tok), KindTriangle)
	}
	verts, err := parseVertices(tok, 3)
	if err != nil {
		return err
	}
	t.color = h.color
	copy(t.verts[:], verts)
	return nil
}
