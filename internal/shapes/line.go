package shapes

import (
	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
)

// Line is a segment between two model points.
type Line struct {
	color geom.Color
	verts [2]geom.Point
}

var _ Shape = (*Line)(nil)

func NewLine(a, b geom.Point, c geom.Color) *Line {
	return &Line{color: c, verts: [2]geom.Point{a, b}}
}

func (l *Line) Kind() Kind                    { return KindLine }
func (l *Line) Color() geom.Color             { return l.color }
func (l *Line) SetColor(c geom.Color)         { l.color = c }
func (l *Line) Origin() geom.Point            { return geom.Centroid(l.verts[:]) }
func (l *Line) Len() int                      { return len(l.verts) }
func (l *Line) Vertex(i int) geom.Point       { return l.verts[i] }
func (l *Line) SetVertex(i int, p geom.Point) { l.verts[i] = p }

func (l *Line) Vertices() []geom.Point {
	return append([]geom.Point(nil), l.verts[:]...)
}

func (l *Line) Draw(t geom.Transformer, r render.Renderer) {
	drawEdges(t, r, l.color, l.verts[:], false)
}

func (l *Line) Clone() Shape {
	c := *l
	return &c
}

func (l *Line) MarshalText() ([]byte, error) {
	return appendRecord(nil, l, FormatLegacy), nil
}

// UnmarshalText parses a single line record, legacy or tagged.
func (l *Line) UnmarshalText(text []byte) error {
	return l.decode(tokenize(text))
}

func (l *Line) decode(tok []string) error {
	h, err := parseHeader(tok, KindLine)
	if err != nil {
		return err
	}
	if len(tok) != lineTokens {
		return tokenCountError(len(tok), KindLine)
	}
	verts, err := parseVertices(tok, 2)
	if err != nil {
		return err
	}
	l.color = h.color
	copy(l.verts[:], verts)
	return nil
}
