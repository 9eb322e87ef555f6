package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
)

// identity maps model points to device points unchanged.
type identity struct{}

func (identity) ModelToDevice(p geom.Point) geom.Point { return p }
func (identity) DeviceToModel(p geom.Point) geom.Point { return p }

func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestOriginIsCentroid(t *testing.T) {
	l := NewLine(geom.Pt(0, 0), geom.Pt(2, 4), geom.Black)
	assert.Equal(t, geom.Pt(1, 2), l.Origin())

	tri := NewTriangle(geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(0, 3), geom.Black)
	assert.Equal(t, geom.Pt(1, 1), tri.Origin())

	poly, err := NewPolygon(pts(0, 0, 4, 0, 4, 4, 0, 4), geom.Black)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(2, 2), poly.Origin())

	// Mutating a vertex moves the origin with it.
	l.SetVertex(1, geom.Pt(4, 4))
	assert.Equal(t, geom.Pt(2, 2), l.Origin())
	poly.SetVertex(0, geom.Pt(-4, -4))
	assert.Equal(t, geom.Pt(1, 1), poly.Origin())
}

func TestCloneIsIndependent(t *testing.T) {
	poly, err := NewPolygon(pts(0, 0, 1, 0, 1, 1, 0, 1), geom.Red)
	require.NoError(t, err)

	c := poly.Clone()
	c.SetVertex(2, geom.Pt(9, 9))
	c.SetColor(geom.Blue)

	assert.Equal(t, geom.Pt(1, 1), poly.Vertex(2))
	assert.Equal(t, geom.Red, poly.Color())
	assert.Equal(t, KindPolygon, c.Kind())

	l := NewLine(geom.Pt(0, 0), geom.Pt(1, 1), geom.Red)
	lc := l.Clone()
	lc.SetVertex(0, geom.Pt(5, 5))
	assert.Equal(t, geom.Pt(0, 0), l.Vertex(0))
}

func TestNewPolygonNeedsThreeVertices(t *testing.T) {
	_, err := NewPolygon(pts(0, 0, 1, 1), geom.Black)
	assert.ErrorIs(t, err, ErrTooFewVertices)

	src := pts(0, 0, 1, 0, 1, 1)
	p, err := NewPolygon(src, geom.Black)
	require.NoError(t, err)
	src[0] = geom.Pt(7, 7)
	assert.Equal(t, geom.Pt(0, 0), p.Vertex(0))
}

func TestDrawEdges(t *testing.T) {
	seg := func(x0, y0, x1, y1 float64) render.Segment {
		return render.Seg(geom.Pt(x0, y0), geom.Pt(x1, y1))
	}
	poly, err := NewPolygon(pts(0, 0, 1, 0, 1, 1, 0, 1), geom.Red)
	require.NoError(t, err)

	cases := []struct {
		name  string
		shape Shape
		want  []render.Segment
	}{
		{"line", NewLine(geom.Pt(0, 0), geom.Pt(1, 1), geom.Red), []render.Segment{seg(0, 0, 1, 1)}},
		{"triangle", NewTriangle(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Red), []render.Segment{
			seg(0, 0, 1, 0), seg(1, 0, 0, 1), seg(0, 1, 0, 0),
		}},
		{"polygon", poly, []render.Segment{
			seg(0, 0, 1, 0), seg(1, 0, 1, 1), seg(1, 1, 0, 1), seg(0, 1, 0, 0),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := render.NewRecorder(10, 10)
			tc.shape.Draw(identity{}, r)
			require.NotEmpty(t, r.Calls)
			assert.Equal(t, render.Call{Op: render.OpSetColor, RGB: 0xff0000}, r.Calls[0])
			if diff := cmp.Diff(tc.want, r.Lines()); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawThroughView(t *testing.T) {
	v := geom.NewView(800, 800)
	r := render.NewRecorder(800, 800)
	NewLine(geom.Pt(0, 0), geom.Pt(1, 1), geom.Black).Draw(v, r)
	assert.Equal(t, []render.Segment{render.Seg(geom.Pt(400, 400), geom.Pt(800, 0))}, r.Lines())
}
