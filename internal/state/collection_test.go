package state

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
	"VectorBoard/internal/shapes"
)

func sample(t *testing.T) []shapes.Shape {
	t.Helper()
	poly, err := shapes.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.6, Y: 0.4}, {X: 0.1, Y: 0.7}, {X: -0.2, Y: 0.3}}, geom.Magenta)
	require.NoError(t, err)
	return []shapes.Shape{
		shapes.NewLine(geom.Pt(-0.25, 0.1), geom.Pt(0.3, -0.45), geom.Red),
		shapes.NewTriangle(geom.Pt(0, 0), geom.Pt(0.2, 0.1), geom.Pt(0.05, 0.3), geom.Green),
		poly,
	}
}

func TestAddStoresCopy(t *testing.T) {
	c := NewCollection(nil)
	l := shapes.NewLine(geom.Pt(0, 0), geom.Pt(1, 1), geom.Black)
	id := c.Add(l)

	l.SetVertex(0, geom.Pt(5, 5))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, geom.Pt(0, 0), c.Shapes()[0].Vertex(0))

	// Shapes hands out copies too.
	c.Shapes()[0].SetVertex(0, geom.Pt(9, 9))
	assert.Equal(t, geom.Pt(0, 0), c.Entries()[0].Shape.Vertex(0))
	assert.Equal(t, id, c.Entries()[0].ID)
	assert.True(t, strings.HasPrefix(id, "shape-"+SessionID()[:8]))
}

func TestOrderIsStable(t *testing.T) {
	c := NewCollection(nil)
	var ids []string
	for _, s := range sample(t) {
		ids = append(ids, c.Add(s))
	}

	entries := c.Entries()
	for i, e := range entries {
		assert.Equal(t, ids[i], e.ID)
		if i > 0 {
			assert.Greater(t, e.Seq, entries[i-1].Seq)
		}
	}

	var first, second bytes.Buffer
	_, err := c.WriteTo(&first)
	require.NoError(t, err)
	_, err = c.WriteTo(&second)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestRemoveAndErase(t *testing.T) {
	c := NewCollection(nil)
	ids := []string{}
	for _, s := range sample(t) {
		ids = append(ids, c.Add(s))
	}
	assert.True(t, c.Remove(ids[1]))
	assert.False(t, c.Remove(ids[1]))
	require.Equal(t, 2, c.Len())
	assert.Equal(t, shapes.KindPolygon, c.Shapes()[1].Kind())

	other := NewCollection(nil)
	other.AddAll(c)
	assert.Equal(t, 2, other.Len())

	c.Erase()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, other.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := NewCollection(nil)
	for _, s := range sample(t) {
		c.Add(s)
	}

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	loaded := NewCollection(nil)
	require.NoError(t, loaded.Load(&buf))
	require.Equal(t, c.Len(), loaded.Len())

	want, got := c.Shapes(), loaded.Shapes()
	for i := range want {
		assert.Equal(t, want[i].Kind(), got[i].Kind())
		assert.Equal(t, want[i].Color(), got[i].Color())
		if diff := cmp.Diff(want[i].Vertices(), got[i].Vertices()); diff != "" {
			t.Errorf("shape %d vertices (-want +got):\n%s", i, diff)
		}
	}
}

func TestTaggedEncodeLoads(t *testing.T) {
	c := NewCollection(nil)
	p, err := shapes.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, geom.Blue)
	require.NoError(t, err)
	c.Add(p)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, shapes.FormatTagged))

	loaded := NewCollection(nil)
	require.NoError(t, loaded.Load(&buf))
	assert.Equal(t, shapes.KindPolygon, loaded.Shapes()[0].Kind())
}

func TestFailedLoadCommitsNothing(t *testing.T) {
	c := NewCollection(nil)
	c.Add(shapes.NewLine(geom.Pt(0, 0), geom.Pt(1, 1), geom.Black))

	var good bytes.Buffer
	src := NewCollection(nil)
	for _, s := range sample(t) {
		src.Add(s)
	}
	_, err := src.WriteTo(&good)
	require.NoError(t, err)

	// A valid prefix followed by a ten-token record.
	stream := good.String() + "SHAPE COLOR( 0 0 0 ) ORIGIN( 0 0\n"
	err = c.Load(strings.NewReader(stream))

	var pe *shapes.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 4, pe.Line)
	assert.ErrorIs(t, err, shapes.ErrTokenCount)
	assert.Equal(t, 1, c.Len())
}

func TestDrawAndBounds(t *testing.T) {
	c := NewCollection(nil)
	assert.True(t, c.Bounds().Empty())
	for _, s := range sample(t) {
		c.Add(s)
	}

	r := render.NewRecorder(800, 800)
	c.Draw(geom.NewView(800, 800), r)
	assert.Len(t, r.Lines(), 1+3+5)

	b := c.Bounds()
	assert.Equal(t, geom.Pt(-0.25, -0.45), b.Min)
	assert.Equal(t, geom.Pt(0.6, 0.7), b.Max)
}
