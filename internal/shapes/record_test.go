package shapes

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/geom"
)

const lineRecord = "SHAPE  COLOR( 1 0 0 )  ORIGIN( 0.5 0.25 )  VERTICES( POINT2D( 0 0 ) POINT2D( 1 0.5 ) )"

func TestLineRecordText(t *testing.T) {
	text, err := NewLine(geom.Pt(0, 0), geom.Pt(1, 0.5), geom.Red).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, lineRecord, string(text))
	assert.Len(t, tokenize(text), 21)
}

func TestRecordTokenCounts(t *testing.T) {
	tri := NewTriangle(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Black)
	text, err := tri.MarshalText()
	require.NoError(t, err)
	assert.Len(t, tokenize(text), 25)

	for n := 4; n <= 7; n++ {
		verts := make([]geom.Point, n)
		for i := range verts {
			verts[i] = geom.Pt(float64(i), float64(i*i))
		}
		p, err := NewPolygon(verts, geom.Black)
		require.NoError(t, err)
		text, err := p.MarshalText()
		require.NoError(t, err)
		assert.Len(t, tokenize(text), 13+4*n)
		assert.Greater(t, len(tokenize(text)), 25)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	poly, err := NewPolygon(pts(0.1, 0.2, -3e-7, 4, 1e10, -2, 1.0/3, 2.0/3), geom.Color{R: 0.25, G: 1.0 / 3, B: 0.9})
	require.NoError(t, err)
	in := []Shape{
		NewLine(geom.Pt(-1.5, 2), geom.Pt(3, 4.125), geom.Cyan),
		NewTriangle(geom.Pt(0, 0), geom.Pt(0.7, 0.1), geom.Pt(0.3, -0.9), geom.Magenta),
		poly,
	}
	for _, f := range []Format{FormatLegacy, FormatTagged} {
		for _, s := range in {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, s, f))

			got, err := Decode(buf.Bytes())
			require.NoError(t, err, buf.String())
			assert.Equal(t, s.Kind(), got.Kind())
			assert.Equal(t, s.Color(), got.Color())
			if diff := cmp.Diff(s.Vertices(), got.Vertices()); diff != "" {
				t.Errorf("%v %v vertices (-want +got):\n%s", f, s.Kind(), diff)
			}
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"ten tokens", "SHAPE COLOR( 0 0 0 ) ORIGIN( 0 0", ErrTokenCount},
		{"empty", "", ErrTokenCount},
		{"between line and triangle", lineRecord + " a b c", ErrTokenCount},
		{"polygon with stray tokens", lineRecord + " a b c d e f", ErrTokenCount},
		{"bad header", strings.Replace(lineRecord, "SHAPE", "SHAPES", 1), ErrKeyword},
		{"bad color keyword", strings.Replace(lineRecord, "COLOR(", "COLOUR(", 1), ErrKeyword},
		{"bad vertices keyword", strings.Replace(lineRecord, "VERTICES(", "VERTS(", 1), ErrKeyword},
		{"bad point keyword", strings.Replace(lineRecord, "POINT2D( 1", "POINT( 1", 1), ErrKeyword},
		{"bad number", strings.Replace(lineRecord, "0.25", "zero", 1), ErrNumber},
		{"not finite", strings.Replace(lineRecord, "POINT2D( 0 0", "POINT2D( NaN 0", 1), ErrNumber},
		{"color out of range", strings.Replace(lineRecord, "COLOR( 1 0 0", "COLOR( 2 0 0", 1), ErrNumber},
		{"tag disagrees with count", strings.Replace(lineRecord, "SHAPE", "TRIANGLE", 1), ErrTokenCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.text))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTaggedPolygonOfThree(t *testing.T) {
	p, err := NewPolygon(pts(0, 0, 1, 0, 0, 1), geom.Black)
	require.NoError(t, err)

	var legacy, tagged bytes.Buffer
	require.NoError(t, Encode(&legacy, p, FormatLegacy))
	require.NoError(t, Encode(&tagged, p, FormatTagged))
	assert.True(t, strings.HasPrefix(tagged.String(), "POLYGON  COLOR("))

	// Without a tag a three-vertex polygon has a triangle's token count.
	got, err := Decode(legacy.Bytes())
	require.NoError(t, err)
	assert.Equal(t, KindTriangle, got.Kind())

	got, err = Decode(tagged.Bytes())
	require.NoError(t, err)
	assert.Equal(t, KindPolygon, got.Kind())
	assert.Equal(t, p.Vertices(), got.Vertices())
}

func TestUnmarshalTextChecksVariant(t *testing.T) {
	var tri Triangle
	assert.ErrorIs(t, tri.UnmarshalText([]byte(lineRecord)), ErrTokenCount)

	var l Line
	require.NoError(t, l.UnmarshalText([]byte(lineRecord)))
	assert.Equal(t, geom.Pt(1, 0.5), l.Vertex(1))

	var p Polygon
	assert.ErrorIs(t, p.UnmarshalText([]byte(lineRecord)), ErrTokenCount)

	tagged := strings.Replace(lineRecord, "SHAPE", "LINE", 1)
	assert.ErrorIs(t, p.UnmarshalText([]byte(tagged)), ErrKeyword)
}

func TestDecoderStream(t *testing.T) {
	stream := lineRecord + "\n\n   \n" + lineRecord + "\nSHAPE nonsense\n" + lineRecord + "\n"
	d := NewDecoder(strings.NewReader(stream))

	for i := 0; i < 2; i++ {
		s, err := d.Decode()
		require.NoError(t, err)
		assert.Equal(t, KindLine, s.Kind())
	}

	_, err := d.Decode()
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 5, pe.Line)
	assert.ErrorIs(t, err, ErrTokenCount)
	assert.Contains(t, err.Error(), "line 5")

	_, err = d.Decode()
	require.NoError(t, err)
	_, err = d.Decode()
	assert.Equal(t, io.EOF, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Tagged")
	require.NoError(t, err)
	assert.Equal(t, FormatTagged, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatLegacy, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}
