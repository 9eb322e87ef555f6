package shapes

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"VectorBoard/internal/geom"
)

// A record is one line of text:
//
//	SHAPE  COLOR( r g b )  ORIGIN( x y )  VERTICES( POINT2D( x y ) ... )
//
// Tokens are whitespace separated and every record ends with an
// end-of-record token, so a line counts 21 tokens, a triangle 25 and a
// polygon of n vertices 13+4n. Untagged records are told apart by that count
// alone. A tagged record replaces SHAPE with LINE, TRIANGLE or POLYGON.
const (
	keywordShape    = "SHAPE"
	keywordColor    = "COLOR("
	keywordOrigin   = "ORIGIN("
	keywordVertices = "VERTICES("
	keywordPoint    = "POINT2D("
	keywordClose    = ")"

	endOfRecord = "\n"

	headerTokens   = 10
	lineTokens     = 21
	triangleTokens = 25
)

var tags = map[string]Kind{
	"LINE":     KindLine,
	"TRIANGLE": KindTriangle,
	"POLYGON":  KindPolygon,
}

func tagFor(k Kind) string {
	for tag, kind := range tags {
		if kind == k {
			return tag
		}
	}
	return keywordShape
}

var (
	// ErrTokenCount means a record has a token count no shape uses.
	ErrTokenCount = errors.New("invalid token count")
	// ErrKeyword means a keyword token is missing or out of place.
	ErrKeyword = errors.New("unexpected keyword")
	// ErrNumber means a numeric field did not parse or was out of range.
	ErrNumber = errors.New("invalid number")
)

// ParseError reports a malformed record while reading a stream.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Format selects how records are written.
type Format int

const (
	// FormatLegacy starts every record with SHAPE.
	FormatLegacy Format = iota
	// FormatTagged starts every record with the shape's kind.
	FormatTagged
)

// ParseFormat accepts "legacy" or "tagged".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return FormatLegacy, nil
	case "tagged":
		return FormatTagged, nil
	default:
		return 0, fmt.Errorf("unknown save format %q", s)
	}
}

func (f Format) String() string {
	if f == FormatTagged {
		return "tagged"
	}
	return "legacy"
}

// tokenDecoder is implemented by every shape in this package.
type tokenDecoder interface {
	decode(tok []string) error
}

// Decode parses a single record and returns the shape it describes.
func Decode(text []byte) (Shape, error) {
	tok := tokenize(text)
	k, err := classify(tok)
	if err != nil {
		return nil, err
	}
	s, err := New(k)
	if err != nil {
		return nil, err
	}
	if err := s.(tokenDecoder).decode(tok); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes s to w as one record terminated by a newline.
func Encode(w io.Writer, s Shape, f Format) error {
	_, err := w.Write(append(appendRecord(nil, s, f), '\n'))
	return err
}

// Decoder reads records from a stream, one per non-blank line.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	return &Decoder{sc: sc}
}

// Decode returns the next shape, io.EOF at the end of the stream, or a
// *ParseError.
func (d *Decoder) Decode() (Shape, error) {
	for d.sc.Scan() {
		d.line++
		text := d.sc.Bytes()
		if len(bytes.TrimSpace(text)) == 0 {
			continue
		}
		s, err := Decode(text)
		if err != nil {
			return nil, &ParseError{Line: d.line, Err: err}
		}
		return s, nil
	}
	if err := d.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func tokenize(text []byte) []string {
	return append(strings.Fields(string(text)), endOfRecord)
}

// classify picks the variant from the tag when present, else from the
// token count.
func classify(tok []string) (Kind, error) {
	if k, ok := tags[tok[0]]; ok {
		return k, nil
	}
	switch n := len(tok); {
	case n == lineTokens:
		return KindLine, nil
	case n == triangleTokens:
		return KindTriangle, nil
	case n > triangleTokens:
		return KindPolygon, nil
	default:
		return 0, fmt.Errorf("%w: %d tokens", ErrTokenCount, n)
	}
}

// vertexCount inverts 13+4n.
func vertexCount(tokens int) (int, bool) {
	if tokens < 13 || (tokens-13)%4 != 0 {
		return 0, false
	}
	return (tokens - 13) / 4, true
}

func tokenCountError(n int, k Kind) error {
	return fmt.Errorf("%w: %d tokens for a %v", ErrTokenCount, n, k)
}

type header struct {
	color  geom.Color
	origin geom.Point
}

func parseHeader(tok []string, want Kind) (header, error) {
	var h header
	if len(tok) <= headerTokens {
		return h, tokenCountError(len(tok), want)
	}
	if k, ok := tags[tok[0]]; ok {
		if k != want {
			return h, fmt.Errorf("%w: %s record read as a %v", ErrKeyword, tok[0], want)
		}
	} else if err := expect(tok, 0, keywordShape); err != nil {
		return h, err
	}
	for _, kw := range []struct {
		at   int
		word string
	}{{1, keywordColor}, {5, keywordClose}, {6, keywordOrigin}, {9, keywordClose}} {
		if err := expect(tok, kw.at, kw.word); err != nil {
			return h, err
		}
	}

	var ch [3]float64
	for i := range ch {
		v, err := number(tok, 2+i)
		if err != nil {
			return h, err
		}
		ch[i] = v
	}
	h.color = geom.Color{R: ch[0], G: ch[1], B: ch[2]}
	if !h.color.Valid() {
		return h, fmt.Errorf("%w: color %v outside [0,1]", ErrNumber, ch)
	}

	x, err := number(tok, 7)
	if err != nil {
		return h, err
	}
	y, err := number(tok, 8)
	if err != nil {
		return h, err
	}
	h.origin = geom.Point{X: x, Y: y}
	return h, nil
}

// parseVertices reads n POINT2D groups starting at token 10. The caller has
// already checked len(tok) == 13+4n.
func parseVertices(tok []string, n int) ([]geom.Point, error) {
	if err := expect(tok, headerTokens, keywordVertices); err != nil {
		return nil, err
	}
	verts := make([]geom.Point, n)
	for i := range verts {
		base := headerTokens + 1 + 4*i
		if err := expect(tok, base, keywordPoint); err != nil {
			return nil, err
		}
		x, err := number(tok, base+1)
		if err != nil {
			return nil, err
		}
		y, err := number(tok, base+2)
		if err != nil {
			return nil, err
		}
		if err := expect(tok, base+3, keywordClose); err != nil {
			return nil, err
		}
		verts[i] = geom.Point{X: x, Y: y}
	}
	if err := expect(tok, headerTokens+1+4*n, keywordClose); err != nil {
		return nil, err
	}
	return verts, nil
}

func expect(tok []string, i int, kw string) error {
	if i >= len(tok) || tok[i] != kw {
		got := "end of record"
		if i < len(tok) && tok[i] != endOfRecord {
			got = strconv.Quote(tok[i])
		}
		return fmt.Errorf("%w: token %d is %s, want %q", ErrKeyword, i, got, kw)
	}
	return nil
}

func number(tok []string, i int) (float64, error) {
	v, err := strconv.ParseFloat(tok[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %v", ErrNumber, i, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: token %d is %s", ErrNumber, i, tok[i])
	}
	return v, nil
}

func appendRecord(b []byte, s Shape, f Format) []byte {
	tag := keywordShape
	if f == FormatTagged {
		tag = tagFor(s.Kind())
	}
	c, o := s.Color(), s.Origin()

	b = append(b, tag...)
	b = append(b, "  "+keywordColor+" "...)
	b = appendFloats(b, c.R, c.G, c.B)
	b = append(b, " "+keywordClose+"  "+keywordOrigin+" "...)
	b = appendFloats(b, o.X, o.Y)
	b = append(b, " "+keywordClose+"  "+keywordVertices...)
	for _, v := range s.Vertices() {
		b = append(b, " "+keywordPoint+" "...)
		b = appendFloats(b, v.X, v.Y)
		b = append(b, " "+keywordClose...)
	}
	return append(b, " "+keywordClose...)
}

func appendFloats(b []byte, vs ...float64) []byte {
	for i, v := range vs {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return b
}
