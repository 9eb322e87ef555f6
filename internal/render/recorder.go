package render

import (
	"fmt"

	"VectorBoard/internal/geom"
)

// Op names a recorded Renderer call.
type Op string

const (
	OpClear    Op = "clear"
	OpSetColor Op = "color"
	OpSetMode  Op = "mode"
	OpDrawLine Op = "line"
)

// Call is one recorded Renderer call. Only the fields relevant to Op are set.
type Call struct {
	Op      Op
	RGB     uint32
	Mode    Mode
	Segment Segment
}

func (c Call) String() string {
	switch c.Op {
	case OpSetColor:
		return fmt.Sprintf("color(%06x)", c.RGB)
	case OpSetMode:
		return fmt.Sprintf("mode(%s)", c.Mode)
	case OpDrawLine:
		return fmt.Sprintf("line(%v-%v)", c.Segment.A, c.Segment.B)
	default:
		return string(c.Op)
	}
}

// Recorder is a Renderer that remembers every call, for tests.
type Recorder struct {
	Width, Height int
	Calls         []Call
}

var _ Renderer = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Clear()              { r.Calls = append(r.Calls, Call{Op: OpClear}) }
func (r *Recorder) SetColor(rgb uint32) { r.Calls = append(r.Calls, Call{Op: OpSetColor, RGB: rgb}) }
func (r *Recorder) SetMode(m Mode)      { r.Calls = append(r.Calls, Call{Op: OpSetMode, Mode: m}) }
func (r *Recorder) Size() (int, int)    { return r.Width, r.Height }

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64) {
	r.Calls = append(r.Calls, Call{Op: OpDrawLine, Segment: Seg(pt(x0, y0), pt(x1, y1))})
}

// Lines returns the segments of every DrawLine call in order.
func (r *Recorder) Lines() []Segment {
	var out []Segment
	for _, c := range r.Calls {
		if c.Op == OpDrawLine {
			out = append(out, c.Segment)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.Calls = nil }

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }
