// Package stroke turns pointer input into shapes. A stroke collects device
// vertices click by click; the last vertex follows the pointer as a rubber
// band until the stroke is confirmed or cancelled.
package stroke

import (
	"go.uber.org/zap"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
	"VectorBoard/internal/shapes"
)

// Sink receives confirmed shapes.
type Sink interface {
	Add(s shapes.Shape) string
}

// Machine is the stroke state machine. It is Idle with no pending vertices
// and Active with two or more, the last being the rubber band.
//
// The preview is not stored: it is derived from the pending vertices on
// every transition and reconciled onto the renderer with inverting draws,
// so the surface always shows exactly Preview().
type Machine struct {
	view geom.Transformer
	r    render.Renderer
	sink Sink
	log  *zap.SugaredLogger

	pending    []geom.Point
	loop       bool
	snapX      bool
	snapY      bool
	color      geom.Color
	background geom.Color
}

// Option configures a Machine.
type Option func(*Machine)

// WithColor sets the initial draw color. The default is black.
func WithColor(c geom.Color) Option {
	return func(m *Machine) { m.color = c }
}

// WithBackground sets the canvas color the preview is inverted against.
// The default is white.
func WithBackground(c geom.Color) Option {
	return func(m *Machine) { m.background = c }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// New returns an idle machine drawing previews to r, converting through view
// and committing shapes to sink.
func New(view geom.Transformer, r render.Renderer, sink Sink, opts ...Option) *Machine {
	m := &Machine{
		view:       view,
		r:          r,
		sink:       sink,
		log:        zap.NewNop().Sugar(),
		color:      geom.Black,
		background: geom.White,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Machine) Active() bool      { return len(m.pending) > 0 }
func (m *Machine) Loop() bool        { return m.loop }
func (m *Machine) SnapX() bool       { return m.snapX }
func (m *Machine) SnapY() bool       { return m.snapY }
func (m *Machine) Color() geom.Color { return m.color }

// Pending returns a copy of the pending device vertices.
func (m *Machine) Pending() []geom.Point {
	return append([]geom.Point(nil), m.pending...)
}

// Preview returns the device segments the stroke shows: each consecutive
// pair of pending vertices, then the closing edge from the first vertex to
// the rubber band when loop mode is on and more than two vertices exist.
func (m *Machine) Preview() []render.Segment {
	n := len(m.pending)
	if n < 2 {
		return nil
	}
	segs := make([]render.Segment, 0, n)
	for i := 0; i < n-1; i++ {
		segs = append(segs, render.Seg(m.pending[i], m.pending[i+1]))
	}
	if m.loop && n > 2 {
		segs = append(segs, render.Seg(m.pending[0], m.pending[n-1]))
	}
	return segs
}

// AddVertex handles a click at device (x, y). From Idle it starts a stroke
// with an anchor and a rubber band at the click. While Active it freezes the
// rubber band at the snapped click and starts a new one there.
func (m *Machine) AddVertex(x, y float64) {
	before := m.Preview()
	p := geom.Pt(x, y)
	if !m.Active() {
		m.pending = append(m.pending, p, p)
		m.log.Debugf("[STROKE] Started at %v", p)
	} else {
		p = m.snap(p)
		m.pending[len(m.pending)-1] = p
		m.pending = append(m.pending, p)
		m.log.Debugf("[STROKE] Froze vertex %d at %v", len(m.pending)-2, p)
	}
	m.reconcile(before)
}

// PointerMove moves the rubber band to the snapped pointer position.
func (m *Machine) PointerMove(x, y float64) {
	if !m.Active() {
		return
	}
	before := m.Preview()
	m.pending[len(m.pending)-1] = m.snap(geom.Pt(x, y))
	m.reconcile(before)
}

// Confirm commits the stroke. The pending vertices, rubber band included,
// are converted to model space; with N of them:
//
//   - loop off: N-2 lines, one per consecutive pair up to the last frozen one;
//   - loop on, N == 3: one line between the two distinct vertices;
//   - loop on, N == 4: one triangle;
//   - loop on, N >= 5: one polygon of the first N-1 vertices.
//
// Each shape is drawn opaque and added to the sink. Confirm on an idle
// machine does nothing.
func (m *Machine) Confirm() []shapes.Shape {
	if !m.Active() {
		return nil
	}
	m.invert(m.Preview())

	model := make([]geom.Point, len(m.pending))
	for i, p := range m.pending {
		model[i] = m.view.DeviceToModel(p)
	}
	out := m.build(model)

	m.r.SetMode(render.ModeNormal)
	for _, s := range out {
		s.Draw(m.view, m.r)
		id := m.sink.Add(s)
		m.log.Debugf("[STROKE] Committed %v %s", s.Kind(), id)
	}
	m.log.Infof("[STROKE] Confirmed %d vertices as %d shape(s), loop=%t", len(m.pending), len(out), m.loop)
	m.pending = nil
	return out
}

// Cancel discards the stroke without emitting anything.
func (m *Machine) Cancel() {
	if !m.Active() {
		return
	}
	m.invert(m.Preview())
	m.r.SetMode(render.ModeNormal)
	m.log.Debugf("[STROKE] Cancelled with %d pending vertices", len(m.pending))
	m.pending = nil
}

// ToggleLoop flips loop mode. With three or more pending vertices the
// closing edge appears or disappears immediately.
func (m *Machine) ToggleLoop() {
	before := m.Preview()
	m.loop = !m.loop
	m.reconcile(before)
	m.log.Infof("[STROKE] Loop mode %s", onOff(m.loop))
}

// SetSnapX pins the x of later vertices to the last frozen vertex.
func (m *Machine) SetSnapX(on bool) {
	m.snapX = on
	m.log.Infof("[STROKE] Snap to X %s", onOff(on))
}

// SetSnapY pins the y of later vertices to the last frozen vertex.
func (m *Machine) SetSnapY(on bool) {
	m.snapY = on
	m.log.Infof("[STROKE] Snap to Y %s", onOff(on))
}

// SetColor changes the draw color. A live preview is redrawn in the new
// color.
func (m *Machine) SetColor(c geom.Color) {
	segs := m.Preview()
	m.invert(segs)
	m.color = c
	m.invert(segs)
	if len(segs) > 0 {
		m.r.SetMode(render.ModeNormal)
	}
}

func (m *Machine) snap(p geom.Point) geom.Point {
	frozen := m.pending[len(m.pending)-2]
	if m.snapY {
		p.Y = frozen.Y
	}
	if m.snapX {
		p.X = frozen.X
	}
	return p
}

func (m *Machine) build(model []geom.Point) []shapes.Shape {
	n := len(model)
	if !m.loop {
		out := make([]shapes.Shape, 0, n-2)
		for i := 0; i < n-2; i++ {
			out = append(out, shapes.NewLine(model[i], model[i+1], m.color))
		}
		return out
	}
	switch {
	case n == 3:
		return []shapes.Shape{shapes.NewLine(model[0], model[1], m.color)}
	case n == 4:
		return []shapes.Shape{shapes.NewTriangle(model[0], model[1], model[2], m.color)}
	case n >= 5:
		p, err := shapes.NewPolygon(model[:n-1], m.color)
		if err != nil {
			// n-1 >= 4 vertices, so this cannot happen.
			panic(err)
		}
		return []shapes.Shape{p}
	default:
		// A single click has nothing to close.
		return nil
	}
}

// reconcile brings the renderer from the before preview to the current one.
func (m *Machine) reconcile(before []render.Segment) {
	gone, added := diff(before, m.Preview())
	if len(gone)+len(added) == 0 {
		return
	}
	m.invert(append(gone, added...))
	m.r.SetMode(render.ModeNormal)
}

// invert draws segs in inverting mode with the preview color.
func (m *Machine) invert(segs []render.Segment) {
	if len(segs) == 0 {
		return
	}
	m.r.SetColor(m.color.Packed() ^ m.background.Packed())
	m.r.SetMode(render.ModeInvert)
	for _, s := range segs {
		s.Draw(m.r)
	}
}

// diff returns the segments only in before and the segments only in after,
// counting duplicates.
func diff(before, after []render.Segment) (gone, added []render.Segment) {
	count := make(map[render.Segment]int, len(before))
	for _, s := range before {
		count[s.Canonical()]++
	}
	for _, s := range after {
		k := s.Canonical()
		if count[k] > 0 {
			count[k]--
			continue
		}
		added = append(added, s)
	}
	for _, s := range before {
		k := s.Canonical()
		if count[k] > 0 {
			count[k]--
			gone = append(gone, s)
		}
	}
	return gone, added
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
