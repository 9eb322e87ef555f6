package render

import "sync"

// Line is a colored segment held by a DisplayList.
type Line struct {
	Segment
	RGB uint32
}

// DisplayList is a retained Renderer. Lines drawn in ModeNormal accumulate
// until Clear. Lines drawn in ModeInvert toggle in an overlay: a second
// identical draw removes the first, which is exactly what XOR compositing
// does on a pixel surface.
//
// A DisplayList is safe for concurrent use so a UI thread can read it while
// events are being applied.
type DisplayList struct {
	mu         sync.RWMutex
	width      int
	height     int
	background uint32
	color      uint32
	mode       Mode
	lines      []Line
	overlay    []Line
	version    uint64
}

var _ Renderer = (*DisplayList)(nil)

// NewDisplayList returns an empty list with the given viewport and
// background color.
func NewDisplayList(width, height int, background uint32) *DisplayList {
	return &DisplayList{width: width, height: height, background: background}
}

func (d *DisplayList) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = nil
	d.overlay = nil
	d.version++
}

func (d *DisplayList) SetColor(rgb uint32) {
	d.mu.Lock()
	d.color = rgb
	d.mu.Unlock()
}

func (d *DisplayList) SetMode(m Mode) {
	d.mu.Lock()
	d.mode = m
	d.mu.Unlock()
}

func (d *DisplayList) DrawLine(x0, y0, x1, y1 float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	l := Line{Segment: Seg(pt(x0, y0), pt(x1, y1)), RGB: d.color}
	d.version++
	if d.mode == ModeNormal {
		d.lines = append(d.lines, l)
		return
	}

	key := l.Segment.Canonical()
	for i, o := range d.overlay {
		if o.RGB == l.RGB && o.Segment.Canonical() == key {
			d.overlay = append(d.overlay[:i], d.overlay[i+1:]...)
			return
		}
	}
	d.overlay = append(d.overlay, l)
}

func (d *DisplayList) Size() (int, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.width, d.height
}

// Resize changes the reported viewport.
func (d *DisplayList) Resize(width, height int) {
	d.mu.Lock()
	d.width, d.height = width, height
	d.version++
	d.mu.Unlock()
}

func (d *DisplayList) Background() uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.background
}

// Lines returns a copy of the opaque lines in draw order.
func (d *DisplayList) Lines() []Line {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Line(nil), d.lines...)
}

// Overlay returns a copy of the inverted lines currently visible. Their RGB
// is the XOR color; Visible gives the color they show over the background.
func (d *DisplayList) Overlay() []Line {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Line(nil), d.overlay...)
}

// Visible returns the color an inverted line shows over the background.
func (d *DisplayList) Visible(l Line) uint32 {
	return l.RGB ^ d.Background()
}

// Version increases on every change, so a UI can skip redundant rebuilds.
func (d *DisplayList) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}
