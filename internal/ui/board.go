package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"VectorBoard/internal/geom"
)

const lineWidth = 1.5

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
	version    uint64
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Refresh rebuilds the line objects when the display list changed since the
// last build.
func (r *boardWidgetRenderer) Refresh() {
	if r.board.list.Version() != r.version {
		r.rebuild()
	}
	canvas.Refresh(r.board)
}

// rebuild turns the display list into canvas lines. Inverted lines are drawn
// in the color they show over the background.
func (r *boardWidgetRenderer) rebuild() {
	list := r.board.list
	r.version = list.Version()

	lines := list.Lines()
	overlay := list.Overlay()
	objects := make([]fyne.CanvasObject, 0, 1+len(lines)+len(overlay))
	objects = append(objects, r.background)
	for _, l := range lines {
		objects = append(objects, newLine(l.A, l.B, l.RGB))
	}
	for _, l := range overlay {
		objects = append(objects, newLine(l.A, l.B, list.Visible(l)))
	}
	r.objects = objects
}

func newLine(a, b geom.Point, rgb uint32) *canvas.Line {
	l := canvas.NewLine(geom.PackedRGBA(rgb))
	l.StrokeWidth = lineWidth
	l.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	l.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	return l
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
