package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
	"VectorBoard/internal/session"
)

// BoardWidget is the drawing surface. It forwards pointer input to the
// session and shows the session's display list.
type BoardWidget struct {
	widget.BaseWidget
	session   *session.Session
	list      *render.DisplayList
	statusBar *widget.Label

	// OnInput runs after every forwarded event, so controls mirroring session
	// state can follow keyboard toggles.
	OnInput func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)

func NewBoardWidget(s *session.Session, list *render.DisplayList) *BoardWidget {
	b := &BoardWidget{
		session:   s,
		list:      list,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// Resize keeps the session's viewport equal to the widget size.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	b.session.Resize(int(size.Width), int(size.Height))
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if btn, ok := buttonFor(e.Button); ok {
		b.session.MouseButtonDown(btn, float64(e.Position.X), float64(e.Position.Y))
		b.changed()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if btn, ok := buttonFor(e.Button); ok {
		b.session.MouseButtonUp(btn, float64(e.Position.X), float64(e.Position.Y))
		b.changed()
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.session.MouseMove(float64(e.Position.X), float64(e.Position.Y))
	b.changed()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// Scrolled zooms: a wheel step reports as a press of button 4 or 5.
func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	btn, ok := wheelFor(e.Scrolled.DY)
	if !ok {
		return
	}
	b.session.MouseButtonDown(btn, float64(e.Position.X), float64(e.Position.Y))
	b.session.MouseButtonUp(btn, float64(e.Position.X), float64(e.Position.Y))
	b.changed()
}

// KeyDown and KeyUp take key events from the window canvas.
func (b *BoardWidget) KeyDown(e *fyne.KeyEvent) {
	b.session.KeyDown(keyFor(e.Name))
	b.changed()
}

func (b *BoardWidget) KeyUp(e *fyne.KeyEvent) {
	b.session.KeyUp(keyFor(e.Name))
}

func (b *BoardWidget) changed() {
	b.Refresh()
	if b.OnInput != nil {
		b.OnInput()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(geom.PackedRGBA(b.list.Background()))
	r.rebuild()
	return r
}

func buttonFor(b desktop.MouseButton) (session.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return session.ButtonLeft, true
	case desktop.MouseButtonTertiary:
		return session.ButtonMiddle, true
	case desktop.MouseButtonSecondary:
		return session.ButtonRight, true
	}
	return 0, false
}

func wheelFor(dy float32) (session.Button, bool) {
	switch {
	case dy > 0:
		return session.ButtonWheelUp, true
	case dy < 0:
		return session.ButtonWheelDown, true
	}
	return 0, false
}

// Session keys share fyne's key names.
func keyFor(name fyne.KeyName) session.Key { return session.Key(name) }
