package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/geom"
	"VectorBoard/internal/session"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Swatch   session.Swatch
	OnTapped func(session.Swatch)
}

func newColorSwatch(sw session.Swatch, tapped func(session.Swatch)) *colorSwatch {
	s := &colorSwatch{Swatch: sw, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(geom.PackedRGBA(s.Swatch.Color.Packed()))
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Swatch)
	}
}

// toolbar mirrors the session's toggles in check boxes and offers the file
// and view actions as buttons.
type toolbar struct {
	loop  *widget.Check
	snapX *widget.Check
	snapY *widget.Check
	axes  *widget.Check
	root  fyne.CanvasObject
}

func newToolbar(a *App) *toolbar {
	s := a.session
	m := s.Machine()
	t := &toolbar{}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.showOpen),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.showSave),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), a.showExport),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), func() { a.do(s.ZoomIn) }),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() { a.do(s.ZoomOut) }),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() { a.do(s.ResetView) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { a.do(s.RequestClear) }),
	)

	// --- Color Palette ---
	onColorTapped := func(sw session.Swatch) {
		a.do(func() { s.SetColor(sw.Name, sw.Color) })
	}
	colorBox := container.NewHBox()
	for _, sw := range session.Palette {
		colorBox.Add(newColorSwatch(sw, onColorTapped))
	}

	// Each check toggles only when it disagrees with the session, so sync
	// does not feed back into the session.
	t.loop = widget.NewCheck("Loop", func(on bool) {
		if on != m.Loop() {
			a.do(m.ToggleLoop)
		}
	})
	t.snapX = widget.NewCheck("Snap X", func(on bool) {
		if on != m.SnapX() {
			a.do(func() { m.SetSnapX(on) })
		}
	})
	t.snapY = widget.NewCheck("Snap Y", func(on bool) {
		if on != m.SnapY() {
			a.do(func() { m.SetSnapY(on) })
		}
	})
	t.axes = widget.NewCheck("Axes", func(on bool) {
		if on != s.Axes() {
			a.do(func() { s.SetAxes(on) })
		}
	})
	t.sync(s)

	// --- Assemble everything ---
	t.root = container.NewHBox(
		actions,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		t.loop,
		t.snapX,
		t.snapY,
		t.axes,
		layout.NewSpacer(),
	)
	return t
}

// sync copies the session's toggles into the check boxes.
func (t *toolbar) sync(s *session.Session) {
	m := s.Machine()
	set := func(c *widget.Check, on bool) {
		if c.Checked != on {
			c.SetChecked(on)
		}
	}
	set(t.loop, m.Loop())
	set(t.snapX, m.SnapX())
	set(t.snapY, m.SnapY())
	set(t.axes, s.Axes())
}
