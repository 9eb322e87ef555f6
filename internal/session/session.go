// Package session is the drawing session: it owns the view, the stroke
// machine and the committed shapes, and turns keyboard and mouse input into
// operations on them.
package session

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"VectorBoard/internal/config"
	"VectorBoard/internal/geom"
	"VectorBoard/internal/render"
	"VectorBoard/internal/shapes"
	"VectorBoard/internal/state"
	"VectorBoard/internal/stroke"
)

// axisLength is the length of the drawn axes in model units.
const axisLength = 0.1

type gesture int

const (
	gestureNone gesture = iota
	gesturePan
	gestureRotate
)

// Session is not safe for concurrent use. The UI drives it from its event
// goroutine.
type Session struct {
	view    *geom.View
	r       render.Renderer
	machine *stroke.Machine
	shapes  *state.Collection
	log     *zap.SugaredLogger
	rng     *rand.Rand

	background geom.Color
	zoomStep   float64
	format     shapes.Format
	pdfMargin  float64
	axes       bool

	gesture      gesture
	last         geom.Point
	baseRotation float64

	// Confirm asks the user a yes/no question and calls yes on agreement.
	// When nil, the action proceeds without asking.
	Confirm func(question string, yes func())
	// OnSave and OnOpen are invoked by the S and O keys, typically to show a
	// file dialog that ends in SaveFile or OpenFile.
	OnSave func()
	OnOpen func()
	// OnStatus receives short human readable status messages.
	OnStatus func(msg string)
}

// New returns a session drawing to r with the given settings. A nil logger
// discards.
func New(r render.Renderer, cfg config.Config, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	w, h := r.Size()
	s := &Session{
		view:       geom.NewView(float64(w), float64(h)),
		r:          r,
		shapes:     state.NewCollection(log),
		log:        log,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		background: cfg.Background.Color(),
		zoomStep:   cfg.ZoomStep,
		format:     cfg.Format(),
		pdfMargin:  cfg.PDFMargin,
		axes:       cfg.Axes,
	}
	s.machine = stroke.New(s.view, r, s.shapes,
		stroke.WithColor(cfg.DrawColor.Color()),
		stroke.WithBackground(s.background),
		stroke.WithLogger(log),
	)
	return s
}

func (s *Session) View() *geom.View              { return s.view }
func (s *Session) Machine() *stroke.Machine      { return s.machine }
func (s *Session) Collection() *state.Collection { return s.shapes }
func (s *Session) Axes() bool                    { return s.axes }

// KeyDown dispatches a key press.
func (s *Session) KeyDown(k Key) {
	switch k {
	case KeyReturn:
		s.machine.Confirm()
	case KeyEscape:
		s.machine.Cancel()
	case KeyX:
		s.machine.SetSnapX(!s.machine.SnapX())
	case KeyY:
		s.machine.SetSnapY(!s.machine.SnapY())
	case KeyLeftControl, KeyRightControl:
		s.machine.ToggleLoop()
	case KeyC:
		s.machine.Cancel()
		s.RequestClear()
	case KeyA:
		s.SetAxes(!s.axes)
	case KeyR:
		s.ResetView()
	case KeyO:
		s.machine.Cancel()
		if s.OnOpen != nil {
			s.OnOpen()
		}
	case KeyS:
		if s.OnSave != nil {
			s.OnSave()
		}
	case Key0:
		c := geom.Color{R: s.randomChannel(), G: s.randomChannel(), B: s.randomChannel()}
		s.SetColor("random", c)
	default:
		if sw, ok := swatch(k); ok {
			s.SetColor(sw.Name, sw.Color)
		}
	}
}

// KeyUp is accepted for symmetry; no binding acts on release.
func (s *Session) KeyUp(k Key) {}

// MouseButtonDown dispatches a button press at device (x, y). Presses are
// ignored while a pan or rotate gesture is in progress.
func (s *Session) MouseButtonDown(b Button, x, y float64) {
	if s.gesture != gestureNone {
		return
	}
	switch b {
	case ButtonLeft:
		s.machine.AddVertex(x, y)
	case ButtonMiddle:
		s.machine.Cancel()
		s.gesture = gesturePan
		s.last = geom.Pt(x, y)
	case ButtonRight:
		s.machine.Cancel()
		s.gesture = gestureRotate
		s.last = geom.Pt(x, y)
		s.baseRotation = s.view.Rotation()
	case ButtonWheelUp:
		s.ZoomIn()
	case ButtonWheelDown:
		s.ZoomOut()
	}
}

// MouseButtonUp ends the gesture started by the same button.
func (s *Session) MouseButtonUp(b Button, x, y float64) {
	switch {
	case b == ButtonMiddle && s.gesture == gesturePan:
		s.gesture = gestureNone
	case b == ButtonRight && s.gesture == gestureRotate:
		s.rotateTo(geom.Pt(x, y))
		s.gesture = gestureNone
		s.log.Debugf("[SESSION] Rotation set to %g", s.view.Rotation())
		s.Paint()
	}
}

// MouseMove moves the rubber band, or drives the active gesture.
func (s *Session) MouseMove(x, y float64) {
	cur := geom.Pt(x, y)
	switch s.gesture {
	case gesturePan:
		d := s.view.DeviceToModel(cur).Sub(s.view.DeviceToModel(s.last))
		s.view.Translate(d.X, d.Y)
		s.last = cur
		s.Paint()
	case gestureRotate:
		s.rotateTo(cur)
		s.Paint()
	default:
		s.machine.PointerMove(x, y)
	}
}

// rotateTo sets the rotation to the base rotation plus the angle swept from
// the press point to p about the model origin.
func (s *Session) rotateTo(p geom.Point) {
	s.view.SetRotation(s.baseRotation)
	from := s.view.DeviceToModel(s.last)
	to := s.view.DeviceToModel(p)
	s.view.SetRotation(s.baseRotation + from.Angle(to))
}

// Resize follows a change of the drawing surface size and repaints.
func (s *Session) Resize(width, height int) {
	if rs, ok := s.r.(interface{ Resize(int, int) }); ok {
		rs.Resize(width, height)
	}
	s.Paint()
}

// Zoom scales the view uniformly by f and repaints.
func (s *Session) Zoom(f float64) {
	if err := s.view.Scale(f, f); err != nil {
		s.log.Warnf("[SESSION] Zoom by %g rejected: %v", f, err)
		return
	}
	s.Paint()
}

func (s *Session) ZoomIn()  { s.Zoom(s.zoomStep) }
func (s *Session) ZoomOut() { s.Zoom(1 / s.zoomStep) }

// Paint redraws everything. An in-progress stroke is cancelled first.
func (s *Session) Paint() {
	s.machine.Cancel()
	w, h := s.r.Size()
	s.view.SetViewport(float64(w), float64(h))
	s.r.Clear()
	s.r.SetMode(render.ModeNormal)
	if s.axes {
		s.drawAxes()
	}
	s.shapes.Draw(s.view, s.r)
}

func (s *Session) drawAxes() {
	o := s.view.ModelToDevice(geom.Pt(0, 0))
	x := s.view.ModelToDevice(geom.Pt(axisLength, 0))
	y := s.view.ModelToDevice(geom.Pt(0, axisLength))
	s.r.SetColor(geom.Red.Packed())
	s.r.DrawLine(o.X, o.Y, x.X, x.Y)
	s.r.SetColor(geom.Green.Packed())
	s.r.DrawLine(o.X, o.Y, y.X, y.Y)
}

// SetAxes shows or hides the axes and repaints.
func (s *Session) SetAxes(on bool) {
	s.axes = on
	s.log.Infof("[SESSION] Draw 2D axes %s", onOff(on))
	s.Paint()
}

// ResetView restores the default view and repaints.
func (s *Session) ResetView() {
	s.view.Reset()
	s.log.Debugf("[SESSION] View reset")
	s.Paint()
}

// SetColor changes the draw color.
func (s *Session) SetColor(name string, c geom.Color) {
	s.machine.SetColor(c)
	s.log.Infof("[SESSION] Color set: %s %v", name, c)
	s.status("Color: " + name)
}

// RequestClear clears the drawing after confirmation.
func (s *Session) RequestClear() {
	if s.Confirm == nil {
		s.Clear()
		return
	}
	s.Confirm("Are you sure you want to clear the canvas?", s.Clear)
}

// Clear erases every shape, resets the view and repaints.
func (s *Session) Clear() {
	s.machine.Cancel()
	s.shapes.Erase()
	s.view.Reset()
	s.Paint()
	s.log.Infof("[SESSION] Canvas cleared")
	s.status("Canvas cleared")
}

// randomChannel matches the coarse random palette: hundredths in [0, 0.99].
func (s *Session) randomChannel() float64 {
	return float64(s.rng.IntN(100)) / 100
}

func (s *Session) status(msg string) {
	if s.OnStatus != nil {
		s.OnStatus(msg)
	}
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
