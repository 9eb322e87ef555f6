package geom

import (
	"errors"
	"fmt"
)

// Defaults restored by View.Reset. Scale is in device units per model unit.
const (
	DefaultTranslationX = 0
	DefaultTranslationY = 0
	DefaultRotation     = 0
	DefaultScaleX       = 400
	DefaultScaleY       = 400
)

// ErrZeroScale is returned when a scale axis would become zero, which would
// leave the view without an inverse.
var ErrZeroScale = errors.New("view scale must be non-zero on both axes")

// Transformer maps points between model and device space.
type Transformer interface {
	ModelToDevice(p Point) Point
	DeviceToModel(p Point) Point
}

// View is the affine view transform. Model space has its origin at the
// viewport center with y pointing up; device space has its origin at the top
// left with y pointing down.
//
// The forward matrix applies, in order: the view translation, the rotation
// about the model origin, the scale, the y flip, and the translation to the
// viewport center. Both matrices are rebuilt whenever any input changes.
type View struct {
	tx, ty        float64
	rotation      float64
	sx, sy        float64
	width, height float64

	forward Matrix
	inverse Matrix
}

var _ Transformer = (*View)(nil)

// NewView returns a view in its default state for a viewport of the given
// size in device units.
func NewView(width, height float64) *View {
	v := &View{
		tx:       DefaultTranslationX,
		ty:       DefaultTranslationY,
		rotation: DefaultRotation,
		sx:       DefaultScaleX,
		sy:       DefaultScaleY,
		width:    width,
		height:   height,
	}
	v.update()
	return v
}

// Clone returns an independent copy of v.
func (v *View) Clone() *View {
	c := *v
	return &c
}

func (v *View) ModelToDevice(p Point) Point { return v.forward.Apply(p) }
func (v *View) DeviceToModel(p Point) Point { return v.inverse.Apply(p) }

// Translate adds (dx, dy) model units to the view translation.
func (v *View) Translate(dx, dy float64) {
	v.SetTranslation(v.tx+dx, v.ty+dy)
}

// Rotate adds dr radians to the view rotation.
func (v *View) Rotate(dr float64) {
	v.SetRotation(v.rotation + dr)
}

// Scale multiplies the current scale by (fx, fy).
func (v *View) Scale(fx, fy float64) error {
	return v.SetScale(v.sx*fx, v.sy*fy)
}

func (v *View) SetTranslation(x, y float64) {
	v.tx, v.ty = x, y
	v.update()
}

func (v *View) SetRotation(r float64) {
	v.rotation = r
	v.update()
}

// SetScale sets the absolute scale. A zero axis is rejected and the view is
// left unchanged.
func (v *View) SetScale(x, y float64) error {
	if x == 0 || y == 0 {
		return fmt.Errorf("set scale (%g, %g): %w", x, y, ErrZeroScale)
	}
	v.sx, v.sy = x, y
	v.update()
	return nil
}

// SetViewport records the device size the view maps onto.
func (v *View) SetViewport(width, height float64) {
	if v.width == width && v.height == height {
		return
	}
	v.width, v.height = width, height
	v.update()
}

// Reset restores translation (0,0), rotation 0 and scale (400,400).
func (v *View) Reset() {
	v.tx, v.ty = DefaultTranslationX, DefaultTranslationY
	v.rotation = DefaultRotation
	v.sx, v.sy = DefaultScaleX, DefaultScaleY
	v.update()
}

func (v *View) Translation() (x, y float64)  { return v.tx, v.ty }
func (v *View) Rotation() float64            { return v.rotation }
func (v *View) ScaleFactors() (x, y float64) { return v.sx, v.sy }
func (v *View) Viewport() (w, h float64)     { return v.width, v.height }
func (v *View) Forward() Matrix              { return v.forward }
func (v *View) Inverse() Matrix              { return v.inverse }

func (v *View) update() {
	rot := Rotation(v.rotation)

	v.forward = Compose(
		Translation(v.width/2, v.height/2),
		FlipY(),
		Scaling(v.sx, v.sy),
		rot,
		Translation(v.tx, v.ty),
	)

	v.inverse = Compose(
		Translation(-v.tx, -v.ty),
		rot.Transpose(),
		Scaling(1/v.sx, 1/v.sy),
		FlipY(),
		Translation(-v.width/2, -v.height/2),
	)
}

func (v *View) String() string {
	return fmt.Sprintf("view{t=(%g,%g) r=%g s=(%g,%g) vp=%gx%g}",
		v.tx, v.ty, v.rotation, v.sx, v.sy, v.width, v.height)
}
