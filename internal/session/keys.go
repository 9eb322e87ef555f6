package session

import "VectorBoard/internal/geom"

// Key names a keyboard key. Values match fyne's key names so the UI can pass
// them through unchanged.
type Key string

const (
	KeyReturn       Key = "Return"
	KeyEscape       Key = "Escape"
	KeyLeftControl  Key = "LeftControl"
	KeyRightControl Key = "RightControl"
	KeyA            Key = "A"
	KeyC            Key = "C"
	KeyO            Key = "O"
	KeyR            Key = "R"
	KeyS            Key = "S"
	KeyX            Key = "X"
	KeyY            Key = "Y"
	Key0            Key = "0"
	Key1            Key = "1"
	Key2            Key = "2"
	Key3            Key = "3"
	Key4            Key = "4"
	Key5            Key = "5"
	Key6            Key = "6"
	Key7            Key = "7"
	Key8            Key = "8"
	Key9            Key = "9"
)

// Button numbers follow the X11 convention: the wheel reports as buttons 4
// and 5.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Swatch is a named palette color.
type Swatch struct {
	Key   Key
	Name  string
	Color geom.Color
}

// Palette lists the colors bound to the number keys, in key order.
var Palette = []Swatch{
	{Key1, "black", geom.Black},
	{Key2, "gray", geom.Gray},
	{Key3, "white", geom.White},
	{Key4, "red", geom.Red},
	{Key5, "green", geom.Green},
	{Key6, "blue", geom.Blue},
	{Key7, "cyan", geom.Cyan},
	{Key8, "magenta", geom.Magenta},
	{Key9, "yellow", geom.Yellow},
}

func swatch(k Key) (Swatch, bool) {
	for _, s := range Palette {
		if s.Key == k {
			return s, true
		}
	}
	return Swatch{}, false
}

// Controls is the help text shown at startup.
const Controls = `DRAW CONTROLS:
  LMB   - Start Stroke / Continue Stroke
  ENTER - Confirm Stroke
  ESC   - Cancel Stroke
  X     - Toggle Snap To X
  Y     - Toggle Snap To Y
  CTRL  - Toggle Loop Mode
  C     - Clear Canvas

COLOR CONTROLS:
  1 - Black     6 - Blue
  2 - Gray      7 - Cyan
  3 - White     8 - Magenta
  4 - Red       9 - Yellow
  5 - Green     0 - Random

VIEW CONTROLS:
  MMB    - Pan
  RMB    - Rotate
  SCROLL - Zoom
  A      - Toggle 2D Axes
  R      - Reset View

FILE CONTROLS:
  O - Open Drawing
  S - Save Drawing`
