package geometry

// Zoom limits shared by wheel and button zoom.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// wheelStep is the multiplicative zoom step applied per wheel event.
const wheelStep = 1.1

// Point is a 2D position, in either screen or world coordinates depending
// on context.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PanGrab records where a pan started: the pointer's screen position and
// the pan value at press time.
type PanGrab struct {
	Screen Point
	Pan    Point
}

// Viewport holds the current pan offset and zoom factor of the canvas.
// It is session-local state and is never persisted with a project.
type Viewport struct {
	Pan  Point
	Zoom float64
}

// NewViewport returns a viewport at the origin with zoom 1.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToWorld converts a screen position to world coordinates given the stage
// element's current top-left corner in screen space.
func (v Viewport) ToWorld(screen, stageOrigin Point) Point {
	return Point{
		X: (screen.X - stageOrigin.X - v.Pan.X) / v.Zoom,
		Y: (screen.Y - stageOrigin.Y - v.Pan.Y) / v.Zoom,
	}
}

// WheelZoom applies a wheel-driven zoom step anchored at the cursor.
// Scrolling down (positive deltaY) zooms out. The pan is adjusted so the
// world point under the cursor stays at the same screen pixel.
func (v *Viewport) WheelZoom(screen, stageOrigin Point, deltaY float64) {
	world := v.ToWorld(screen, stageOrigin)
	factor := wheelStep
	if deltaY > 0 {
		factor = 1 / wheelStep
	}
	next := clampZoom(v.Zoom * factor)
	v.Pan.X -= world.X * (next - v.Zoom)
	v.Pan.Y -= world.Y * (next - v.Zoom)
	v.Zoom = next
}

// ZoomBy applies a button-driven additive zoom step. Unlike WheelZoom it
// does not compensate the pan: button zoom is anchored at the canvas
// origin, matching the toolbar buttons' behavior.
func (v *Viewport) ZoomBy(delta float64) {
	v.Zoom = clampZoom(v.Zoom + delta)
}

// DragPan recomputes the pan from the grab point and the pointer's current
// screen position.
func (v *Viewport) DragPan(grab PanGrab, current Point) {
	v.Pan = Point{
		X: grab.Pan.X + (current.X - grab.Screen.X),
		Y: grab.Pan.Y + (current.Y - grab.Screen.Y),
	}
}

// Reset restores zoom 1 and a zero pan.
func (v *Viewport) Reset() {
	v.Pan = Point{}
	v.Zoom = 1
}

func clampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}
