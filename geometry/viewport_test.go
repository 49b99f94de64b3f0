package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestToWorld(t *testing.T) {
	tests := []struct {
		name   string
		pan    Point
		zoom   float64
		screen Point
		origin Point
		want   Point
	}{
		{
			name:   "identity viewport",
			zoom:   1,
			screen: Point{X: 40, Y: 60},
			want:   Point{X: 40, Y: 60},
		},
		{
			name:   "pan and zoom",
			pan:    Point{X: 10, Y: 20},
			zoom:   2,
			screen: Point{X: 115, Y: 225},
			origin: Point{X: 5, Y: 5},
			want:   Point{X: 50, Y: 100},
		},
		{
			name:   "zoomed out",
			zoom:   0.5,
			screen: Point{X: 30, Y: 10},
			want:   Point{X: 60, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{Pan: tt.pan, Zoom: tt.zoom}
			got := v.ToWorld(tt.screen, tt.origin)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("ToWorld() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWheelZoomDirection(t *testing.T) {
	v := NewViewport()
	v.WheelZoom(Point{X: 100, Y: 100}, Point{}, -1)
	if !almostEqual(v.Zoom, 1.1) {
		t.Errorf("zoom after scroll up = %v, want 1.1", v.Zoom)
	}

	v = NewViewport()
	v.WheelZoom(Point{X: 100, Y: 100}, Point{}, 1)
	if !almostEqual(v.Zoom, 1/1.1) {
		t.Errorf("zoom after scroll down = %v, want %v", v.Zoom, 1/1.1)
	}
}

func TestWheelZoomKeepsCursorAnchored(t *testing.T) {
	v := Viewport{Pan: Point{X: 15, Y: -40}, Zoom: 1.3}
	screen := Point{X: 240, Y: 180}
	origin := Point{X: 8, Y: 12}

	before := v.ToWorld(screen, origin)
	v.WheelZoom(screen, origin, -1)
	after := v.ToWorld(screen, origin)

	if !almostEqual(before.X, after.X) || !almostEqual(before.Y, after.Y) {
		t.Errorf("world point under cursor moved: before %+v, after %+v", before, after)
	}
}

func TestWheelZoomClamps(t *testing.T) {
	v := Viewport{Zoom: 4.9}
	v.WheelZoom(Point{X: 50, Y: 50}, Point{}, -1)
	if v.Zoom != MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", v.Zoom, MaxZoom)
	}

	v = Viewport{Zoom: MinZoom, Pan: Point{X: 3, Y: 7}}
	v.WheelZoom(Point{X: 50, Y: 50}, Point{}, 1)
	if v.Zoom != MinZoom {
		t.Errorf("zoom = %v, want %v", v.Zoom, MinZoom)
	}
	// At the floor the zoom doesn't change, so the pan must not drift.
	if !almostEqual(v.Pan.X, 3) || !almostEqual(v.Pan.Y, 7) {
		t.Errorf("pan drifted at zoom floor: %+v", v.Pan)
	}
}

func TestZoomBy(t *testing.T) {
	tests := []struct {
		name  string
		zoom  float64
		delta float64
		want  float64
	}{
		{name: "step in", zoom: 1, delta: 0.1, want: 1.1},
		{name: "step out", zoom: 1, delta: -0.1, want: 0.9},
		{name: "clamped high", zoom: 4.95, delta: 0.1, want: MaxZoom},
		{name: "clamped low", zoom: 0.15, delta: -0.1, want: MinZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{Pan: Point{X: 11, Y: 22}, Zoom: tt.zoom}
			v.ZoomBy(tt.delta)
			if !almostEqual(v.Zoom, tt.want) {
				t.Errorf("ZoomBy(%v) zoom = %v, want %v", tt.delta, v.Zoom, tt.want)
			}
			// Button zoom never adjusts the pan.
			if v.Pan.X != 11 || v.Pan.Y != 22 {
				t.Errorf("ZoomBy(%v) moved pan to %+v", tt.delta, v.Pan)
			}
		})
	}
}

func TestDragPan(t *testing.T) {
	v := NewViewport()
	grab := PanGrab{Screen: Point{X: 100, Y: 100}, Pan: Point{X: 5, Y: 5}}
	v.DragPan(grab, Point{X: 130, Y: 90})
	if !almostEqual(v.Pan.X, 35) || !almostEqual(v.Pan.Y, -5) {
		t.Errorf("DragPan pan = %+v, want {35 -5}", v.Pan)
	}

	// Drag position is derived from the grab, not accumulated, so a
	// repeated event is idempotent.
	v.DragPan(grab, Point{X: 130, Y: 90})
	if !almostEqual(v.Pan.X, 35) || !almostEqual(v.Pan.Y, -5) {
		t.Errorf("repeated DragPan pan = %+v, want {35 -5}", v.Pan)
	}
}

func TestReset(t *testing.T) {
	v := Viewport{Pan: Point{X: 120, Y: -30}, Zoom: 3.7}
	v.Reset()
	if v.Zoom != 1 || v.Pan.X != 0 || v.Pan.Y != 0 {
		t.Errorf("Reset left viewport at %+v", v)
	}
}
