package canvas

import (
	"electric-plan-tool/geometry"
	"electric-plan-tool/models"
)

// BoxCenter is the anchor point cables attach to.
func BoxCenter(box models.Box) geometry.Point {
	return geometry.Point{X: box.X + box.Width/2, Y: box.Y + box.Height/2}
}

// CablePolyline returns the world-space vertices of a cable: the origin
// box center, the waypoints in order, then the destination box center.
// If either endpoint box no longer exists it returns nil.
func (s *Session) CablePolyline(cable models.Cable) []geometry.Point {
	from, ok := s.store.Box(cable.FromBoxID)
	if !ok {
		return nil
	}
	to, ok := s.store.Box(cable.ToBoxID)
	if !ok {
		return nil
	}
	points := make([]geometry.Point, 0, len(cable.Points)+2)
	points = append(points, BoxCenter(*from))
	points = append(points, cable.Points...)
	points = append(points, BoxCenter(*to))
	return points
}

// CableLabelPosition returns the point where a cable's label is drawn:
// the midpoint of the polyline's middle segment. ok is false when the
// polyline cannot be built.
func (s *Session) CableLabelPosition(cable models.Cable) (geometry.Point, bool) {
	points := s.CablePolyline(cable)
	if len(points) < 2 {
		return geometry.Point{}, false
	}
	mid := (len(points) - 1) / 2
	a, b := points[mid], points[mid+1]
	return geometry.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}, true
}

// DraftPolyline returns the vertices of the in-progress cable preview:
// the origin box center, the placed waypoints, then the live cursor
// position. Nil when no draft is active.
func (s *Session) DraftPolyline() []geometry.Point {
	if s.draftCable == nil {
		return nil
	}
	from, ok := s.store.Box(s.draftCable.FromBoxID)
	if !ok {
		return nil
	}
	points := make([]geometry.Point, 0, len(s.draftCable.Points)+2)
	points = append(points, BoxCenter(*from))
	points = append(points, s.draftCable.Points...)
	if s.draftCursor != nil {
		points = append(points, *s.draftCursor)
	}
	return points
}
