package canvas

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electric-plan-tool/geometry"
	"electric-plan-tool/models"
)

func newTestSession(t *testing.T) (*Session, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	session := NewSessionWithDelay(store, Hooks{}, 10*time.Millisecond)
	session.OpenProject(context.Background(), "p1")
	return session, store
}

func TestPlaceBoxCenteredOnClick(t *testing.T) {
	session, _ := newTestSession(t)

	opened := ""
	session.hooks.OpenBoxEditor = func(boxID string) { opened = boxID }

	session.SetMode(ModeAddBox)
	session.CanvasClick(geometry.Point{X: 100, Y: 100})

	boxes := session.Store().Boxes()
	require.Len(t, boxes, 1)
	box := boxes[0]

	// Default medium size, centered on the click point.
	assert.Equal(t, 30.0, box.X)
	assert.Equal(t, 50.0, box.Y)
	assert.Equal(t, 140.0, box.Width)
	assert.Equal(t, 100.0, box.Height)
	assert.Equal(t, "Cuadro 1", box.Name)
	assert.NotEmpty(t, box.ID)

	assert.Equal(t, box.ID, opened)
	assert.Equal(t, box.ID, session.SelectedBoxID())
}

func TestPlaceDeviceAtClickPoint(t *testing.T) {
	session, _ := newTestSession(t)
	session.SetMode(ModeAddDevice)
	session.CanvasClick(geometry.Point{X: 42, Y: 17})

	devices := session.Store().Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, 42.0, devices[0].X)
	assert.Equal(t, 17.0, devices[0].Y)
	assert.Equal(t, "Cámara 1", devices[0].Name)
	assert.True(t, devices[0].ProductActive)
	assert.Equal(t, devices[0].ID, session.SelectedDeviceID())
}

func TestPlacementHonorsViewportTransform(t *testing.T) {
	session, _ := newTestSession(t)
	session.SetStageOrigin(func() geometry.Point { return geometry.Point{X: 10, Y: 10} })

	// Pan by dragging with the modifier held.
	session.PointerDown(geometry.Point{X: 0, Y: 0}, true)
	session.PointerMove(geometry.Point{X: 20, Y: 30})
	session.PointerUp()

	session.SetMode(ModeAddDevice)
	session.CanvasClick(geometry.Point{X: 130, Y: 140})

	devices := session.Store().Devices()
	require.Len(t, devices, 1)
	// world = screen - origin - pan at zoom 1
	assert.Equal(t, 100.0, devices[0].X)
	assert.Equal(t, 100.0, devices[0].Y)
}

func TestCableDraftRejectsSelfLoop(t *testing.T) {
	session, _ := newTestSession(t)
	session.Store().AddBox(models.Box{ID: "b1", X: 0, Y: 0, Width: 100, Height: 100})
	session.Store().AddBox(models.Box{ID: "b2", X: 300, Y: 0, Width: 100, Height: 100})

	var completed *models.Cable
	session.hooks.OpenCableEditor = func(cable models.Cable) { completed = &cable }

	session.SetMode(ModeAddCable)
	session.BoxPointerDown(geometry.Point{X: 50, Y: 50}, "b1")
	require.NotNil(t, session.DraftCable())

	// Clicking the origin box again must neither complete nor discard
	// the draft.
	session.BoxPointerDown(geometry.Point{X: 50, Y: 50}, "b1")
	assert.Empty(t, session.Store().Cables())
	require.NotNil(t, session.DraftCable())

	// A waypoint on empty canvas, then completion on the second box.
	session.CanvasClick(geometry.Point{X: 200, Y: 150})
	session.BoxPointerDown(geometry.Point{X: 350, Y: 50}, "b2")

	cables := session.Store().Cables()
	require.Len(t, cables, 1)
	assert.Equal(t, "b1", cables[0].FromBoxID)
	assert.Equal(t, "b2", cables[0].ToBoxID)
	require.Len(t, cables[0].Points, 1)
	assert.Equal(t, 200.0, cables[0].Points[0].X)

	assert.Nil(t, session.DraftCable())
	require.NotNil(t, completed)
	assert.Equal(t, cables[0].ID, completed.ID)
}

func TestDragBoxPreservesGrabOffset(t *testing.T) {
	session, _ := newTestSession(t)
	session.Store().AddBox(models.Box{ID: "b1", X: 100, Y: 100, Width: 140, Height: 100})

	// Grab 20,10 inside the box and move the pointer 50 right, 25 down.
	session.BoxPointerDown(geometry.Point{X: 120, Y: 110}, "b1")
	session.PointerMove(geometry.Point{X: 170, Y: 135})

	box, ok := session.Store().Box("b1")
	require.True(t, ok)
	assert.Equal(t, 150.0, box.X)
	assert.Equal(t, 125.0, box.Y)

	session.PointerUp()

	// After release, moves no longer affect the box.
	session.PointerMove(geometry.Point{X: 500, Y: 500})
	box, _ = session.Store().Box("b1")
	assert.Equal(t, 150.0, box.X)
}

func TestUpdateValidation(t *testing.T) {
	session, _ := newTestSession(t)
	session.Store().AddBox(models.Box{ID: "b1", Name: "Cuadro 1"})
	session.Store().AddCable(models.Cable{ID: "c1", FromBoxID: "b1", ToBoxID: "b1", Model: "H07V-K"})

	empty := "  "
	assert.Error(t, session.UpdateBox("b1", BoxPatch{Name: &empty}))

	zero := 0.0
	assert.Error(t, session.UpdateCable("c1", CablePatch{Length: &zero}))

	length := 12.5
	require.NoError(t, session.UpdateCable("c1", CablePatch{Length: &length}))
	cable, _ := session.Store().Cable("c1")
	assert.Equal(t, 12.5, cable.Length)

	assert.Error(t, session.UpdateBox("missing", BoxPatch{}))
	assert.Error(t, session.AddComponent("b1", models.CatalogEntry{Category: "PLC", Name: "S7-1200", Price: 450}, 0))
}

func TestEditSessionEndToEnd(t *testing.T) {
	session, store := newTestSession(t)

	session.SetMode(ModeAddBox)
	session.CanvasClick(geometry.Point{X: 100, Y: 100})
	boxID := session.Store().Boxes()[0].ID

	entry := models.CatalogEntry{Category: "PLC", Name: "S7-1200", Price: 450}
	require.NoError(t, session.AddComponent(boxID, entry, 2))

	totals := session.Totals()
	assert.InDelta(t, 900, totals.Boxes, 1e-9)
	assert.InDelta(t, 900, totals.Total, 1e-9)

	componentID := session.Store().Boxes()[0].Components[0].ID
	session.SetLineCustomerDiscount(ComponentRef(boxID, componentID), 10)

	totals = session.Totals()
	assert.InDelta(t, 810, totals.Total, 1e-9)

	// Flush instead of waiting out the debounce window.
	session.Flush()

	design, err := store.Load(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, design.Boxes, 1)
	require.Len(t, design.Boxes[0].Components, 1)
	saved := design.Boxes[0].Components[0]
	assert.Equal(t, 2, saved.Quantity)
	assert.True(t, saved.DiscountApplied)
	assert.InDelta(t, 810, saved.Total, 1e-9)
}

func TestOpenProjectFailsOpenToEmptyDesign(t *testing.T) {
	failing := &failingStore{}
	session := NewSessionWithDelay(failing, Hooks{}, 10*time.Millisecond)

	session.Store().AddBox(models.Box{ID: "stale"})
	session.OpenProject(context.Background(), "p1")

	// The load failed but the session is editable with a blank design.
	assert.Empty(t, session.Store().Boxes())
	assert.Equal(t, "p1", session.ProjectID())

	session.SetMode(ModeAddBox)
	session.CanvasClick(geometry.Point{X: 10, Y: 10})
	assert.Len(t, session.Store().Boxes(), 1)
}

func TestTooltipShowsBoxSummary(t *testing.T) {
	session, _ := newTestSession(t)
	session.SetStageOrigin(func() geometry.Point { return geometry.Point{X: 5, Y: 5} })
	session.Store().AddBox(models.Box{ID: "b1", Name: "Cuadro 1", Zone: "Nave A", Width: 140, Height: 100})
	entry := models.CatalogEntry{Category: "PLC", Name: "S7-1200", Price: 450}
	session.Store().AddComponent("b1", "comp-1", entry, 2)

	session.BoxPointerMove(geometry.Point{X: 55, Y: 65}, "b1")

	tooltip := session.Tooltip()
	require.NotNil(t, tooltip)
	assert.Equal(t, 50.0, tooltip.X)
	assert.Equal(t, 60.0, tooltip.Y)
	assert.Equal(t, "Cuadro 1", tooltip.Name)
	assert.Equal(t, "Nave A", tooltip.Zone)
	assert.Equal(t, 1, tooltip.ComponentCount)
	assert.InDelta(t, 900, tooltip.Total, 1e-9)

	session.BoxPointerLeave()
	assert.Nil(t, session.Tooltip())
}

func TestCablePolyline(t *testing.T) {
	session, _ := newTestSession(t)
	session.Store().AddBox(models.Box{ID: "b1", X: 0, Y: 0, Width: 100, Height: 100})
	session.Store().AddBox(models.Box{ID: "b2", X: 200, Y: 0, Width: 100, Height: 100})

	cable := models.Cable{
		ID: "c1", FromBoxID: "b1", ToBoxID: "b2",
		Points: []models.Point{{X: 150, Y: 120}},
	}
	session.Store().AddCable(cable)

	points := session.CablePolyline(cable)
	require.Len(t, points, 3)
	assert.Equal(t, geometry.Point{X: 50, Y: 50}, points[0])
	assert.Equal(t, geometry.Point{X: 150, Y: 120}, points[1])
	assert.Equal(t, geometry.Point{X: 250, Y: 50}, points[2])

	label, ok := session.CableLabelPosition(cable)
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 200, Y: 85}, label)

	// A dangling endpoint yields no polyline.
	dangling := models.Cable{ID: "c2", FromBoxID: "b1", ToBoxID: "missing"}
	assert.Nil(t, session.CablePolyline(dangling))
	_, ok = session.CableLabelPosition(dangling)
	assert.False(t, ok)
}

// failingStore always errors on Load.
type failingStore struct{}

func (f *failingStore) Load(ctx context.Context, projectID string) (models.Design, error) {
	return models.Design{}, fmt.Errorf("backend unreachable")
}

func (f *failingStore) Save(ctx context.Context, projectID string, design models.Design) error {
	return nil
}
