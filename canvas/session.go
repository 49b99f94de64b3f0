package canvas

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"electric-plan-tool/geometry"
	"electric-plan-tool/models"
	"electric-plan-tool/pricing"
)

// Mode is the active tool of the editor. Exactly one mode is active at a
// time; it is selected externally (toolbar).
type Mode string

// Tool modes
const (
	ModeSelect    Mode = "select"
	ModeAddBox    Mode = "addBox"
	ModeAddCable  Mode = "addCable"
	ModeAddDevice Mode = "addDevice"
)

// Size is a box footprint in world units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Preset box sizes offered by the size dialog.
var (
	SizeSmall  = Size{Width: 80, Height: 60}
	SizeMedium = Size{Width: 140, Height: 100}
	SizeLarge  = Size{Width: 200, Height: 140}
)

// Hooks are the side effects the session signals to its host: opening the
// editor dialogs for a just-placed or just-completed entity. Nil hooks
// are skipped.
type Hooks struct {
	OpenBoxEditor    func(boxID string)
	OpenCableEditor  func(cable models.Cable)
	OpenDeviceEditor func(deviceID string)
}

// Tooltip is the hover summary shown over a box in select mode. X and Y
// are stage-relative screen coordinates near the cursor.
type Tooltip struct {
	X              float64
	Y              float64
	BoxID          string
	Name           string
	Zone           string
	ComponentCount int
	Total          float64
	Width          float64
	Height         float64
}

// Totals is the live budget breakdown shown in the toolbar.
type Totals struct {
	Boxes   float64 `json:"boxes"`
	Devices float64 `json:"devices"`
	Cables  float64 `json:"cables"`
	Total   float64 `json:"total"`
}

type dragState struct {
	id     string
	offset geometry.Point
}

// Session owns one editing session: the entity store for the active
// project, the viewport, the current tool mode and all transient pointer
// state, plus the debounced persistence bridge. All event methods must be
// called from a single goroutine (the UI event loop); the only concurrent
// actors are the saver's timer and the initial design fetch, both of
// which work on captured copies.
type Session struct {
	store   *Store
	designs DesignStore
	saver   *Saver
	hooks   Hooks

	viewport geometry.Viewport
	origin   func() geometry.Point

	mode      Mode
	boxSize   Size
	projectID string

	selectedBoxID    string
	selectedDeviceID string
	dragBox          *dragState
	dragDevice       *dragState
	draftCable       *models.Cable
	draftCursor      *geometry.Point
	panning          bool
	panGrab          geometry.PanGrab
	tooltip          *Tooltip
}

// NewSession creates a session persisting through the given design store.
func NewSession(designs DesignStore, hooks Hooks) *Session {
	return NewSessionWithDelay(designs, hooks, DefaultSaveDelay)
}

// NewSessionWithDelay creates a session with a custom debounce delay for
// design writes.
func NewSessionWithDelay(designs DesignStore, hooks Hooks, delay time.Duration) *Session {
	return &Session{
		store:    NewStore(),
		designs:  designs,
		saver:    NewSaver(designs, delay),
		hooks:    hooks,
		viewport: geometry.NewViewport(),
		origin:   func() geometry.Point { return geometry.Point{} },
		mode:     ModeSelect,
		boxSize:  SizeMedium,
	}
}

// SetStageOrigin injects the provider for the canvas element's top-left
// corner in screen space. It is queried at event time because the element
// may move or resize.
func (s *Session) SetStageOrigin(origin func() geometry.Point) {
	if origin != nil {
		s.origin = origin
	}
}

// SetMode switches the active tool.
func (s *Session) SetMode(mode Mode) { s.mode = mode }

// Mode returns the active tool.
func (s *Session) Mode() Mode { return s.mode }

// SetBoxSize sets the footprint used for subsequently placed boxes.
// Non-positive dimensions keep the current value.
func (s *Session) SetBoxSize(size Size) {
	if size.Width > 0 {
		s.boxSize.Width = size.Width
	}
	if size.Height > 0 {
		s.boxSize.Height = size.Height
	}
}

// BoxSize returns the configured placement footprint.
func (s *Session) BoxSize() Size { return s.boxSize }

// OpenProject makes a project the active one: the pending write for the
// previous project is dropped and all collections are replaced by the
// stored design. A fetch or decode failure fails open to an empty design
// so editing can always continue.
func (s *Session) OpenProject(ctx context.Context, projectID string) {
	s.saver.Cancel()
	s.projectID = projectID
	s.clearTransient()
	s.selectedBoxID = ""
	s.selectedDeviceID = ""

	design, err := s.designs.Load(ctx, projectID)
	if err != nil {
		log.Printf("⚠️ Session: failed to load design for project %s, starting empty: %v", projectID, err)
		s.store.Reset()
		return
	}
	s.store.Replace(design)
}

// ProjectID returns the active project id, empty if none is open.
func (s *Session) ProjectID() string { return s.projectID }

// Flush forces any pending design write immediately.
func (s *Session) Flush() { s.saver.Flush() }

// changed schedules a debounced design write after any entity mutation.
func (s *Session) changed() {
	if s.projectID == "" {
		return
	}
	s.saver.Schedule(s.projectID, s.store.Snapshot())
}

func (s *Session) clearTransient() {
	s.dragBox = nil
	s.dragDevice = nil
	s.draftCable = nil
	s.draftCursor = nil
	s.panning = false
	s.tooltip = nil
}

func (s *Session) toWorld(screen geometry.Point) geometry.Point {
	return s.viewport.ToWorld(screen, s.origin())
}

// --- pointer events -----------------------------------------------------

// CanvasClick handles a click on empty canvas. Depending on the mode it
// places a box or device, appends a cable waypoint, or clears the
// selection. Clicks arriving mid-pan or mid-drag are ignored.
func (s *Session) CanvasClick(screen geometry.Point) {
	if s.panning || s.dragBox != nil || s.dragDevice != nil {
		return
	}
	switch s.mode {
	case ModeAddBox:
		point := s.toWorld(screen)
		box := models.Box{
			ID:         uuid.NewString(),
			X:          point.X - s.boxSize.Width/2,
			Y:          point.Y - s.boxSize.Height/2,
			Width:      s.boxSize.Width,
			Height:     s.boxSize.Height,
			Name:       s.store.NextBoxName(),
			Components: []models.Component{},
		}
		s.store.AddBox(box)
		s.selectedBoxID = box.ID
		s.selectedDeviceID = ""
		if s.hooks.OpenBoxEditor != nil {
			s.hooks.OpenBoxEditor(box.ID)
		}
		s.changed()
	case ModeAddDevice:
		point := s.toWorld(screen)
		device := models.Device{
			ID:   uuid.NewString(),
			X:    point.X,
			Y:    point.Y,
			Name: s.store.NextDeviceName(),
			LineItem: models.LineItem{
				ProductActive: true,
			},
		}
		s.store.AddDevice(device)
		s.selectedDeviceID = device.ID
		s.selectedBoxID = ""
		if s.hooks.OpenDeviceEditor != nil {
			s.hooks.OpenDeviceEditor(device.ID)
		}
		s.changed()
	case ModeAddCable:
		// A cable must start on a box; empty-canvas clicks only add
		// waypoints to an already started draft.
		if s.draftCable != nil {
			point := s.toWorld(screen)
			s.draftCable.Points = append(s.draftCable.Points, point)
		}
	default:
		s.selectedBoxID = ""
		s.selectedDeviceID = ""
	}
}

// Wheel applies cursor-anchored zoom. Positive deltaY (scroll down) zooms
// out.
func (s *Session) Wheel(screen geometry.Point, deltaY float64) {
	s.viewport.WheelZoom(screen, s.origin(), deltaY)
}

// PointerDown starts panning when the pan modifier is held; otherwise it
// is a no-op (placement happens on CanvasClick, drags start on the entity
// handlers).
func (s *Session) PointerDown(screen geometry.Point, panModifier bool) {
	if !panModifier {
		return
	}
	s.panning = true
	s.panGrab = geometry.PanGrab{Screen: screen, Pan: s.viewport.Pan}
}

// PointerMove updates whichever transient interaction is live: the pan,
// the draft cable's preview cursor, or a box/device drag. Drags preserve
// the grab offset so the entity moves rigidly under the pointer.
func (s *Session) PointerMove(screen geometry.Point) {
	if s.panning {
		s.viewport.DragPan(s.panGrab, screen)
		return
	}
	if s.draftCable != nil {
		point := s.toWorld(screen)
		s.draftCursor = &point
	}
	if s.dragBox != nil {
		point := s.toWorld(screen)
		x := point.X - s.dragBox.offset.X
		y := point.Y - s.dragBox.offset.Y
		if s.store.ApplyBoxPatch(s.dragBox.id, BoxPatch{X: &x, Y: &y}) {
			s.changed()
		}
		return
	}
	if s.dragDevice != nil {
		point := s.toWorld(screen)
		x := point.X - s.dragDevice.offset.X
		y := point.Y - s.dragDevice.offset.Y
		if s.store.ApplyDevicePatch(s.dragDevice.id, DevicePatch{X: &x, Y: &y}) {
			s.changed()
		}
	}
}

// PointerUp ends panning and any drag. Safe to call when nothing is
// active.
func (s *Session) PointerUp() {
	s.panning = false
	s.dragBox = nil
	s.dragDevice = nil
}

// BoxPointerDown handles pointer-down on a box: in cable mode it starts
// or completes a cable draft; in select mode it selects the box and
// begins a drag anchored at the grab offset.
func (s *Session) BoxPointerDown(screen geometry.Point, boxID string) {
	box, ok := s.store.Box(boxID)
	if !ok {
		return
	}
	switch s.mode {
	case ModeAddCable:
		if s.draftCable == nil {
			s.draftCable = &models.Cable{
				ID:        uuid.NewString(),
				FromBoxID: boxID,
				Points:    []models.Point{},
			}
			return
		}
		if s.draftCable.FromBoxID == boxID {
			// Self-loops are rejected; the draft stays pending.
			return
		}
		completed := *s.draftCable
		completed.ToBoxID = boxID
		s.draftCable = nil
		s.draftCursor = nil
		s.store.AddCable(completed)
		s.selectedBoxID = ""
		s.selectedDeviceID = ""
		if s.hooks.OpenCableEditor != nil {
			s.hooks.OpenCableEditor(completed)
		}
		s.changed()
	case ModeSelect:
		s.selectedBoxID = boxID
		s.selectedDeviceID = ""
		point := s.toWorld(screen)
		s.dragBox = &dragState{
			id:     boxID,
			offset: geometry.Point{X: point.X - box.X, Y: point.Y - box.Y},
		}
	}
}

// BoxDoubleClick opens the box editor for the clicked box (select mode
// only).
func (s *Session) BoxDoubleClick(boxID string) {
	if s.mode != ModeSelect {
		return
	}
	if _, ok := s.store.Box(boxID); !ok {
		return
	}
	s.selectedBoxID = boxID
	if s.hooks.OpenBoxEditor != nil {
		s.hooks.OpenBoxEditor(boxID)
	}
}

// DevicePointerDown selects a device and begins dragging it (select mode
// only; devices are never cable endpoints).
func (s *Session) DevicePointerDown(screen geometry.Point, deviceID string) {
	if s.mode != ModeSelect {
		return
	}
	device, ok := s.store.Device(deviceID)
	if !ok {
		return
	}
	s.selectedDeviceID = deviceID
	s.selectedBoxID = ""
	point := s.toWorld(screen)
	s.dragDevice = &dragState{
		id:     deviceID,
		offset: geometry.Point{X: point.X - device.X, Y: point.Y - device.Y},
	}
}

// DeviceDoubleClick opens the device editor (select mode only).
func (s *Session) DeviceDoubleClick(deviceID string) {
	if s.mode != ModeSelect {
		return
	}
	if _, ok := s.store.Device(deviceID); !ok {
		return
	}
	s.selectedDeviceID = deviceID
	if s.hooks.OpenDeviceEditor != nil {
		s.hooks.OpenDeviceEditor(deviceID)
	}
}

// BoxPointerMove refreshes the hover tooltip for a box. Suppressed while
// dragging or panning.
func (s *Session) BoxPointerMove(screen geometry.Point, boxID string) {
	if s.dragBox != nil || s.dragDevice != nil || s.panning {
		return
	}
	box, ok := s.store.Box(boxID)
	if !ok {
		return
	}
	origin := s.origin()
	s.tooltip = &Tooltip{
		X:              screen.X - origin.X,
		Y:              screen.Y - origin.Y,
		BoxID:          box.ID,
		Name:           box.Name,
		Zone:           box.Zone,
		ComponentCount: len(box.Components),
		Total:          pricing.BoxTotal(*box),
		Width:          box.Width,
		Height:         box.Height,
	}
}

// BoxPointerLeave clears the hover tooltip.
func (s *Session) BoxPointerLeave() { s.tooltip = nil }

// ZoomButton applies a toolbar zoom step (±0.1) around the canvas origin.
func (s *Session) ZoomButton(delta float64) { s.viewport.ZoomBy(delta) }

// ResetView restores zoom 1 and a zero pan.
func (s *Session) ResetView() { s.viewport.Reset() }

// --- entity mutations ---------------------------------------------------

// UpdateBox applies an editor patch to a box. An empty name is refused.
func (s *Session) UpdateBox(boxID string, patch BoxPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("box name cannot be empty")
	}
	if !s.store.ApplyBoxPatch(boxID, patch) {
		return fmt.Errorf("box not found")
	}
	s.changed()
	return nil
}

// DeleteBox removes a box, cascading to its cables, and clears its
// selection.
func (s *Session) DeleteBox(boxID string) {
	if !s.store.DeleteBox(boxID) {
		return
	}
	if s.selectedBoxID == boxID {
		s.selectedBoxID = ""
	}
	s.changed()
}

// UpdateCable applies an editor patch to a cable. A non-positive length
// is refused.
func (s *Session) UpdateCable(cableID string, patch CablePatch) error {
	if patch.Model != nil && strings.TrimSpace(*patch.Model) == "" {
		return fmt.Errorf("cable model cannot be empty")
	}
	if patch.Length != nil && *patch.Length <= 0 {
		return fmt.Errorf("cable length must be greater than 0")
	}
	if patch.TotalPrice != nil && *patch.TotalPrice < 0 {
		return fmt.Errorf("cable price cannot be negative")
	}
	if !s.store.ApplyCablePatch(cableID, patch) {
		return fmt.Errorf("cable not found")
	}
	s.changed()
	return nil
}

// DeleteCable removes a cable by id.
func (s *Session) DeleteCable(cableID string) {
	if s.store.DeleteCable(cableID) {
		s.changed()
	}
}

// UpdateDevice applies an editor patch to a device.
func (s *Session) UpdateDevice(deviceID string, patch DevicePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("device name cannot be empty")
	}
	if !s.store.ApplyDevicePatch(deviceID, patch) {
		return fmt.Errorf("device not found")
	}
	s.changed()
	return nil
}

// DeleteDevice removes a device by id and clears its selection.
func (s *Session) DeleteDevice(deviceID string) {
	if !s.store.DeleteDevice(deviceID) {
		return
	}
	if s.selectedDeviceID == deviceID {
		s.selectedDeviceID = ""
	}
	s.changed()
}

// AddComponent adds a catalog entry to a box with the given quantity,
// merging with an existing line of the same category and model.
func (s *Session) AddComponent(boxID string, entry models.CatalogEntry, quantity int) error {
	if strings.TrimSpace(entry.Category) == "" {
		return fmt.Errorf("component category cannot be empty")
	}
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("component model cannot be empty")
	}
	if quantity <= 0 {
		return fmt.Errorf("component quantity must be greater than 0")
	}
	if !s.store.AddComponent(boxID, uuid.NewString(), entry, quantity) {
		return fmt.Errorf("box not found")
	}
	s.changed()
	return nil
}

// RemoveComponent deletes a component line from a box.
func (s *Session) RemoveComponent(boxID, componentID string) {
	if s.store.RemoveComponent(boxID, componentID) {
		s.changed()
	}
}

// SetComponentQuantity changes a component's quantity. Non-positive
// quantities are refused.
func (s *Session) SetComponentQuantity(boxID, componentID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("component quantity must be greater than 0")
	}
	if !s.store.SetComponentQuantity(boxID, componentID, quantity) {
		return fmt.Errorf("component not found")
	}
	s.changed()
	return nil
}

// SetLineDiscountApplied toggles the customer discount on a component or
// device line.
func (s *Session) SetLineDiscountApplied(ref LineRef, applied bool) {
	if s.store.SetLineDiscountApplied(ref, applied) {
		s.changed()
	}
}

// SetLineActive toggles a line's activation.
func (s *Session) SetLineActive(ref LineRef, active bool) {
	if s.store.SetLineActive(ref, active) {
		s.changed()
	}
}

// SetLineCustomerDiscount updates the customer discount percent on a
// line.
func (s *Session) SetLineCustomerDiscount(ref LineRef, percent float64) {
	if s.store.SetLineCustomerDiscount(ref, percent) {
		s.changed()
	}
}

// --- exposed state ------------------------------------------------------

// Store exposes the entity store for read access by the rendering layer.
func (s *Session) Store() *Store { return s.store }

// Pan returns the current pan offset.
func (s *Session) Pan() geometry.Point { return s.viewport.Pan }

// Zoom returns the current zoom factor.
func (s *Session) Zoom() float64 { return s.viewport.Zoom }

// SelectedBoxID returns the selected box id, empty if none.
func (s *Session) SelectedBoxID() string { return s.selectedBoxID }

// SelectedDeviceID returns the selected device id, empty if none.
func (s *Session) SelectedDeviceID() string { return s.selectedDeviceID }

// DraftCable returns a copy of the in-progress cable draft, or nil.
func (s *Session) DraftCable() *models.Cable {
	if s.draftCable == nil {
		return nil
	}
	draft := *s.draftCable
	draft.Points = append([]models.Point{}, s.draftCable.Points...)
	return &draft
}

// Tooltip returns the current hover tooltip, or nil.
func (s *Session) Tooltip() *Tooltip {
	if s.tooltip == nil {
		return nil
	}
	tooltip := *s.tooltip
	return &tooltip
}

// Totals returns the live budget breakdown for the toolbar.
func (s *Session) Totals() Totals {
	boxes := pricing.BoxesTotal(s.store.Boxes())
	devices := pricing.DevicesTotal(s.store.Devices())
	cables := pricing.CablesTotal(s.store.Cables())
	return Totals{
		Boxes:   boxes,
		Devices: devices,
		Cables:  cables,
		Total:   boxes + devices + cables,
	}
}
