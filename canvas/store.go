package canvas

import (
	"strconv"

	"electric-plan-tool/models"
	"electric-plan-tool/pricing"
)

// BoxPatch is a partial update applied to a box. Nil fields are untouched.
type BoxPatch struct {
	Name   *string
	Zone   *string
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
}

// CablePatch is a partial update applied to a cable.
type CablePatch struct {
	Model      *string
	Section    *string
	Length     *float64
	TotalPrice *float64
}

// DevicePatch is a partial update applied to a device. Price-relevant
// fields trigger a total recompute through the pricing engine.
type DevicePatch struct {
	Name      *string
	Zone      *string
	Category  *string
	Model     *string
	UnitPrice *float64
	X         *float64
	Y         *float64
}

// LineRef addresses a priced line item: a component inside a box when
// BoxID is set, or a device when it is empty. It exists so discount and
// activation toggles share one code path for both kinds of line.
type LineRef struct {
	BoxID  string
	LineID string
}

// ComponentRef addresses a component line inside a box.
func ComponentRef(boxID, componentID string) LineRef {
	return LineRef{BoxID: boxID, LineID: componentID}
}

// DeviceRef addresses a device line.
func DeviceRef(deviceID string) LineRef {
	return LineRef{LineID: deviceID}
}

// Store holds the in-memory entity collections of the active project. It
// is owned by a single editing session; all access happens on that
// session's event loop, so no locking is done here.
type Store struct {
	boxes   []models.Box
	cables  []models.Cable
	devices []models.Device
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		boxes:   []models.Box{},
		cables:  []models.Cable{},
		devices: []models.Device{},
	}
}

// Replace swaps in a full design document, discarding everything the
// store currently holds. Used when the active project changes.
func (s *Store) Replace(design models.Design) {
	design.Normalize()
	clone := design.Clone()
	s.boxes = clone.Boxes
	s.cables = clone.Cables
	s.devices = clone.Devices
}

// Reset empties all collections.
func (s *Store) Reset() {
	s.Replace(models.EmptyDesign())
}

// Snapshot returns a deep copy of the current design document, safe to
// hand to the persistence bridge while editing continues.
func (s *Store) Snapshot() models.Design {
	return models.Design{Boxes: s.boxes, Cables: s.cables, Devices: s.devices}.Clone()
}

// Boxes returns the box collection in placement order. Callers must treat
// the slice as read-only.
func (s *Store) Boxes() []models.Box { return s.boxes }

// Cables returns the cable collection. Read-only for callers.
func (s *Store) Cables() []models.Cable { return s.cables }

// Devices returns the device collection. Read-only for callers.
func (s *Store) Devices() []models.Device { return s.devices }

// Box looks up a box by id.
func (s *Store) Box(id string) (*models.Box, bool) {
	for i := range s.boxes {
		if s.boxes[i].ID == id {
			return &s.boxes[i], true
		}
	}
	return nil, false
}

// Cable looks up a cable by id.
func (s *Store) Cable(id string) (*models.Cable, bool) {
	for i := range s.cables {
		if s.cables[i].ID == id {
			return &s.cables[i], true
		}
	}
	return nil, false
}

// Device looks up a device by id.
func (s *Store) Device(id string) (*models.Device, bool) {
	for i := range s.devices {
		if s.devices[i].ID == id {
			return &s.devices[i], true
		}
	}
	return nil, false
}

// AddBox appends a box to the collection.
func (s *Store) AddBox(box models.Box) {
	if box.Components == nil {
		box.Components = []models.Component{}
	}
	s.boxes = append(s.boxes, box)
}

// ApplyBoxPatch applies a partial update to a box. Returns false if the
// box does not exist.
func (s *Store) ApplyBoxPatch(id string, patch BoxPatch) bool {
	box, ok := s.Box(id)
	if !ok {
		return false
	}
	if patch.Name != nil {
		box.Name = *patch.Name
	}
	if patch.Zone != nil {
		box.Zone = *patch.Zone
	}
	if patch.X != nil {
		box.X = *patch.X
	}
	if patch.Y != nil {
		box.Y = *patch.Y
	}
	if patch.Width != nil {
		box.Width = *patch.Width
	}
	if patch.Height != nil {
		box.Height = *patch.Height
	}
	return true
}

// DeleteBox removes a box and every cable attached to it, so no cable can
// be left referencing a box that no longer exists.
func (s *Store) DeleteBox(id string) bool {
	found := false
	boxes := s.boxes[:0]
	for _, box := range s.boxes {
		if box.ID == id {
			found = true
			continue
		}
		boxes = append(boxes, box)
	}
	s.boxes = boxes
	if !found {
		return false
	}
	cables := s.cables[:0]
	for _, cable := range s.cables {
		if cable.FromBoxID == id || cable.ToBoxID == id {
			continue
		}
		cables = append(cables, cable)
	}
	s.cables = cables
	return true
}

// AddCable appends a completed cable.
func (s *Store) AddCable(cable models.Cable) {
	if cable.Points == nil {
		cable.Points = []models.Point{}
	}
	s.cables = append(s.cables, cable)
}

// ApplyCablePatch applies a partial update to a cable.
func (s *Store) ApplyCablePatch(id string, patch CablePatch) bool {
	cable, ok := s.Cable(id)
	if !ok {
		return false
	}
	if patch.Model != nil {
		cable.Model = *patch.Model
	}
	if patch.Section != nil {
		cable.Section = *patch.Section
	}
	if patch.Length != nil {
		cable.Length = *patch.Length
	}
	if patch.TotalPrice != nil {
		cable.TotalPrice = *patch.TotalPrice
	}
	return true
}

// DeleteCable removes a cable by id.
func (s *Store) DeleteCable(id string) bool {
	cables := s.cables[:0]
	found := false
	for _, cable := range s.cables {
		if cable.ID == id {
			found = true
			continue
		}
		cables = append(cables, cable)
	}
	s.cables = cables
	return found
}

// AddDevice appends a device, deriving its total first.
func (s *Store) AddDevice(device models.Device) {
	pricing.Recompute(&device.LineItem, 1)
	s.devices = append(s.devices, device)
}

// ApplyDevicePatch applies a partial update to a device and rederives its
// total, so a model or price change can never leave a stale amount.
func (s *Store) ApplyDevicePatch(id string, patch DevicePatch) bool {
	device, ok := s.Device(id)
	if !ok {
		return false
	}
	if patch.Name != nil {
		device.Name = *patch.Name
	}
	if patch.Zone != nil {
		device.Zone = *patch.Zone
	}
	if patch.Category != nil {
		device.Category = *patch.Category
	}
	if patch.Model != nil {
		device.Model = *patch.Model
	}
	if patch.UnitPrice != nil {
		device.UnitPrice = *patch.UnitPrice
	}
	if patch.X != nil {
		device.X = *patch.X
	}
	if patch.Y != nil {
		device.Y = *patch.Y
	}
	pricing.Recompute(&device.LineItem, 1)
	return true
}

// DeleteDevice removes a device by id. Devices are never referenced by
// cables, so there is nothing to cascade.
func (s *Store) DeleteDevice(id string) bool {
	devices := s.devices[:0]
	found := false
	for _, device := range s.devices {
		if device.ID == id {
			found = true
			continue
		}
		devices = append(devices, device)
	}
	s.devices = devices
	return found
}

// AddComponent adds a catalog entry to a box as a component line. When a
// line with the same category and model already exists the quantities are
// merged, the unit price refreshes to the incoming catalog value and the
// existing line's discount state is preserved.
func (s *Store) AddComponent(boxID, componentID string, entry models.CatalogEntry, quantity int) bool {
	box, ok := s.Box(boxID)
	if !ok {
		return false
	}
	for i := range box.Components {
		existing := &box.Components[i]
		if existing.Category == entry.Category && existing.Model == entry.Name {
			existing.Quantity += quantity
			existing.UnitPrice = entry.Price
			pricing.Recompute(&existing.LineItem, existing.Quantity)
			return true
		}
	}
	component := models.Component{
		ID: componentID,
		LineItem: models.LineItem{
			Category:      entry.Category,
			Model:         entry.Name,
			UnitPrice:     entry.Price,
			ProductActive: true,
		},
		Quantity:        quantity,
		DiscountPercent: entry.DiscountPercent,
	}
	pricing.Recompute(&component.LineItem, component.Quantity)
	box.Components = append(box.Components, component)
	return true
}

// RemoveComponent deletes a component line from a box.
func (s *Store) RemoveComponent(boxID, componentID string) bool {
	box, ok := s.Box(boxID)
	if !ok {
		return false
	}
	components := box.Components[:0]
	found := false
	for _, component := range box.Components {
		if component.ID == componentID {
			found = true
			continue
		}
		components = append(components, component)
	}
	box.Components = components
	return found
}

// line resolves a LineRef to the underlying line item and its quantity.
func (s *Store) line(ref LineRef) (*models.LineItem, int, bool) {
	if ref.BoxID == "" {
		device, ok := s.Device(ref.LineID)
		if !ok {
			return nil, 0, false
		}
		return &device.LineItem, 1, true
	}
	box, ok := s.Box(ref.BoxID)
	if !ok {
		return nil, 0, false
	}
	for i := range box.Components {
		if box.Components[i].ID == ref.LineID {
			return &box.Components[i].LineItem, box.Components[i].Quantity, true
		}
	}
	return nil, 0, false
}

// SetLineDiscountApplied toggles the customer discount on a line.
func (s *Store) SetLineDiscountApplied(ref LineRef, applied bool) bool {
	line, quantity, ok := s.line(ref)
	if !ok {
		return false
	}
	pricing.SetDiscountApplied(line, quantity, applied)
	return true
}

// SetLineActive toggles a line's activation.
func (s *Store) SetLineActive(ref LineRef, active bool) bool {
	line, quantity, ok := s.line(ref)
	if !ok {
		return false
	}
	pricing.SetActive(line, quantity, active)
	return true
}

// SetLineCustomerDiscount updates the customer discount percent on a line.
func (s *Store) SetLineCustomerDiscount(ref LineRef, percent float64) bool {
	line, quantity, ok := s.line(ref)
	if !ok {
		return false
	}
	pricing.SetCustomerDiscount(line, quantity, percent)
	return true
}

// SetComponentQuantity changes a component's quantity and rederives its
// total.
func (s *Store) SetComponentQuantity(boxID, componentID string, quantity int) bool {
	box, ok := s.Box(boxID)
	if !ok {
		return false
	}
	for i := range box.Components {
		if box.Components[i].ID == componentID {
			box.Components[i].Quantity = quantity
			pricing.Recompute(&box.Components[i].LineItem, quantity)
			return true
		}
	}
	return false
}

// NextBoxName returns the default name for a newly placed box.
func (s *Store) NextBoxName() string {
	return "Cuadro " + strconv.Itoa(len(s.boxes)+1)
}

// NextDeviceName returns the default name for a newly placed device.
func (s *Store) NextDeviceName() string {
	return "Cámara " + strconv.Itoa(len(s.devices)+1)
}
