package models

import "electric-plan-tool/geometry"

// Point is a position in world (canvas) coordinates.
type Point = geometry.Point

// LineItem holds the pricing fields shared by box components and placed
// devices. Anything priced by the pricing engine carries one of these;
// Total is a derived field and is only ever written by the engine.
type LineItem struct {
	Category                string  `json:"category"`
	Model                   string  `json:"model"`
	UnitPrice               float64 `json:"unitPrice"`
	CustomerDiscountPercent float64 `json:"customerDiscountPercent"`
	DiscountApplied         bool    `json:"discountApplied"`
	ProductActive           bool    `json:"productActive"`
	Total                   float64 `json:"total"`
}

// Component is a priced line item inside a box. DiscountPercent is the
// catalog-level discount copied from the product at add time; the customer
// discount lives on the embedded LineItem.
type Component struct {
	ID string `json:"id"`
	LineItem
	Quantity        int     `json:"quantity"`
	DiscountPercent float64 `json:"discountPercent"`
}

// Box is a placed electrical enclosure owning its components.
type Box struct {
	ID         string      `json:"id"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Name       string      `json:"name"`
	Zone       string      `json:"zone,omitempty"`
	Components []Component `json:"components"`
}

// Device is a placed point entity (e.g. a camera) that is itself a single
// priced line item with an implicit quantity of 1.
type Device struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
	Zone string  `json:"zone,omitempty"`
	LineItem
}

// Cable connects two boxes by id. Points are the intermediate waypoints
// collected while drawing; the endpoints are derived from the connected
// boxes' centers at render time and are not stored.
type Cable struct {
	ID         string  `json:"id"`
	FromBoxID  string  `json:"fromBoxId"`
	ToBoxID    string  `json:"toBoxId"`
	Points     []Point `json:"points"`
	Model      string  `json:"model"`
	Section    string  `json:"section"`
	Length     float64 `json:"length"`
	TotalPrice float64 `json:"totalPrice"`
}

// Design is the serialized snapshot of a project's canvas, stored as a
// single document and round-tripped losslessly through the entity store.
type Design struct {
	Boxes   []Box    `json:"boxes"`
	Cables  []Cable  `json:"cables"`
	Devices []Device `json:"devices"`
}

// EmptyDesign returns a design with all collections present but empty.
func EmptyDesign() Design {
	return Design{Boxes: []Box{}, Cables: []Cable{}, Devices: []Device{}}
}

// Normalize replaces nil collections with empty ones so a partially stored
// document always deserializes to a usable design.
func (d *Design) Normalize() {
	if d.Boxes == nil {
		d.Boxes = []Box{}
	}
	if d.Cables == nil {
		d.Cables = []Cable{}
	}
	if d.Devices == nil {
		d.Devices = []Device{}
	}
	for i := range d.Boxes {
		if d.Boxes[i].Components == nil {
			d.Boxes[i].Components = []Component{}
		}
	}
	for i := range d.Cables {
		if d.Cables[i].Points == nil {
			d.Cables[i].Points = []Point{}
		}
	}
}

// Clone returns a deep copy of the design.
func (d Design) Clone() Design {
	out := Design{
		Boxes:   make([]Box, len(d.Boxes)),
		Cables:  make([]Cable, len(d.Cables)),
		Devices: make([]Device, len(d.Devices)),
	}
	for i, box := range d.Boxes {
		components := make([]Component, len(box.Components))
		copy(components, box.Components)
		box.Components = components
		out.Boxes[i] = box
	}
	for i, cable := range d.Cables {
		points := make([]Point, len(cable.Points))
		copy(points, cable.Points)
		cable.Points = points
		out.Cables[i] = cable
	}
	copy(out.Devices, d.Devices)
	return out
}
