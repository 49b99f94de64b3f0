package models

import (
	"encoding/json"
	"testing"
)

func TestNormalizeFillsNilCollections(t *testing.T) {
	var design Design
	design.Boxes = []Box{{ID: "b1"}}
	design.Normalize()

	if design.Cables == nil || design.Devices == nil {
		t.Fatal("Normalize left nil collections")
	}
	if design.Boxes[0].Components == nil {
		t.Fatal("Normalize left nil components on box")
	}
}

func TestCloneIsDeep(t *testing.T) {
	design := Design{
		Boxes: []Box{
			{
				ID: "b1",
				Components: []Component{
					{ID: "comp-1", Quantity: 2},
				},
			},
		},
		Cables: []Cable{
			{ID: "c1", Points: []Point{{X: 1, Y: 2}}},
		},
		Devices: []Device{{ID: "d1"}},
	}

	clone := design.Clone()
	clone.Boxes[0].Components[0].Quantity = 99
	clone.Cables[0].Points[0].X = 500

	if design.Boxes[0].Components[0].Quantity != 2 {
		t.Error("component mutation leaked into the original")
	}
	if design.Cables[0].Points[0].X != 1 {
		t.Error("cable point mutation leaked into the original")
	}
}

func TestDesignJSONShape(t *testing.T) {
	design := EmptyDesign()
	design.Boxes = append(design.Boxes, Box{
		ID: "b1", X: 30, Y: 50, Width: 140, Height: 100, Name: "Cuadro 1",
		Components: []Component{},
	})

	raw, err := json.Marshal(design)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// The persisted document always carries the three collections.
	for _, key := range []string{"boxes", "cables", "devices"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing %q in persisted design", key)
		}
	}

	box := decoded["boxes"].([]interface{})[0].(map[string]interface{})
	if box["name"] != "Cuadro 1" {
		t.Errorf("box name = %v, want Cuadro 1", box["name"])
	}
	if box["width"].(float64) != 140 {
		t.Errorf("box width = %v, want 140", box["width"])
	}
}
