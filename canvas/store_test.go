package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electric-plan-tool/models"
)

func TestDeleteBoxCascadesCables(t *testing.T) {
	store := NewStore()
	store.AddBox(models.Box{ID: "b1", Name: "Cuadro 1"})
	store.AddBox(models.Box{ID: "b2", Name: "Cuadro 2"})
	store.AddBox(models.Box{ID: "b3", Name: "Cuadro 3"})
	store.AddCable(models.Cable{ID: "c1", FromBoxID: "b1", ToBoxID: "b2"})
	store.AddCable(models.Cable{ID: "c2", FromBoxID: "b2", ToBoxID: "b3"})
	store.AddCable(models.Cable{ID: "c3", FromBoxID: "b1", ToBoxID: "b3"})

	require.True(t, store.DeleteBox("b2"))

	assert.Len(t, store.Boxes(), 2)
	require.Len(t, store.Cables(), 1)
	assert.Equal(t, "c3", store.Cables()[0].ID)

	_, ok := store.Box("b2")
	assert.False(t, ok)
}

func TestAddComponentMergesSameCatalogLine(t *testing.T) {
	store := NewStore()
	store.AddBox(models.Box{ID: "b1", Name: "Cuadro 1"})

	rele := models.CatalogEntry{Category: "Relés", Name: "Relé 24V", Price: 12}
	require.True(t, store.AddComponent("b1", "comp-1", rele, 2))

	box, ok := store.Box("b1")
	require.True(t, ok)
	require.Len(t, box.Components, 1)
	assert.Equal(t, 2, box.Components[0].Quantity)
	assert.InDelta(t, 24, box.Components[0].Total, 1e-9)

	// Discount state set in between must survive the merge.
	require.True(t, store.SetLineCustomerDiscount(ComponentRef("b1", "comp-1"), 50))

	// Same category and model with a refreshed catalog price: quantities
	// merge, the unit price updates, no second line appears.
	updated := models.CatalogEntry{Category: "Relés", Name: "Relé 24V", Price: 14}
	require.True(t, store.AddComponent("b1", "comp-2", updated, 3))

	box, _ = store.Box("b1")
	require.Len(t, box.Components, 1)
	merged := box.Components[0]
	assert.Equal(t, "comp-1", merged.ID)
	assert.Equal(t, 5, merged.Quantity)
	assert.Equal(t, 14.0, merged.UnitPrice)
	assert.True(t, merged.DiscountApplied)
	assert.Equal(t, 50.0, merged.CustomerDiscountPercent)
	assert.InDelta(t, 35, merged.Total, 1e-9) // 14 * 0.5 * 5

	// A different model in the same category is a new line.
	other := models.CatalogEntry{Category: "Relés", Name: "Relé 12V", Price: 9}
	require.True(t, store.AddComponent("b1", "comp-3", other, 1))
	box, _ = store.Box("b1")
	assert.Len(t, box.Components, 2)
}

func TestAddComponentUnknownBox(t *testing.T) {
	store := NewStore()
	entry := models.CatalogEntry{Category: "PLC", Name: "S7-1200", Price: 450}
	assert.False(t, store.AddComponent("missing", "comp-1", entry, 1))
}

func TestAddDeviceRecomputesTotal(t *testing.T) {
	store := NewStore()
	store.AddDevice(models.Device{
		ID: "d1",
		LineItem: models.LineItem{
			Category:      "Cámaras",
			Model:         "Domo IP",
			UnitPrice:     120,
			ProductActive: true,
		},
	})

	device, ok := store.Device("d1")
	require.True(t, ok)
	assert.InDelta(t, 120, device.Total, 1e-9)

	// Devices share the discount path with components at quantity 1.
	require.True(t, store.SetLineCustomerDiscount(DeviceRef("d1"), 25))
	device, _ = store.Device("d1")
	assert.True(t, device.DiscountApplied)
	assert.InDelta(t, 90, device.Total, 1e-9)
}

func TestApplyDevicePatchRepricesLine(t *testing.T) {
	store := NewStore()
	store.AddDevice(models.Device{
		ID:       "d1",
		LineItem: models.LineItem{UnitPrice: 100, ProductActive: true},
	})

	price := 250.0
	require.True(t, store.ApplyDevicePatch("d1", DevicePatch{UnitPrice: &price}))

	device, _ := store.Device("d1")
	assert.Equal(t, 250.0, device.UnitPrice)
	assert.InDelta(t, 250, device.Total, 1e-9)
}

func TestSnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	store.AddBox(models.Box{ID: "b1", Name: "Cuadro 1"})
	entry := models.CatalogEntry{Category: "PLC", Name: "S7-1200", Price: 450}
	require.True(t, store.AddComponent("b1", "comp-1", entry, 1))

	snapshot := store.Snapshot()
	snapshot.Boxes[0].Name = "mutated"
	snapshot.Boxes[0].Components[0].Quantity = 99

	box, _ := store.Box("b1")
	assert.Equal(t, "Cuadro 1", box.Name)
	assert.Equal(t, 1, box.Components[0].Quantity)
}

func TestReplaceNormalizesNilCollections(t *testing.T) {
	store := NewStore()
	store.Replace(models.Design{Boxes: []models.Box{{ID: "b1"}}})

	assert.NotNil(t, store.Cables())
	assert.NotNil(t, store.Devices())
	require.Len(t, store.Boxes(), 1)
	assert.NotNil(t, store.Boxes()[0].Components)
}

func TestDefaultNames(t *testing.T) {
	store := NewStore()
	assert.Equal(t, "Cuadro 1", store.NextBoxName())
	assert.Equal(t, "Cámara 1", store.NextDeviceName())

	store.AddBox(models.Box{ID: "b1"})
	store.AddDevice(models.Device{ID: "d1"})
	store.AddDevice(models.Device{ID: "d2"})
	assert.Equal(t, "Cuadro 2", store.NextBoxName())
	assert.Equal(t, "Cámara 3", store.NextDeviceName())
}
