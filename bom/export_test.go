package bom

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electric-plan-tool/models"
)

func sampleDesign() models.Design {
	return models.Design{
		Boxes: []models.Box{
			{
				ID:   "b1",
				Name: "Cuadro 1",
				Components: []models.Component{
					{
						ID: "comp-1",
						LineItem: models.LineItem{
							Category:                "PLC",
							Model:                   "S7-1200",
							UnitPrice:               450,
							CustomerDiscountPercent: 10,
							DiscountApplied:         true,
							ProductActive:           true,
							Total:                   810,
						},
						Quantity: 2,
					},
					{
						ID: "comp-2",
						LineItem: models.LineItem{
							Category:      "Relés",
							Model:         "Relé 24V",
							UnitPrice:     12,
							ProductActive: true,
							Total:         36,
						},
						Quantity: 3,
					},
				},
			},
		},
		Devices: []models.Device{
			{
				ID:   "d1",
				Name: "Cámara 1",
				LineItem: models.LineItem{
					Category:      "Cámaras",
					Model:         "Domo IP",
					UnitPrice:     120,
					ProductActive: true,
					Total:         120,
				},
			},
		},
		Cables: []models.Cable{},
	}
}

func TestRowsFlattensComponentsThenDevices(t *testing.T) {
	rows := Rows(sampleDesign())
	require.Len(t, rows, 3)

	plc := rows[0]
	assert.Equal(t, "b1", plc.BoxID)
	assert.Equal(t, "Cuadro 1", plc.BoxName)
	assert.Equal(t, "S7-1200", plc.Model)
	assert.Equal(t, 2, plc.Quantity)
	assert.Equal(t, TypeComponent, plc.Type)
	assert.True(t, plc.DiscountApplied)
	assert.InDelta(t, 405, plc.DiscountedUnitPrice, 1e-9)
	// The stored total is reported as-is, never recomputed here.
	assert.Equal(t, 810.0, plc.Total)

	rele := rows[1]
	assert.Equal(t, TypeComponent, rele.Type)
	assert.False(t, rele.DiscountApplied)
	assert.InDelta(t, 12, rele.DiscountedUnitPrice, 1e-9)

	// Devices come last, addressed by their own id and name, quantity 1.
	device := rows[2]
	assert.Equal(t, TypeDevice, device.Type)
	assert.Equal(t, "d1", device.BoxID)
	assert.Equal(t, "Cámara 1", device.BoxName)
	assert.Equal(t, 1, device.Quantity)
	assert.Equal(t, 120.0, device.Total)
}

func TestRowsEmptyDesign(t *testing.T) {
	rows := Rows(models.EmptyDesign())
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows(sampleDesign())))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{
		"Box ID", "Box Name", "Category", "Model", "Quantity",
		"Unit Price", "Customer Discount %", "Discount Applied",
		"Unit Price With Discount", "Total", "Type",
	}, records[0])

	assert.Equal(t, []string{
		"b1", "Cuadro 1", "PLC", "S7-1200", "2",
		"450.00", "10.00", "YES", "405.00", "810.00", "component",
	}, records[1])

	assert.Equal(t, "NO", records[2][7])
	assert.Equal(t, "device", records[3][10])
}
