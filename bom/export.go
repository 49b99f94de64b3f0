package bom

import (
	"encoding/csv"
	"io"
	"strconv"

	"electric-plan-tool/models"
	"electric-plan-tool/pricing"
)

// Row types
const (
	TypeComponent = "component"
	TypeDevice    = "device"
)

// Row is one line of the bill of materials: a box component or a
// standalone device, flattened with its pricing columns.
type Row struct {
	BoxID                   string  `json:"boxId"`
	BoxName                 string  `json:"boxName"`
	Category                string  `json:"category"`
	Model                   string  `json:"model"`
	Quantity                int     `json:"quantity"`
	UnitPrice               float64 `json:"unitPrice"`
	CustomerDiscountPercent float64 `json:"customerDiscountPercent"`
	DiscountApplied         bool    `json:"discountApplied"`
	DiscountedUnitPrice     float64 `json:"discountedUnitPrice"`
	Total                   float64 `json:"total"`
	Type                    string  `json:"type"`
}

// Rows flattens a design into bill-of-materials rows: every component of
// every box in order, then every device with quantity 1. Totals are read
// from the stored lines, not recomputed.
func Rows(design models.Design) []Row {
	rows := []Row{}
	for _, box := range design.Boxes {
		for _, component := range box.Components {
			rows = append(rows, Row{
				BoxID:                   box.ID,
				BoxName:                 box.Name,
				Category:                component.Category,
				Model:                   component.Model,
				Quantity:                component.Quantity,
				UnitPrice:               component.UnitPrice,
				CustomerDiscountPercent: component.CustomerDiscountPercent,
				DiscountApplied:         component.DiscountApplied,
				DiscountedUnitPrice:     pricing.EffectiveUnitPrice(component.LineItem),
				Total:                   component.Total,
				Type:                    TypeComponent,
			})
		}
	}
	for _, device := range design.Devices {
		rows = append(rows, Row{
			BoxID:                   device.ID,
			BoxName:                 device.Name,
			Category:                device.Category,
			Model:                   device.Model,
			Quantity:                1,
			UnitPrice:               device.UnitPrice,
			CustomerDiscountPercent: device.CustomerDiscountPercent,
			DiscountApplied:         device.DiscountApplied,
			DiscountedUnitPrice:     pricing.EffectiveUnitPrice(device.LineItem),
			Total:                   device.Total,
			Type:                    TypeDevice,
		})
	}
	return rows
}

var csvHeader = []string{
	"Box ID", "Box Name", "Category", "Model", "Quantity",
	"Unit Price", "Customer Discount %", "Discount Applied",
	"Unit Price With Discount", "Total", "Type",
}

// WriteCSV writes the rows as CSV with a header line. Prices use two
// decimals and the discount flag is rendered YES/NO.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		applied := "NO"
		if row.DiscountApplied {
			applied = "YES"
		}
		record := []string{
			row.BoxID,
			row.BoxName,
			row.Category,
			row.Model,
			strconv.Itoa(row.Quantity),
			money(row.UnitPrice),
			money(row.CustomerDiscountPercent),
			applied,
			money(row.DiscountedUnitPrice),
			money(row.Total),
			row.Type,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
