package pricing

import (
	"math"

	"electric-plan-tool/models"
)

// EffectiveUnitPrice returns the unit price of a line after applying its
// customer discount. A non-positive base price always yields 0.
func EffectiveUnitPrice(line models.LineItem) float64 {
	base := math.Max(0, sanitize(line.UnitPrice))
	percent := clampPercent(line.CustomerDiscountPercent)
	if base <= 0 {
		return 0
	}
	return base * (1 - percent/100)
}

// Recompute derives the line's total from its current fields. It is the
// only writer of Total: every mutation to quantity, unit price, discount
// percent, discount flag or active flag must funnel through here.
func Recompute(line *models.LineItem, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	if !line.ProductActive {
		line.Total = 0
		return
	}
	unit := math.Max(0, sanitize(line.UnitPrice))
	if line.DiscountApplied {
		unit = EffectiveUnitPrice(*line)
	}
	line.Total = unit * float64(quantity)
}

// SetCustomerDiscount clamps and stores the customer discount percent.
// Entering a positive percent enables the discount if it wasn't already
// applied; an explicit toggle afterwards still takes precedence.
func SetCustomerDiscount(line *models.LineItem, quantity int, percent float64) {
	clamped := clampPercent(percent)
	line.CustomerDiscountPercent = clamped
	if clamped > 0 {
		line.DiscountApplied = true
	}
	Recompute(line, quantity)
}

// SetDiscountApplied toggles the discount flag and rederives the total, so
// turning the discount off restores the undiscounted amount.
func SetDiscountApplied(line *models.LineItem, quantity int, applied bool) {
	line.DiscountApplied = applied
	Recompute(line, quantity)
}

// SetActive toggles the line on or off. Deactivating zeroes the total;
// reactivating restores it from the unchanged pricing fields.
func SetActive(line *models.LineItem, quantity int, active bool) {
	line.ProductActive = active
	Recompute(line, quantity)
}

// BoxTotal sums the cached component totals of a box.
func BoxTotal(box models.Box) float64 {
	var sum float64
	for _, component := range box.Components {
		sum += sanitize(component.Total)
	}
	return sum
}

// BoxesTotal sums BoxTotal over all boxes.
func BoxesTotal(boxes []models.Box) float64 {
	var sum float64
	for _, box := range boxes {
		sum += BoxTotal(box)
	}
	return sum
}

// DevicesTotal sums the cached device totals.
func DevicesTotal(devices []models.Device) float64 {
	var sum float64
	for _, device := range devices {
		sum += sanitize(device.Total)
	}
	return sum
}

// CablesTotal sums the cable prices.
func CablesTotal(cables []models.Cable) float64 {
	var sum float64
	for _, cable := range cables {
		sum += sanitize(cable.TotalPrice)
	}
	return sum
}

// ProjectTotal is the budget roll-up for a whole design: boxes plus
// devices plus cables.
func ProjectTotal(design models.Design) float64 {
	return BoxesTotal(design.Boxes) + DevicesTotal(design.Devices) + CablesTotal(design.Cables)
}

// sanitize coerces NaN and infinities to 0 so a corrupted stored value can
// never propagate into a displayed total.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampPercent(percent float64) float64 {
	percent = sanitize(percent)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
