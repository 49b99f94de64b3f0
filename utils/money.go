package utils

import (
	"strconv"
	"strings"
)

// FormatEUR formats an amount in euros as a string like "1.234,56 €".
// Uses dot as thousands separator and comma as decimal separator (Spanish
// convention).
func FormatEUR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + " €"
	b.Grow(len(s) + len(intPart)/3 + 4)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte(',')
	b.WriteString(decPart)
	b.WriteString(" €")

	return b.String()
}
