package utils

import "testing"

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "0,00 €"},
		{name: "cents", amount: 0.5, want: "0,50 €"},
		{name: "hundreds", amount: 810, want: "810,00 €"},
		{name: "thousands", amount: 1234.5, want: "1.234,50 €"},
		{name: "millions", amount: 1000000, want: "1.000.000,00 €"},
		{name: "negative", amount: -42.75, want: "-42,75 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEUR(tt.amount); got != tt.want {
				t.Errorf("FormatEUR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
