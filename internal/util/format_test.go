package util

import (
	"math"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"whole", 100, "INR", "100.00 INR"},
		{"decimal", 1250.5, "INR", "1250.50 INR"},
		{"zero", 0, "EUR", "0.00 EUR"},
		{"nan", math.NaN(), "INR", "- INR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.amount, tt.currency); got != tt.want {
				t.Errorf("FormatAmount(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
