package cli

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1000, "$1,000.00"},
		{1234.5, "$1,234.50"},
		{-10, "-$10.00"},
		{-5, "-$5.00"},
		{0.005, "$0.01"},
		{2.675, "$2.68"},
		{-0.001, "$0.00"},
		{1234567.891, "$1,234,567.89"},
		{999.999, "$1,000.00"},
		{1e19, "$10,000,000,000,000,000,000.00"},
		{-1e19, "-$10,000,000,000,000,000,000.00"},
		{math.Inf(1), "n/a"},
		{math.Inf(-1), "n/a"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{12.34, "12.3"},
		{1234.56, "1,234.6"},
		{99.96, "100"},
		{1e19, "10,000,000,000,000,000,000"},
		{math.Inf(1), "n/a"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		if got := FormatUnits(tt.in); got != tt.want {
			t.Errorf("FormatUnits(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.5); got != "12.5%" {
		t.Errorf("FormatPercent(12.5) = %q", got)
	}
	if got := FormatRatio(0.25); got != "25.0%" {
		t.Errorf("FormatRatio(0.25) = %q", got)
	}
	if got := FormatPercent(math.NaN()); got != "n/a" {
		t.Errorf("FormatPercent(NaN) = %q", got)
	}
}

func TestFormatVariance(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "+$20.00"},
		{math.Inf(1), "n/a"},
		{-100, "-$100.00"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatVariance(tt.in); got != tt.want {
			t.Errorf("FormatVariance(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Errorf("FormatNumber(-1000) = %q", got)
	}
}
