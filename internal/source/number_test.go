package source

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12abc", 12},
		{"3.5kg", 3.5},
		{"1.5e3", 1500},
		{"2e", 2},
		{".5", 0.5},
		{"+4", 4},
		{"--5", 0},
		{"$1,2x", 12},
		{"1e400", 0},
		{"-1e400", 0},
		{"Infinity", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"42", 42},
		{" 3.5 ", 3.5},
		{"$1,200.50", 1200.5},
		{"-$5", -5},
		{"-7.25", -7.25},
		{"10%", 10},
		{"0.1", 0.1},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNumberUnmarshalNonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), math.Inf(-1), "1e400"} {
		n := Number(7)
		if err := n.UnmarshalTOML(v); err != nil {
			t.Fatalf("UnmarshalTOML(%v): %v", v, err)
		}
		if n != 0 {
			t.Errorf("UnmarshalTOML(%v) = %v, want 0", v, n)
		}
	}
}
