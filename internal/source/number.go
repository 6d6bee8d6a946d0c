package source

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the longest leading decimal literal, optionally with
// an exponent: "12abc" reads as 12, "1.5e3kg" as 1500.
var numericPrefix = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber normalizes free-form numeric input. A leading "$", thousands
// separators and a trailing "%" are tolerated, and trailing garbage after a
// leading number is ignored. Anything else, including the empty string and
// values that overflow a float64, yields 0; the caller never sees an error.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	m := numericPrefix.FindString(s)
	if m == "" {
		return 0
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return 0
	}
	if neg {
		d = d.Neg()
	}
	return finite(d.InexactFloat64())
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Number is a worksheet value that may be written as a TOML number or as a
// string such as "$1,200". TOML's nan and inf literals read as 0.
type Number float64

// UnmarshalTOML implements toml.Unmarshaler.
func (n *Number) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		*n = Number(finite(float64(x)))
	case float64:
		*n = Number(finite(x))
	case string:
		*n = Number(ParseNumber(x))
	default:
		return fmt.Errorf("expected number, got %T", v)
	}
	return nil
}
