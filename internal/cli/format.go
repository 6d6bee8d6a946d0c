// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NotAvailable stands in for values that overflowed to Inf or NaN.
const NotAvailable = "n/a"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency formats a dollar amount with thousands separators and
// exactly two decimals, rounding half away from zero.
// e.g., 1234.5 -> "$1,234.50", -10 -> "-$10.00"
func FormatCurrency(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).StringFixed(2) // "0.xx"
	return sign + "$" + humanize.BigComma(whole.BigInt()) + cents[1:]
}

// FormatUnits formats a unit count with grouping and at most one decimal.
// e.g., 1234.56 -> "1,234.6", 100 -> "100"
func FormatUnits(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(v).Round(1)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	s := sign + humanize.BigComma(whole.BigInt())
	if frac := d.Sub(whole); !frac.IsZero() {
		s += frac.StringFixed(1)[1:]
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a value already expressed in percent.
// e.g., 12.5 -> "12.5%"
func FormatPercent(pct float64) string {
	if !isFinite(pct) {
		return NotAvailable
	}
	return decimal.NewFromFloat(pct).Round(1).StringFixed(1) + "%"
}

// FormatRatio formats a 0-1 ratio as a percentage.
func FormatRatio(f float64) string {
	return FormatPercent(f * 100)
}

// FormatVariance formats budgeted-minus-actual with an explicit sign:
// "+$20.00" under budget, "-$100.00" over budget.
func FormatVariance(v float64) string {
	s := FormatCurrency(v)
	if strings.HasPrefix(s, "-") || s == "$0.00" || s == NotAvailable {
		return s
	}
	return "+" + s
}

// FormatCount formats a whole number of units such as a breakeven target.
func FormatCount(v float64) string {
	return fmt.Sprintf("%s units", FormatUnits(v))
}
