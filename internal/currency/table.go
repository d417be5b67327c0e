// Package currency provides the static conversion table and amount
// formatting for booking prices. All rates are multipliers relative to the
// base currency: a multiplier of 16250 means 16250 units equal one USD.
package currency

import (
	"math"
	"sort"
)

// precision is the number of decimal digits conversions are rounded to.
// Fixed-precision rounding keeps repeated conversions from accumulating
// floating-point drift.
const precision = 3

// Table maps an ISO 4217 currency code to its multiplier relative to the
// base currency. The table is read-only after construction.
type Table map[string]float64

// DefaultTable returns the built-in conversion table.
// The base currency entry is always 1.
func DefaultTable() Table {
	return Table{
		"USD": 1,
		"EUR": 0.92,
		"GBP": 0.79,
		"AUD": 1.52,
		"SGD": 1.35,
		"JPY": 155.70,
		"INR": 83.20,
		"IDR": 16250,
		"MYR": 4.47,
		"THB": 34.10,
	}
}

// Multiplier returns the multiplier for the given code. Codes absent from
// the table fall back to 1 (treated as the base currency). The fallback is
// an intentional degradation, not an error: a missing rate must not break
// an in-progress booking.
func (t Table) Multiplier(code string) float64 {
	if m, ok := t[code]; ok && m > 0 {
		return m
	}
	return 1
}

// Convert returns amount converted from one currency to another, rounded to
// a fixed precision. When from == to the amount is returned unchanged so
// identity conversions never introduce drift.
func (t Table) Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return Round(amount * (t.Multiplier(to) / t.Multiplier(from)))
}

// Round rounds a value to the table's fixed precision.
func Round(v float64) float64 {
	shift := math.Pow(10, precision)
	return math.Round(v*shift) / shift
}

// Codes returns the currency codes in the table, sorted.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
