// Package price normalizes raw provider prices for display: every close is
// rounded down to the nearest tick of 0.05 and shown with two decimals.
package price

import (
	"math"

	"github.com/shopspring/decimal"
)

// TicksPerUnit is the number of 0.05 ticks in one currency unit
const TicksPerUnit = 20

// DisplayPlaces is the number of decimals prices are formatted with
const DisplayPlaces = 2

var ticks = decimal.NewFromInt(TicksPerUnit)

// Round rounds a raw provider price down to the nearest 0.05.
// The float is converted through its shortest decimal representation, so a
// quoted 101.35 stays 101.35 instead of drifting to 101.30.
func Round(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return RoundDecimal(decimal.NewFromFloat(v))
}

// RoundDecimal is Round for values that are already decimals.
// floor(d*20)/20 is always exact, so the result carries at most two decimals.
func RoundDecimal(d decimal.Decimal) decimal.Decimal {
	return d.Mul(ticks).Floor().Div(ticks).Round(DisplayPlaces)
}

// Format renders a price with exactly two decimals (e.g. "101.35", "100.00")
func Format(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}

// IsTick reports whether d is an exact multiple of 0.05
func IsTick(d decimal.Decimal) bool {
	return d.Mul(ticks).IsInteger()
}
