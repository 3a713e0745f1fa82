package response

import "github.com/shopspring/decimal"

// money renders an amount with exactly two decimal places, rounding half
// away from zero. This is the only place full-precision engine output is
// rounded; stored and computed values keep full precision.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// rate renders a percentage without forcing a scale ("7.25", "6.875").
func rate(d decimal.Decimal) string {
	return d.String()
}
