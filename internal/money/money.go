// Package money holds the shared decimal helpers used by every pricing
// computation. Monetary values and percentages are shopspring decimals
// end to end; binary floating point never enters an amount.
package money

import "github.com/shopspring/decimal"

// Hundred is the divisor for percentage calculations.
var Hundred = decimal.NewFromInt(100)

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// Percent returns base * pct / 100 using exact decimal division.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(Hundred)
}

// FromInt converts a quantity or count into a decimal multiplier.
func FromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// Format renders an amount with exactly two fractional digits, rounding
// half away from zero. Internal computations keep full precision; this is
// the only place rounding happens.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatNeg renders the negation of an amount, used for discount rows.
func FormatNeg(d decimal.Decimal) string {
	return d.Neg().StringFixed(2)
}

// MustParse parses a decimal literal and panics on malformed input.
// Intended for constants in tests and seed fixtures.
func MustParse(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}
