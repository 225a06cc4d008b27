package service

import "github.com/shopspring/decimal"

// Working precision for division; all quantization happens only at the
// reporting step, never on intermediate factors.
const workingPrecision = 28

func init() {
	if decimal.DivisionPrecision < workingPrecision {
		decimal.DivisionPrecision = workingPrecision
	}
}

// Rounding selects the quantization applied to a reported monetary
// value. Every monetary-producing function takes it as a parameter so
// each call site keeps its own policy.
type Rounding int

const (
	// RoundCurrency quantizes to 2 decimals, half up. Used by the
	// bank/company plan quotes.
	RoundCurrency Rounding = iota
	// RoundWholeUp quantizes to whole currency units, rounding toward
	// positive infinity. Used by the product loan-condition quotes.
	RoundWholeUp
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

func roundAmount(d decimal.Decimal, mode Rounding) decimal.Decimal {
	if mode == RoundWholeUp {
		return d.RoundCeil(0)
	}
	return d.Round(2)
}

// pctFraction converts a stored percentage ("25.00" meaning 25%) to the
// fraction used in arithmetic.
func pctFraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}
