package service

import "github.com/shopspring/decimal"

// Uplift applies the initial percentage increase that turns a catalog
// price into the price financing is computed from.
func Uplift(basePrice, initialIncreasePct decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(one.Add(pctFraction(initialIncreasePct))).Round(2)
}

// FinalPrincipal applies the secondary increase (when positive) to the
// price remaining after prepayment and clamps the result at zero: a
// financed principal is never reported negative, even when prepayment
// exceeds the uplifted price.
func FinalPrincipal(remaining, secondaryIncreasePct decimal.Decimal) decimal.Decimal {
	principal := remaining
	if secondaryIncreasePct.IsPositive() {
		principal = remaining.Mul(one.Add(pctFraction(secondaryIncreasePct)))
	}
	if principal.IsNegative() {
		return decimal.Zero
	}
	return principal.Round(2)
}
