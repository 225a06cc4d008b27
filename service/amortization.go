package service

import (
	"github.com/shopspring/decimal"

	"financing-engine/domain"
)

// AmortizationResult is the level-payment summary for one financed
// principal.
type AmortizationResult struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// Amortize computes the level payment for a principal at a periodic
// rate (a fraction, e.g. 0.02 per period) over termPeriods periods.
//
// Numeric edge cases are handled by explicit fallbacks, not errors:
//   - termPeriods == 0: no financing occurs; payment 0, total = principal.
//   - rate == 0: straight-line split principal / term.
//   - annuity denominator == 0 (extreme rate/term combinations):
//     straight-line split, same as the zero-rate branch.
//
// Only non-numeric input fails: a negative principal or term is
// InvalidInput.
func Amortize(principal, periodicRate decimal.Decimal, termPeriods int, mode Rounding) (AmortizationResult, error) {
	if principal.IsNegative() {
		return AmortizationResult{}, &domain.InvalidInputError{Field: "principal", Reason: "must not be negative"}
	}
	if termPeriods < 0 {
		return AmortizationResult{}, &domain.InvalidInputError{Field: "term_months", Reason: "must not be negative"}
	}

	if termPeriods == 0 {
		return AmortizationResult{
			MonthlyPayment: decimal.Zero,
			TotalPayment:   roundAmount(principal, mode),
			TotalInterest:  decimal.Zero,
		}, nil
	}

	term := decimal.NewFromInt(int64(termPeriods))

	var payment decimal.Decimal
	switch {
	case periodicRate.IsZero():
		payment = principal.Div(term)
	default:
		// payment = P * r * (1+r)^n / ((1+r)^n - 1)
		factor := one.Add(periodicRate).Pow(term)
		denominator := factor.Sub(one)
		if denominator.IsZero() {
			payment = principal.Div(term)
		} else {
			payment = principal.Mul(periodicRate).Mul(factor).Div(denominator)
		}
	}

	payment = roundAmount(payment, mode)
	total := payment.Mul(term)

	return AmortizationResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(principal),
	}, nil
}
