package service

import (
	"github.com/shopspring/decimal"

	"financing-engine/domain"
)

var (
	checkMultiplier      = decimal.NewFromFloat(1.25)
	promissoryMultiplier = decimal.NewFromFloat(1.50)
)

// SizeGuarantee computes the face value of the guarantee instrument as
// a multiplier of the obligated amount: 1.50 for a promissory note,
// 1.25 for a check or anything else.
//
// The obligated amount is the caller's choice on purpose: the bank flow
// sizes against the total obligation including interest, the product
// condition flow against the undiscounted base price. Both rules stand
// until the product owner unifies them.
func SizeGuarantee(obligated decimal.Decimal, guaranteeType domain.GuaranteeType, mode Rounding) decimal.Decimal {
	multiplier := checkMultiplier
	if guaranteeType == domain.GuaranteePromissoryNote {
		multiplier = promissoryMultiplier
	}
	return roundAmount(obligated.Mul(multiplier), mode)
}
