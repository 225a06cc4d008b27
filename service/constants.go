package service

import "github.com/shopspring/decimal"

const (
	MaxTermMonths = 600 // 50 years

	// Guarantee-check cadence for company plans.
	firstCheckDueDays = 45
	checkIntervalDays = 60
)

var (
	MaxBasePrice   = decimal.NewFromInt(1_000_000_000_000)
	MaxRatePercent = decimal.NewFromInt(1000)
)
