package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyInstallment computes the fixed monthly payment for a loan.
//
// The calculation uses:
//
//	monthlyRate = annualRatePct / 1200
//	emi         = P * r * (1+r)^n / ((1+r)^n - 1)
//
// rounded to 2 decimal places. A rate of zero (or below) falls back to an
// even principal split so the formula never divides by zero. The power term
// is computed in float64, then switched back to decimal for the monetary
// result.
func MonthlyInstallment(principal decimal.Decimal, annualRatePct float64, tenureMonths int) decimal.Decimal {
	if tenureMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	r := annualRatePct / 1200
	if r <= 0 {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))).Round(2)
	}

	factor := math.Pow(1+r, float64(tenureMonths))
	emi := principal.InexactFloat64() * r * factor / (factor - 1)
	return decimal.NewFromFloat(emi).Round(2)
}
