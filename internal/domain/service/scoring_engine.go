package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// ScoringEngine – domain service deriving a credit score from loan history
// ---------------------------------------------------------------------------

// ScoringEngine computes a 0-100 credit score for a customer.
type ScoringEngine struct{}

// NewScoringEngine returns a new engine instance.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score derives the credit score from the customer's full loan history.
//
// A customer whose outstanding principal exceeds the approved limit scores 0
// outright. Otherwise five capped components are summed:
//
//	on-time repayment ratio   max 40
//	number of past loans      max 15 (caps at 5 loans)
//	activity in asOf's year   flat 15
//	approved volume vs limit  max 15
//	current debt < 50% limit  flat 15
//
// A customer with no loans at all scores 0. The result is rounded to 2
// decimal places and never exceeds 100.
func (e *ScoringEngine) Score(customer model.Customer, loans []model.Loan, asOf time.Time) float64 {
	totalPrincipal := model.TotalPrincipal(loans)
	if totalPrincipal.GreaterThan(customer.ApprovedLimit) {
		return 0
	}

	total := len(loans)
	if total == 0 {
		return 0
	}

	paidOnTime := 0
	activeThisYear := 0
	for _, l := range loans {
		if l.EMIsPaidOnTime >= l.Tenure {
			paidOnTime++
		}
		if l.StartDate.Year() == asOf.Year() {
			activeThisYear++
		}
	}

	score := 0.0
	score += min(40, 40*float64(paidOnTime)/float64(total))
	score += min(15, 15*float64(total)/5)
	if activeThisYear > 0 {
		score += 15
	}
	// An approved limit of zero leaves the volume component at zero rather
	// than dividing by it.
	if customer.ApprovedLimit.IsPositive() {
		score += min(15, 15*totalPrincipal.InexactFloat64()/customer.ApprovedLimit.InexactFloat64())
	}
	if customer.CurrentDebt.LessThan(customer.ApprovedLimit.Mul(decimal.NewFromFloat(0.5))) {
		score += 15
	}

	return math.Round(score*100) / 100
}
