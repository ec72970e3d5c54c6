package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// DecisionEngine – approval policy for new loan requests
// ---------------------------------------------------------------------------

// Decision messages surfaced to callers.
const (
	MsgApproved    = "Loan approved."
	MsgEMITooHigh  = "Current EMIs exceed 50% of monthly salary. Loan not approved."
	MsgRateTooLow  = "Interest rate too low for this credit score. Loan not approved."
	MsgScoreTooLow = "Credit score too low. Loan not approved."
	MsgNotFound    = "Customer not found."
)

// LoanTerms are the requested terms of a new loan.
type LoanTerms struct {
	Amount       decimal.Decimal
	InterestRate float64
	TenureMonths int
}

// Decision is the outcome of evaluating a loan request. CorrectedInterestRate
// is the rate actually applied after policy floors; MonthlyInstallment is the
// EMI at that corrected rate.
type Decision struct {
	Approved              bool
	Message               string
	CorrectedInterestRate float64
	MonthlyInstallment    decimal.Decimal
}

// DecisionEngine encapsulates the rule-based approval policy.
type DecisionEngine struct{}

// NewDecisionEngine returns a new engine instance.
func NewDecisionEngine() *DecisionEngine {
	return &DecisionEngine{}
}

// Evaluate decides approval and the corrected interest rate. The branch table
// runs top to bottom, first match wins:
//
//	current EMIs > 50% salary      -> reject, rate := max(16, requested)
//	score > 50                     -> approve at the requested rate
//	30 < score <= 50, rate > 12    -> approve at the requested rate
//	30 < score <= 50, rate <= 12   -> reject, rate := 12.01
//	10 < score <= 30, rate > 16    -> approve at the requested rate
//	10 < score <= 30, rate <= 16   -> reject, rate := 16.01
//	score <= 10                    -> reject, rate := max(16, requested)
//
// A second slab floor (0 / 12 / 16 by score bracket) runs after the table and
// overrides the corrected rate whenever the requested rate sits below it,
// including on the approved path. Both passes are intentional; do not merge
// them.
func (e *DecisionEngine) Evaluate(customer model.Customer, creditScore float64, terms LoanTerms, currentEMIs decimal.Decimal) Decision {
	requested := terms.InterestRate
	halfSalary := customer.MonthlySalary.Mul(decimal.NewFromFloat(0.5))

	var (
		approved  bool
		message   string
		corrected float64
	)

	switch {
	case currentEMIs.GreaterThan(halfSalary):
		approved = false
		message = MsgEMITooHigh
		corrected = math.Max(16.0, requested)
	case creditScore > 50:
		approved = true
		message = MsgApproved
		corrected = requested
	case creditScore > 30:
		if requested > 12 {
			approved = true
			message = MsgApproved
			corrected = requested
		} else {
			approved = false
			message = MsgRateTooLow
			corrected = 12.01
		}
	case creditScore > 10:
		if requested > 16 {
			approved = true
			message = MsgApproved
			corrected = requested
		} else {
			approved = false
			message = MsgRateTooLow
			corrected = 16.01
		}
	default:
		approved = false
		message = MsgScoreTooLow
		corrected = math.Max(16.0, requested)
	}

	var minRate float64
	switch {
	case creditScore > 50:
		minRate = 0
	case creditScore > 30:
		minRate = 12
	default:
		minRate = 16
	}
	if requested < minRate {
		corrected = minRate
	}

	return Decision{
		Approved:              approved,
		Message:               message,
		CorrectedInterestRate: corrected,
		MonthlyInstallment:    model.MonthlyInstallment(terms.Amount, corrected, terms.TenureMonths),
	}
}
