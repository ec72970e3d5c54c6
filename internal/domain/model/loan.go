package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a disbursed loan belonging to exactly one customer. The stored
// interest rate is the corrected rate that was actually applied, and the
// installment is fixed at creation. EMIsPaidOnTime is advanced by the
// external repayment feed; this service only reads it.
type Loan struct {
	ID                 int64
	CustomerID         int64
	LoanAmount         decimal.Decimal
	Tenure             int
	InterestRate       float64
	MonthlyInstallment decimal.Decimal
	EMIsPaidOnTime     int
	StartDate          time.Time
	EndDate            time.Time
	CreatedAt          time.Time
}

// NewLoan creates an approved loan starting at the given date with no
// repayments made yet.
func NewLoan(customerID int64, amount decimal.Decimal, tenureMonths int, ratePct float64, installment decimal.Decimal, start time.Time) Loan {
	return Loan{
		CustomerID:         customerID,
		LoanAmount:         amount,
		Tenure:             tenureMonths,
		InterestRate:       ratePct,
		MonthlyInstallment: installment,
		EMIsPaidOnTime:     0,
		StartDate:          start,
		EndDate:            EndDateFor(start, tenureMonths),
		CreatedAt:          start,
	}
}

// EndDateFor advances the start date by tenure/12 whole years. Months past
// the last whole year do not move the date.
func EndDateFor(start time.Time, tenureMonths int) time.Time {
	return start.AddDate(tenureMonths/12, 0, 0)
}

// RepaymentsLeft returns the number of installments still owed, never
// negative even when the feed reports more on-time EMIs than the tenure.
func (l Loan) RepaymentsLeft() int {
	if left := l.Tenure - l.EMIsPaidOnTime; left > 0 {
		return left
	}
	return 0
}

// TotalPrincipal sums the loan amounts of the given loans.
func TotalPrincipal(loans []Loan) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range loans {
		sum = sum.Add(l.LoanAmount)
	}
	return sum
}

// TotalInstallment sums the monthly installments of the given loans.
func TotalInstallment(loans []Loan) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range loans {
		sum = sum.Add(l.MonthlyInstallment)
	}
	return sum
}
