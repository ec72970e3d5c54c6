package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
)

// Dec converts a float into a decimal for test setup.
func Dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Customer returns a customer with the approved limit derived from salary,
// the way registration computes it.
func Customer(id int64, monthlySalary float64) model.Customer {
	salary := Dec(monthlySalary)
	return model.Customer{
		ID:            id,
		FirstName:     "Asha",
		LastName:      "Verma",
		PhoneNumber:   "9876543210",
		Age:           34,
		MonthlySalary: salary,
		ApprovedLimit: model.ApprovedLimitFor(salary),
		CurrentDebt:   decimal.Zero,
	}
}

// PaidOffLoan returns a loan whose every installment was paid on time.
func PaidOffLoan(id, customerID int64, amount float64, start time.Time) model.Loan {
	return model.Loan{
		ID:                 id,
		CustomerID:         customerID,
		LoanAmount:         Dec(amount),
		Tenure:             12,
		InterestRate:       11.5,
		MonthlyInstallment: model.MonthlyInstallment(Dec(amount), 11.5, 12),
		EMIsPaidOnTime:     12,
		StartDate:          start,
		EndDate:            model.EndDateFor(start, 12),
		CreatedAt:          start,
	}
}

// ActiveLoan returns a loan still being repaid.
func ActiveLoan(id, customerID int64, amount float64, tenure, paidOnTime int, start time.Time) model.Loan {
	return model.Loan{
		ID:                 id,
		CustomerID:         customerID,
		LoanAmount:         Dec(amount),
		Tenure:             tenure,
		InterestRate:       14,
		MonthlyInstallment: model.MonthlyInstallment(Dec(amount), 14, tenure),
		EMIsPaidOnTime:     paidOnTime,
		StartDate:          start,
		EndDate:            model.EndDateFor(start, tenure),
		CreatedAt:          start,
	}
}
