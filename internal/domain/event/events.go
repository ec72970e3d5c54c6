package event

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// CustomerRegistered is raised when a new customer is registered.
type CustomerRegistered struct {
	events.BaseEvent
	CustomerID    int64           `json:"customer_id"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	ApprovedLimit decimal.Decimal `json:"approved_limit"`
}

func NewCustomerRegistered(c model.Customer) CustomerRegistered {
	return CustomerRegistered{
		BaseEvent:     events.NewBaseEvent("credit.customer.registered", strconv.FormatInt(c.ID, 10), "Customer"),
		CustomerID:    c.ID,
		MonthlySalary: c.MonthlySalary,
		ApprovedLimit: c.ApprovedLimit,
	}
}

// LoanCreated is raised when a loan request is approved and persisted.
type LoanCreated struct {
	events.BaseEvent
	LoanID             int64           `json:"loan_id"`
	CustomerID         int64           `json:"customer_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	TenureMonths       int             `json:"tenure"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

func NewLoanCreated(l model.Loan) LoanCreated {
	return LoanCreated{
		BaseEvent:          events.NewBaseEvent("credit.loan.created", strconv.FormatInt(l.ID, 10), "Loan"),
		LoanID:             l.ID,
		CustomerID:         l.CustomerID,
		LoanAmount:         l.LoanAmount,
		InterestRate:       l.InterestRate,
		TenureMonths:       l.Tenure,
		MonthlyInstallment: l.MonthlyInstallment,
	}
}

// LoanRejected is raised when a loan request is declined.
type LoanRejected struct {
	events.BaseEvent
	CustomerID  int64   `json:"customer_id"`
	CreditScore float64 `json:"credit_score"`
	Reason      string  `json:"reason"`
}

func NewLoanRejected(customerID int64, creditScore float64, reason string) LoanRejected {
	return LoanRejected{
		BaseEvent:   events.NewBaseEvent("credit.loan.rejected", strconv.FormatInt(customerID, 10), "Customer"),
		CustomerID:  customerID,
		CreditScore: creditScore,
		Reason:      reason,
	}
}
