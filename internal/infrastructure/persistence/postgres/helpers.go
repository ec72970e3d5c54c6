package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
)

// scannable is satisfied by pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

const customerColumns = `customer_id, first_name, last_name, phone_number, age,
	       monthly_salary, approved_limit, current_debt, created_at, updated_at`

func scanCustomerRow(s scannable) (model.Customer, error) {
	var (
		c                    model.Customer
		salary, limit, debt  decimal.Decimal
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Age,
		&salary, &limit, &debt, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Customer{}, domainerrors.New(domainerrors.CodeNotFound, "Customer not found.")
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	c.MonthlySalary = salary
	c.ApprovedLimit = limit
	c.CurrentDebt = debt
	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt
	return c, nil
}

const loanColumns = `loan_id, customer_id, loan_amount, tenure, interest_rate,
	       monthly_installment, emis_paid_on_time, start_date, end_date, created_at`

func scanLoanRow(s scannable) (model.Loan, error) {
	var l model.Loan

	err := s.Scan(
		&l.ID, &l.CustomerID, &l.LoanAmount, &l.Tenure, &l.InterestRate,
		&l.MonthlyInstallment, &l.EMIsPaidOnTime, &l.StartDate, &l.EndDate, &l.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, domainerrors.New(domainerrors.CodeNotFound, "Loan not found.")
	}
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	return l, nil
}
