package postgres

import (
	"context"
	"fmt"

	pkgpostgres "github.com/Nalwa-Jayesh/credit-system/pkg/postgres"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
)

// LoanRepo implements port.LoanRepository over a pool or transaction.
type LoanRepo struct {
	q pkgpostgres.Querier
}

// NewLoanRepo creates a PostgreSQL-backed loan repository.
func NewLoanRepo(q pkgpostgres.Querier) *LoanRepo {
	return &LoanRepo{q: q}
}

// Create inserts the loan and returns it with its assigned ID.
func (r *LoanRepo) Create(ctx context.Context, loan model.Loan) (model.Loan, error) {
	query := `
		INSERT INTO loans (
			customer_id, loan_amount, tenure, interest_rate,
			monthly_installment, emis_paid_on_time,
			start_date, end_date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING loan_id
	`
	row := r.q.QueryRow(ctx, query,
		loan.CustomerID, loan.LoanAmount, loan.Tenure, loan.InterestRate,
		loan.MonthlyInstallment, loan.EMIsPaidOnTime,
		loan.StartDate, loan.EndDate, loan.CreatedAt,
	)
	if err := row.Scan(&loan.ID); err != nil {
		return model.Loan{}, fmt.Errorf("insert loan: %w", err)
	}
	return loan, nil
}

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE loan_id = $1
	`
	return scanLoanRow(r.q.QueryRow(ctx, query, id))
}

// ListByCustomer retrieves all loans owned by the customer, oldest first.
func (r *LoanRepo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE customer_id = $1
		ORDER BY loan_id
	`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}
