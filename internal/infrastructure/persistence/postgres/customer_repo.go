package postgres

import (
	"context"
	"fmt"
	"time"

	pkgpostgres "github.com/Nalwa-Jayesh/credit-system/pkg/postgres"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
)

// CustomerRepo implements port.CustomerRepository over a pool or transaction.
type CustomerRepo struct {
	q pkgpostgres.Querier
}

// NewCustomerRepo creates a PostgreSQL-backed customer repository.
func NewCustomerRepo(q pkgpostgres.Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create inserts the customer and returns it with its assigned ID.
func (r *CustomerRepo) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query := `
		INSERT INTO customers (
			first_name, last_name, phone_number, age,
			monthly_salary, approved_limit, current_debt,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
		RETURNING customer_id, created_at, updated_at
	`
	now := time.Now().UTC()
	row := r.q.QueryRow(ctx, query,
		customer.FirstName, customer.LastName, customer.PhoneNumber, customer.Age,
		customer.MonthlySalary, customer.ApprovedLimit, customer.CurrentDebt,
		now,
	)
	if err := row.Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
		return model.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	return customer, nil
}

// FindByID retrieves a customer by ID.
func (r *CustomerRepo) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_id = $1
	`
	return scanCustomerRow(r.q.QueryRow(ctx, query, id))
}
